package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder and Exporter on top of a private
// Prometheus registry. Events become one counter vector labelled by type and
// outcome; latencies one histogram vector labelled by operation and route.
type PrometheusRecorder struct {
	registry  *prometheus.Registry
	counters  *prometheus.CounterVec
	histogram *prometheus.HistogramVec
}

// NewPrometheusRecorder registers its collectors on a private registry so
// several recorders can coexist in one process.
func NewPrometheusRecorder() *PrometheusRecorder {
	counters := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "agentcommerce",
			Name:      "events_total",
			Help:      "agentcommerce event counters",
		},
		[]string{"type", "outcome"},
	)

	histogram := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "agentcommerce",
			Name:      "latency_seconds",
			Help:      "agentcommerce operation latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation", "route"},
	)

	registry := prometheus.NewRegistry()
	registry.MustRegister(counters, histogram)

	return &PrometheusRecorder{
		registry:  registry,
		counters:  counters,
		histogram: histogram,
	}
}

// IncCounter bumps agentcommerce_events_total for the event name. Only the
// "outcome" label is read; other labels are ignored so cardinality stays
// bounded.
func (p *PrometheusRecorder) IncCounter(name string, labels map[string]string) {
	p.counters.With(prometheus.Labels{
		"type":    name,
		"outcome": labels["outcome"],
	}).Inc()
}

// ObserveLatency records d in agentcommerce_latency_seconds. The "route"
// label is empty for library calls and set by the HTTP middleware.
func (p *PrometheusRecorder) ObserveLatency(name string, d time.Duration, labels map[string]string) {
	p.histogram.With(prometheus.Labels{
		"operation": name,
		"route":     labels["route"],
	}).Observe(d.Seconds())
}

// Registry exposes the underlying registry, mainly for tests.
func (p *PrometheusRecorder) Registry() *prometheus.Registry {
	return p.registry
}

// Handler serves the recorder's metrics in the Prometheus text format.
func (p *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}
