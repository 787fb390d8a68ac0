package metrics

import (
	"net/http"
	"time"
)

// NoopRecorder drops every observation. It is the default when metrics are disabled.
type NoopRecorder struct{}

func (NoopRecorder) IncCounter(string, map[string]string)                    {}
func (NoopRecorder) ObserveLatency(string, time.Duration, map[string]string) {}

// Handler answers 404 so /metrics behaves like an unknown route.
func (NoopRecorder) Handler() http.Handler {
	return http.NotFoundHandler()
}
