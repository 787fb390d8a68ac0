package metrics

import (
	"net/http"
	"time"
)

// Metric names recorded by the library and the HTTP API.
const (
	EventNegotiation = "negotiation"
	EventStepper     = "stepper"
	EventCalculation = "calculation"
	EventComparison  = "comparison"
	EventComposition = "composition"
	OpHTTPRequest    = "http_request"
)

type Recorder interface {
	IncCounter(name string, labels map[string]string)
	ObserveLatency(name string, duration time.Duration, labels map[string]string)
}

// Exporter is implemented by recorders that can serve what they collected.
type Exporter interface {
	Handler() http.Handler
}
