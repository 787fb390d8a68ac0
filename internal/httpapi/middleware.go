package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/vitwit/agentcommerce/logger"
	"github.com/vitwit/agentcommerce/metrics"
)

const headerRequestID = "X-Request-Id"

type responseRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

// RequestID tags every response with a request id, reusing the caller's
// id when one is supplied.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(headerRequestID)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(headerRequestID, id)
		}
		w.Header().Set(headerRequestID, id)
		next.ServeHTTP(w, r)
	})
}

// Logging writes one access log line per request and records its latency
// under the matched route pattern.
func Logging(log logger.Logger, rec metrics.Recorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rr := &responseRecorder{ResponseWriter: w}

			next.ServeHTTP(rr, r)

			if rr.status == 0 {
				rr.status = http.StatusOK
			}
			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			elapsed := time.Since(start)

			rec.ObserveLatency(metrics.OpHTTPRequest, elapsed, map[string]string{"route": route})
			rec.IncCounter(metrics.OpHTTPRequest, map[string]string{"outcome": strconv.Itoa(rr.status)})
			log.Info("http request", map[string]any{
				"request_id": r.Header.Get(headerRequestID),
				"method":     r.Method,
				"path":       r.URL.Path,
				"route":      route,
				"status":     rr.status,
				"bytes":      rr.bytes,
				"duration":   elapsed.String(),
			})
		})
	}
}
