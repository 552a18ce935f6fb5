package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/osuit/ai-agent/internal/metrics"
)

// statusRecorder captures the status code a handler writes.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Metrics tracks per-request latency and counts. The metrics endpoint
// itself is not measured.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		metrics.ActiveRequests.Inc()
		start := time.Now()

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)

		elapsed := time.Since(start).Seconds()
		metrics.RequestCount.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(recorder.status)).Inc()
		metrics.RequestLatency.WithLabelValues(r.Method, r.URL.Path).Observe(elapsed)
		metrics.ActiveRequests.Dec()
	})
}
