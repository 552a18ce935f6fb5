package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/osuit/ai-agent/internal/metrics"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequestIDGenerated(t *testing.T) {
	handler := RequestID(okHandler())

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	if w.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header should be set")
	}
}

func TestRequestIDPreserved(t *testing.T) {
	handler := RequestID(okHandler())

	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("X-Request-ID", "trace-123")

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "trace-123" {
		t.Errorf("X-Request-ID = %v, want trace-123", got)
	}
}

func TestMetricsCountsRequests(t *testing.T) {
	handler := Metrics(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	before := testutil.ToFloat64(metrics.RequestCount.WithLabelValues("GET", "/missing", "404"))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/missing", nil))

	after := testutil.ToFloat64(metrics.RequestCount.WithLabelValues("GET", "/missing", "404"))
	if after != before+1 {
		t.Errorf("request counter = %v, want %v", after, before+1)
	}
}

func TestMetricsSkipsMetricsEndpoint(t *testing.T) {
	handler := Metrics(okHandler())

	before := testutil.ToFloat64(metrics.RequestCount.WithLabelValues("GET", "/metrics", "200"))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	after := testutil.ToFloat64(metrics.RequestCount.WithLabelValues("GET", "/metrics", "200"))
	if after != before {
		t.Error("the metrics endpoint should not be measured")
	}
}

func TestMetricsActiveRequestsReturnsToZero(t *testing.T) {
	handler := Metrics(okHandler())

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	if got := testutil.ToFloat64(metrics.ActiveRequests); got != 0 {
		t.Errorf("active requests gauge = %v after request, want 0", got)
	}
}

func TestRateLimitDisabledByDefault(t *testing.T) {
	handler := RateLimit()(okHandler())

	for i := 0; i < 100; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("POST", "/chat", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d rejected with %d while limiting is disabled", i+1, w.Code)
		}
	}
}

func TestRateLimitEnforced(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_REQUESTS", "2")
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "60")

	handler := RateLimit()(okHandler())

	request := func() int {
		req := httptest.NewRequest("POST", "/chat", nil)
		req.Header.Set("X-Forwarded-For", "10.0.0.9")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w.Code
	}

	if code := request(); code != http.StatusOK {
		t.Fatalf("first request = %d, want 200", code)
	}
	if code := request(); code != http.StatusOK {
		t.Fatalf("second request = %d, want 200", code)
	}
	if code := request(); code != http.StatusTooManyRequests {
		t.Errorf("third request = %d, want 429", code)
	}
}
