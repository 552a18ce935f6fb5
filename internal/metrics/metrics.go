package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ai_agent_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ai_agent_request_duration_seconds",
			Help:    "Request latency in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"method", "endpoint"},
	)

	ChatCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ai_agent_chat_total",
			Help: "Total chat messages processed",
		},
		[]string{"question_type"},
	)

	ChatLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ai_agent_chat_duration_seconds",
			Help:    "Chat response latency in seconds",
			Buckets: []float64{1, 2, 5, 10, 20, 40, 60, 90, 120},
		},
		[]string{"question_type", "model"},
	)

	OllamaErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ai_agent_ollama_errors_total",
			Help: "Ollama call errors",
		},
		[]string{"error_type"},
	)

	ActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ai_agent_active_requests",
			Help: "Currently in-flight requests",
		},
	)
)
