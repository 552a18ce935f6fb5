package handlers

import (
	"net/http"
)

// HandleHealth is the liveness probe.
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": utcTimestamp(),
	})
}

// HandleReadiness is the readiness probe.
func HandleReadiness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ready":     true,
		"timestamp": utcTimestamp(),
	})
}

// HandleRoot describes the service and its endpoints.
func HandleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"service": "AI Agent API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"health":    "/health",
			"readiness": "/readiness",
			"process":   "/process",
			"chat":      "/chat",
			"ui":        "/chat-ui",
		},
	})
}
