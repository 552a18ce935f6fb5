package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osuit/ai-agent/internal/api/middleware"
	"github.com/osuit/ai-agent/internal/services"
)

func RegisterRoutes(router *mux.Router, services *services.Services) {
	// Probes and service descriptor
	router.HandleFunc("/", HandleRoot).Methods("GET")
	router.HandleFunc("/health", HandleHealth).Methods("GET")
	router.HandleFunc("/readiness", HandleReadiness).Methods("GET")

	// Prometheus metrics
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Chat UI and scraper verification
	router.HandleFunc("/chat-ui", HandleChatUI).Methods("GET")
	router.HandleFunc("/scrape/majors", func(w http.ResponseWriter, r *http.Request) {
		HandleScrapeMajors(services.GetOSUWebService(), w, r)
	}).Methods("GET")

	// Message processing routes (rate limited when enabled)
	router.Handle("/process", middleware.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		HandleProcess(services.GetChatService(), w, r)
	}))).Methods("POST")
	router.Handle("/chat", middleware.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		HandleChat(services.GetChatService(), w, r)
	}))).Methods("POST")
}
