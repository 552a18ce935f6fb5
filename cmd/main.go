package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"

	"github.com/osuit/ai-agent/internal/api/handlers"
	"github.com/osuit/ai-agent/internal/api/middleware"
	"github.com/osuit/ai-agent/internal/config"
	"github.com/osuit/ai-agent/internal/infrastructure/splunk"
	"github.com/osuit/ai-agent/internal/logger"
	"github.com/osuit/ai-agent/internal/services"
)

func main() {
	// Load .env file if present
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found")
	}

	logger.Init()

	// Forward logs to Splunk when a HEC endpoint is configured
	if hec := splunk.NewService(); hec != nil {
		logger.AttachWriter(hec)
	}

	svcs, err := services.InitializeServices()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize services")
	}

	port := config.GetPort()
	log.Info().Str("port", port).Msg("Server starting")
	if err := http.ListenAndServe(":"+port, buildHandler(svcs)); err != nil {
		log.Fatal().Err(err).Msg("ListenAndServe error")
	}
}

func buildHandler(svcs *services.Services) http.Handler {
	router := mux.NewRouter()
	handlers.RegisterRoutes(router, svcs)

	// Open CORS so the chat UI can call the API from anywhere
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	// Request id and metrics wrap the whole router so 404s are
	// tagged and counted as well
	return middleware.RequestID(middleware.Metrics(c.Handler(router)))
}
