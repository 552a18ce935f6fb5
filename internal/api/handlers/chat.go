package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/osuit/ai-agent/internal/metrics"
	"github.com/osuit/ai-agent/internal/services/chat"
	"github.com/osuit/ai-agent/internal/services/dispatcher"
	"github.com/osuit/ai-agent/pkg/httpext"
)

// HandleProcess runs one message through the agent.
func HandleProcess(chatService *chat.Service, w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAgentRequest(w, r)
	if !ok {
		return
	}

	log.Ctx(r.Context()).Info().Str("message", req.Message).Msg("Processing message")

	response, _, err := chatService.Process(r.Context(), req.Message, req.Context)
	if err != nil {
		writeChatError(w, err, "Error processing message")
		return
	}

	log.Ctx(r.Context()).Info().Str("response", response).Msg("Generated response")

	writeJSON(w, http.StatusOK, AgentResponse{
		Response:  response,
		Timestamp: utcTimestamp(),
		Success:   true,
	})
}

// HandleChat is the conversational endpoint backing the chat UI. Same
// pipeline as HandleProcess, plus chat volume and latency metrics.
func HandleChat(chatService *chat.Service, w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAgentRequest(w, r)
	if !ok {
		return
	}

	log.Ctx(r.Context()).Info().Str("message", req.Message).Msg("Chat message")

	start := time.Now()
	response, category, err := chatService.Process(r.Context(), req.Message, req.Context)

	// Chat volume counts failed requests too
	metrics.ChatCount.WithLabelValues(string(category)).Inc()

	if err != nil {
		writeChatError(w, err, "Chat error")
		return
	}

	metrics.ChatLatency.
		WithLabelValues(string(category), dispatcher.ModelFor(category)).
		Observe(time.Since(start).Seconds())

	writeJSON(w, http.StatusOK, AgentResponse{
		Response:  response,
		Timestamp: utcTimestamp(),
		Success:   true,
	})
}

func decodeAgentRequest(w http.ResponseWriter, r *http.Request) (AgentRequest, bool) {
	var req AgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpext.JsonError(w, "Invalid request body", http.StatusBadRequest)
		return AgentRequest{}, false
	}
	if req.Message == "" {
		httpext.JsonError(w, "Message is required", http.StatusBadRequest)
		return AgentRequest{}, false
	}
	return req, true
}

// writeChatError maps provider failures to their status codes.
// Anything unclassified becomes a plain 500.
func writeChatError(w http.ResponseWriter, err error, prefix string) {
	var dispErr *dispatcher.Error
	if errors.As(err, &dispErr) {
		httpext.JsonError(w, dispErr.Detail, dispErr.Status())
		return
	}

	log.Error().Err(err).Msg(prefix)
	httpext.JsonError(w, fmt.Sprintf("%s: %v", prefix, err), http.StatusInternalServerError)
}
