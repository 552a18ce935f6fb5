package httpext

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// ErrorResponse represents a standardised JSON error response
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// JsonError writes a JSON error response with the specified status code
func JsonError(w http.ResponseWriter, detail string, code int) {
	response := ErrorResponse{
		Detail: detail,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error().Err(err).Msg("Failed to encode error response")
		// Fallback to writing JSON body as plain text if JSON encoding fails
		http.Error(w, "{\"detail\":\"Internal Server Error\"}", http.StatusInternalServerError)
		return
	}
}
