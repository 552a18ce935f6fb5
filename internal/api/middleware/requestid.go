package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// RequestID tags every request with an id, echoes it in the
// X-Request-ID response header and scopes the request logger to it.
// Incoming ids are kept so proxies can trace calls end to end.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}

		w.Header().Set("X-Request-ID", id)

		requestLogger := log.With().Str("request_id", id).Logger()
		next.ServeHTTP(w, r.WithContext(requestLogger.WithContext(r.Context())))
	})
}
