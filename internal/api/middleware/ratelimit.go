package middleware

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/osuit/ai-agent/internal/config"
	"github.com/osuit/ai-agent/pkg/httpext"
	"github.com/osuit/ai-agent/pkg/ratelimit"
)

func RateLimit() func(http.Handler) http.Handler {
	cfg := config.GetRateLimitConfig()
	limiter := ratelimit.NewLimiter(cfg.Window, cfg.MaxHits)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.Enabled {
				next.ServeHTTP(w, r)
				return
			}

			// Use X-Forwarded-For if behind proxy, otherwise remote address
			ip := r.Header.Get("X-Forwarded-For")
			if ip == "" {
				ip = r.RemoteAddr
			}

			if !limiter.Allow(ip) {
				log.Warn().Str("ip", ip).Str("path", r.URL.Path).Msg("Rate limit exceeded")
				httpext.JsonError(w, "Rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
