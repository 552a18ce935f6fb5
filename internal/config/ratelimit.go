package config

import (
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type RateLimitConfig struct {
	Enabled bool
	MaxHits int
	Window  time.Duration
}

// GetRateLimitConfig returns the per-client limit applied to the chat
// endpoints. Disabled by default so out-of-the-box behavior matches a
// deployment with no limiter at all.
func GetRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Enabled: GetEnvOrDefault("RATE_LIMIT_ENABLED", "false") == "true",
		MaxHits: parseEnvInt("RATE_LIMIT_REQUESTS", 60),
		Window:  time.Duration(parseEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
	}
}

func parseEnvInt(key string, defaultValue int) int {
	val := GetEnvOrDefault(key, "")
	if val == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(val)
	if err != nil {
		log.Warn().Str("key", key).Int("default", defaultValue).Msg("Invalid integer value, using default")
		return defaultValue
	}

	return parsed
}
