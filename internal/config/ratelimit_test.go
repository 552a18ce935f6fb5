package config

import (
	"testing"
	"time"
)

func TestGetRateLimitConfig(t *testing.T) {
	t.Run("disabled by default", func(t *testing.T) {
		cfg := GetRateLimitConfig()
		if cfg.Enabled {
			t.Error("GetRateLimitConfig() Enabled = true, want false")
		}
		if cfg.MaxHits != 60 {
			t.Errorf("GetRateLimitConfig() MaxHits = %v, want 60", cfg.MaxHits)
		}
		if cfg.Window != 60*time.Second {
			t.Errorf("GetRateLimitConfig() Window = %v, want 60s", cfg.Window)
		}
	})

	t.Run("reads configured values", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_ENABLED", "true")
		t.Setenv("RATE_LIMIT_REQUESTS", "10")
		t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "30")

		cfg := GetRateLimitConfig()
		if !cfg.Enabled {
			t.Error("GetRateLimitConfig() Enabled = false, want true")
		}
		if cfg.MaxHits != 10 {
			t.Errorf("GetRateLimitConfig() MaxHits = %v, want 10", cfg.MaxHits)
		}
		if cfg.Window != 30*time.Second {
			t.Errorf("GetRateLimitConfig() Window = %v, want 30s", cfg.Window)
		}
	})
}

func TestParseEnvInt(t *testing.T) {
	tests := []struct {
		name         string
		envValue     string
		defaultValue int
		want         int
	}{
		{
			name:         "returns default when unset",
			envValue:     "",
			defaultValue: 42,
			want:         42,
		},
		{
			name:         "parses valid integer",
			envValue:     "7",
			defaultValue: 42,
			want:         7,
		},
		{
			name:         "falls back on invalid integer",
			envValue:     "not-a-number",
			defaultValue: 42,
			want:         42,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				t.Setenv("TEST_PARSE_INT", tt.envValue)
			}

			got := parseEnvInt("TEST_PARSE_INT", tt.defaultValue)
			if got != tt.want {
				t.Errorf("parseEnvInt() = %v, want %v", got, tt.want)
			}
		})
	}
}
