package config

import (
	"testing"
)

func TestGetLLMProvider(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		want     string
	}{
		{
			name:     "defaults to ollama",
			envValue: "",
			want:     "ollama",
		},
		{
			name:     "returns configured provider",
			envValue: "openai",
			want:     "openai",
		},
		{
			name:     "returns mock when configured",
			envValue: "mock",
			want:     "mock",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				t.Setenv("LLM_PROVIDER", tt.envValue)
			}

			got := GetLLMProvider()
			if got != tt.want {
				t.Errorf("GetLLMProvider() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetOllamaURL(t *testing.T) {
	t.Run("defaults to localhost", func(t *testing.T) {
		got := GetOllamaURL()
		if got != "http://localhost:11434" {
			t.Errorf("GetOllamaURL() = %v, want http://localhost:11434", got)
		}
	})

	t.Run("returns configured url", func(t *testing.T) {
		t.Setenv("OLLAMA_URL", "http://ollama.internal:11434")

		got := GetOllamaURL()
		if got != "http://ollama.internal:11434" {
			t.Errorf("GetOllamaURL() = %v, want http://ollama.internal:11434", got)
		}
	})
}
