package config

// GetOpenAIAPIKey returns the OpenAI API key, or an empty string when the
// provider is not configured
func GetOpenAIAPIKey() string {
	return GetEnvOrDefault("OPENAI_API_KEY", "")
}
