package config

// GetLLMProvider returns the configured backend provider. Recognised values
// are ollama, openai and bedrock; anything else selects the mock provider.
func GetLLMProvider() string {
	return GetEnvOrDefault("LLM_PROVIDER", "ollama")
}

// GetOllamaURL returns the base URL of the Ollama runtime
func GetOllamaURL() string {
	return GetEnvOrDefault("OLLAMA_URL", "http://localhost:11434")
}
