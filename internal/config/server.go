package config

// GetPort returns the listen port for the HTTP server
func GetPort() string {
	return GetEnvOrDefault("PORT", "8000")
}

// GetChatUIPath returns an explicit chat UI file location, if configured.
// When empty, the handler probes its default disk paths before falling
// back to the embedded asset.
func GetChatUIPath() string {
	return GetEnvOrDefault("CHAT_UI_PATH", "")
}
