package config

// SplunkConfig carries the HTTP Event Collector settings. Log forwarding is
// enabled only when both URL and Token are present.
type SplunkConfig struct {
	URL        string
	Token      string
	Index      string
	Source     string
	Sourcetype string
}

func GetSplunkConfig() SplunkConfig {
	return SplunkConfig{
		URL:        GetEnvOrDefault("SPLUNK_HEC_URL", ""),
		Token:      GetEnvOrDefault("SPLUNK_HEC_TOKEN", ""),
		Index:      GetEnvOrDefault("SPLUNK_HEC_INDEX", ""),
		Source:     GetEnvOrDefault("SPLUNK_HEC_SOURCE", "ai-agent"),
		Sourcetype: GetEnvOrDefault("SPLUNK_HEC_SOURCETYPE", "_json"),
	}
}
