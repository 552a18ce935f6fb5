package splunk

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/osuit/ai-agent/internal/config"
)

const hostName = "ai-agent"

// Service posts log lines to a Splunk HTTP Event Collector. It
// implements io.Writer so it can be attached to the logger as a tee.
type Service struct {
	url        string
	token      string
	index      string
	source     string
	sourcetype string
	client     *http.Client
}

type hecEvent struct {
	Message string `json:"message"`
	Level   string `json:"level"`
	Logger  string `json:"logger"`
}

type hecPayload struct {
	Time       float64  `json:"time"`
	Host       string   `json:"host"`
	Source     string   `json:"source"`
	Sourcetype string   `json:"sourcetype"`
	Index      string   `json:"index,omitempty"`
	Event      hecEvent `json:"event"`
}

// NewService creates a new Splunk HEC service, or nil when the HEC
// endpoint is not configured.
func NewService() *Service {
	cfg := config.GetSplunkConfig()
	if cfg.URL == "" || cfg.Token == "" {
		log.Warn().Msg("SPLUNK_HEC_URL or SPLUNK_HEC_TOKEN not set, log forwarding will not be available")
		return nil
	}

	service := &Service{
		url:        strings.TrimRight(cfg.URL, "/") + "/services/collector/event/1.0",
		token:      cfg.Token,
		index:      cfg.Index,
		source:     cfg.Source,
		sourcetype: cfg.Sourcetype,
		client: &http.Client{
			Timeout: 2 * time.Second,
			Transport: &http.Transport{
				// collector endpoints in this deployment use self-signed certs
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		},
	}

	log.Info().Str("url", service.url).Msg("Splunk HEC log forwarding enabled")
	return service
}

// Write forwards one log line to the collector. Delivery failures are
// reported on stderr rather than through the logger, and never
// propagate back to the caller.
func (s *Service) Write(p []byte) (int, error) {
	var line struct {
		Level   string `json:"level"`
		Message string `json:"message"`
	}

	message := strings.TrimSpace(string(p))
	level := "INFO"
	if err := json.Unmarshal(p, &line); err == nil {
		if line.Message != "" {
			message = line.Message
		}
		if line.Level != "" {
			level = strings.ToUpper(line.Level)
		}
	}

	payload := hecPayload{
		Time:       float64(time.Now().UnixNano()) / float64(time.Second),
		Host:       hostName,
		Source:     s.source,
		Sourcetype: s.sourcetype,
		Index:      s.index,
		Event: hecEvent{
			Message: message,
			Level:   level,
			Logger:  hostName,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return len(p), nil
	}

	req, err := http.NewRequest(http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return len(p), nil
	}
	req.Header.Set("Authorization", "Splunk "+s.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[SplunkHEC] Failed to send log: %v\n", err)
		return len(p), nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		fmt.Fprintf(os.Stderr, "[SplunkHEC] Non-200 response: %d %s\n", resp.StatusCode, string(respBody))
	}

	return len(p), nil
}
