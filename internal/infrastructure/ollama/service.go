package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/osuit/ai-agent/internal/config"
)

type Service struct {
	mu      sync.RWMutex
	client  *http.Client
	baseURL string
}

type GenerateRequest struct {
	Model       string  `json:"model"`
	Prompt      string  `json:"prompt"`
	Stream      bool    `json:"stream"`
	Temperature float64 `json:"temperature"`
}

type GenerateResponse struct {
	Response string `json:"response"`
	Error    string `json:"error"`
}

func NewService() *Service {
	return &Service{
		mu:      sync.RWMutex{},
		client:  &http.Client{},
		baseURL: config.GetOllamaURL(),
	}
}

// BaseURL returns the configured Ollama endpoint.
func (s *Service) BaseURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.baseURL
}

// Generate runs a completion against Ollama's generate API. The
// timeout bounds the whole call, model loading included.
func (s *Service) Generate(ctx context.Context, model, prompt string, timeout time.Duration) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// Construct the request body
	req := GenerateRequest{
		Model:       model,
		Prompt:      prompt,
		Stream:      false,
		Temperature: 0.7,
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/api/generate", s.baseURL)

	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	// Make the request
	resp, err := s.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	// Check status code
	if resp.StatusCode != http.StatusOK {
		body, readErr := io.ReadAll(resp.Body)
		if readErr == nil {
			log.Error().Int("status", resp.StatusCode).Str("body", string(body)).Msg("Ollama error response")
		}
		return "", fmt.Errorf("ollama returned status %d", resp.StatusCode)
	}

	// Parse the response
	var genResp GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if genResp.Error != "" {
		return "", fmt.Errorf("ollama returned error: %s", genResp.Error)
	}

	return strings.TrimSpace(genResp.Response), nil
}
