package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/osuit/ai-agent/internal/metrics"
	"github.com/osuit/ai-agent/internal/services/classifier"
)

const defaultSystemPrompt = "You are a helpful AI assistant."

// OllamaClient runs completions against an Ollama instance.
type OllamaClient interface {
	Generate(ctx context.Context, model, prompt string, timeout time.Duration) (string, error)
	BaseURL() string
}

// OpenAIClient runs completions against the OpenAI API.
type OpenAIClient interface {
	Complete(ctx context.Context, message string) (string, error)
}

// BedrockClient runs completions against AWS Bedrock.
type BedrockClient interface {
	Invoke(ctx context.Context, message string) (string, error)
}

// Request is one completion to run against the configured provider.
type Request struct {
	Message      string
	Category     classifier.Category
	SystemPrompt string
	Extra        map[string]interface{}
}

type Service struct {
	provider string
	ollama   OllamaClient
	openai   OpenAIClient
	bedrock  BedrockClient
}

func NewService(provider string, ollama OllamaClient, openai OpenAIClient, bedrock BedrockClient) *Service {
	return &Service{
		provider: provider,
		ollama:   ollama,
		openai:   openai,
		bedrock:  bedrock,
	}
}

// Provider returns the configured provider name.
func (s *Service) Provider() string {
	return s.provider
}

// ModelFor returns the Ollama model serving a category.
func ModelFor(category classifier.Category) string {
	if category == classifier.CategoryTechnical {
		return "deepseek-coder"
	}
	return "phi" // phi for general and OSU questions
}

// TimeoutFor returns the Ollama call budget for a category. Code
// models need longer than phi.
func TimeoutFor(category classifier.Category) time.Duration {
	if category == classifier.CategoryTechnical {
		return 90 * time.Second
	}
	return 70 * time.Second
}

// Dispatch runs the request against the configured provider. Unknown
// providers get a mock response for testing.
func (s *Service) Dispatch(ctx context.Context, req Request) (string, error) {
	switch s.provider {
	case "ollama":
		return s.dispatchOllama(ctx, req)
	case "openai":
		return s.dispatchOpenAI(ctx, req)
	case "bedrock":
		return s.dispatchBedrock(ctx, req)
	default:
		return mockResponse(req), nil
	}
}

func (s *Service) dispatchOllama(ctx context.Context, req Request) (string, error) {
	if s.ollama == nil {
		return "", &Error{Kind: KindBackend, Detail: "Ollama error: service not configured"}
	}

	model := ModelFor(req.Category)
	timeout := TimeoutFor(req.Category)

	log.Info().
		Str("question_type", string(req.Category)).
		Str("url", s.ollama.BaseURL()).
		Str("model", model).
		Msg("Calling Ollama")

	systemPrompt := req.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = defaultSystemPrompt
	}
	promptText := fmt.Sprintf("%s\n\nUser: %s\n\nAssistant:", systemPrompt, req.Message)

	response, err := s.ollama.Generate(ctx, model, promptText, timeout)
	if err != nil {
		return "", s.classifyOllamaError(err)
	}

	log.Info().
		Str("question_type", string(req.Category)).
		Int("chars", len(response)).
		Str("preview", truncate(response, 80)).
		Msg("Ollama response")

	return response, nil
}

// classifyOllamaError turns a transport failure into an Error the API
// layer can map to a status code. Timeouts are checked before
// connection failures since both arrive as url.Error.
func (s *Service) classifyOllamaError(err error) *Error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		metrics.OllamaErrors.WithLabelValues("timeout").Inc()
		detail := "Model response timed out. Try a simpler question."
		log.Error().Err(err).Msg(detail)
		return &Error{Kind: KindTimeout, Detail: detail, Err: err}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		metrics.OllamaErrors.WithLabelValues("connection").Inc()
		detail := fmt.Sprintf("Cannot connect to Ollama at %s. Is it running?", s.ollama.BaseURL())
		log.Error().Err(err).Msg(detail)
		return &Error{Kind: KindUnavailable, Detail: detail, Err: err}
	}

	metrics.OllamaErrors.WithLabelValues("error").Inc()
	detail := fmt.Sprintf("Ollama error: %v", err)
	log.Error().Msg(detail)
	return &Error{Kind: KindBackend, Detail: detail, Err: err}
}

func (s *Service) dispatchOpenAI(ctx context.Context, req Request) (string, error) {
	if s.openai == nil {
		return "", fmt.Errorf("openai service not configured")
	}

	response, err := s.openai.Complete(ctx, req.Message)
	if err != nil {
		log.Error().Err(err).Msg("OpenAI error")
		return "", err
	}
	return response, nil
}

func (s *Service) dispatchBedrock(ctx context.Context, req Request) (string, error) {
	if s.bedrock == nil {
		return "", fmt.Errorf("bedrock service not configured")
	}

	response, err := s.bedrock.Invoke(ctx, req.Message)
	if err != nil {
		log.Error().Err(err).Msg("Bedrock error")
		return "", err
	}
	return response, nil
}

func mockResponse(req Request) string {
	merged := make(map[string]interface{}, len(req.Extra)+2)
	for k, v := range req.Extra {
		merged[k] = v
	}
	merged["system_prompt"] = req.SystemPrompt
	merged["question_type"] = string(req.Category)

	return fmt.Sprintf("Mock AI Response: Processing '%s' with context %v", req.Message, merged)
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
