package openai

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"

	"github.com/osuit/ai-agent/internal/config"
)

type Service struct {
	mu     sync.RWMutex
	client *openai.Client
}

func NewService() *Service {
	key := config.GetOpenAIAPIKey()

	if key == "" {
		log.Warn().Msg("OPENAI_API_KEY not set, OpenAI service will not be available")
		return nil
	}

	log.Info().Msg("OpenAI service initialized")
	return &Service{
		mu:     sync.RWMutex{},
		client: openai.NewClient(key),
	}
}

// Complete sends the message as a single-turn chat completion.
func (s *Service) Complete(ctx context.Context, message string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT3Dot5Turbo,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a helpful AI assistant",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: message,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
