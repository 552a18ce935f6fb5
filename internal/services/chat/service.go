package chat

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/osuit/ai-agent/internal/services/classifier"
	"github.com/osuit/ai-agent/internal/services/dispatcher"
)

// Classifier routes a message to a question category.
type Classifier interface {
	Classify(message string) classifier.Category
}

// ContextBuilder produces the system prompt for a category.
type ContextBuilder interface {
	Build(ctx context.Context, category classifier.Category) string
}

// Dispatcher runs a completion against the configured provider.
type Dispatcher interface {
	Dispatch(ctx context.Context, req dispatcher.Request) (string, error)
}

type Service struct {
	classifier Classifier
	prompts    ContextBuilder
	dispatcher Dispatcher
}

func NewService(classify Classifier, prompts ContextBuilder, dispatch Dispatcher) (*Service, error) {
	if classify == nil || prompts == nil || dispatch == nil {
		return nil, fmt.Errorf("chat service dependencies not initialized")
	}

	return &Service{
		classifier: classify,
		prompts:    prompts,
		dispatcher: dispatch,
	}, nil
}

// Process classifies the message, builds the matching system prompt
// and dispatches the completion. The detected category is returned
// even when the provider fails, so callers can still label the
// request.
func (s *Service) Process(ctx context.Context, message string, extra map[string]interface{}) (string, classifier.Category, error) {
	category := s.classifier.Classify(message)

	log.Info().
		Str("question_type", string(category)).
		Str("message", truncate(message, 50)).
		Msg("Question type detected")

	response, err := s.dispatcher.Dispatch(ctx, dispatcher.Request{
		Message:      message,
		Category:     category,
		SystemPrompt: s.prompts.Build(ctx, category),
		Extra:        extra,
	})
	if err != nil {
		return "", category, err
	}

	return response, category, nil
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
