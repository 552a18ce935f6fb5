package bedrock

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/rs/zerolog/log"

	"github.com/osuit/ai-agent/internal/config"
)

const modelID = "anthropic.claude-v2"

type invokeAPI interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

type Service struct {
	mu     sync.RWMutex
	client invokeAPI
}

func NewService() *Service {
	region := config.GetAWSRegion()

	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		log.Warn().Err(err).Msg("AWS config not loaded, Bedrock service will not be available")
		return nil
	}

	log.Info().Str("region", region).Msg("Bedrock service initialized")
	return &Service{
		mu:     sync.RWMutex{},
		client: bedrockruntime.NewFromConfig(cfg),
	}
}

// Invoke sends the message to the Claude v2 model and returns the raw
// response body. The prompt is interpolated directly, so quotes in the
// message produce an invalid body.
func (s *Service) Invoke(ctx context.Context, message string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out, err := s.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId: aws.String(modelID),
		Body:    []byte(fmt.Sprintf(`{"prompt": "%s"}`, message)),
	})
	if err != nil {
		return "", fmt.Errorf("invoke model failed: %w", err)
	}

	return string(out.Body), nil
}
