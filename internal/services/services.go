package services

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/osuit/ai-agent/internal/config"
	"github.com/osuit/ai-agent/internal/infrastructure/bedrock"
	"github.com/osuit/ai-agent/internal/infrastructure/ollama"
	"github.com/osuit/ai-agent/internal/infrastructure/openai"
	"github.com/osuit/ai-agent/internal/infrastructure/osuweb"
	"github.com/osuit/ai-agent/internal/services/chat"
	"github.com/osuit/ai-agent/internal/services/classifier"
	"github.com/osuit/ai-agent/internal/services/dispatcher"
	"github.com/osuit/ai-agent/internal/services/majors"
	"github.com/osuit/ai-agent/internal/services/prompt"
)

var (
	// Mutex for thread-safe initialization
	servicesMu sync.RWMutex
)

type Services struct {
	ollamaService     *ollama.Service
	openAIService     *openai.Service
	bedrockService    *bedrock.Service
	osuWebService     *osuweb.Service
	classifierService *classifier.Service
	promptService     *prompt.Service
	dispatchService   *dispatcher.Service
	chatService       *chat.Service
}

// InitializeServices initializes all required services
func InitializeServices() (*Services, error) {
	servicesMu.Lock()
	defer servicesMu.Unlock()

	provider := config.GetLLMProvider()
	log.Info().Str("provider", provider).Msg("Initializing core services")

	// Initialize provider clients (optional, depending on configuration)
	ollamaService := ollama.NewService()
	openAIService := openai.NewService()
	bedrockService := bedrock.NewService()
	log.Info().Msg("Initializing infrastructure services")

	// Initialize the majors pipeline with its live scraper
	osuWebService := osuweb.NewService()
	majorsSource := majors.NewFallback(majors.NewLive(osuWebService), majors.NewStatic())

	classifierService := classifier.NewService()
	promptService := prompt.NewService(majorsSource)

	// Interface fields stay nil when a provider client is not
	// configured, so the dispatcher can tell.
	var openAIClient dispatcher.OpenAIClient
	if openAIService != nil {
		openAIClient = openAIService
	}
	var bedrockClient dispatcher.BedrockClient
	if bedrockService != nil {
		bedrockClient = bedrockService
	}
	dispatchService := dispatcher.NewService(provider, ollamaService, openAIClient, bedrockClient)

	// Initialize chat service (required)
	chatService, err := chat.NewService(classifierService, promptService, dispatchService)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize chat service - required for message processing")
		return nil, fmt.Errorf("failed to initialize chat service: %w", err)
	}
	log.Info().Msg("Initializing chat service")

	log.Info().Msg("All services initialized successfully")

	return &Services{
		ollamaService:     ollamaService,
		openAIService:     openAIService,
		bedrockService:    bedrockService,
		osuWebService:     osuWebService,
		classifierService: classifierService,
		promptService:     promptService,
		dispatchService:   dispatchService,
		chatService:       chatService,
	}, nil
}

// GetChatService returns the chat service
func (s *Services) GetChatService() *chat.Service {
	return s.chatService
}

// GetOSUWebService returns the OSU web scraper service
func (s *Services) GetOSUWebService() *osuweb.Service {
	return s.osuWebService
}

// GetDispatchService returns the provider dispatch service
func (s *Services) GetDispatchService() *dispatcher.Service {
	return s.dispatchService
}
