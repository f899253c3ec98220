package bootstrap

import (
	"log"
	"time"

	"legal-assist-be/internal/config"
	"legal-assist-be/internal/controller"
	"legal-assist-be/internal/pkg/logger"
	"legal-assist-be/internal/pkg/mailer"
	"legal-assist-be/internal/repository/memory"
	redisstore "legal-assist-be/internal/repository/redis"
	"legal-assist-be/internal/repository/unitofwork"
	"legal-assist-be/internal/service"
	"legal-assist-be/pkg/agent/brief"
	"legal-assist-be/pkg/agent/chat"
	"legal-assist-be/pkg/agent/quickreply"
	"legal-assist-be/pkg/agent/router"
	"legal-assist-be/pkg/agent/safety"
	"legal-assist-be/pkg/embedding"
	"legal-assist-be/pkg/llm/factory"
	pkgNats "legal-assist-be/pkg/nats"
	"legal-assist-be/pkg/store"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

const eventTopic = "agent.events"

type Container struct {
	// Controllers
	ChatController      controller.IChatController
	DirectoryController controller.IDirectoryController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		cfg.SMTP.AlertEmail,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Initialize Embedding Provider based on Config
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "openai" {
		embeddingProvider = embedding.NewOpenAIProvider(cfg.Ai.LLMBaseURL, cfg.Ai.OllamaModel, cfg.Ai.LLMAPIKey)
		log.Printf("[INFO] Using Embedding Provider: OPENAI-compatible (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	}

	// Initialize LLM Provider based on Config
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.LLMBaseURL,
		cfg.Ai.LLMAPIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// Session checkpoint store
	var checkpoints store.CheckpointStore
	if cfg.Agent.CheckpointBackend == "redis" {
		redisStore, err := redisstore.NewCheckpointStore(cfg.App.RedisURL)
		if err != nil {
			log.Fatalf("[FATAL] Failed to initialize Redis checkpoint store: %v", err)
		}
		checkpoints = redisStore
		log.Printf("[INFO] Using Checkpoint Backend: REDIS")
	} else {
		checkpoints = memory.NewCheckpointStore()
		log.Printf("[INFO] Using Checkpoint Backend: MEMORY")
	}

	// 3. Services
	publisherService := service.NewEventPublisherService(eventTopic, pubSub)
	eventLogger := logger.NewIsolatedLogger("logs/events.log")
	consumerService := service.NewConsumerService(
		pubSub,
		eventTopic,
		natsPub,
		emailService,
		eventLogger,
	)

	knowledgeService := service.NewKnowledgeService(uowFactory, embeddingProvider)
	directoryService := service.NewDirectoryService(uowFactory)

	// 3.5 Conversation pipeline
	pipelineLogger := log.Default()

	gate := safety.NewGate(
		safety.NewLLMClassifier(llmProvider, pipelineLogger),
		directoryService,
		pipelineLogger,
	)
	briefFlow := brief.NewFlow(
		brief.NewLLMFactExtractor(llmProvider, pipelineLogger),
		brief.NewLLMQuestionGenerator(llmProvider, pipelineLogger),
		brief.NewLLMGenerator(llmProvider, pipelineLogger),
		cfg.Agent.BriefMaxQuestionRounds,
		pipelineLogger,
	)
	responder := chat.NewLLMResponder(llmProvider, knowledgeService, pipelineLogger)
	advisor := quickreply.NewLLMAdvisor(llmProvider, pipelineLogger)

	turnRouter := router.NewRouter(gate, responder, briefFlow, advisor, pipelineLogger)

	chatService := service.NewChatService(
		uowFactory,
		checkpoints,
		turnRouter,
		publisherService,
		time.Duration(cfg.Agent.StageTimeoutSeconds)*time.Second,
	)

	sysLogger.Info("bootstrap", "Container wired", map[string]interface{}{
		"llm_provider":       cfg.Ai.LLMProvider,
		"checkpoint_backend": cfg.Agent.CheckpointBackend,
	})

	// 4. Controllers
	return &Container{
		ChatController:      controller.NewChatController(chatService),
		DirectoryController: controller.NewDirectoryController(directoryService),

		ConsumerService: consumerService,
	}
}
