package bootstrap

import (
	"context"
	"log"

	"persona-assistant-be/internal/config"
	"persona-assistant-be/internal/controller"
	"persona-assistant-be/internal/pkg/logger"
	"persona-assistant-be/internal/repository/contract"
	"persona-assistant-be/internal/repository/memory"
	redisstore "persona-assistant-be/internal/repository/redis"
	"persona-assistant-be/internal/repository/unitofwork"
	"persona-assistant-be/internal/service"
	"persona-assistant-be/pkg/assistant/history"
	"persona-assistant-be/pkg/assistant/response"
	"persona-assistant-be/pkg/assistant/retrieval"
	"persona-assistant-be/pkg/assistant/router"
	"persona-assistant-be/pkg/embedding"
	"persona-assistant-be/pkg/embedding/jina"
	"persona-assistant-be/pkg/llm/factory"

	pktNats "persona-assistant-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AssistantController controller.IAssistantController
	KnowledgeController controller.IKnowledgeController
	AdminController     controller.IAdminController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	llmLogger := service.InitLLMLogger(cfg.Assistant.LLMLogPath)

	// 2. Event Bus (in-process, for knowledge ingestion)
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Providers
	var embeddingProvider embedding.EmbeddingProvider
	switch cfg.Ai.EmbeddingProvider {
	case "ollama":
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	case "jina":
		embeddingProvider = jina.NewJinaProvider(cfg.Keys.Jina)
		log.Printf("[INFO] Using Embedding Provider: JINA AI")
	default:
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.HuggingFace,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	var rdb *redis.Client
	if cfg.Assistant.SessionBackend == "redis" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
	}

	// 5. Session Store
	sessionStore := buildSessionStore(cfg, db, rdb)

	// 6. Assistant core
	vectorGateway := retrieval.NewVectorGateway(
		uowFactory,
		embeddingProvider,
		cfg.Assistant.SimilarityThreshold,
		llmLogger,
	)
	generator := response.NewLLMGenerator(llmProvider, llmLogger)
	roleRouter := router.New(
		sessionStore,
		vectorGateway,
		generator,
		llmLogger,
		router.WithBudget(history.Budget{
			MaxTurns:   cfg.Assistant.HistoryMaxTurns,
			CharBudget: cfg.Assistant.HistoryCharBudget,
		}),
	)

	// 7. Services
	publisherService := service.NewPublisherService(cfg.Assistant.IngestTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Assistant.IngestTopic,
		uowFactory,
		embeddingProvider,
		natsPub,
	)

	assistantService := service.NewAssistantService(roleRouter, sessionStore, natsPub)
	knowledgeService := service.NewKnowledgeService(uowFactory, publisherService, embeddingProvider)
	adminService := service.NewAdminService(uowFactory, sysLogger)

	// 8. Activity trail (NATS -> isolated log)
	if natsSub != nil {
		actLogger := logger.NewIsolatedLogger("logs/activity.log")
		activityService := service.NewActivityService(natsSub, actLogger)
		if err := activityService.Start(); err != nil {
			log.Printf("[WARN] Failed to start activity trail: %v", err)
		}
	}

	return &Container{
		AssistantController: controller.NewAssistantController(assistantService),
		KnowledgeController: controller.NewKnowledgeController(knowledgeService),
		AdminController:     controller.NewAdminController(adminService),

		ConsumerService: consumerService,
	}
}

// buildSessionStore picks the configured backend. Postgres is the durable
// default; redis suits multi-instance deployments; memory is for local runs
// and tests. The gorm backend gets a read-through cache so hot sessions skip
// the database.
func buildSessionStore(cfg *config.Config, db *gorm.DB, rdb *redis.Client) contract.SessionStore {
	switch cfg.Assistant.SessionBackend {
	case "redis":
		if rdb != nil {
			log.Printf("[INFO] Using Session Backend: REDIS")
			return redisstore.NewSessionStore(rdb)
		}
		log.Printf("[WARN] Redis unavailable, falling back to in-memory sessions")
		return memory.NewSessionStore()
	case "memory":
		log.Printf("[INFO] Using Session Backend: MEMORY")
		return memory.NewSessionStore()
	default:
		log.Printf("[INFO] Using Session Backend: POSTGRES (cached)")
		uowFactory := unitofwork.NewRepositoryFactory(db)
		backend := uowFactory.NewUnitOfWork(context.Background()).SessionStore()
		return memory.NewCachedSessionStore(backend)
	}
}
