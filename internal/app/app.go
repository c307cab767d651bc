package app

import (
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/zachweston123/artwalls-payments/config"
	"github.com/zachweston123/artwalls-payments/internal/cache"
	"github.com/zachweston123/artwalls-payments/internal/gateway"
	handlers "github.com/zachweston123/artwalls-payments/internal/handlers"
	"github.com/zachweston123/artwalls-payments/internal/models"
	"github.com/zachweston123/artwalls-payments/internal/publisher"
	"github.com/zachweston123/artwalls-payments/internal/ratelimit"
	"github.com/zachweston123/artwalls-payments/internal/repository/posgrest"
	"github.com/zachweston123/artwalls-payments/internal/service"
	"github.com/zachweston123/artwalls-payments/internal/webhook"
)

type App struct {
	config *config.Config
	Router *gin.Engine
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Order{}, &models.ProcessedEvent{}); err != nil {
		log.Fatalf("failed to auto migrate: %v", err)
	}

	var kvStore cache.Store
	if cfg.Redis.RedisAddr != "" {
		redisStore, err := cache.NewRedisStore(cfg.Redis.RedisAddr)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		kvStore = redisStore
	} else {
		log.Println("no REDIS_ADDR configured, using in-process counters")
		kvStore = cache.NewMemoryStore(cfg.RateLimit.MemoryMaxEntries)
	}

	orderRepo := posgrest.New[models.Order](db)
	eventRepo := posgrest.New[models.ProcessedEvent](db)

	publishTopics := strings.Split(cfg.Kafka.PublishTopics, ",")
	auditPublisher := publisher.NewKafkaPublisher(cfg.Kafka.Brokers, publishTopics, cfg.GetRetryConfig())

	transfers := gateway.NewClient(cfg.Gateway.BaseURL, cfg.Gateway.APIKey)

	orderService := service.NewOrderService(orderRepo, transfers, auditPublisher, service.FeeRates{
		PlatformFeeBps: cfg.Fees.PlatformFeeBps,
		VenueFeeBps:    cfg.Fees.VenueFeeBps,
		BuyerFeeBps:    cfg.Fees.BuyerFeeBps,
	})

	// Fails closed: no signing secret, no webhook endpoint, no process.
	verifier, err := webhook.NewVerifier(cfg.Gateway.WebhookSecret, cfg.Gateway.WebhookMaxAge)
	if err != nil {
		log.Fatalf("webhook verifier: %v", err)
	}

	ledger := service.NewEventLedgerStore(eventRepo, kvStore)
	dispatcher := webhook.NewDispatcher(ledger, auditPublisher)
	dispatcher.On(models.EventCheckoutCompleted, orderService.HandleCheckoutCompleted)
	dispatcher.On(models.EventTransferUpdated, orderService.HandleTransferUpdated)

	webhookHandler := handlers.NewWebhookHandler(verifier, dispatcher)
	orderHandler := handlers.NewOrderHandler(orderService)

	limiter := ratelimit.New(kvStore)
	table := a.rateLimitTable()
	if err := table.Validate(registeredRoutes()); err != nil {
		log.Fatalf("rate limit table: %v", err)
	}

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(webhookHandler, orderHandler, limiter, table)
}

func (a *App) Run() {
	err := a.Router.Run(fmt.Sprintf(":%s", a.config.APP.PORT))
	if err != nil {
		panic(err)
	}
}
