package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	if os.Getenv("GO_ENV") == "local" {
		_ = godotenv.Load(".env")
	}

	if err := env.Parse(&Config); err != nil {
		logrus.Fatalf("Error initializing: %s", err.Error())
		os.Exit(1)
	}
	return &Config, nil
}

type Config struct {
	APP
	DB
	Redis
	Kafka
	Gateway
	Fees
	RateLimit
}

type APP struct {
	PORT string `env:"APP_PORT" envDefault:"8080"`
}

type DB struct {
	HOST     string `env:"DB_HOST"`
	USER     string `env:"DB_USER"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME"`
	PORT     string `env:"DB_PORT"`
	SSLMODE  string `env:"DB_SSLMODE"`
}

type Redis struct {
	// Empty address means no Redis: rate limit counters and the ledger
	// fast path fall back to the in-process store.
	RedisAddr string `env:"REDIS_ADDR"`
}

type Kafka struct {
	Brokers       string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	PublishTopics string `env:"KAFKA_PUBLISH_TOPICS" envDefault:"payments.audit,payments.dlq"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

type Gateway struct {
	BaseURL string `env:"GATEWAY_BASE_URL" envDefault:"https://api.gateway.test"`
	APIKey  string `env:"GATEWAY_API_KEY"`
	// Comma-separated during secret rotation; the verifier tries each.
	WebhookSecret string        `env:"GATEWAY_WEBHOOK_SECRET"`
	WebhookMaxAge time.Duration `env:"GATEWAY_WEBHOOK_MAX_AGE" envDefault:"5m"`
}

type Fees struct {
	PlatformFeeBps int `env:"PLATFORM_FEE_BPS" envDefault:"1500"`
	VenueFeeBps    int `env:"VENUE_FEE_BPS" envDefault:"1000"`
	BuyerFeeBps    int `env:"BUYER_FEE_BPS" envDefault:"500"`
}

type RateLimit struct {
	WebhookPerMinute  int `env:"RATE_LIMIT_WEBHOOK_PER_MIN" envDefault:"120"`
	CheckoutPerMinute int `env:"RATE_LIMIT_CHECKOUT_PER_MIN" envDefault:"10"`
	ReadPerMinute     int `env:"RATE_LIMIT_READ_PER_MIN" envDefault:"60"`
	MemoryMaxEntries  int `env:"RATE_LIMIT_MEMORY_MAX_ENTRIES" envDefault:"10000"`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}
