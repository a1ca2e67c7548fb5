package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr        string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass        string        `env:"REDIS_PASSWORD"`
	RedisDB          int           `env:"REDIS_DB" envDefault:"0"`
	IncidentCacheTTL time.Duration `env:"INCIDENT_CACHE_TTL" envDefault:"5m"`

	// Webhook Config
	WebhookURL     string        `env:"WEBHOOK_URL"`
	WebhookSecret  string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`

	// Email (SMTP) Config
	MailEnabled  bool   `env:"MAIL_ENABLED" envDefault:"false"`
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SMTPFrom     string `env:"SMTP_FROM"`

	// SMS Config
	SMSAPIURL   string `env:"SMS_API_URL" envDefault:"https://www.fast2sms.com/dev/bulk"`
	SMSAPIKey   string `env:"SMS_API_KEY"`
	SMSSenderID string `env:"SMS_SENDER_ID" envDefault:"TXTIND"`

	// Таймаут на один канал уведомлений (email, sms, webhook)
	NotifyChannelTimeout time.Duration `env:"NOTIFY_CHANNEL_TIMEOUT" envDefault:"10s"`

	// News ingestion Config
	NewsAPIURL          string        `env:"NEWS_API_URL" envDefault:"https://newsapi.org/v2/everything"`
	NewsAPIKey          string        `env:"NEWS_API_KEY"`
	NewsQuery           string        `env:"NEWS_QUERY"`
	NewsPageSize        int           `env:"NEWS_PAGE_SIZE" envDefault:"50"`
	NewsFetchInterval   time.Duration `env:"NEWS_FETCH_INTERVAL_MS" envDefault:"900000"`
	ZoneRecountSchedule string        `env:"ZONE_RECOUNT_SCHEDULE"`

	// Geo Config
	DefaultNearbyRadiusMeters float64 `env:"DEFAULT_NEARBY_RADIUS_METERS" envDefault:"5000"`

	// Rate limit для SOS эндпоинтов
	RateLimitRPS   int `env:"RATE_LIMIT_RPS" envDefault:"1"`
	RateLimitBurst int `env:"RATE_LIMIT_BURST" envDefault:"5"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

const defaultNewsQuery = `(accident OR theft OR assault OR "medical emergency" OR "travel safety")`

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:               os.Getenv("DATABASE_URL"),
		HTTPPort:                  getEnv("HTTP_PORT", "8080"),
		LogLevel:                  getEnv("LOG_LEVEL", "info"),
		RedisAddr:                 getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:                 os.Getenv("REDIS_PASSWORD"),
		RedisDB:                   getEnvAsInt("REDIS_DB", 0),
		IncidentCacheTTL:          getEnvAsDuration("INCIDENT_CACHE_TTL", 5*time.Minute),
		WebhookURL:                os.Getenv("WEBHOOK_URL"),
		WebhookSecret:             os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:            getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		MailEnabled:               getEnvAsBool("MAIL_ENABLED", false),
		SMTPHost:                  os.Getenv("SMTP_HOST"),
		SMTPPort:                  getEnvAsInt("SMTP_PORT", 587),
		SMTPUsername:              os.Getenv("SMTP_USERNAME"),
		SMTPPassword:              os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:                  os.Getenv("SMTP_FROM"),
		SMSAPIURL:                 getEnv("SMS_API_URL", "https://www.fast2sms.com/dev/bulk"),
		SMSAPIKey:                 os.Getenv("SMS_API_KEY"),
		SMSSenderID:               getEnv("SMS_SENDER_ID", "TXTIND"),
		NotifyChannelTimeout:      getEnvAsDuration("NOTIFY_CHANNEL_TIMEOUT", 10*time.Second),
		NewsAPIURL:                getEnv("NEWS_API_URL", "https://newsapi.org/v2/everything"),
		NewsAPIKey:                os.Getenv("NEWS_API_KEY"),
		NewsQuery:                 getEnv("NEWS_QUERY", defaultNewsQuery),
		NewsPageSize:              getEnvAsInt("NEWS_PAGE_SIZE", 50),
		NewsFetchInterval:         time.Duration(getEnvAsInt("NEWS_FETCH_INTERVAL_MS", 900000)) * time.Millisecond,
		ZoneRecountSchedule:       os.Getenv("ZONE_RECOUNT_SCHEDULE"),
		DefaultNearbyRadiusMeters: getEnvAsFloat("DEFAULT_NEARBY_RADIUS_METERS", 5000),
		RateLimitRPS:              getEnvAsInt("RATE_LIMIT_RPS", 1),
		RateLimitBurst:            getEnvAsInt("RATE_LIMIT_BURST", 5),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.NewsFetchInterval <= 0 {
		return nil, fmt.Errorf("NEWS_FETCH_INTERVAL_MS must be positive")
	}

	return cfg, nil
}

// EmailConfigured сообщает, можно ли отправлять письма через SMTP
func (c *Config) EmailConfigured() bool {
	return c.MailEnabled && c.SMTPHost != "" && c.SMTPFrom != ""
}

// SMSConfigured сообщает, задан ли ключ SMS-провайдера
func (c *Config) SMSConfigured() bool {
	return c.SMSAPIKey != "" && c.SMSAPIURL != ""
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
