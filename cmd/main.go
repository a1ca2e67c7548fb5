package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/travel_safety/internal/config"
	v1 "github.com/shenikar/travel_safety/internal/handler/http/v1"
	"github.com/shenikar/travel_safety/internal/news"
	"github.com/shenikar/travel_safety/internal/notify"
	"github.com/shenikar/travel_safety/internal/repository"
	"github.com/shenikar/travel_safety/internal/scheduler"
	"github.com/shenikar/travel_safety/internal/service"
	"github.com/shenikar/travel_safety/internal/webhook"
	"github.com/shenikar/travel_safety/pkg/logger"
	"github.com/shenikar/travel_safety/pkg/postgres"
	redisclient "github.com/shenikar/travel_safety/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/travel_safety/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	newsHTTPTimeout = 30 * time.Second
	smsHTTPTimeout  = 15 * time.Second
	ingestLockTTL   = 10 * time.Minute
	jobTimeout      = 5 * time.Minute
	shutdownTimeout = 10 * time.Second
)

// @title Travel Safety API
// @version 1.0
// @description Travel safety backend: incidents, safety zones, SOS alerts and news correlation.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// newDispatcher выбирает транспорты по конфигу. Без настроек каналы только пишут в лог.
func newDispatcher(cfg *config.Config, reg prometheus.Registerer, log *logrus.Logger) *notify.Dispatcher {
	var email notify.EmailSender = notify.NewLogEmailSender(log)
	if cfg.EmailConfigured() {
		email = notify.NewSMTPSender(notify.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		})
	} else {
		log.Warn("SMTP is not configured, SOS emails will only be logged")
	}

	var sms notify.SMSSender = notify.NewLogSMSSender(log)
	if cfg.SMSConfigured() {
		sms = notify.NewHTTPSMSSender(cfg.SMSAPIURL, cfg.SMSAPIKey, cfg.SMSSenderID, &http.Client{Timeout: smsHTTPTimeout})
	} else {
		log.Warn("SMS provider is not configured, SOS text messages will only be logged")
	}

	var hook notify.AlertPublisher
	if cfg.WebhookURL != "" {
		hook = webhook.NewHTTPPublisher(cfg.WebhookURL, cfg.WebhookSecret, cfg.WebhookTimeout)
	}

	return notify.NewDispatcher(email, sms, hook, cfg.NotifyChannelTimeout, notify.NewMetrics(reg), log)
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	reg := prometheus.DefaultRegisterer

	// Репозитории
	incidentRepo := repository.NewIncidentRepository(dbpool, redisClient, cfg.IncidentCacheTTL)
	zoneRepo := repository.NewSafetyZoneRepository(dbpool)
	articleRepo := repository.NewArticleRepository(dbpool)
	sosRepo := repository.NewSosEventRepository(dbpool)
	contactRepo := repository.NewEmergencyContactRepository(dbpool)
	userRepo := repository.NewUserRepository(dbpool)

	newsClient := news.NewClient(cfg.NewsAPIURL, cfg.NewsAPIKey, cfg.NewsQuery, cfg.NewsPageSize, &http.Client{Timeout: newsHTTPTimeout}, log)
	ingestLock := repository.NewIngestLock(redisClient, ingestLockTTL)

	// Сервисы
	services := v1.Services{
		Incidents: service.NewIncidentService(incidentRepo, userRepo, articleRepo, log),
		Zones:     service.NewSafetyZoneService(zoneRepo, incidentRepo, userRepo, log),
		Sos:       service.NewSosService(sosRepo, userRepo, contactRepo, newDispatcher(cfg, reg, log), log),
		Contacts:  service.NewEmergencyContactService(contactRepo, userRepo, log),
		Articles:  service.NewArticleService(articleRepo, incidentRepo, newsClient, ingestLock, log),
	}

	// Фоновые задачи
	jobs := scheduler.New(log, reg, jobTimeout)
	if cfg.NewsAPIKey != "" {
		if err := jobs.Add(scheduler.JobNewsIngestion, scheduler.Every(cfg.NewsFetchInterval), scheduler.NewsIngestionJob(services.Articles)); err != nil {
			log.Fatalf("Failed to schedule news ingestion: %v", err)
		}
	} else {
		log.Warn("NEWS_API_KEY is not set, scheduled news ingestion is disabled")
	}
	if cfg.ZoneRecountSchedule != "" {
		if err := jobs.Add(scheduler.JobZoneRecount, cfg.ZoneRecountSchedule, scheduler.ZoneRecountJob(services.Zones)); err != nil {
			log.Fatalf("Failed to schedule zone recount: %v", err)
		}
	}
	jobs.Start()

	// Инициализация хэндлеров
	handler := v1.NewHandler(services, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}
	if err := jobs.Stop(shutdownCtx); err != nil {
		log.WithError(err).Warn("Background jobs did not finish in time")
	}

	log.Info("Server gracefully stopped")
}
