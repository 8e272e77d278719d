package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"estate-transfer/config"
	httpHandler "estate-transfer/internal/adapter/http/handler"
	"estate-transfer/internal/adapter/mail"
	"estate-transfer/internal/adapter/storage/memory"
	pgStorage "estate-transfer/internal/adapter/storage/postgres"
	redisStorage "estate-transfer/internal/adapter/storage/redis"
	"estate-transfer/internal/core/ports"
	"estate-transfer/internal/service"
	"estate-transfer/pkg/logger"
	"estate-transfer/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// storage bundles the adapters selected by storage.driver.
type storage struct {
	transfers ports.TransferRepository
	codes     ports.CodeStore
	documents ports.DocumentStore
	rateLimit ports.RateLimitStore  // nil = rate limiting disabled
	audit     ports.AuditRepository // nil = audit logging disabled
	checkers  []ports.HealthChecker
	close     func()
}

func main() {
	configPath := flag.String("config", "", "path to config file (default: ./config.yaml or ./config/config.yaml)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("storage", cfg.Storage.Driver).
		Msg("Starting Estate Transfer service")

	if cfg.OTP.Secret == "" {
		log.Warn().Msg("otp.secret is empty, code digests are unkeyed")
	}

	ctx := context.Background()

	shutdownTracing, err := tracing.Setup(ctx, cfg.Tracing)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize tracing")
	}

	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize storage")
	}
	defer store.close()

	// Notification channel: SMTP when configured, operator log otherwise
	var mailer ports.Mailer
	if cfg.SMTP.Enabled() {
		smtp, err := mail.NewSMTPMailer(cfg.SMTP)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize SMTP mailer")
		}
		mailer = smtp
		log.Info().Str("host", cfg.SMTP.Host).Int("port", cfg.SMTP.Port).Msg("SMTP delivery enabled")
	} else {
		log.Warn().Msg("smtp.host not set, one-time codes will be written to the operator log")
	}
	dispatcher := service.NewNotificationDispatcher(
		mailer,
		cfg.Notify,
		cfg.Retry,
		cfg.OTP.TTL,
		logger.Component(log, "notifier"),
	)

	// Initialize core services
	retrier := service.NewRetrier(cfg.Retry, cfg.Storage.Timeout)
	directory := service.NewDirectoryResolver(store.documents)
	selector, err := service.NewSurveyorSelector(directory, cfg.Surveyor.Strategy)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize surveyor selector")
	}

	transferSvc := service.NewTransferService(
		store.transfers,
		service.NewCodeIssuer(store.codes, cfg.OTP.Secret, cfg.OTP.TTL),
		directory,
		service.NewPropertyRegistry(store.documents),
		selector,
		dispatcher,
		retrier,
		logger.Component(log, "transfers"),
	)

	var auditSvc ports.AuditService
	if store.audit != nil {
		auditSvc = service.NewAuditService(store.audit, logger.Component(log, "audit"))
	}

	var rateLimit ports.RateLimitStore
	if cfg.RateLimit.Enabled {
		rateLimit = store.rateLimit
	}

	// Load OpenAPI spec for Swagger UI
	specBytes, err := os.ReadFile("docs/api/openapi.yaml")
	if err == nil {
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	gin.SetMode(cfg.Server.Mode)
	deps := httpHandler.RouterDeps{
		Transfers:      transferSvc,
		RateLimitStore: rateLimit,
		HealthCheckers: store.checkers,
		AuditSvc:       auditSvc,
		OpenAPISpec:    specBytes,
		Logger:         logger.Component(log, "http"),
	}
	if cfg.Tracing.Enabled {
		deps.Tracer = tracing.Tracer("estate-transfer/http")
	}
	router := httpHandler.SetupRouter(deps)

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	// drain queued codes before the stores go away
	if err := dispatcher.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Notification queue not drained")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Tracing shutdown failed")
	}

	log.Info().Msg("Server exited")
}

func openStorage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*storage, error) {
	switch cfg.Storage.Driver {
	case "memory":
		return openMemory(ctx, cfg, log)
	default:
		return openPostgres(ctx, cfg, log)
	}
}

func openPostgres(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*storage, error) {
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("connecting to PostgreSQL: %w", err)
	}
	if err := pgStorage.Migrate(ctx, pool, log); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("connecting to Redis: %w", err)
	}

	documents := pgStorage.NewDocumentStore(pool)
	if err := seed(ctx, cfg.Storage.SeedFile, documents, log); err != nil {
		pool.Close()
		_ = rdb.Close()
		return nil, err
	}

	return &storage{
		transfers: pgStorage.NewTransferRepo(pool),
		codes:     redisStorage.NewCodeStore(rdb),
		documents: documents,
		rateLimit: redisStorage.NewRateLimitStore(rdb),
		audit:     pgStorage.NewAuditRepo(pool),
		checkers:  []ports.HealthChecker{pgStorage.NewHealthCheck(pool), redisStorage.NewHealthCheck(rdb)},
		close: func() {
			_ = rdb.Close()
			pool.Close()
		},
	}, nil
}

func openMemory(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*storage, error) {
	log.Warn().Msg("memory storage selected, all state is lost on restart")

	documents := memory.NewDocumentStore()
	if err := seed(ctx, cfg.Storage.SeedFile, documents, log); err != nil {
		return nil, err
	}

	return &storage{
		transfers: memory.NewTransferRepo(),
		codes:     memory.NewCodeStore(),
		documents: documents,
		rateLimit: memory.NewRateLimitStore(),
		close:     func() {},
	}, nil
}

func seed(ctx context.Context, path string, store ports.DocumentStore, log zerolog.Logger) error {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening seed file: %w", err)
	}
	defer f.Close()

	n, err := memory.Seed(ctx, store, f)
	if err != nil {
		return err
	}
	log.Info().Str("file", path).Int("documents", n).Msg("Seed records loaded")
	return nil
}
