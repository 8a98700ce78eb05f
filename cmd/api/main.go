package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lifeplanner/config"
	_ "lifeplanner/docs" // Swagger docs
	"lifeplanner/internal/blob"
	blobHTTP "lifeplanner/internal/blob/delivery/http"
	"lifeplanner/internal/httpserver"
	"lifeplanner/internal/identity"
	"lifeplanner/internal/middleware"
	prefillHTTP "lifeplanner/internal/prefill/delivery/http"
	prefillUC "lifeplanner/internal/prefill/usecase"
	taskHTTP "lifeplanner/internal/task/delivery/http"
	"lifeplanner/internal/task/repository/bolt"
	taskUC "lifeplanner/internal/task/usecase"
	"lifeplanner/pkg/daytime"
	"lifeplanner/pkg/gcalendar"
	"lifeplanner/pkg/log"
	"lifeplanner/pkg/openai"
)

// @title       LifePlanner API
// @description Personal task lifecycle and time-distribution engine.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting LifePlanner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Timezone: %s", cfg.Timezone)

	// 3. Store
	store, err := bolt.New(cfg.Store.Path, cfg.Store.Bucket, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to open task store: %v", err)
		return
	}
	defer store.Close()

	blobStore, err := blob.NewLocalStore(cfg.Blob.Dir, cfg.Blob.BaseURL)
	if err != nil {
		logger.Errorf(ctx, "Failed to init blob store: %v", err)
		return
	}

	// 4. Identity
	var provider identity.Provider
	switch cfg.Auth.Mode {
	case "google":
		provider, err = identity.NewGoogleProvider(ctx)
		if err != nil {
			logger.Errorf(ctx, "Failed to init Google identity provider: %v", err)
			return
		}
	default:
		logger.Warn(ctx, "Auth mode: static (development only)")
		provider = identity.NewStaticProvider()
	}

	// 5. Day/clock merging in the configured timezone
	merger, err := daytime.NewMerger(cfg.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Timezone, err)
		merger, _ = daytime.NewMerger("UTC")
	}

	// 6. Reminder glue (optional)
	var calendar *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendar, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar disabled: %v", err)
			calendar = nil
		} else {
			logger.Infof(ctx, "Google Calendar reminders enabled (calendar %s)", cfg.GoogleCalendar.CalendarID)
		}
	}

	// 7. Task domain
	taskUseCase := taskUC.New(logger, store, merger, calendar, cfg.GoogleCalendar.CalendarID, cfg.Timezone)
	taskHandler := taskHTTP.New(logger, taskUseCase)

	// 8. Prefill domain
	aiClient := openai.NewClient(cfg.OpenAI.APIKey)
	aiClient.SetModel(cfg.OpenAI.Model)

	cacheTTL, err := time.ParseDuration(cfg.Prefill.CacheTTL)
	if err != nil {
		logger.Warnf(ctx, "Invalid prefill cache TTL %q, using 5m", cfg.Prefill.CacheTTL)
		cacheTTL = 5 * time.Minute
	}
	prefillUseCase := prefillUC.New(logger, aiClient, cfg.Prefill.CacheSize, cacheTTL)
	prefillHandler := prefillHTTP.New(logger, prefillUseCase)

	// 9. Attachments
	attachmentHandler := blobHTTP.New(logger, blobStore)

	// 10. HTTP server
	mw := middleware.New(logger, provider, cfg.Prefill.RateLimitPerMin)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:            logger,
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		Middleware:        mw,
		TaskHandler:       taskHandler,
		PrefillHandler:    prefillHandler,
		AttachmentHandler: attachmentHandler,
		StaticDir:         blobStore.Dir(),
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
