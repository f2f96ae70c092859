package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"linkgen-gcc-backend/config"
	_ "linkgen-gcc-backend/docs" // Important for Swagger
	v1 "linkgen-gcc-backend/internal/delivery/http/v1"
	"linkgen-gcc-backend/internal/domain"
	"linkgen-gcc-backend/internal/gateway/gemini"
	"linkgen-gcc-backend/internal/repository/statestore"
	"linkgen-gcc-backend/internal/usecase"
	"linkgen-gcc-backend/pkg/database"
	"linkgen-gcc-backend/pkg/logger"
	"linkgen-gcc-backend/pkg/redis"

	"github.com/go-playground/validator/v10"
)

// @title           LinkGen GCC Backend API
// @version         1.0
// @description     AI job-search assistant backend for the Gulf market.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting assistant backend", "port", cfg.Port, "store", cfg.StoreBackend)

	// 3. Setup State Store
	ctx := context.Background()
	var store domain.StateStore

	switch cfg.StoreBackend {
	case "postgres":
		dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
		if err != nil {
			logger.Log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer dbPool.Close()
		if err := statestore.EnsureSchema(ctx, dbPool); err != nil {
			logger.Log.Error("Failed to ensure schema", "error", err)
			os.Exit(1)
		}
		store = statestore.NewPostgresStore(dbPool)
	case "redis":
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPass}); err != nil {
			logger.Log.Error("Failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer redis.Close()
		store = statestore.NewRedisStore(redis.Client())
	default:
		store = statestore.NewFileStore(cfg.StateDir)
	}

	// Redis also backs the rate limiter when configured alongside another store.
	if cfg.StoreBackend != "redis" && cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPass}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
		} else {
			defer redis.Close()
		}
	}

	// 4. Setup AI Gateway
	genaiClient, err := gemini.NewGenaiClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		logger.Log.Error("Failed to init Gemini client", "error", err)
		os.Exit(1)
	}
	if genaiClient != nil {
		defer genaiClient.Close()
	}
	aiGateway := gemini.New(genaiClient, cfg.GeminiModel, cfg.OfflineGatewayDelay)
	if aiGateway.Offline() {
		logger.Log.Warn("No Gemini API key configured, serving canned offline results")
	}

	// 5. Setup UseCases
	validate := validator.New()
	assistantUC, err := usecase.NewAssistantUsecase(ctx, store, aiGateway, validate, usecase.Options{
		IntegrationSyncDelay:   cfg.IntegrationSyncDelay,
		WhatsAppEchoDelay:      cfg.WhatsAppEchoDelay,
		ToastTTL:               cfg.ToastTTL,
		SmartToastTTL:          cfg.SmartToastTTL,
		WhatsAppToastTTL:       cfg.WhatsAppToastTTL,
		SmartAlertSaveInterval: cfg.SmartAlertSaveInterval,
	})
	if err != nil {
		logger.Log.Error("Failed to load state", "error", err)
		os.Exit(1)
	}
	wizardUC := usecase.NewApplyWizardUsecase(assistantUC, cfg.ApplySubmitDelay)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AssistantUC: assistantUC,
		WizardUC:    wizardUC,
		Config:      cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
