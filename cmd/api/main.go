package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront_sync_backend/internal/generation"
	apphttp "storefront_sync_backend/internal/http"
	"storefront_sync_backend/internal/http/router"
	"storefront_sync_backend/internal/pricing"
	"storefront_sync_backend/internal/printprovider"
	"storefront_sync_backend/internal/products"
	"storefront_sync_backend/internal/products/service"
	"storefront_sync_backend/internal/storefront"
	"storefront_sync_backend/platform/config"
	"storefront_sync_backend/platform/logger"
	"storefront_sync_backend/platform/pacing"
	"storefront_sync_backend/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Upstream Clients
	// ========================================================================

	storeClient := storefront.New(cfg, log)
	log.Info("storefront client initialized", "domain", cfg.StoreDomain, "apiVersion", cfg.StoreAPIVersion)

	generationClient := generation.NewClient(cfg, log)
	generator := generation.NewService(generationClient, validator.New(), log)
	log.Info("generation client initialized", "model", cfg.GenerationModel)

	// Mockups degrade gracefully: the module stays disabled without credentials.
	printProviderModule := printprovider.NewModule(cfg, log)

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	orchestrator := service.New(
		storeClient,
		generator,
		printProviderModule,
		pricing.FromConfig(cfg),
		initPacer(cfg, log),
		log,
	)
	productsModule := products.NewModule(orchestrator)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Modules: []apphttp.Module{
			productsModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = shutdownCtx
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

func initPacer(cfg config.PacingConfig, log *logger.Logger) pacing.Pacer {
	switch cfg.GetPacingStrategy() {
	case "token-bucket":
		log.Info("pacing initialized", "strategy", "token-bucket", "interval", cfg.GetPacingDelay())
		return pacing.TokenBucket(cfg.GetPacingDelay(), 1)
	default:
		log.Info("pacing initialized", "strategy", "fixed", "delay", cfg.GetPacingDelay())
		return pacing.FixedDelay(cfg.GetPacingDelay())
	}
}
