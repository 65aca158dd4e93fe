package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"network-metadata/internal/adapter/handler/http"
	"network-metadata/internal/adapter/storage/builtin"
	"network-metadata/internal/adapter/storage/chainlist"
	"network-metadata/internal/application"
	"network-metadata/internal/config"
	"network-metadata/internal/logger"
)

func main() {
	// --- Configuration ---
	cfgPath := "configs"
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load configuration from %s: %v", cfgPath, err)
	}

	// --- Logger ---
	appLogger, err := logger.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to setup logger: %v", err)
	}
	defer appLogger.Sync()
	appLogger.Info("Logger initialized", zap.Any("config", cfg.Logger))

	rootCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Chain registry ---
	sources := []application.RegistrySource{
		{Name: "builtin", Repository: builtin.NewRepository(cfg.Registry, appLogger), Required: true},
	}
	if cfg.Chainlist.Enabled {
		sources = append(sources, application.RegistrySource{
			Name:       "chainlist",
			Repository: chainlist.NewRepository(cfg.Chainlist, appLogger),
		})
	}

	registry, err := application.BuildRegistry(rootCtx, appLogger, sources...)
	if err != nil {
		appLogger.Fatal("Failed to build chain registry", zap.Error(err))
	}

	// --- Network metadata ---
	attributes := builtin.NewAttributeTable(cfg.ExplorerKeys)
	networkService, err := application.NewNetworkService(registry, attributes, cfg.Networks.Targets, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize network service", zap.Error(err), zap.Int64s("targets", cfg.Networks.Targets))
	}

	networkHandler := http.NewNetworkHandler(networkService, appLogger)

	// --- HTTP Router & Server ---
	r := router.New()
	http.RegisterRoutes(r, networkHandler, appLogger)

	server := &fasthttp.Server{
		Handler: http.LoggingMiddleware(r.Handler, appLogger),
		Name:    cfg.App.Name,
	}

	serverAddr := ":" + cfg.Server.Port
	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting HTTP server", zap.String("address", serverAddr))
		serverErr <- server.ListenAndServe(serverAddr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	case <-rootCtx.Done():
		appLogger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Error("Server shutdown failed", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
