// ABOUTME: Main entry point for the page assets API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deltacodepl/RustySEO/api"
	"github.com/deltacodepl/RustySEO/api/handlers"
	"github.com/deltacodepl/RustySEO/core/assets"
	"github.com/deltacodepl/RustySEO/core/interfaces"
	"github.com/deltacodepl/RustySEO/core/pages"
	"github.com/deltacodepl/RustySEO/infrastructure/cache/memory"
	"github.com/deltacodepl/RustySEO/infrastructure/cache/redis"
	fetcher "github.com/deltacodepl/RustySEO/infrastructure/fetch/colly"
	stdhttp "github.com/deltacodepl/RustySEO/infrastructure/http/standard"
	logrusLogger "github.com/deltacodepl/RustySEO/infrastructure/logger/logrus"
	"github.com/deltacodepl/RustySEO/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := logrusLogger.NewLogrusLogger(cfg.Server.LogLevel)
	logger.Info("Starting page assets API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
	})

	// Create cache
	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache(time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second)
		} else {
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	default:
		cache = memory.NewMemoryCache(time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second)
		logger.Info("Using memory cache", nil)
	}

	// Create HTTP client for probes
	probeTimeout := time.Duration(cfg.Probe.TimeoutSeconds) * time.Second
	httpClient := stdhttp.NewStandardHTTPClient(probeTimeout)
	httpClient.SetUserAgent(cfg.Probe.UserAgent)

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create page fetcher
	pageFetcher := fetcher.NewFetcher(fetcher.Config{
		UserAgent:   cfg.Probe.UserAgent,
		MaxBodySize: cfg.Fetch.MaxBodyBytes,
		Timeout:     time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second,
	})

	// Create services
	assetService := assets.NewService(deps, probeTimeout)
	pageService := pages.NewService(deps, pageFetcher, time.Duration(cfg.Fetch.CacheTTLSeconds)*time.Second)

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger:    logger,
		RateLimit: cfg.API.RateLimit,
		RateBurst: cfg.API.RateBurst,
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	assetsHandler := handlers.NewAssetsHandler(assetService, pageService)
	assetsHandler.RegisterRoutes(humaAPI)

	healthHandler := handlers.NewHealthHandler()
	healthHandler.RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if closer, ok := cache.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logger.Warn("Cache close failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	logger.Info("Server stopped", nil)
}
