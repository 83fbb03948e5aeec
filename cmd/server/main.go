package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/shopscout/backend/config"
	httpDelivery "github.com/shopscout/backend/internal/delivery/http"
	"github.com/shopscout/backend/internal/domain"
	"github.com/shopscout/backend/internal/infrastructure/cache"
	"github.com/shopscout/backend/internal/infrastructure/scrape"
	"github.com/shopscout/backend/internal/monitoring"
	"github.com/shopscout/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := newLogger(cfg.Server.Environment)
	defer logger.Sync()

	logger.Info("starting shopscout backend",
		zap.String("version", "1.0.0"),
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
		zap.String("cache_type", cfg.Cache.Type),
	)

	metrics := monitoring.NewMetrics()

	// Scraping infrastructure
	registry := scrape.NewRegistry(scrape.DefaultSites())
	fetcher := scrape.NewFetcher(registry, scrape.FetcherConfig{
		RequestTimeout: cfg.Scraper.RequestTimeout,
		MaxBodyBytes:   cfg.Scraper.MaxBodyBytes,
		SiteRatePerSec: cfg.Scraper.SiteRatePerSec,
		SiteRateBurst:  cfg.Scraper.SiteRateBurst,
	}, logger)
	pipeline := scrape.NewPipeline(registry, fetcher, logger, metrics)

	// Result cache
	var cacheRepo domain.CacheRepository
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := cache.NewRedisCache(cfg.Cache.RedisAddr, cfg.Cache.RedisPassword)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer redisCache.Close()
		cacheRepo = redisCache
		logger.Info("redis cache connected", zap.String("addr", cfg.Cache.RedisAddr))
	case "memory":
		cacheRepo = cache.NewMemoryCache()
	case "none":
		// run every search live
	}

	// Usecase layer
	searchService := usecase.NewSearchService(
		registry.Domains(),
		pipeline,
		cacheRepo,
		usecase.SearchServiceConfig{CacheTTL: cfg.Cache.TTL},
		logger,
		metrics,
	)
	shippingService := usecase.NewShippingService(logger)
	promoService := usecase.NewPromoService(nil, logger)
	returnsService := usecase.NewReturnsService(nil, logger)

	// HTTP delivery
	handler := httpDelivery.NewHandler(searchService, shippingService, promoService, returnsService, logger)
	router := httpDelivery.SetupRouter(cfg, handler, logger, metrics)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	logger.Info("server started", zap.String("addr", server.Addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exiting")
}

// newLogger builds a production logger unless running in development,
// where human-readable console output is more useful.
func newLogger(environment string) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	return logger
}
