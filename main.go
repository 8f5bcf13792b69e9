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

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"loan-optimizer/config"
	httpLayer "loan-optimizer/http"
	"loan-optimizer/logging"
	"loan-optimizer/metrics"
	"loan-optimizer/repository"
	"loan-optimizer/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	gin.SetMode(cfg.GinMode)
	m := metrics.New()

	cache, closeCache := newCache(cfg.Redis, logger)
	defer closeCache()

	generator := service.NewTextGenerator(cfg.LLM, &http.Client{Timeout: cfg.LLM.Timeout})
	if generator == nil {
		logger.Info("text generation disabled, advisory endpoints use fallback text")
	} else {
		logger.Info("text generation enabled",
			zap.String("provider", cfg.LLM.Provider),
			zap.String("model", cfg.LLM.Model),
		)
	}

	loanService := service.NewLoanService(logger, m)
	advisorService := service.NewAdvisorService(generator, service.AdvisorOptions{
		Cache:      cache,
		CacheTTL:   cfg.AdviceCacheTTL,
		Timeout:    cfg.LLM.Timeout,
		MaxRetries: cfg.LLM.MaxRetries,
		Currency:   cfg.CurrencySymbol,
		Logger:     logger,
		Metrics:    m,
	})

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(httpLayer.RouterDeps{
		Loans:          loanService,
		Advisor:        advisorService,
		Limiter:        rateLimiter,
		Metrics:        m,
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.LLM.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("API listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("server failed", zap.Error(err))
		return
	case <-quit:
		logger.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("error during server shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}

// newCache connects to Redis when configured and reachable, and otherwise
// keeps advisory text in memory.
func newCache(cfg config.RedisConfig, logger *zap.Logger) (repository.CacheRepository, func()) {
	if cfg.Addr == "" {
		return repository.NewMemoryCache(), func() {}
	}

	redisCache := repository.NewRedisCache(repository.RedisOptions{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := redisCache.Ping(ctx); err != nil {
		logger.Warn("redis unreachable, using in-memory advice cache", zap.String("addr", cfg.Addr), zap.Error(err))
		_ = redisCache.Close()
		return repository.NewMemoryCache(), func() {}
	}

	logger.Info("advice cache backed by redis", zap.String("addr", cfg.Addr))
	return redisCache, func() { _ = redisCache.Close() }
}
