package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"threatlens/internal/api"
	"threatlens/internal/api/handlers"
	"threatlens/internal/config"
	"threatlens/internal/domain/services"
	"threatlens/internal/infrastructure/cache"
	"threatlens/internal/nlp"
	"threatlens/internal/search"
	"threatlens/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadDefault()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	var log *logger.Logger
	if cfg.App.Environment == "production" {
		log = logger.NewProduction()
	} else {
		log = logger.NewDevelopment()
	}
	logger.SetGlobal(log)

	log.Info().
		Str("app", cfg.App.Name).
		Str("env", cfg.App.Environment).
		Str("version", cfg.App.Version).
		Msg("starting ThreatLens")

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Optional Redis cache for analysis results and rate limiting
	var redisCache *cache.RedisCache
	if cfg.Redis.Enabled {
		redisCache, err = cache.NewRedis(ctx, cfg.Redis, log)
		if err != nil {
			log.Warn().Err(err).Msg("failed to connect to Redis, continuing without cache")
			redisCache = nil
		} else {
			defer redisCache.Close()
			log.Info().Str("addr", cfg.Redis.Addr()).Msg("connected to Redis")
		}
	}

	// Initialize the analysis pipeline
	tagger := nlp.NewRuleTagger()
	extractor := services.NewIndicatorExtractor(tagger, log)
	mapper := services.NewTechniqueMapper(log)
	attribution := services.NewAttributionEngine(log)
	analyzer := services.NewAnalyzer(extractor, mapper, attribution, redisCache, cfg.Redis.ResultTTL, log)

	// Build the in-memory catalog search index
	index, err := search.NewCatalogIndex(mapper.Techniques(), attribution.Profiles(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build catalog index")
	}
	defer index.Close()
	log.Info().Msg("catalog search index built")

	// Initialize handlers
	deps := handlers.Dependencies{
		Analyzer:    analyzer,
		Extractor:   extractor,
		Mapper:      mapper,
		Attribution: attribution,
		Index:       index,
		Cache:       redisCache,
		Config:      cfg,
		Logger:      log,
	}
	h := handlers.NewHandlers(deps)

	// Create router
	router := api.NewRouter(*cfg, h, redisCache, log)
	httpHandler := router.Setup()

	// Start HTTP server
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.HTTPPort),
		Handler:      httpHandler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info().
			Str("addr", httpServer.Addr).
			Msg("starting HTTP server")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down...")

	cancel()

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("shutdown complete")
}
