package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/ferry-risk-service/internal/adapter/httpadapter"
	kafkaadapter "github.com/couchcryptid/ferry-risk-service/internal/adapter/kafka"
	"github.com/couchcryptid/ferry-risk-service/internal/adapter/ndbc"
	"github.com/couchcryptid/ferry-risk-service/internal/config"
	"github.com/couchcryptid/ferry-risk-service/internal/observability"
	"github.com/couchcryptid/ferry-risk-service/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	client := ndbc.NewClient(cfg.ForecastTimeout, cfg.ForecastRateLimit, metrics, logger)
	fetcher := ndbc.NewCachedFetcher(client, cfg.ForecastCacheTTL, cfg.ForecastCacheSize, metrics)
	logger.Info("forecast source configured",
		"url", cfg.ForecastURL,
		"zone", cfg.ForecastZone,
		"cache_ttl", cfg.ForecastCacheTTL,
		"rate_limit", cfg.ForecastRateLimit,
	)

	// Publishing is feature-flagged via KAFKA_ENABLED.
	var publisher pipeline.Publisher
	var kafkaPublisher *kafkaadapter.Publisher
	if cfg.KafkaEnabled {
		kafkaPublisher = kafkaadapter.NewPublisher(cfg, logger)
		publisher = kafkaPublisher
		logger.Info("kafka publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaSinkTopic)
	} else {
		logger.Info("kafka publishing disabled")
	}

	source := pipeline.Source{URL: cfg.ForecastURL, Zone: cfg.ForecastZone, Boundary: cfg.ForecastBoundary}
	assessor := pipeline.New(fetcher, source, cfg.Model, publisher, logger, metrics)

	srv := httpadapter.NewServer(cfg.HTTPAddr, assessor, cfg.Location, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	// Warm the cache and readiness; failure here only delays readiness.
	go func() {
		if _, err := assessor.Periods(ctx); err != nil {
			logger.Warn("initial forecast fetch failed", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if kafkaPublisher != nil {
		if err := kafkaPublisher.Close(); err != nil {
			logger.Error("kafka publisher close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
