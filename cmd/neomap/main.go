package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	geojsonadapter "github.com/couchcryptid/neo-impact-mapper/internal/adapter/geojson"
	httpadapter "github.com/couchcryptid/neo-impact-mapper/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/neo-impact-mapper/internal/adapter/kafka"
	"github.com/couchcryptid/neo-impact-mapper/internal/adapter/nasa"
	"github.com/couchcryptid/neo-impact-mapper/internal/config"
	"github.com/couchcryptid/neo-impact-mapper/internal/domain"
	"github.com/couchcryptid/neo-impact-mapper/internal/observability"
	"github.com/couchcryptid/neo-impact-mapper/internal/pipeline"
	"github.com/couchcryptid/neo-impact-mapper/internal/scheduler"
	"github.com/couchcryptid/neo-impact-mapper/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	feedClient := nasa.NewClient(cfg.NASAAPIKey, cfg.NASABaseURL, cfg.NASATimeout, logger)

	// Overlay sinks are feature-flagged; with none configured the report and
	// the /overlays endpoint are still served.
	var publishers []pipeline.OverlayPublisher
	var kafkaWriter *kafkaadapter.Writer
	if cfg.KafkaEnabled {
		kafkaWriter = kafkaadapter.NewWriter(cfg.KafkaBrokers, cfg.KafkaSinkTopic, logger)
		publishers = append(publishers, kafkaWriter)
		logger.Info("kafka overlay sink enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaSinkTopic)
	}
	if cfg.GeoJSONOut != "" {
		publishers = append(publishers, geojsonadapter.NewWriter(cfg.GeoJSONOut, logger))
		logger.Info("geojson overlay sink enabled", "path", cfg.GeoJSONOut)
	}

	model := domain.DefaultModelConfig()
	model.TopN = cfg.TopN

	results := store.NewMemoryStore()
	p := pipeline.New(feedClient, publishers, results, model, logger, metrics)
	p.WriteReportsTo(os.Stdout)

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, results, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	if cfg.FetchInterval > 0 {
		sched := scheduler.New(p, cfg.FetchInterval, cfg.NASATimeout+cfg.ShutdownTimeout, logger)
		if err := sched.Start(); err != nil {
			logger.Error("scheduler start error", "error", err)
			os.Exit(1)
		}
		defer sched.Stop()

		<-ctx.Done()
	} else {
		// One-shot mode: run a single cycle, leave the server up until
		// interrupted so the report and overlays stay queryable.
		if err := p.RunOnce(ctx); err != nil {
			logger.Error("visualization cycle failed", "error", err)
		}

		<-ctx.Done()
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if kafkaWriter != nil {
		if err := kafkaWriter.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
