package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/appdotbuilder/influencer-sponsor-connect/internal/app"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/config"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/db"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/logger"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/queue"
)

func main() {
	if err := run(); err != nil {
		slog.Error("worker stopped", "err", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Log.Service == "" {
		cfg.Log.Service = "influencer-sponsor-connect-worker"
	}
	logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Service: cfg.Log.Service, Env: cfg.Log.Env})

	if cfg.Events.AMQPURL == "" {
		return errors.New("AMQP_URL is required for the worker")
	}
	if cfg.Redis.Addr == "" {
		slog.Warn("REDIS_ADDR not set, refreshed stats are not shared with the server")
	}

	conn, err := db.Open(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer conn.Close()

	statsCache, closeCache, err := app.OpenStatsCache(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer closeCache()
	stats := app.NewStatsService(conn, statsCache)

	q, err := queue.NewAMQPQueue(cfg.Events.AMQPURL, cfg.Events.Queue)
	if err != nil {
		return err
	}
	defer q.Close()

	if err := q.Subscribe(queue.EventsTopic, handleEvent(stats)); err != nil {
		return err
	}

	slog.Info("worker running, waiting for events", "queue", cfg.Events.Queue)
	<-ctx.Done()
	return nil
}

// handleEvent refreshes the shared dashboard snapshot for every domain event.
func handleEvent(stats queue.StatsRefresher) func(payload any) error {
	return func(payload any) error {
		event, ok := payload.(queue.Event)
		if !ok {
			slog.Warn("ignoring unexpected payload", "payload", payload)
			return nil
		}

		ctx := logger.IntoContext(context.Background(), slog.Default().With("event", event.Type, "entity_id", event.EntityID))
		if _, err := stats.Refresh(ctx); err != nil {
			return err
		}
		logger.FromContext(ctx).Info("dashboard stats refreshed")
		return nil
	}
}
