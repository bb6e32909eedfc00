// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/appdotbuilder/influencer-sponsor-connect/internal/app"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/config"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/controller"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/db"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/logger"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "err", err)
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
	logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Service: cfg.Log.Service, Env: cfg.Log.Env})

	conn, err := db.Open(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer conn.Close()
	if err := db.EnsureSchema(ctx, conn); err != nil {
		return err
	}

	statsCache, closeCache, err := app.OpenStatsCache(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer closeCache()

	stats := app.NewStatsService(conn, statsCache)
	q, closeQueue, err := app.OpenQueue(cfg.Events, stats)
	if err != nil {
		return err
	}
	defer closeQueue()

	rpc := controller.NewMarketplaceRPC(app.NewServices(conn, q, stats))
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           controller.NewRouter(rpc, controller.RouterConfig{CORSOrigin: cfg.CORSOrigin}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server running", "addr", srv.Addr, "procedures", len(rpc.Procedures()))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
