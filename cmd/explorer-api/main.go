package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/yawtalkstechs/earthquake-data-explorer/internal/adapter/httpapi"
	"github.com/yawtalkstechs/earthquake-data-explorer/internal/adapter/usgs"
	"github.com/yawtalkstechs/earthquake-data-explorer/internal/config"
	"github.com/yawtalkstechs/earthquake-data-explorer/internal/domain"
	"github.com/yawtalkstechs/earthquake-data-explorer/internal/explorer"
	"github.com/yawtalkstechs/earthquake-data-explorer/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	var feed domain.FeedClient = usgs.NewClient(cfg.FeedBaseURL, cfg.FeedTimeout, metrics, logger)
	if cfg.CacheTTL > 0 {
		feed = usgs.NewCachedClient(feed, cfg.CacheTTL, metrics)
		logger.Info("feed cache enabled", "ttl", cfg.CacheTTL)
	} else {
		logger.Info("feed cache disabled")
	}

	svc := explorer.New(feed, cfg.SignificanceThreshold, logger, metrics)
	srv := httpapi.NewServer(cfg.HTTPAddr, svc, svc, metrics, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
