package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/weather-report/internal/config"
	"github.com/couchcryptid/weather-report/internal/observability"
	"github.com/couchcryptid/weather-report/internal/pipeline"
	"github.com/couchcryptid/weather-report/internal/report"
	"github.com/couchcryptid/weather-report/internal/source"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	composer := report.Composer{Threshold: cfg.Threshold}
	p := pipeline.New(source.FileSource{}, composer, os.Stdout, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The analysis runs on its own goroutine; main blocks until it finishes
	// or the run is interrupted by a signal.
	errCh := make(chan error, 1)
	go func() {
		errCh <- p.Run(ctx, cfg.InputPath)
	}()

	select {
	case <-ctx.Done():
		logger.Warn("analysis interrupted", "reason", ctx.Err())
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("analysis failed", "error", err)
			os.Exit(1)
		}
	}
}
