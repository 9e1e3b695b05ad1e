// Package observability provides logger construction and Prometheus metrics
// for the analysis pipeline.
package observability

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// NewLogger builds a slog.Logger writing to stderr. format selects the
// handler: "json" for machine-readable output, anything else gets a tinted
// console handler. level accepts debug, info, warn, or error, defaulting to
// info.
func NewLogger(level, format string) *slog.Logger {
	lvl := parseLevel(level)

	if format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      lvl,
		TimeFormat: time.Kitchen,
	}))
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
