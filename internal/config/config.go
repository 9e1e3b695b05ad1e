// Package config loads service settings from environment variables.
package config

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all settings, populated from environment variables with the
// WEATHER_ prefix (e.g. WEATHER_INPUT_PATH).
type Config struct {
	// InputPath is the weather CSV to analyze.
	InputPath string `envconfig:"INPUT_PATH" default:"weatherdata.csv"`

	// Threshold is the hot-day cutoff in °C for the threshold report section.
	Threshold float64 `envconfig:"TEMP_THRESHOLD" default:"25.0"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
}

// Load reads configuration from the environment, applying defaults where
// unset.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("weather", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if cfg.InputPath == "" {
		return nil, errors.New("WEATHER_INPUT_PATH is required")
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid WEATHER_LOG_FORMAT %q (want text or json)", cfg.LogFormat)
	}

	return &cfg, nil
}
