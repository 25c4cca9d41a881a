// Package config loads the batch runner configuration from the
// environment, with optional .env file support.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the operational settings for batch outline extraction.
// The classification engine's own thresholds live in layout.Config; only
// the ones exposed for operational tuning appear here.
type Config struct {
	// InputDir is scanned for documents to process
	InputDir string

	// OutputDir receives one JSON artifact per input document
	OutputDir string

	// Workers is the number of documents processed concurrently
	Workers int

	// MaxHeadingChars overrides the classifier's heading length cutoff
	MaxHeadingChars int

	// SizeRatioMin overrides the classifier's "notably larger" ratio
	SizeRatioMin float64

	// LogLevel is one of debug, info, warn, error
	LogLevel string
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first when present; real environment
// variables take precedence.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		InputDir:        envOr("OUTLINE_INPUT_DIR", "/app/input"),
		OutputDir:       envOr("OUTLINE_OUTPUT_DIR", "/app/output"),
		Workers:         envInt("OUTLINE_WORKERS", 4),
		MaxHeadingChars: envInt("OUTLINE_MAX_HEADING_CHARS", 120),
		SizeRatioMin:    envFloat("OUTLINE_SIZE_RATIO_MIN", 1.15),
		LogLevel:        envOr("OUTLINE_LOG_LEVEL", "info"),
	}

	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.MaxHeadingChars <= 0 {
		cfg.MaxHeadingChars = 120
	}
	if cfg.SizeRatioMin <= 1.0 {
		cfg.SizeRatioMin = 1.15
	}

	return cfg
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("OUTLINE_INPUT_DIR is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("OUTLINE_OUTPUT_DIR is required")
	}
	return nil
}

// SlogLevel maps the configured log level onto a slog.Level.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
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

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
