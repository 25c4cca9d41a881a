// Command outline scans an input directory for documents and writes one
// JSON outline artifact per document to an output directory. A failure on
// one document does not abort the rest of the batch.
package main

import (
	"log/slog"
	"os"

	"github.com/docsignal/outline/batch"
	"github.com/docsignal/outline/internal/config"
	"github.com/docsignal/outline/layout"
)

func main() {
	cfg := config.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	engineCfg := layout.DefaultConfig()
	engineCfg.MaxHeadingChars = cfg.MaxHeadingChars
	engineCfg.SizeRatioMin = cfg.SizeRatioMin
	if err := engineCfg.Validate(); err != nil {
		log.Error("invalid engine configuration", "error", err)
		os.Exit(1)
	}

	runner := batch.NewRunner(cfg.Workers, engineCfg, log)
	summary, err := runner.Run(cfg.InputDir, cfg.OutputDir)
	if err != nil {
		log.Error("batch failed", "error", err)
		os.Exit(1)
	}

	if summary.Processed == 0 && summary.Failed > 0 {
		os.Exit(1)
	}
}
