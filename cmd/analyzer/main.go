// Command analyzer loads a daily weather CSV and prints a summary of the
// configured month: average temperature, days above the hot threshold, and
// rainy days.
//
// Usage:
//
//	go run ./cmd/analyzer
//	DATA_DIR=./data DATA_FILE=2024.csv SUMMARY_MONTH=7 go run ./cmd/analyzer
//
// Without DATA_DIR the bundled weatherdata.csv is used.
package main

import (
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/couchcryptid/weather-data-analyzer/internal/bundle"
	"github.com/couchcryptid/weather-data-analyzer/internal/config"
	"github.com/couchcryptid/weather-data-analyzer/internal/dataset"
	"github.com/couchcryptid/weather-data-analyzer/internal/observability"
	"github.com/couchcryptid/weather-data-analyzer/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	os.Exit(run(cfg, logger, os.Stdout))
}

func run(cfg *config.Config, logger *slog.Logger, stdout io.Writer) int {
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)

	var fsys fs.FS
	if cfg.DataDir != "" {
		fsys = os.DirFS(cfg.DataDir)
		logger.Info("reading data directory", "dir", cfg.DataDir)
	} else {
		fsys = bundle.FS()
		logger.Info("reading bundled data")
	}

	loader := dataset.NewLoader(fsys, logger, metrics, cfg.StrictRows)
	p := pipeline.New(loader, logger, metrics, pipeline.Options{
		Month:     cfg.SummaryMonth,
		Threshold: cfg.HotThreshold,
	})

	code := 0
	summary, err := p.Run(cfg.DataFile)
	if err != nil {
		logger.Error("analysis failed", "error", err)
		code = 1
	} else if err := summary.Render(stdout); err != nil {
		logger.Error("write summary failed", "error", err)
		code = 1
	}

	if cfg.MetricsFile != "" {
		if err := observability.WriteTextfile(cfg.MetricsFile, reg); err != nil {
			logger.Error("write metrics file failed", "path", cfg.MetricsFile, "error", err)
		}
	}

	return code
}
