package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"strconv"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
	"github.com/joho/godotenv"
)

// Config holds all analyzer settings, populated from environment variables.
type Config struct {
	// DataDir is the directory holding DataFile. Empty selects the bundled dataset.
	DataDir  string
	DataFile string

	SummaryMonth time.Month
	HotThreshold float64
	StrictRows   bool

	LogLevel    string
	LogFormat   string
	MetricsFile string
}

// Load reads configuration from environment variables, applying defaults where unset.
// A .env file in the working directory is applied first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	month, err := parseMonth(sharedcfg.EnvOrDefault("SUMMARY_MONTH", "8"))
	if err != nil {
		return nil, err
	}

	threshold, err := strconv.ParseFloat(sharedcfg.EnvOrDefault("HOT_THRESHOLD", "30"), 64)
	if err != nil || math.IsNaN(threshold) || math.IsInf(threshold, 0) {
		return nil, errors.New("invalid HOT_THRESHOLD")
	}

	strict, err := strconv.ParseBool(sharedcfg.EnvOrDefault("STRICT_ROWS", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid STRICT_ROWS: %w", err)
	}

	cfg := &Config{
		DataDir:      sharedcfg.EnvOrDefault("DATA_DIR", ""),
		DataFile:     sharedcfg.EnvOrDefault("DATA_FILE", "weatherdata.csv"),
		SummaryMonth: month,
		HotThreshold: threshold,
		StrictRows:   strict,
		LogLevel:     sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:    sharedcfg.EnvOrDefault("LOG_FORMAT", "text"),
		MetricsFile:  sharedcfg.EnvOrDefault("METRICS_FILE", ""),
	}

	// DataFile is opened through fs.FS, which only accepts unrooted slash paths.
	if !fs.ValidPath(cfg.DataFile) {
		return nil, fmt.Errorf("invalid DATA_FILE %q: want a relative path inside DATA_DIR", cfg.DataFile)
	}
	switch cfg.LogFormat {
	case "json", "text":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q", cfg.LogFormat)
	}

	return cfg, nil
}

func parseMonth(s string) (time.Month, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 12 {
		return 0, fmt.Errorf("invalid SUMMARY_MONTH %q: want 1-12", s)
	}
	return time.Month(n), nil
}
