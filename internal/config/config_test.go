package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.DataDir)
	assert.Equal(t, "weatherdata.csv", cfg.DataFile)
	assert.Equal(t, time.August, cfg.SummaryMonth)
	assert.Equal(t, 30.0, cfg.HotThreshold)
	assert.True(t, cfg.StrictRows)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.MetricsFile)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("DATA_DIR", "/var/lib/weather")
	t.Setenv("DATA_FILE", "2024.csv")
	t.Setenv("SUMMARY_MONTH", "12")
	t.Setenv("HOT_THRESHOLD", "27.5")
	t.Setenv("STRICT_ROWS", "false")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("METRICS_FILE", "/tmp/analyzer.prom")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/weather", cfg.DataDir)
	assert.Equal(t, "2024.csv", cfg.DataFile)
	assert.Equal(t, time.December, cfg.SummaryMonth)
	assert.Equal(t, 27.5, cfg.HotThreshold)
	assert.False(t, cfg.StrictRows)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "/tmp/analyzer.prom", cfg.MetricsFile)
}

func TestLoad_InvalidSummaryMonth(t *testing.T) {
	for _, v := range []string{"0", "13", "august", "-1"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("SUMMARY_MONTH", v)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "SUMMARY_MONTH")
		})
	}
}

func TestLoad_InvalidHotThreshold(t *testing.T) {
	for _, v := range []string{"warm", "NaN", "Inf"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("HOT_THRESHOLD", v)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "HOT_THRESHOLD")
		})
	}
}

func TestLoad_InvalidStrictRows(t *testing.T) {
	t.Setenv("STRICT_ROWS", "sometimes")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STRICT_ROWS")
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	t.Setenv("LOG_FORMAT", "xml")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_FORMAT")
}

func TestLoad_InvalidDataFile(t *testing.T) {
	for _, v := range []string{"./weatherdata.csv", "/abs/x.csv", "../x.csv", "data//x.csv", "data/"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("DATA_FILE", v)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "DATA_FILE")
		})
	}
}

func TestLoad_NestedDataFile(t *testing.T) {
	t.Setenv("DATA_FILE", "2024/weatherdata.csv")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "2024/weatherdata.csv", cfg.DataFile)
}
