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

	assert.Equal(t, "https://api.open-meteo.com/v1/forecast", cfg.BaseURL)
	assert.Equal(t, "cities.db", cfg.CityDBPath)
	assert.Equal(t, time.Duration(0), cfg.HTTPTimeout)
	assert.Equal(t, 0.0, cfg.RateLimitRPS)
	assert.Equal(t, 16, cfg.MaxForecastDays)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.MetricsAddr)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("OPEN_METEO_BASE_URL", "http://localhost:8081/v1/forecast")
	t.Setenv("CITY_DB_PATH", "/tmp/cities.db")
	t.Setenv("HTTP_TIMEOUT", "15s")
	t.Setenv("RATE_LIMIT_RPS", "0.5")
	t.Setenv("MAX_FORECAST_DAYS", "7")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("METRICS_ADDR", ":9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8081/v1/forecast", cfg.BaseURL)
	assert.Equal(t, "/tmp/cities.db", cfg.CityDBPath)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 0.5, cfg.RateLimitRPS)
	assert.Equal(t, 7, cfg.MaxForecastDays)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
}

func TestLoad_InvalidHTTPTimeout(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "soon")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP_TIMEOUT")
}

func TestLoad_NegativeHTTPTimeout(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "-1s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP_TIMEOUT")
}

func TestLoad_InvalidRateLimit(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPS", "-2")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RATE_LIMIT_RPS")
}

func TestLoad_MaxForecastDaysOutOfRange(t *testing.T) {
	t.Setenv("MAX_FORECAST_DAYS", "17")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MAX_FORECAST_DAYS")
}

func TestLoad_MaxForecastDaysUnparsedFallsBack(t *testing.T) {
	t.Setenv("MAX_FORECAST_DAYS", "a week")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.MaxForecastDays)
}
