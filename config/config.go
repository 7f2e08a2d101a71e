package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const maxUpstreamForecastDays = 16

type Config struct {
	BaseURL         string
	CityDBPath      string
	HTTPTimeout     time.Duration // 0 means no client timeout
	RateLimitRPS    float64       // 0 disables throttling
	MaxForecastDays int
	LogLevel        string
	LogFormat       string
	MetricsAddr     string
}

// Load reads settings from the environment, with an optional .env file.
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	timeout, err := time.ParseDuration(getEnv("HTTP_TIMEOUT", "0s"))
	if err != nil || timeout < 0 {
		return nil, errors.New("invalid HTTP_TIMEOUT")
	}

	rps, err := strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "0"), 64)
	if err != nil || rps < 0 {
		return nil, errors.New("invalid RATE_LIMIT_RPS")
	}

	config := &Config{
		BaseURL:         getEnv("OPEN_METEO_BASE_URL", "https://api.open-meteo.com/v1/forecast"),
		CityDBPath:      getEnv("CITY_DB_PATH", "cities.db"),
		HTTPTimeout:     timeout,
		RateLimitRPS:    rps,
		MaxForecastDays: getEnvAsInt("MAX_FORECAST_DAYS", maxUpstreamForecastDays),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "text"),
		MetricsAddr:     getEnv("METRICS_ADDR", ""),
	}

	if config.MaxForecastDays < 1 || config.MaxForecastDays > maxUpstreamForecastDays {
		return nil, errors.New("MAX_FORECAST_DAYS must be between 1 and 16")
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}
