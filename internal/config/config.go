package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/yawtalkstechs/earthquake-data-explorer/internal/domain"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Upstream feed settings.
	FeedBaseURL string
	FeedTimeout time.Duration

	// CacheTTL bounds how long an identical query reuses a fetched payload.
	// Zero disables caching.
	CacheTTL time.Duration

	// SignificanceThreshold is the sig score at or above which an event
	// counts as "significant".
	SignificanceThreshold int
}

// Load reads configuration from environment variables, applying defaults
// where unset. A .env file in the working directory is honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	feedTimeout, err := parseDuration("FEED_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	cacheTTL, err := parseNonNegativeDuration("CACHE_TTL", "5m")
	if err != nil {
		return nil, err
	}
	sigThreshold, err := parsePositiveInt("SIGNIFICANCE_THRESHOLD", domain.DefaultSignificanceThreshold)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		FeedBaseURL: envOrDefault("FEED_BASE_URL", "https://earthquake.usgs.gov/fdsnws/event/1/query"),
		FeedTimeout: feedTimeout,
		CacheTTL:    cacheTTL,

		SignificanceThreshold: sigThreshold,
	}

	if cfg.FeedBaseURL == "" {
		return nil, errors.New("FEED_BASE_URL is required")
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, def))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func parseNonNegativeDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, def))
	if err != nil || d < 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func parsePositiveInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return n, nil
}
