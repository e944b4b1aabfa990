package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr    string
	DatasetPath string
	DatasetURL  string
	Environment string
	LogLevel    string

	// RefreshDebounce is the pause applied between a view switch and the
	// first re-aggregation, letting display updates settle first.
	RefreshDebounce time.Duration

	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	debounce, err := parseDuration("REFRESH_DEBOUNCE", "50ms")
	if err != nil {
		return nil, err
	}
	shutdown, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        ":" + envOr("PORT", "8080"),
		DatasetPath:     envOr("DATASET_PATH", "homicidios_clean.csv"),
		DatasetURL:      os.Getenv("DATASET_URL"),
		Environment:     envOr("ENVIRONMENT", "local"),
		LogLevel:        envOr("LOG_LEVEL", "info"),
		RefreshDebounce: debounce,
		ShutdownTimeout: shutdown,
	}

	if cfg.DatasetPath == "" {
		return nil, errors.New("DATASET_PATH is required")
	}

	return cfg, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDuration(key, def string) (time.Duration, error) {
	raw := envOr(key, def)
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("invalid %s %q", key, raw)
	}
	return d, nil
}
