// Package config loads driver settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config aggregates driver configuration values.
type Config struct {
	Trip    TripConfig
	HTTP    HTTPConfig
	Logging LoggingConfig
}

// TripConfig selects the route and the strategies to run.
type TripConfig struct {
	From     string
	To       string
	Strategy string // a strategy name or "all"
	Seed     int64  // 0 means time-seeded
	MaxSteps int    // bound for the random walk, always > 0
}

// HTTPConfig governs the HTTP driver.
type HTTPConfig struct {
	Addr string
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level  string
	Format string // text|json
}

const (
	defaultFrom          = "Rome"
	defaultTo            = "Berlin"
	defaultStrategy      = "all"
	defaultMaxSteps      = 100000
	defaultAddr          = ":8080"
	defaultLoggingLevel  = "info"
	defaultLoggingFormat = "text"
)

// Load reads configuration from environment variables, applying defaults.
//
// Each path in envFiles is loaded with godotenv first; variables already set
// in the environment win. Missing files are skipped.
func Load(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	cfg := Config{
		Trip: TripConfig{
			From:     valueOrDefault("ROADTRIP_FROM", defaultFrom),
			To:       valueOrDefault("ROADTRIP_TO", defaultTo),
			Strategy: valueOrDefault("ROADTRIP_STRATEGY", defaultStrategy),
		},
		HTTP: HTTPConfig{
			Addr: valueOrDefault("ROADTRIP_HTTP_ADDR", defaultAddr),
		},
		Logging: LoggingConfig{
			Level:  valueOrDefault("LOG_LEVEL", defaultLoggingLevel),
			Format: valueOrDefault("LOG_FORMAT", defaultLoggingFormat),
		},
	}

	seed, err := parseInt64("ROADTRIP_SEED", 0)
	if err != nil {
		return Config{}, err
	}
	cfg.Trip.Seed = seed

	steps, err := parseInt64("ROADTRIP_MAX_STEPS", defaultMaxSteps)
	if err != nil {
		return Config{}, err
	}
	if steps <= 0 {
		return Config{}, fmt.Errorf("config: ROADTRIP_MAX_STEPS must be positive, got %d", steps)
	}
	cfg.Trip.MaxSteps = int(steps)

	return cfg, nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseInt64(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s value %q: %w", key, v, err)
	}
	return n, nil
}
