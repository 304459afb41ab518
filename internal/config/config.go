// Package config provides application configuration loaded from environment variables.
package config

import (
	"fmt"
	"slices"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

// Store drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Remote drivers.
const (
	RemoteREST     = "rest"
	RemotePostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	AppEnv string `env:"APP_ENV" default:"development"`
	Port   string `env:"PORT" default:"8080"`

	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"60s"`
	IdleTimeout  time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// Device-local durable store.
	StoreDriver string `env:"STORE_DRIVER" default:"sqlite"`
	StoreDSN    string `env:"STORE_DSN" default:"interventions.db"`
	RedisURL    string `env:"REDIS_URL"`

	// Shared remote. URL and key seed the stored credentials on first start.
	RemoteDriver string        `env:"REMOTE_DRIVER" default:"rest"`
	RemoteURL    string        `env:"REMOTE_URL"`
	RemoteKey    string        `env:"REMOTE_KEY"`
	SyncTimeout  time.Duration `env:"SYNC_TIMEOUT" default:"30s"`

	Lang      string `env:"APP_LANG" default:"it"`
	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"json"`
}

// Dev reports whether the app runs in development mode.
func (c *Config) Dev() bool { return c.AppEnv == "development" }

// Load reads the optional .env file and then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	if !slices.Contains([]string{DriverSQLite, DriverPostgres, DriverRedis}, cfg.StoreDriver) {
		return fmt.Errorf("STORE_DRIVER must be one of sqlite, postgres, redis; got %q", cfg.StoreDriver)
	}
	if cfg.StoreDriver == DriverRedis && cfg.RedisURL == "" {
		return fmt.Errorf("REDIS_URL is required when STORE_DRIVER=redis")
	}
	if cfg.StoreDriver != DriverRedis && cfg.StoreDSN == "" {
		return fmt.Errorf("STORE_DSN is required when STORE_DRIVER=%s", cfg.StoreDriver)
	}
	if !slices.Contains([]string{RemoteREST, RemotePostgres}, cfg.RemoteDriver) {
		return fmt.Errorf("REMOTE_DRIVER must be one of rest, postgres; got %q", cfg.RemoteDriver)
	}
	if !slices.Contains([]string{"json", "console"}, cfg.LogFormat) {
		return fmt.Errorf("LOG_FORMAT must be json or console; got %q", cfg.LogFormat)
	}
	if cfg.SyncTimeout <= 0 {
		return fmt.Errorf("SYNC_TIMEOUT must be positive")
	}
	return nil
}
