// Package config reads service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported store drivers.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

const (
	defaultPort         = "8080"
	defaultLogLevel     = "info"
	defaultSQLitePath   = "Resources/hawaii.sqlite"
	defaultQueryTimeout = 5 * time.Second
)

// Config contains service settings.
type Config struct {
	Port     string
	Origin   string
	LogLevel string

	Driver       string
	Path         string
	ConnString   string
	DBName       string
	QueryTimeout time.Duration
}

// Load loads .env file if it exists and reads configuration from the environment.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return FromEnv()
}

// FromEnv reads configuration from the environment.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:       getEnv("PORT", defaultPort),
		Origin:     strings.TrimSpace(os.Getenv("ORIGIN")),
		LogLevel:   getEnv("LOG_LEVEL", defaultLogLevel),
		Driver:     getEnv("DB_DRIVER", DriverSQLite),
		Path:       getEnv("DB_PATH", defaultSQLitePath),
		ConnString: strings.TrimSpace(os.Getenv("DB_CONN_STRING")),
		DBName:     strings.TrimSpace(os.Getenv("DB_NAME")),
	}

	timeoutStr := getEnv("DB_QUERY_TIMEOUT", defaultQueryTimeout.String())
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_QUERY_TIMEOUT %q: %w", timeoutStr, err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("DB_QUERY_TIMEOUT should be positive, got %s", timeout)
	}
	cfg.QueryTimeout = timeout

	switch cfg.Driver {
	case DriverSQLite:
	case DriverPostgres:
		if cfg.ConnString == "" {
			return nil, errors.New("DB_CONN_STRING is required for postgres driver")
		}
	case DriverMongo:
		if cfg.ConnString == "" || cfg.DBName == "" {
			return nil, errors.New("DB_CONN_STRING and DB_NAME are required for mongo driver")
		}
	default:
		return nil, fmt.Errorf("invalid DB_DRIVER %q (allowed: %s, %s, %s)", cfg.Driver, DriverSQLite, DriverPostgres, DriverMongo)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}
