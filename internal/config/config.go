// Package config handles application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
// Fields are populated from environment variables.
type Config struct {
	// Output
	OutputFormat string // text, json
	ContentFile  string // optional YAML file overriding the devotional texts
	Seed         uint64 // random seed; 0 draws from entropy

	// Reading plan
	ReadingPlan  string // builtin, sqlite
	DatabasePath string // Path to SQLite file; defaults to ":memory:", a plan that lasts one run

	// Logging
	LogLevel  string // debug, info, warn, error
	LogFormat string // json, text
}

// Reading plan sources
const (
	PlanBuiltin = "builtin"
	PlanSQLite  = "sqlite"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Load reads configuration from environment variables.
// It first loads from .env file if present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{}

	// Output
	cfg.OutputFormat = getEnv("OUTPUT_FORMAT", FormatText)
	cfg.ContentFile = getEnv("CONTENT_FILE", "")

	seed, err := getEnvUint("DEVOTION_SEED", 0)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	cfg.Seed = seed

	// Reading plan
	cfg.ReadingPlan = getEnv("READING_PLAN", PlanBuiltin)
	cfg.DatabasePath = getEnv("DATABASE_PATH", ":memory:")

	// Logging
	cfg.LogLevel = getEnv("LOG_LEVEL", "warn")
	cfg.LogFormat = getEnv("LOG_FORMAT", "text")

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration is present and valid.
func (c *Config) Validate() error {
	var errs []error

	// Validate output format
	switch c.OutputFormat {
	case FormatText, FormatJSON:
		// Valid
	default:
		errs = append(errs, fmt.Errorf("OUTPUT_FORMAT must be one of: text, json; got %q", c.OutputFormat))
	}

	// Validate reading plan source
	switch c.ReadingPlan {
	case PlanBuiltin, PlanSQLite:
		// Valid
	default:
		errs = append(errs, fmt.Errorf("READING_PLAN must be one of: builtin, sqlite; got %q", c.ReadingPlan))
	}

	// Validate log level
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		// Valid
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", c.LogLevel))
	}

	// Validate log format
	switch c.LogFormat {
	case "json", "text":
		// Valid
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be one of: json, text; got %q", c.LogFormat))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// UsesSQLite returns true if the reading plan is served from the database.
func (c *Config) UsesSQLite() bool {
	return c.ReadingPlan == PlanSQLite
}

// getEnv reads an environment variable with a default fallback.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvUint reads an environment variable as an unsigned integer.
// A malformed value is an error rather than the default.
func getEnvUint(key string, defaultValue uint64) (uint64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a non-negative integer, got %q", key, value)
	}
	return n, nil
}
