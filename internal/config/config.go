// Package config loads the runtime configuration from the environment and an optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultConcurrency = 4
	defaultOutputDir   = "."
)

// Config is passed explicitly to the components that need it.
type Config struct {
	// Token is optional; an empty token means unauthenticated requests.
	Token       string
	User        string
	Concurrency int
	OutputDir   string
	// APIBaseURL overrides https://api.github.com/ when set.
	APIBaseURL string
	// MaxRateLimitSleep caps how long a request may wait out a secondary
	// rate limit. Zero disables waiting.
	MaxRateLimitSleep time.Duration
}

// Load reads a .env file from the working directory if present, then the environment.
// Only malformed values are rejected here; call Validate once overrides are applied.
func Load() (*Config, error) {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	concurrency, err := strconv.Atoi(getEnv("RESUME_CONCURRENCY", strconv.Itoa(defaultConcurrency)))
	if err != nil {
		return nil, fmt.Errorf("invalid RESUME_CONCURRENCY: %w", err)
	}
	maxSleep, err := time.ParseDuration(getEnv("GITHUB_MAX_RATE_LIMIT_SLEEP", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid GITHUB_MAX_RATE_LIMIT_SLEEP: %w", err)
	}

	cfg := &Config{
		Token:             getEnv("GITHUB_TOKEN", ""),
		User:              getEnv("GITHUB_USER", ""),
		Concurrency:       concurrency,
		OutputDir:         getEnv("RESUME_OUTPUT_DIR", defaultOutputDir),
		APIBaseURL:        getEnv("GITHUB_API_URL", ""),
		MaxRateLimitSleep: maxSleep,
	}
	return cfg, nil
}

// Validate checks the values that have no sensible fallback.
func (c *Config) Validate() error {
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency)
	}
	if c.MaxRateLimitSleep < 0 {
		return fmt.Errorf("max rate limit sleep must not be negative, got %s", c.MaxRateLimitSleep)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
