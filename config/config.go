// Package config provides environment-based configuration for the service.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the service.
type Config struct {
	// Server configuration
	Host string
	Port int

	// Graceful shutdown timeout
	ShutdownTimeout time.Duration

	// Text-generation provider credential
	OpenAIAPIKey string

	// Logging
	LogLevel slog.Level
	LogJSON  bool
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := LoadWithDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadWithDefaults loads configuration without validating required fields,
// useful for testing.
func LoadWithDefaults() *Config {
	return &Config{
		Host:            getEnv("HOST", ""),
		Port:            getIntEnv("PORT", 3000),
		ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 30*time.Second),
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		LogLevel:        getLevelEnv("LOG_LEVEL", slog.LevelInfo),
		LogJSON:         !strings.EqualFold(getEnv("LOG_FORMAT", "json"), "text"),
	}
}

// Validate checks that required configuration values are set.
func (c *Config) Validate() error {
	if c.OpenAIAPIKey == "" {
		return errors.New("OPENAI_API_KEY is required")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getLevelEnv(key string, defaultValue slog.Level) slog.Level {
	if value := os.Getenv(key); value != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(value)); err == nil {
			return level
		}
	}
	return defaultValue
}
