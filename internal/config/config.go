package config

import (
	"os"
	"strconv"
	"time"

	"queryinsights/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Insights InsightsConfig
}

// DatabaseConfig holds database connection settings. URL may be empty,
// in which case the server runs without the SQL reader and persists
// reports in memory only.
type DatabaseConfig struct {
	URL     string
	SSLMode string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// InsightsConfig holds statistics engine tuning
type InsightsConfig struct {
	TopFrequentCount int
	MaxRows          int
	QueryTimeout     time.Duration
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Database: DatabaseConfig{
			URL:     getEnvOrDefault("DATABASE_URL", ""),
			SSLMode: getEnvOrDefault("SSL_MODE", "disable"),
		},
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Insights: InsightsConfig{
			TopFrequentCount: getEnvIntOrDefault("INSIGHTS_TOP_FREQUENT", 1),
			MaxRows:          getEnvIntOrDefault("INSIGHTS_MAX_ROWS", 100000),
			QueryTimeout:     getEnvDurationOrDefault("INSIGHTS_QUERY_TIMEOUT", 30*time.Second),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Insights.TopFrequentCount < 1 {
		return errors.ConfigInvalid("INSIGHTS_TOP_FREQUENT must be at least 1")
	}
	if config.Insights.MaxRows < 1 {
		return errors.ConfigInvalid("INSIGHTS_MAX_ROWS must be at least 1")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
