package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"gobayes/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Sampling SamplingConfig
	Data     DataConfig
}

// DatabaseConfig holds database connection settings. An empty URL
// means persistence is disabled and the in-memory repository is used.
type DatabaseConfig struct {
	URL string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// SamplingConfig holds posterior sampling defaults
type SamplingConfig struct {
	Draws int
	Seed  int64
	Level float64
}

// DataConfig holds data ingestion settings
type DataConfig struct {
	TableFile string
	Sheet     string
}

// Load reads configuration from the environment, honoring a local
// .env file when present, and validates it
func Load() (*Config, error) {
	// Missing .env is fine; environment variables still apply
	_ = godotenv.Load()

	config := &Config{
		Database: DatabaseConfig{
			URL: getEnvOrDefault("DATABASE_URL", ""),
		},
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Sampling: SamplingConfig{
			Draws: getEnvIntOrDefault("POSTERIOR_DRAWS", 10000),
			Seed:  getEnvInt64OrDefault("SAMPLING_SEED", 42),
			Level: getEnvFloatOrDefault("CREDIBLE_LEVEL", 0.95),
		},
		Data: DataConfig{
			TableFile: getEnvOrDefault("TABLE_FILE", ""),
			Sheet:     getEnvOrDefault("TABLE_SHEET", "Sheet1"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Sampling.Draws < 2 {
		return errors.ConfigInvalid("POSTERIOR_DRAWS must be at least 2")
	}
	if config.Sampling.Level <= 0 || config.Sampling.Level >= 1 {
		return errors.ConfigInvalid("CREDIBLE_LEVEL must be in (0, 1)")
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

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
