// Package config provides configuration for the khata binaries.
// It loads settings from environment variables and .env files.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/mmynk/khata/internal/message"
)

// Config represents the application configuration.
type Config struct {
	// DBPath is the SQLite database file location.
	DBPath string

	// Port is the HTTP listen port for the server binary.
	Port int

	// CountryCode prefixes phone numbers in wa.me links.
	CountryCode string

	// TemplatesPath is an optional YAML file overriding message
	// wording. Empty means built-in templates.
	TemplatesPath string

	// LogFormat selects the slog handler: "text" (tint) or "json".
	LogFormat string
}

// Load loads configuration from environment variables.
// It automatically loads a .env file from the current directory if
// available; a custom path can be passed instead.
func Load(envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		// Ignore a missing .env; plain env vars are enough.
		_ = godotenv.Load()
	}

	port, err := parseIntEnv("KHATA_PORT", 8080)
	if err != nil {
		return nil, err
	}

	return &Config{
		DBPath:        getEnvOrDefault("KHATA_DB_PATH", "./data/khata.db"),
		Port:          port,
		CountryCode:   getEnvOrDefault("KHATA_COUNTRY_CODE", message.DefaultCountryCode),
		TemplatesPath: os.Getenv("KHATA_TEMPLATES_PATH"),
		LogFormat:     getEnvOrDefault("LOG_FORMAT", "text"),
	}, nil
}

// Templates loads the message template overrides named by the
// configuration, or nil when none are configured.
func (c *Config) Templates() (*message.Templates, error) {
	if c.TemplatesPath == "" {
		return nil, nil
	}
	return message.LoadTemplates(c.TemplatesPath)
}

// getEnvOrDefault returns the value of the environment variable or a
// default value if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseIntEnv parses an int from an environment variable, returning
// defaultValue when unset.
func parseIntEnv(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid integer value for %s: %s", key, value)
	}
	return parsed, nil
}
