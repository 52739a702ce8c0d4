// Package config provides configuration for the Senso MCP server.
// It reads an optional YAML file, loads .env files, and applies
// environment variable overrides (env always wins).
package config

import (
	"errors"
	"fmt"
)

const (
	defaultBaseURL        = "https://sdk.senso.ai/api/v1"
	defaultTimeoutSeconds = 30
)

// Config holds the MCP server configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Logging LoggingConfig `yaml:"logging"`
}

// APIConfig holds settings for the Senso API connection.
type APIConfig struct {
	BaseURL        string `yaml:"base_url" env:"SENSO_BASE_URL"`
	Key            string `yaml:"key" env:"SENSO_API_KEY"`
	TimeoutSeconds int    `yaml:"timeout_seconds" env:"SENSO_HTTP_TIMEOUT_SECONDS"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"`
}

// Load loads configuration from the specified path. A missing file is fine;
// defaults plus environment variables are enough to run.
func Load(path string) (*Config, error) {
	if err := loadEnvFiles(); err != nil {
		return nil, fmt.Errorf("load environment files: %w", err)
	}

	cfg := &Config{}
	if err := loadFile(path, cfg); err != nil {
		return nil, err
	}

	setDefaults(cfg)

	// Env overrides apply after defaults (env always wins).
	applyEnvOverrides(cfg)
	return cfg, nil
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = defaultBaseURL
	}
	if cfg.API.TimeoutSeconds <= 0 {
		cfg.API.TimeoutSeconds = defaultTimeoutSeconds
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
}

// Validate checks that required settings are present.
// The API key must exist before any call is issued.
func (c *Config) Validate() error {
	if c.API.Key == "" {
		return errors.New("SENSO_API_KEY is required")
	}
	if c.API.BaseURL == "" {
		return errors.New("api base_url cannot be empty")
	}
	return nil
}
