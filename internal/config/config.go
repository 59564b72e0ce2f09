// Package config provides configuration management for the listparse CLI.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the configuration for a listing parse run
type Config struct {
	Dialect          string
	PageSize         int // 0 means unpaged output
	TelemetryEnabled bool
	OTLPEndpoint     string
}

// Load loads configuration from environment variables
func Load() Config {
	config := Config{
		Dialect:      os.Getenv("LISTPARSE_DIALECT"),
		OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}
	if config.Dialect == "" {
		config.Dialect = "unix" // Default
	}

	if enabled := os.Getenv("LISTPARSE_TELEMETRY"); enabled != "" {
		if b, err := strconv.ParseBool(enabled); err == nil {
			config.TelemetryEnabled = b
		}
	}
	if size := os.Getenv("LISTPARSE_PAGE_SIZE"); size != "" {
		if n, err := strconv.Atoi(size); err == nil {
			config.PageSize = n
		}
	}

	return config
}

// Validate checks if the configuration is usable
func (c Config) Validate() error {
	if c.Dialect == "" {
		return fmt.Errorf("dialect must not be empty")
	}
	if c.PageSize < 0 {
		return fmt.Errorf("page size must be non-negative, got %d", c.PageSize)
	}
	return nil
}
