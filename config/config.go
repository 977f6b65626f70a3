// Package config holds harness configuration loaded from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all harness configuration.
type Config struct {
	Logging LogConfig
	Context ContextConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level   string `envconfig:"TELECOMTEST_LOG_LEVEL" default:"debug"`
	Enabled bool   `envconfig:"TELECOMTEST_LOG_ENABLED" default:"false"`
}

// ContextConfig holds the fixed context values the simulated environment
// reports to the system under test.
type ContextConfig struct {
	// Locale reported by the resource configuration. zh-TW matches the
	// behavior the original harness pinned for locale-sensitive code paths.
	Locale string `envconfig:"TELECOMTEST_LOCALE" default:"zh-TW"`

	// OpPackage is the package name the environment claims to run as.
	OpPackage string `envconfig:"TELECOMTEST_OP_PACKAGE" default:"test"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{
			Level:   "debug",
			Enabled: false,
		},
		Context: ContextConfig{
			Locale:    "zh-TW",
			OpPackage: "test",
		},
	}
}
