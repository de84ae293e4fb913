package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RestConfig holds the full configuration for the REST API application
type RestConfig struct {
	Port     string           `yaml:"port"`
	Database DatabaseSettings `yaml:"database"`
	Logger   LoggerSettings   `yaml:"logger"`
	Browser  BrowserSettings  `yaml:"browser"`
}

// Validate checks all nested settings
func (c *RestConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Browser.Validate(); err != nil {
		return err
	}
	return nil
}

// InitializeRestConfig loads and validates the REST API configuration from a YAML file
func InitializeRestConfig(path string) (*RestConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg RestConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
