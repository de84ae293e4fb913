package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// BrowserSettings holds configuration for the headless browser used by report generation
type BrowserSettings struct {
	BinPath  string `yaml:"bin_path"`
	Headless bool   `yaml:"headless"`
	// TimeoutSeconds bounds a single render operation
	TimeoutSeconds int `yaml:"timeout_seconds" validate:"omitempty,min=1,max=300"`
}

// Validate checks that all fields in BrowserSettings are valid
func (s *BrowserSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for BrowserSettings: %w", err)
	}

	return nil
}
