// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags.
type Config struct {
	// Connections
	DatabaseURL string `json:"database_url,omitempty"`
	APIKey      string `json:"api_key,omitempty"` // Gemini API key for the fallback classifier

	// Filtering
	Profile string `json:"profile,omitempty" validate:"omitempty,oneof=core backend csharp-azure-no-frontend legacy-web"`

	// Learning tunables. LearningStep is a pointer so an explicit 0 (disable
	// learning) survives the defaults merge.
	WeightClamp  float64  `json:"weight_clamp,omitempty" validate:"omitempty,gt=0,lte=100"`
	LearningStep *float64 `json:"learning_step,omitempty" validate:"omitempty,gte=-100,lte=0"`

	// Label mapping
	FallbackTimeoutSecs int `json:"fallback_timeout_secs,omitempty" validate:"omitempty,gte=1,lte=120"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"`
}

// validate is shared; validator instances cache struct metadata.
var validate = validator.New()

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks field constraints (profile vocabulary, tunable ranges).
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Profile == "" {
		result.Profile = defaults.Profile
	}
	if result.WeightClamp == 0 {
		result.WeightClamp = defaults.WeightClamp
	}
	if result.LearningStep == nil {
		result.LearningStep = defaults.LearningStep
	}
	if result.FallbackTimeoutSecs == 0 {
		result.FallbackTimeoutSecs = defaults.FallbackTimeoutSecs
	}

	// Bool fields: cannot distinguish unset from false, so CLI flags win

	return result
}
