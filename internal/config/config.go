package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

var Module = fx.Provide(NewConfig)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

type Config struct {
	Store  Store  `json:"store"`
	Ingest Ingest `json:"ingest"`
}

type Store struct {
	// MaxProfiles caps the store; 0 means unlimited.
	MaxProfiles int `json:"max_profiles" validate:"gte=0"`
	// RequireUsable rejects profiles without a known type, hostname and port.
	RequireUsable bool `json:"require_usable"`
}

type Ingest struct {
	Workers   int `json:"workers" validate:"min=1,max=256"`
	QueueSize int `json:"queue_size" validate:"min=1"`
}

// Default returns the configuration used when no file overrides it.
func Default() *Config {
	return &Config{
		Store: Store{
			RequireUsable: true,
		},
		Ingest: Ingest{
			Workers:   4,
			QueueSize: 64,
		},
	}
}

// NewConfig creates a new Config instance from the environment
func NewConfig() (*Config, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.json"
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	return Parse(data)
}

// Parse decodes a JSON document over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return formatValidationErrors(validationErrors)
		}
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// formatValidationErrors formats validation errors into a user-friendly error message
func formatValidationErrors(errors validator.ValidationErrors) error {
	var errMsgs []string
	for _, err := range errors {
		errMsgs = append(errMsgs, fmt.Sprintf(
			"field '%s' failed validation: %s",
			err.Field(),
			err.Tag(),
		))
	}
	return fmt.Errorf("validation errors: %v", errMsgs)
}
