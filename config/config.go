// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the command. Flags override these values.
type Config struct {
	Environment  string `env:"ENVIRONMENT" envDefault:"development" validate:"oneof=development staging production test"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	Format       string `env:"FORMAT" envDefault:"text" validate:"oneof=text json ics"`
	CalendarName string `env:"CALENDAR_NAME" envDefault:"Pay Periods" validate:"max=200"`
	TimeBase     string `env:"TIME_BASE"`
}

// EnvPrefix is prepended to every variable name.
const EnvPrefix = "PAYPERIODS_"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads a .env file if present, then the environment.
// Variables already set are not overridden by .env.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv parses the environment without reading .env.
func FromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		aggErr := env.AggregateError{}
		if errors.As(err, &aggErr) && len(aggErr.Errors) > 0 {
			// Only the first error keeps the log readable
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
