package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Environment variables recognised by the CLI.
const (
	ConfigPathEnvVar = "FIFTYONE_LINKS_CONFIG"
	FormatEnvVar     = "FIFTYONE_LINKS_FORMAT"
)

// EnvOverrides holds settings taken from the environment. They win over the
// config file and lose to explicit command-line flags.
type EnvOverrides struct {
	ConfigPath string `env:"FIFTYONE_LINKS_CONFIG"`
	Format     string `env:"FIFTYONE_LINKS_FORMAT"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnvOverrides reads EnvOverrides from the process environment.
func LoadEnvOverrides() (EnvOverrides, error) {
	var o EnvOverrides
	if err := ParseEnv(&o); err != nil {
		return EnvOverrides{}, err
	}
	return o, nil
}
