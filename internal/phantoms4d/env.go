package phantoms4d

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvConfig is the process configuration read from the environment.
type EnvConfig struct {
	Debug   bool   `env:"DEBUG"`
	Profile bool   `env:"PROFILE"`
	Workers int    `env:"WORKERS"`
	Library string `env:"LIBRARY"`
	Config  string `env:"CONFIG"`
}

// LoadEnv parses EnvConfig from environment variables.
func LoadEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Workers < 0 {
		return cfg, fmt.Errorf("parse env: WORKERS must be >= 0, got %d", cfg.Workers)
	}
	if cfg.Config == "" {
		cfg.Config = DefaultConfig
	}
	return cfg, nil
}
