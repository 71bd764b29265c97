package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the settings read from the process environment.
// Target is the only functional setting; LogLevel is diagnostic.
// An unset PHYA_TARGET leaves the choice to the catalogue default.
type Env struct {
	Target   string `env:"PHYA_TARGET"`
	LogLevel string `env:"PHYA_LOG_LEVEL"`
}

// LoadEnv reads Env from the process environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}
