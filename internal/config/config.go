// Package config reads the CLI's environment defaults. Flags given on the
// command line override these values.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	LogFile  string `env:"POLYDEMO_LOG_FILE"  envDefault:"logs/polydemo.log"`
	LogLevel string `env:"POLYDEMO_LOG_LEVEL" envDefault:"info"`
	Lesson   string `env:"POLYDEMO_LESSON"    envDefault:"abstraction"`
}

// Load parses Config from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// LoadFrom parses Config from the given variables instead of the process
// environment.
func LoadFrom(vars map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
