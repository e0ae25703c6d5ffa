// Package config loads application configuration from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the runtime settings of the cubeview application.
type Config struct {
	// Listen is the HTTP API listen address.
	Listen string `yaml:"listen"`
	// DBPath is the SQLite database path; empty means the default under
	// the user's home directory.
	DBPath string `yaml:"db_path"`
	// SolverURL is the base URL of the external two-phase solver service.
	SolverURL string `yaml:"solver_url"`
	// ScrambleLength is the default number of scramble moves.
	ScrambleLength int `yaml:"scramble_length"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Listen:         ":8080",
		SolverURL:      "http://localhost:8081",
		ScrambleLength: 20,
	}
}

// Load reads a YAML config file over the defaults. A missing path ("")
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.ScrambleLength <= 0 {
		cfg.ScrambleLength = Default().ScrambleLength
	}

	return cfg, nil
}
