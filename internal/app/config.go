package app

import (
	"errors"

	"github.com/specialistvlad/glyphgen/internal/config"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ManifestPath selects manifest mode.
	ManifestPath string
	// EnvFile supplies extra `env` values to manifest expressions.
	EnvFile string
	// Table selects direct mode: a single table described by flags.
	Table *config.Table
	// Dump prints the registries in definition format instead of writing tables.
	Dump bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ManifestPath == "" && cfg.Table == nil {
		return nil, errors.New("either a manifest or a table definition is required")
	}
	if cfg.ManifestPath != "" && cfg.Table != nil {
		return nil, errors.New("a manifest and a direct table definition cannot be combined")
	}
	if cfg.EnvFile != "" && cfg.ManifestPath == "" {
		return nil, errors.New("an env file only applies to manifests")
	}

	return &cfg, nil
}
