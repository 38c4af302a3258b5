package config

import "context"

// Loader is the interface for a format-specific manifest loader.
type Loader interface {
	// Load reads the manifest at path and translates it into the
	// format-agnostic model. env is exposed to manifest expressions.
	Load(ctx context.Context, path string, env map[string]string) (*Model, error)
}
