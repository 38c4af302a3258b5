package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// environment collects the values exposed as `env` to manifests. Values
// from envFile are read without touching the process environment; the
// process environment wins on conflicts, as with godotenv.Load.
func environment(envFile string) (map[string]string, error) {
	env := make(map[string]string)
	if envFile != "" {
		vals, err := godotenv.Read(envFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read env file %s: %w", envFile, err)
		}
		for k, v := range vals {
			env[k] = v
		}
	}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && k != "" {
			env[k] = v
		}
	}
	return env, nil
}
