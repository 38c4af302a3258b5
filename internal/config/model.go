package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Model is the unified representation of one build: every table that a
// run generates, in declaration order.
type Model struct {
	Tables []*Table
}

// Table describes one generated artifact.
type Table struct {
	Name string
	// Kind selects the emission strategy: "dense" or "sparse".
	Kind string
	// Inputs are definition files or directories, loaded in this order.
	Inputs  []string
	Output  string
	Package string
	Symbol  string
	// Range bounds a dense table; zero selects the default.
	Range int
}

// Validate checks the structural invariants that do not depend on the
// emitters: unique names and outputs, at least one input per table.
func (m *Model) Validate() error {
	if len(m.Tables) == 0 {
		return errors.New("no tables defined")
	}

	var errs []string
	names := make(map[string]struct{})
	outputs := make(map[string]string)
	for _, t := range m.Tables {
		if _, dup := names[t.Name]; dup {
			errs = append(errs, fmt.Sprintf("table %q is defined more than once", t.Name))
		}
		names[t.Name] = struct{}{}

		if len(t.Inputs) == 0 {
			errs = append(errs, fmt.Sprintf("table %q: at least one input is required", t.Name))
		}
		if t.Output == "" {
			errs = append(errs, fmt.Sprintf("table %q: output is required", t.Name))
			continue
		}
		out := filepath.Clean(t.Output)
		if other, dup := outputs[out]; dup {
			errs = append(errs, fmt.Sprintf("table %q: output %s is already written by table %q", t.Name, t.Output, other))
		}
		outputs[out] = t.Name
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid build configuration:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
