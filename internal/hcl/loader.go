package hcl

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/glyphgen/internal/config"
	"github.com/specialistvlad/glyphgen/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// Load parses the manifest at path. Relative paths inside the manifest are
// resolved against the manifest's directory.
func (l *Loader) Load(ctx context.Context, path string, env map[string]string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, diags)
	}

	dir := filepath.Dir(path)
	var root fileRoot
	diags = gohcl.DecodeBody(hclFile.Body, newEvalContext(dir, env), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode manifest %s: %w", path, diags)
	}

	model := &config.Model{}
	for _, block := range root.Tables {
		table, err := l.translateTable(dir, block)
		if err != nil {
			return nil, fmt.Errorf("manifest %s: %w", path, err)
		}
		model.Tables = append(model.Tables, table)
	}

	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}

	logger.Debug("HCL loading complete.", "tables", len(model.Tables))
	return model, nil
}

// translateTable converts a decoded table block into the agnostic model.
func (l *Loader) translateTable(dir string, b *tableBlock) (*config.Table, error) {
	t := &config.Table{
		Name:    b.Name,
		Kind:    b.Kind,
		Output:  resolve(dir, b.Output),
		Package: b.Package,
		Symbol:  b.Symbol,
	}
	if b.Range != nil {
		if *b.Range <= 0 {
			return nil, fmt.Errorf("table %q: range must be positive, got %d", b.Name, *b.Range)
		}
		t.Range = *b.Range
	}
	for _, in := range b.Inputs {
		t.Inputs = append(t.Inputs, resolve(dir, in))
	}
	return t, nil
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
