package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/specialistvlad/glyphgen/internal/config"
	"github.com/specialistvlad/glyphgen/internal/ctxlog"
	"github.com/specialistvlad/glyphgen/internal/emit"
	"github.com/specialistvlad/glyphgen/internal/fsutil"
	"github.com/specialistvlad/glyphgen/internal/glyphdef"
	"github.com/specialistvlad/glyphgen/internal/registry"
)

// definitionExt selects definition files inside input directories.
const definitionExt = ".txt"

// artifact is a generated table waiting to be written.
type artifact struct {
	table *config.Table
	data  []byte
	chars int
}

// Run generates every configured table. Nothing is written unless all
// tables were generated successfully.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	model, err := a.loadModel(ctx)
	if err != nil {
		return err
	}
	a.logger.Debug("Build model loaded.", "tables", len(model.Tables))

	artifacts := make([]artifact, 0, len(model.Tables))
	for _, table := range model.Tables {
		tctx := ctxlog.With(ctx, "table", table.Name)
		emitter, err := emit.New(table.Kind, table.Range)
		if err != nil {
			return fmt.Errorf("table %q: %w", table.Name, err)
		}
		reg, err := a.buildRegistry(tctx, table)
		if err != nil {
			return fmt.Errorf("table %q: %w", table.Name, err)
		}

		if a.config.Dump {
			if err := a.dump(table, reg); err != nil {
				return err
			}
			continue
		}

		data, err := emitter.Generate(tctx, reg, fileFor(table))
		if err != nil {
			return fmt.Errorf("table %q: %w", table.Name, err)
		}
		artifacts = append(artifacts, artifact{table: table, data: data, chars: reg.Len()})
	}

	if err := a.write(artifacts); err != nil {
		return err
	}
	a.logger.Debug("App.Run method finished.")
	return nil
}

// write stages every artifact before moving any of them into place, so a
// failure while writing leaves all previous outputs untouched.
func (a *App) write(artifacts []artifact) error {
	staged := make([]*emit.Staged, 0, len(artifacts))
	for _, art := range artifacts {
		s, err := emit.Stage(art.table.Output, art.data)
		if err != nil {
			for _, done := range staged {
				done.Discard()
			}
			return fmt.Errorf("table %q: %w", art.table.Name, err)
		}
		staged = append(staged, s)
	}

	for i, art := range artifacts {
		if err := staged[i].Commit(); err != nil {
			for _, rest := range staged[i+1:] {
				rest.Discard()
			}
			return fmt.Errorf("table %q: %w", art.table.Name, err)
		}
		a.logger.Info("Table written.", "table", art.table.Name, "kind", art.table.Kind,
			"output", art.table.Output, "characters", art.chars, "bytes", len(art.data))
	}
	return nil
}

func (a *App) loadModel(ctx context.Context) (*config.Model, error) {
	if a.config.ManifestPath == "" {
		model := &config.Model{Tables: []*config.Table{a.config.Table}}
		if err := model.Validate(); err != nil {
			return nil, err
		}
		return model, nil
	}

	env, err := environment(a.config.EnvFile)
	if err != nil {
		return nil, err
	}
	model, err := a.loader.Load(ctx, a.config.ManifestPath, env)
	if err != nil {
		return nil, fmt.Errorf("failed to load manifest: %w", err)
	}
	return model, nil
}

// buildRegistry loads the table's inputs, in order, into a fresh registry.
func (a *App) buildRegistry(ctx context.Context, table *config.Table) (*registry.Registry, error) {
	files, err := fsutil.ExpandInputs(table.Inputs, definitionExt)
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("Input files resolved.", "files", files)

	reg := registry.New()
	if err := reg.LoadFiles(ctx, files...); err != nil {
		return nil, err
	}
	reg.Freeze()
	return reg, nil
}

// fileFor applies the package and symbol defaults: the output directory's
// name and the kind's default symbol.
func fileFor(table *config.Table) emit.File {
	file := emit.File{Package: table.Package, Symbol: table.Symbol}
	if file.Package == "" {
		abs, err := filepath.Abs(table.Output)
		if err != nil {
			abs = table.Output
		}
		file.Package = filepath.Base(filepath.Dir(abs))
	}
	if file.Symbol == "" {
		file.Symbol = emit.DefaultSymbol(table.Kind)
	}
	return file
}

func (a *App) dump(table *config.Table, reg *registry.Registry) error {
	for _, ch := range reg.Chars() {
		g, _ := reg.Lookup(ch)
		if err := glyphdef.Format(a.outW, []rune{ch}, g); err != nil {
			return fmt.Errorf("table %q: failed to dump %U: %w", table.Name, ch, err)
		}
	}
	a.logger.Info("Table dumped.", "table", table.Name, "characters", reg.Len())
	return nil
}
