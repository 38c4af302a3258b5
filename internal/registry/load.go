package registry

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/glyphgen/internal/ctxlog"
	"github.com/specialistvlad/glyphgen/internal/glyphdef"
)

// Load parses one definition stream and registers its records in document
// order. It stops at the first parse or registration error.
func (r *Registry) Load(ctx context.Context, source string, rd io.Reader) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading glyph definitions.", "source", source)

	records, chars := 0, 0
	for rec, err := range glyphdef.Records(source, rd) {
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", source, err)
		}
		if err := r.RegisterRecord(rec); err != nil {
			return err
		}
		records++
		chars += len(rec.Chars)
	}

	logger.Debug("Glyph definitions loaded.", "source", source, "records", records, "characters", chars)
	return nil
}

// LoadFiles loads each file in the given order. Each file is closed before
// the next one is opened, whether or not loading succeeded.
func (r *Registry) LoadFiles(ctx context.Context, paths ...string) error {
	for _, path := range paths {
		if err := r.loadFile(ctx, path); err != nil {
			return err
		}
	}
	ctxlog.FromContext(ctx).Debug("Registry populated.", "files", len(paths), "characters", r.Len())
	return nil
}

func (r *Registry) loadFile(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open definition file: %w", err)
	}
	defer f.Close()
	return r.Load(ctx, path, f)
}
