// Package emit turns a finalized registry into generated Go source.
//
// Two strategies share one interface: Dense materializes a fixed array
// indexed by code point, and Sparse materializes a map holding only the
// registered characters. Both render packed glyph words only; neither
// decodes them.
package emit

import (
	"bytes"
	"context"
	"fmt"
	"go/format"
	"go/token"

	"github.com/specialistvlad/glyphgen/internal/glyph"
)

const (
	KindDense  = "dense"
	KindSparse = "sparse"

	// DefaultRange is the number of code points a dense table covers
	// unless configured otherwise.
	DefaultRange = 65536
	// MaxRange is one past the largest Unicode code point.
	MaxRange = 0x110000

	generatedHeader = "// Code generated by glyphgen. DO NOT EDIT.\n\n"
)

// Source is the read-only view of a registry that emitters consume.
type Source interface {
	Lookup(ch rune) (glyph.Glyph, bool)
	Chars() []rune
}

// File names the Go package and the exported symbol of a generated file.
type File struct {
	Package string
	Symbol  string
}

// Validate checks that both names are usable Go identifiers.
func (f File) Validate() error {
	if !token.IsIdentifier(f.Package) {
		return fmt.Errorf("invalid package name %q", f.Package)
	}
	if !token.IsIdentifier(f.Symbol) || !token.IsExported(f.Symbol) {
		return fmt.Errorf("symbol %q must be an exported Go identifier", f.Symbol)
	}
	return nil
}

// Emitter generates one output artifact from a registry.
type Emitter interface {
	Kind() string
	Generate(ctx context.Context, src Source, file File) ([]byte, error)
}

// New returns the emitter for kind. rng only applies to dense tables; zero
// selects DefaultRange.
func New(kind string, rng int) (Emitter, error) {
	switch kind {
	case KindDense:
		if rng == 0 {
			rng = DefaultRange
		}
		if rng < 1 || rng > MaxRange {
			return nil, fmt.Errorf("dense range %d out of bounds 1..%d", rng, MaxRange)
		}
		return &Dense{Range: rng}, nil
	case KindSparse:
		if rng != 0 {
			return nil, fmt.Errorf("range is not supported by sparse tables")
		}
		return &Sparse{}, nil
	default:
		return nil, fmt.Errorf("unknown table kind %q: must be '%s' or '%s'", kind, KindDense, KindSparse)
	}
}

// DefaultSymbol is the symbol used when none is configured.
func DefaultSymbol(kind string) string {
	if kind == KindSparse {
		return "CharsExtra"
	}
	return "Chars"
}

func formatSource(buf *bytes.Buffer) ([]byte, error) {
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated source: %w", err)
	}
	return src, nil
}

func charComment(ch rune) string {
	return fmt.Sprintf("%U %q", ch, ch)
}
