package emit

import (
	"bytes"
	"context"
	"fmt"

	"github.com/specialistvlad/glyphgen/internal/ctxlog"
	"github.com/specialistvlad/glyphgen/internal/glyph"
)

// Dense emits a fixed-size array over code points [0, Range).
type Dense struct {
	Range int
}

// DenseTable is the materialized form of a dense artifact.
type DenseTable struct {
	Words []glyph.Word
	// Assigned lists the registered characters inside the range, ascending.
	Assigned []rune
	// Omitted lists registered characters at or beyond the range.
	Omitted []rune
}

// At returns the word stored for code point cp, or the sentinel when cp is
// outside the table.
func (t *DenseTable) At(cp rune) glyph.Word {
	if cp < 0 || int(cp) >= len(t.Words) {
		return glyph.Empty.Pack()
	}
	return t.Words[cp]
}

func (d *Dense) Kind() string { return KindDense }

// Materialize fills every slot with the registered glyph or the sentinel.
func (d *Dense) Materialize(src Source) *DenseTable {
	sentinel := glyph.Empty.Pack()
	t := &DenseTable{Words: make([]glyph.Word, d.Range)}
	for i := range t.Words {
		t.Words[i] = sentinel
	}
	for _, ch := range src.Chars() {
		if int(ch) >= d.Range {
			t.Omitted = append(t.Omitted, ch)
			continue
		}
		g, _ := src.Lookup(ch)
		t.Words[ch] = g.Pack()
		t.Assigned = append(t.Assigned, ch)
	}
	return t
}

func (d *Dense) Generate(ctx context.Context, src Source, file File) ([]byte, error) {
	logger := ctxlog.FromContext(ctx)
	if err := file.Validate(); err != nil {
		return nil, err
	}

	t := d.Materialize(src)
	if len(t.Omitted) > 0 {
		logger.Warn("Characters outside the dense range are left out of the table.",
			"range", d.Range, "omitted", len(t.Omitted), "first", charComment(t.Omitted[0]))
	}
	logger.Debug("Dense table materialized.", "range", d.Range, "assigned", len(t.Assigned))

	var buf bytes.Buffer
	buf.WriteString(generatedHeader)
	fmt.Fprintf(&buf, "package %s\n\n", file.Package)
	fmt.Fprintf(&buf, "// %sMax is the number of code points covered by %s.\n", file.Symbol, file.Symbol)
	fmt.Fprintf(&buf, "const %sMax = %d\n\n", file.Symbol, d.Range)
	fmt.Fprintf(&buf, "// %s holds the packed glyph of every code point below %sMax.\n", file.Symbol, file.Symbol)
	fmt.Fprintf(&buf, "// Code points without a glyph hold %d.\n", uint64(glyph.Empty.Pack()))
	fmt.Fprintf(&buf, "var %s = [%sMax]uint64{\n", file.Symbol, file.Symbol)

	next := 0
	for cp, w := range t.Words {
		if next < len(t.Assigned) && int(t.Assigned[next]) == cp {
			fmt.Fprintf(&buf, "\t0b%064b, // %s\n", uint64(w), charComment(t.Assigned[next]))
			next++
			continue
		}
		fmt.Fprintf(&buf, "\t%d,\n", uint64(w))
	}
	buf.WriteString("}\n")

	return formatSource(&buf)
}
