package emit

import (
	"bytes"
	"context"
	"fmt"

	"github.com/specialistvlad/glyphgen/internal/ctxlog"
	"github.com/specialistvlad/glyphgen/internal/glyph"
)

// Sparse emits a map holding only the registered characters.
type Sparse struct{}

// SparseMap is the materialized form of a sparse artifact.
type SparseMap struct {
	Words map[rune]glyph.Word
}

// Lookup reports the word registered for ch. Unregistered characters are
// absent; there is no sentinel.
func (m *SparseMap) Lookup(ch rune) (glyph.Word, bool) {
	w, ok := m.Words[ch]
	return w, ok
}

func (s *Sparse) Kind() string { return KindSparse }

// Materialize copies every registered character into the map.
func (s *Sparse) Materialize(src Source) *SparseMap {
	chars := src.Chars()
	m := &SparseMap{Words: make(map[rune]glyph.Word, len(chars))}
	for _, ch := range chars {
		g, _ := src.Lookup(ch)
		m.Words[ch] = g.Pack()
	}
	return m
}

func (s *Sparse) Generate(ctx context.Context, src Source, file File) ([]byte, error) {
	if err := file.Validate(); err != nil {
		return nil, err
	}

	chars := src.Chars()
	m := s.Materialize(src)
	ctxlog.FromContext(ctx).Debug("Sparse map materialized.", "entries", len(m.Words))

	var buf bytes.Buffer
	buf.WriteString(generatedHeader)
	fmt.Fprintf(&buf, "package %s\n\n", file.Package)
	buf.WriteString("import \"sync\"\n\n")
	fmt.Fprintf(&buf, "// %s returns the packed glyphs kept outside the dense table.\n", file.Symbol)
	buf.WriteString("// The map is built on the first call and shared by every later call;\n")
	buf.WriteString("// callers must not modify it.\n")
	fmt.Fprintf(&buf, "var %s = sync.OnceValue(func() map[rune]uint64 {\n", file.Symbol)
	if len(chars) == 0 {
		buf.WriteString("\treturn map[rune]uint64{}\n")
	} else {
		buf.WriteString("\treturn map[rune]uint64{\n")
		for _, ch := range chars {
			fmt.Fprintf(&buf, "\t\t%q: 0b%064b, // %U\n", ch, uint64(m.Words[ch]), ch)
		}
		buf.WriteString("\t}\n")
	}
	buf.WriteString("})\n\n")
	fmt.Fprintf(&buf, "// Lookup%s reports the packed glyph of ch, if one was defined.\n", file.Symbol)
	fmt.Fprintf(&buf, "func Lookup%s(ch rune) (uint64, bool) {\n", file.Symbol)
	fmt.Fprintf(&buf, "\tw, ok := %s()[ch]\n", file.Symbol)
	buf.WriteString("\treturn w, ok\n}\n")

	return formatSource(&buf)
}
