package registry

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/glyphgen/internal/glyph"
	"github.com/specialistvlad/glyphgen/internal/glyphdef"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	barGlyph = "x\n.\nx\n.\nx\n.\nx\n\n"
	dotGlyph = "#\n.\n.\n.\n.\n.\n.\n\n"
)

func mustGlyph(t *testing.T, rows ...string) glyph.Glyph {
	t.Helper()
	g, err := glyph.FromRows(rows)
	require.NoError(t, err)
	return g
}

func TestRegister_RejectsDuplicate(t *testing.T) {
	reg := New()
	g := mustGlyph(t, "#", "#", "#", "#", "#", "#", "#")
	first := glyphdef.Location{Source: "a.txt", Line: 1}
	second := glyphdef.Location{Source: "b.txt", Line: 10}

	require.NoError(t, reg.Register('a', g, first))

	err := reg.Register('a', glyph.Empty, second)
	var dup *DuplicateCharacterError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, 'a', dup.Char)
	assert.Equal(t, second, dup.Location)
	assert.Equal(t, first, dup.First)

	got, ok := reg.Lookup('a')
	require.True(t, ok)
	assert.Equal(t, g, got, "the earlier registration must win")
}

func TestRegister_Frozen(t *testing.T) {
	reg := New()
	reg.Freeze()
	require.True(t, reg.Frozen())
	require.ErrorIs(t, reg.Register('a', glyph.Empty, glyphdef.Location{}), ErrFrozen)
}

func TestLoad_Aliasing(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Load(context.Background(), "alias.txt", strings.NewReader("ab\n"+barGlyph)))

	a, ok := reg.Lookup('a')
	require.True(t, ok)
	b, ok := reg.Lookup('b')
	require.True(t, ok)
	assert.Equal(t, a.Pack(), b.Pack())
	assert.Equal(t, glyph.Word(85), a.Pack())
	assert.Equal(t, []rune{'a', 'b'}, reg.Chars())
}

func TestLoad_DuplicateWithinHeader(t *testing.T) {
	reg := New()
	err := reg.Load(context.Background(), "dup.txt", strings.NewReader("aa\n"+barGlyph))

	var dup *DuplicateCharacterError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, 1, dup.Location.Line)
}

func TestLoad_DuplicateAcrossRecords(t *testing.T) {
	reg := New()
	doc := "a\n" + barGlyph + "b\n" + dotGlyph + "a\n" + dotGlyph
	err := reg.Load(context.Background(), "dup.txt", strings.NewReader(doc))

	var dup *DuplicateCharacterError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, glyphdef.Location{Source: "dup.txt", Line: 19}, dup.Location)
	assert.Equal(t, glyphdef.Location{Source: "dup.txt", Line: 1}, dup.First)
}

func TestLoad_ParseErrorIsWrapped(t *testing.T) {
	reg := New()
	err := reg.Load(context.Background(), "bad.txt", strings.NewReader("a\n##\n##\n#\n"))

	var mismatch *glyphdef.RowWidthMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Contains(t, err.Error(), "bad.txt")
}

func TestLoadFiles_OrderDecidesWhichDuplicateFails(t *testing.T) {
	// --- Arrange ---
	dir := t.TempDir()
	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.txt")
	require.NoError(t, os.WriteFile(first, []byte("a\n"+barGlyph), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("c\n"+dotGlyph+"a\n"+dotGlyph), 0o644))

	// --- Act ---
	reg := New()
	err := reg.LoadFiles(context.Background(), first, second)

	// --- Assert ---
	var dup *DuplicateCharacterError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, second, dup.Location.Source)
	assert.Equal(t, 10, dup.Location.Line)
	assert.Equal(t, first, dup.First.Source)

	got, ok := reg.Lookup('a')
	require.True(t, ok)
	assert.Equal(t, glyph.Word(85), got.Pack())
}

func TestLoadFiles_MissingFile(t *testing.T) {
	reg := New()
	err := reg.LoadFiles(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestChars_Sorted(t *testing.T) {
	reg := New()
	doc := "zb\n" + barGlyph + "U+1F98A\n" + dotGlyph + "a\n" + dotGlyph
	require.NoError(t, reg.Load(context.Background(), "", strings.NewReader(doc)))

	assert.Equal(t, []rune{'a', 'b', 'z', '🦊'}, reg.Chars())
	assert.Equal(t, 4, reg.Len())

	loc, ok := reg.Location('🦊')
	require.True(t, ok)
	assert.Equal(t, 10, loc.Line)

	_, ok = reg.Lookup('q')
	assert.False(t, ok)
}
