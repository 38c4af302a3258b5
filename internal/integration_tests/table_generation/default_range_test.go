package integration_tests

import (
	"testing"

	"github.com/specialistvlad/glyphgen/internal/app"
	"github.com/specialistvlad/glyphgen/internal/config"
	"github.com/specialistvlad/glyphgen/internal/emit"
	"github.com/specialistvlad/glyphgen/internal/glyph"
	"github.com/specialistvlad/glyphgen/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableGeneration_DefaultRangeCoversBasicPlane(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"glyphs.txt": testutil.Record("A", testutil.Bar) +
			testutil.Record("U+FFFF", testutil.Box) +
			testutil.Record("U+10000", testutil.Box),
	}

	// --- Act ---
	result := testutil.RunApp(t, files, func(root string) app.Config {
		return app.Config{Table: &config.Table{
			Name:   "glyphs",
			Kind:   "dense",
			Inputs: []string{root + "/glyphs.txt"},
			Output: root + "/glyphs/generated.go",
		}}
	})

	// --- Assert ---
	require.NoError(t, result.Err)
	src := testutil.ReadFile(t, result.Path("glyphs/generated.go"))
	assert.Contains(t, src, "const CharsMax = 65536")

	words := literalWords(t, src)
	require.Len(t, words, emit.DefaultRange)

	boxGlyph, err := glyph.FromRows(testutil.Box)
	require.NoError(t, err)
	assert.Equal(t, uint64(85), words['A'])
	assert.Equal(t, uint64(boxGlyph.Pack()), words[0xFFFF], "the last slot is inside the table")
	assert.Equal(t, uint64(glyph.Empty.Pack()), words['B'])
	assert.Contains(t, result.LogOutput, "omitted=1", "U+10000 falls outside the default range")
}
