package integration_tests

import (
	"strings"
	"testing"

	"github.com/specialistvlad/glyphgen/internal/app"
	"github.com/specialistvlad/glyphgen/internal/registry"
	"github.com/specialistvlad/glyphgen/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandling_DuplicateInLaterTableWritesNothing(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The second table fails on a duplicate character; the first table's
	// output must not be written either.
	files := map[string]string{
		"glyphgen.hcl": `
table "dense" "main" {
  inputs = ["main.txt"]
  output = "out/generated.go"
  range  = 128
}

table "sparse" "extra" {
  inputs = ["extra1.txt", "extra2.txt"]
  output = "out/generated_extra.go"
}
`,
		"main.txt":   testutil.Record("a", testutil.Bar),
		"extra1.txt": testutil.Record("x", testutil.Bar),
		"extra2.txt": testutil.Record("y", testutil.Box) + testutil.Record("x", testutil.Box),
	}

	// --- Act ---
	result := testutil.RunApp(t, files, func(root string) app.Config {
		return app.Config{ManifestPath: root + "/glyphgen.hcl"}
	})

	// --- Assert ---
	var dup *registry.DuplicateCharacterError
	require.ErrorAs(t, result.Err, &dup)
	assert.Equal(t, 'x', dup.Char)
	assert.Equal(t, 10, dup.Location.Line)
	assert.True(t, strings.HasSuffix(dup.Location.Source, "extra2.txt"))
	assert.True(t, strings.HasSuffix(dup.First.Source, "extra1.txt"))

	testutil.AssertNotExists(t, result.Path("out/generated.go"))
	testutil.AssertNotExists(t, result.Path("out/generated_extra.go"))
}
