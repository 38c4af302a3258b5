package integration_tests

import (
	"os"
	"testing"

	"github.com/specialistvlad/glyphgen/internal/app"
	"github.com/specialistvlad/glyphgen/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandling_WriteFailureKeepsEarlierOutputs(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// "blocker" is a regular file, so the second table's output directory
	// cannot be created. The first table's existing output must survive.
	files := map[string]string{
		"glyphgen.hcl": `
table "dense" "main" {
  inputs = ["main.txt"]
  output = "out/generated.go"
  range  = 128
}

table "sparse" "extra" {
  inputs = ["extra.txt"]
  output = "blocker/generated_extra.go"
}
`,
		"main.txt":         testutil.Record("a", testutil.Bar),
		"extra.txt":        testutil.Record("U+1F98A", testutil.Box),
		"blocker":          "",
		"out/generated.go": "package previous\n",
	}

	// --- Act ---
	result := testutil.RunApp(t, files, func(root string) app.Config {
		return app.Config{ManifestPath: root + "/glyphgen.hcl"}
	})

	// --- Assert ---
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), `table "extra"`)
	assert.Equal(t, "package previous\n", testutil.ReadFile(t, result.Path("out/generated.go")))

	entries, err := os.ReadDir(result.Path("out"))
	require.NoError(t, err)
	require.Len(t, entries, 1, "staged files of earlier tables must be removed")
	assert.NotContains(t, result.LogOutput, "Table written.")
}
