package integration_tests

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

// literalWords parses a generated file and returns every uint64 binary
// literal keyed by its position in the composite literal: the slot index for
// dense tables and the character for sparse maps.
func literalWords(t *testing.T, src string) map[rune]uint64 {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), "generated.go", src, 0)
	require.NoError(t, err, "generated source must parse")

	words := make(map[rune]uint64)
	ast.Inspect(f, func(n ast.Node) bool {
		lit, ok := n.(*ast.CompositeLit)
		if !ok {
			return true
		}
		for i, elt := range lit.Elts {
			switch e := elt.(type) {
			case *ast.BasicLit:
				words[rune(i)] = parseWord(t, e.Value)
			case *ast.KeyValueExpr:
				key, ok := e.Key.(*ast.BasicLit)
				require.True(t, ok)
				ch, _, _, err := strconv.UnquoteChar(key.Value[1:len(key.Value)-1], '\'')
				require.NoError(t, err)
				val, ok := e.Value.(*ast.BasicLit)
				require.True(t, ok)
				words[ch] = parseWord(t, val.Value)
			}
		}
		return false
	})
	return words
}

func parseWord(t *testing.T, lit string) uint64 {
	t.Helper()
	v, err := strconv.ParseUint(lit, 0, 64)
	require.NoError(t, err)
	return v
}
