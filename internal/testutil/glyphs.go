package testutil

import "strings"

// Bar is a 1-wide glyph body whose packed word is 85.
var Bar = []string{"x", ".", "x", ".", "x", ".", "x"}

// Box is a 3-wide hollow rectangle.
var Box = []string{"###", "#.#", "#.#", "#.#", "#.#", "#.#", "###"}

// Record renders one definition record with its trailing separator line.
func Record(header string, rows []string) string {
	return header + "\n" + strings.Join(rows, "\n") + "\n\n"
}
