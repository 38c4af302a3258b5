package glyphdef

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/specialistvlad/glyphgen/internal/glyph"
)

// Format writes chars and g as one record that Parser reads back to the
// same characters and glyph. A single character that would not survive a
// literal header is written as a U+ escape.
func Format(w io.Writer, chars []rune, g glyph.Glyph) error {
	header, err := formatHeader(chars)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	bw.WriteString(header)
	bw.WriteByte('\n')
	for _, row := range g.Rows() {
		bw.WriteString(row)
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')
	return bw.Flush()
}

func formatHeader(chars []rune) (string, error) {
	if len(chars) == 0 {
		return "", fmt.Errorf("record needs at least one character")
	}
	if len(chars) == 1 {
		if needsEscape(chars[0]) {
			return fmt.Sprintf("%s%04X", escapePrefix, chars[0]), nil
		}
		return string(chars), nil
	}
	header := string(chars)
	if strings.HasPrefix(header, escapePrefix) {
		return "", fmt.Errorf("header %q would read as an escape", header)
	}
	for _, ch := range chars {
		if needsEscape(ch) {
			return "", fmt.Errorf("character %U cannot be listed in a literal header", ch)
		}
	}
	return header, nil
}

func needsEscape(ch rune) bool {
	return ch == ' ' || !unicode.IsGraphic(ch)
}
