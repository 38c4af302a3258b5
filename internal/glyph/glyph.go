// Package glyph implements the fixed-height bitmap glyph and its packed
// 64-bit representation.
//
// A glyph is 1 to 9 pixels wide and always 7 pixels tall. Its packed form
// (a Word) stores the pixels row-major in the low 7*width bits, with the
// top-left pixel as the most significant bit of that field, and stores
// width-1 in bits 60-63.
//
// For 9-wide glyphs the pixel field covers bits 0-62 and so overlaps the
// lower three bits of the width field. The width nibble of a 9-wide glyph
// is 0b1000, which only sets bit 63; the three shared bits stay free for
// pixels. Decoding therefore treats a set bit 63 as width 9 and reads the
// remaining widths from bits 60-62 only, which keeps every layout lossless.
package glyph

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// Height is the fixed number of pixel rows of every glyph.
	Height = 7
	// MaxWidth is the widest glyph a Word can hold.
	MaxWidth = 9

	widthShift = 60
	wideFlag   = Word(1) << 63
)

// Glyph is an immutable width x Height bitmap. Glyphs are comparable with ==.
// The zero value is not a valid glyph; use New or FromRows.
type Glyph struct {
	width int
	// rows[r] holds column c of row r at bit width-1-c.
	rows [Height]uint16
}

// Empty is the all-off sentinel used to fill unassigned dense table slots.
// It packs to 0.
var Empty = Glyph{width: 1}

// New builds a glyph from per-row bitmasks, column 0 being the most
// significant of the width low bits.
func New(width int, rows [Height]uint16) (Glyph, error) {
	if width < 1 || width > MaxWidth {
		return Glyph{}, fmt.Errorf("glyph width %d out of range 1..%d", width, MaxWidth)
	}
	for r, row := range rows {
		if row>>uint(width) != 0 {
			return Glyph{}, fmt.Errorf("row %d has pixels beyond width %d", r, width)
		}
	}
	return Glyph{width: width, rows: rows}, nil
}

// IsOff reports whether ch marks an unset pixel in the text form.
func IsOff(ch rune) bool {
	return ch == '.' || ch == ' '
}

// FromRows builds a glyph from its text form: exactly Height rows of equal
// rune length, where '.' and ' ' are off and any other rune is on.
func FromRows(lines []string) (Glyph, error) {
	if len(lines) != Height {
		return Glyph{}, fmt.Errorf("glyph needs %d rows, got %d", Height, len(lines))
	}
	width := utf8.RuneCountInString(lines[0])
	var rows [Height]uint16
	for r, line := range lines {
		if n := utf8.RuneCountInString(line); n != width {
			return Glyph{}, fmt.Errorf("row %d is %d wide, expected %d", r, n, width)
		}
		for _, ch := range line {
			rows[r] <<= 1
			if !IsOff(ch) {
				rows[r] |= 1
			}
		}
	}
	return New(width, rows)
}

// Width returns the number of pixel columns.
func (g Glyph) Width() int { return g.width }

// Height returns the number of pixel rows, which is always Height.
func (g Glyph) Height() int { return Height }

// Pixel reports whether the pixel at (row, col) is on. Out of range
// coordinates are off.
func (g Glyph) Pixel(row, col int) bool {
	if row < 0 || row >= Height || col < 0 || col >= g.width {
		return false
	}
	return g.rows[row]>>uint(g.width-1-col)&1 == 1
}

// Pack encodes the glyph into its canonical word.
func (g Glyph) Pack() Word {
	if g.width == 0 {
		return 0
	}
	var w Word
	for _, row := range g.rows {
		w = w<<uint(g.width) | Word(row)
	}
	return w | Word(g.width-1)<<widthShift
}

// Rows renders the glyph in text form with '#' for on and '.' for off.
func (g Glyph) Rows() []string {
	lines := make([]string, Height)
	var sb strings.Builder
	for r := range lines {
		sb.Reset()
		for c := 0; c < g.width; c++ {
			if g.Pixel(r, c) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		lines[r] = sb.String()
	}
	return lines
}

func (g Glyph) String() string {
	return strings.Join(g.Rows(), "\n")
}

// Word is the packed 64-bit form of a glyph.
type Word uint64

// Width decodes the glyph width stored in the word.
func (w Word) Width() int {
	if w&wideFlag != 0 {
		return MaxWidth
	}
	return int(w>>widthShift&0x7) + 1
}

// Pixel decodes the pixel at (row, col) straight from the word.
func (w Word) Pixel(row, col int) bool {
	width := w.Width()
	if row < 0 || row >= Height || col < 0 || col >= width {
		return false
	}
	n := Height * width
	i := row*width + col
	return w>>uint(n-1-i)&1 == 1
}

// Glyph decodes the word. Every word decodes to some glyph; bits outside the
// pixel field and the width field are ignored.
func (w Word) Glyph() Glyph {
	width := w.Width()
	g := Glyph{width: width}
	mask := Word(1)<<uint(width) - 1
	for r := Height - 1; r >= 0; r-- {
		g.rows[r] = uint16(w & mask)
		w >>= uint(width)
	}
	return g
}

func (w Word) String() string {
	return fmt.Sprintf("0b%064b", uint64(w))
}
