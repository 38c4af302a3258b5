// Package glyphdef parses the text glyph definition format.
//
// A definition file is a sequence of records. Each record is a header line
// naming one or more characters, seven bitmap rows and one blank separator
// line:
//
//	U+00C5
//	..#..
//	.....
//	.###.
//	#...#
//	#####
//	#...#
//	#...#
//
// A header of the form U+<hex> names exactly one code point. Any other
// header names every character on the line, all sharing the same glyph.
// In bitmap rows '.' and ' ' are off pixels and every other rune is on.
package glyphdef

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/specialistvlad/glyphgen/internal/glyph"
)

const (
	escapePrefix = "U+"
	maxWidth     = glyph.MaxWidth
)

// Location identifies the header line of a record.
type Location struct {
	Source string
	Line   int
}

func (l Location) String() string {
	if l.Source == "" {
		return fmt.Sprintf("line %d", l.Line)
	}
	return fmt.Sprintf("%s:%d", l.Source, l.Line)
}

// Record is one parsed definition: the characters of its header and the
// glyph they share.
type Record struct {
	Chars    []rune
	Glyph    glyph.Glyph
	Location Location
}

// Parser reads records from a single stream. It is single-pass; the first
// error, including io.EOF, is returned by every later call to Next.
type Parser struct {
	source string
	r      *bufio.Reader
	line   int
	err    error
}

// NewParser returns a parser reading from r. source names the stream in
// record locations.
func NewParser(source string, r io.Reader) *Parser {
	return &Parser{source: source, r: bufio.NewReader(r)}
}

// Next returns the next record, or io.EOF once the stream ends cleanly
// where a header was expected.
func (p *Parser) Next() (Record, error) {
	if p.err != nil {
		return Record{}, p.err
	}
	rec, err := p.next()
	if err != nil {
		p.err = err
	}
	return rec, err
}

// Records returns a lazy sequence over the records of r. The sequence stops
// after the first error, which is yielded with a zero Record.
func Records(source string, r io.Reader) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		p := NewParser(source, r)
		for {
			rec, err := p.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(rec, err) || err != nil {
				return
			}
		}
	}
}

func (p *Parser) next() (Record, error) {
	header, ok, err := p.readLine()
	if err != nil {
		return Record{}, err
	}
	if !ok {
		return Record{}, io.EOF
	}
	loc := Location{Source: p.source, Line: p.line}
	if header == "" {
		return Record{}, &EmptyHeaderError{Line: loc.Line}
	}
	chars, err := decodeHeader(header, loc.Line)
	if err != nil {
		return Record{}, err
	}

	rows := make([]string, glyph.Height)
	for i := range rows {
		if rows[i], err = p.readBodyLine(); err != nil {
			return Record{}, err
		}
	}
	sep, err := p.readBodyLine()
	if err != nil {
		return Record{}, err
	}

	// The whole record is read before any check, and a bad separator is
	// reported ahead of the rows.
	if sep != "" {
		return Record{}, &MissingSeparatorError{Line: loc.Line + glyph.Height + 1, Found: sep}
	}
	width := utf8.RuneCountInString(rows[0])
	switch {
	case width > maxWidth:
		return Record{}, &WidthTooWideError{Line: loc.Line + 1, Width: width}
	case width == 0:
		return Record{}, &ZeroWidthError{Line: loc.Line + 1}
	}
	for i, row := range rows[1:] {
		if n := utf8.RuneCountInString(row); n != width {
			return Record{}, &RowWidthMismatchError{Line: loc.Line + 2 + i, Want: width, Got: n, DefinedAt: loc.Line + 1}
		}
	}

	g, err := glyph.FromRows(rows)
	if err != nil {
		return Record{}, fmt.Errorf("%s: %w", loc, err)
	}
	return Record{Chars: chars, Glyph: g, Location: loc}, nil
}

// readLine returns the next line without its terminator. ok is false when
// the stream is exhausted before any byte of a new line.
func (p *Parser) readLine() (string, bool, error) {
	s, err := p.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, err
	}
	if s == "" {
		return "", false, nil
	}
	p.line++
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return s, true, nil
}

// readBodyLine reads a bitmap or separator line. Trailing spaces are not
// part of the row; a missing line reads as empty.
func (p *Parser) readBodyLine() (string, error) {
	s, _, err := p.readLine()
	if err != nil {
		return "", err
	}
	return strings.TrimRight(s, " "), nil
}

// decodeHeader expands a U+ escape. The payload is hexadecimal with
// surrounding whitespace, a leading '+', a 0x prefix and '_' digit
// separators allowed.
func decodeHeader(header string, line int) ([]rune, error) {
	payload, ok := strings.CutPrefix(header, escapePrefix)
	if !ok {
		return []rune(header), nil
	}
	cp, ok := parseHex(payload)
	if !ok || !utf8.ValidRune(rune(cp)) {
		return nil, &InvalidEscapeError{Line: line, Header: header}
	}
	return []rune{rune(cp)}, nil
}

func parseHex(s string) (uint64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "+")
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		if strings.HasPrefix(s, "_") {
			return 0, false
		}
		s = "0x" + s
	}
	// Base 0 accepts underscores only between digits or after the prefix.
	cp, err := strconv.ParseUint(s, 0, 32)
	return cp, err == nil
}
