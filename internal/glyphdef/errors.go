package glyphdef

import "fmt"

// EmptyHeaderError reports a blank line where a character header was expected.
type EmptyHeaderError struct {
	Line int
}

func (e *EmptyHeaderError) Error() string {
	return fmt.Sprintf("line %d: expected characters, found empty line", e.Line)
}

// InvalidEscapeError reports a U+ header whose payload is not a hexadecimal
// Unicode scalar value.
type InvalidEscapeError struct {
	Line   int
	Header string
}

func (e *InvalidEscapeError) Error() string {
	return fmt.Sprintf("line %d: could not decode %q as a unicode character", e.Line, e.Header)
}

// ZeroWidthError reports an empty first bitmap row.
type ZeroWidthError struct {
	Line int
}

func (e *ZeroWidthError) Error() string {
	return fmt.Sprintf("line %d: glyph has zero width", e.Line)
}

// WidthTooWideError reports a first bitmap row longer than the maximum width.
type WidthTooWideError struct {
	Line  int
	Width int
}

func (e *WidthTooWideError) Error() string {
	return fmt.Sprintf("line %d: width of glyph exceeds maximum width of %d (actually %d)", e.Line, maxWidth, e.Width)
}

// RowWidthMismatchError reports a bitmap row whose length differs from the
// width declared by the first row.
type RowWidthMismatchError struct {
	Line      int
	Want      int
	Got       int
	DefinedAt int
}

func (e *RowWidthMismatchError) Error() string {
	return fmt.Sprintf("line %d: this glyph is %d wide (as defined on line %d), but this line is %d characters long",
		e.Line, e.Want, e.DefinedAt, e.Got)
}

// MissingSeparatorError reports a non-blank line after the seventh bitmap row.
type MissingSeparatorError struct {
	Line  int
	Found string
}

func (e *MissingSeparatorError) Error() string {
	return fmt.Sprintf("line %d: expected blank line, found %q", e.Line, e.Found)
}
