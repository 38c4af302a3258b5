package registry

import (
	"errors"
	"fmt"
	"slices"

	"github.com/specialistvlad/glyphgen/internal/glyph"
	"github.com/specialistvlad/glyphgen/internal/glyphdef"
)

// ErrFrozen is returned when registering into a frozen registry.
var ErrFrozen = errors.New("registry is frozen")

// DuplicateCharacterError reports a character registered a second time.
// Location is where the rejected registration happened; First is where the
// character was registered originally.
type DuplicateCharacterError struct {
	Char     rune
	Location glyphdef.Location
	First    glyphdef.Location
}

func (e *DuplicateCharacterError) Error() string {
	return fmt.Sprintf("%s: character %q (%U) already exists (first defined at %s)", e.Location, e.Char, e.Char, e.First)
}

type entry struct {
	glyph    glyph.Glyph
	location glyphdef.Location
}

// Registry maps characters to glyphs. The zero value is not usable; call New.
type Registry struct {
	glyphs map[rune]entry
	frozen bool
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{glyphs: make(map[rune]entry)}
}

// Register associates ch with g. It fails if ch is already present or the
// registry is frozen.
func (r *Registry) Register(ch rune, g glyph.Glyph, loc glyphdef.Location) error {
	if r.frozen {
		return ErrFrozen
	}
	if prev, exists := r.glyphs[ch]; exists {
		return &DuplicateCharacterError{Char: ch, Location: loc, First: prev.location}
	}
	r.glyphs[ch] = entry{glyph: g, location: loc}
	return nil
}

// RegisterRecord registers every character of rec, in header order.
func (r *Registry) RegisterRecord(rec glyphdef.Record) error {
	for _, ch := range rec.Chars {
		if err := r.Register(ch, rec.Glyph, rec.Location); err != nil {
			return err
		}
	}
	return nil
}

// Freeze makes the registry read-only.
func (r *Registry) Freeze() {
	r.frozen = true
}

// Frozen reports whether Freeze has been called.
func (r *Registry) Frozen() bool {
	return r.frozen
}

// Lookup returns the glyph registered for ch.
func (r *Registry) Lookup(ch rune) (glyph.Glyph, bool) {
	e, ok := r.glyphs[ch]
	return e.glyph, ok
}

// Location returns where ch was registered.
func (r *Registry) Location(ch rune) (glyphdef.Location, bool) {
	e, ok := r.glyphs[ch]
	return e.location, ok
}

// Chars returns all registered characters in ascending order.
func (r *Registry) Chars() []rune {
	chars := make([]rune, 0, len(r.glyphs))
	for ch := range r.glyphs {
		chars = append(chars, ch)
	}
	slices.Sort(chars)
	return chars
}

// Len returns the number of registered characters.
func (r *Registry) Len() int {
	return len(r.glyphs)
}
