package model

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Rack and word bounds
const (
	RackSize      = 7
	MinWordLength = 2
	MaxBlanks     = 2
)

// Blank is the wildcard tile. It is not a letter and stands in for any
// concrete letter of the alphabet.
const Blank Letter = '?'

// BlankName is how the blank tile is spelled in distribution files
const BlankName = "blank"

// Letter is a single folded uppercase tile letter, or Blank
type Letter rune

// IsBlank reports whether l is the wildcard tile
func (l Letter) IsBlank() bool {
	return l == Blank
}

func (l Letter) String() string {
	return string(rune(l))
}

// MarshalText lets letters key JSON objects by their glyph
func (l Letter) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText decodes a single glyph
func (l *Letter) UnmarshalText(text []byte) error {
	r, size := utf8.DecodeRune(text)
	if size == 0 || size != len(text) || r == utf8.RuneError {
		return fmt.Errorf("%w: %q", ErrInvalidLetter, text)
	}
	if r == '*' {
		r = rune(Blank)
	}
	*l = Letter(unicode.ToUpper(r))
	return nil
}

// LetterValue describes one row of a letter distribution
type LetterValue struct {
	Letter Letter
	Count  int
	Points int
}

// Rack is an ordered multiset of tiles held by a player
type Rack []Letter

// ParseRack reads a rack from its textual form. Letters are uppercased and
// '?' or '*' denote a blank. The input is expected to be diacritic-folded.
func ParseRack(s string) (Rack, error) {
	var rack Rack
	for _, r := range strings.ToUpper(strings.TrimSpace(s)) {
		switch {
		case r == '?' || r == '*':
			rack = append(rack, Blank)
		case unicode.IsLetter(r):
			rack = append(rack, Letter(r))
		case unicode.IsSpace(r) || r == ',':
			continue
		default:
			return nil, fmt.Errorf("%w: %q", ErrInvalidLetter, r)
		}
	}
	if len(rack) > RackSize {
		return nil, fmt.Errorf("%w: %d tiles", ErrRackTooLarge, len(rack))
	}
	return rack, nil
}

// Clone returns a copy that shares no memory with r
func (r Rack) Clone() Rack {
	if r == nil {
		return nil
	}
	out := make(Rack, len(r))
	copy(out, r)
	return out
}

// Blanks counts the wildcard tiles in the rack
func (r Rack) Blanks() int {
	n := 0
	for _, l := range r {
		if l.IsBlank() {
			n++
		}
	}
	return n
}

// Without returns a copy of the rack with the first occurrence of l removed
func (r Rack) Without(l Letter) (Rack, bool) {
	for i, x := range r {
		if x == l {
			out := make(Rack, 0, len(r)-1)
			out = append(out, r[:i]...)
			return append(out, r[i+1:]...), true
		}
	}
	return r.Clone(), false
}

// Remove takes every tile of tiles out of the rack, one occurrence each
func (r Rack) Remove(tiles []Letter) (Rack, error) {
	out := r.Clone()
	for _, t := range tiles {
		var ok bool
		out, ok = out.Without(t)
		if !ok {
			return r, fmt.Errorf("%w: %s", ErrTileNotInRack, t)
		}
	}
	return out, nil
}

func (r Rack) String() string {
	var sb strings.Builder
	for _, l := range r {
		sb.WriteRune(rune(l))
	}
	return sb.String()
}

// MarshalText encodes the rack as its letters, blanks as '?'
func (r Rack) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText decodes a rack written by MarshalText
func (r *Rack) UnmarshalText(text []byte) error {
	rack, err := ParseRack(string(text))
	if err != nil {
		return err
	}
	*r = rack
	return nil
}
