package scoring

import (
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/services/dictionary"
)

// Table maps tile letters to point values. The alphabet keeps distribution
// order, which is also the order wildcard substitutions are tried in.
// A Table is immutable once built.
type Table struct {
	alphabet []model.Letter
	points   map[model.Letter]int
}

// NewTable builds a table from distribution rows. A blank row is accepted
// but contributes no letter to the alphabet: blanks always score 0.
func NewTable(entries []model.LetterValue) (*Table, error) {
	t := &Table{points: make(map[model.Letter]int, len(entries))}
	for _, e := range entries {
		if e.Letter.IsBlank() {
			continue
		}
		if e.Points < 0 {
			return nil, fmt.Errorf("%w: negative points for %s", model.ErrInvalidDistribution, e.Letter)
		}
		if _, dup := t.points[e.Letter]; dup {
			return nil, fmt.Errorf("%w: duplicate letter %s", model.ErrInvalidDistribution, e.Letter)
		}
		t.alphabet = append(t.alphabet, e.Letter)
		t.points[e.Letter] = e.Points
	}
	return t, nil
}

// FromPoints builds a table from a letter -> points map. Letters are ordered
// alphabetically since maps carry no order.
func FromPoints(points map[model.Letter]int) (*Table, error) {
	letters := lo.Keys(points)
	slices.Sort(letters)
	return NewTable(lo.Map(letters, func(l model.Letter, _ int) model.LetterValue {
		return model.LetterValue{Letter: l, Points: points[l]}
	}))
}

// Alphabet returns the concrete letters in table order, blank excluded
func (t *Table) Alphabet() []model.Letter {
	return slices.Clone(t.alphabet)
}

// Knows reports whether a tile can appear in a rack scored by this table
func (t *Table) Knows(l model.Letter) bool {
	if l.IsBlank() {
		return true
	}
	_, ok := t.points[l]
	return ok
}

// Points returns the value of a single tile. Blanks are worth 0.
func (t *Table) Points(l model.Letter) (int, error) {
	if l.IsBlank() {
		return 0, nil
	}
	p, ok := t.points[l]
	if !ok {
		return 0, fmt.Errorf("%w: %s", model.ErrUnknownLetter, l)
	}
	return p, nil
}

// CountPoints folds the word and sums the value of each of its letters.
// Every letter of a dictionary word must be in the table; an unknown one is
// a contract violation reported as ErrUnknownLetter.
func (t *Table) CountPoints(word string) (int, error) {
	return t.Sum(dictionary.FoldLetters(word))
}

// Sum adds up the value of the given tiles, blanks counting 0
func (t *Table) Sum(tiles []model.Letter) (int, error) {
	total := 0
	for _, l := range tiles {
		p, err := t.Points(l)
		if err != nil {
			return 0, err
		}
		total += p
	}
	return total, nil
}

// SortByPoints returns the tiles ordered by ascending value. The sort is
// stable so equal values keep their rack order.
func (t *Table) SortByPoints(tiles []model.Letter) []model.Letter {
	sorted := slices.Clone(tiles)
	slices.SortStableFunc(sorted, func(a, b model.Letter) int {
		return t.value(a) - t.value(b)
	})
	return sorted
}

// value is Points for callers that have already validated the rack
func (t *Table) value(l model.Letter) int {
	if l.IsBlank() {
		return 0
	}
	return t.points[l]
}

// CountPoints scores a word with the given table
func CountPoints(t *Table, word string) (int, error) {
	return t.CountPoints(word)
}
