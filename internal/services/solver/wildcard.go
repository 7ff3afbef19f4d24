package solver

import (
	"iter"

	"github.com/mcoot/wordtiles/internal/model"
)

// Candidate is a rack with every blank replaced by a concrete letter
type Candidate struct {
	// Letters holds the rack tiles in rack order, blanks substituted
	Letters model.Rack
	// Substitutes lists the letters standing in for blanks, in rack order
	Substitutes []model.Letter
}

// Expand yields the concrete racks a rack can stand for. A rack without
// blanks yields itself. One blank yields one candidate per alphabet letter,
// two blanks the full product with the first blank in the outer loop.
// Racks holding more than model.MaxBlanks blanks yield nothing.
func Expand(alphabet []model.Letter, rack model.Rack) iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		var blanks []int
		for i, l := range rack {
			if l.IsBlank() {
				blanks = append(blanks, i)
			}
		}

		switch len(blanks) {
		case 0:
			yield(Candidate{Letters: rack.Clone()})
		case 1:
			for _, a := range alphabet {
				if !yield(substitute(rack, blanks, a)) {
					return
				}
			}
		case 2:
			for _, a := range alphabet {
				for _, b := range alphabet {
					if !yield(substitute(rack, blanks, a, b)) {
						return
					}
				}
			}
		}
	}
}

func substitute(rack model.Rack, blanks []int, letters ...model.Letter) Candidate {
	c := Candidate{Letters: rack.Clone(), Substitutes: letters}
	for i, pos := range blanks {
		c.Letters[pos] = letters[i]
	}
	return c
}
