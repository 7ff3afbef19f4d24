package solver

import (
	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/services/dictionary"
)

// ParseRack reads a rack as typed by a user. Accented letters are folded
// first, so "zèbre?" holds the tiles ZEBRE and a blank.
func ParseRack(s string) (model.Rack, error) {
	return model.ParseRack(dictionary.Fold(s))
}
