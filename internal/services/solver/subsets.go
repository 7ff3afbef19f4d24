package solver

import (
	"iter"

	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/services/scoring"
)

// Tiers yields the sub-racks of rack breadth first, one tier per size. Tier
// 0 is the rack itself and every following tier drops one more tile, down to
// model.MinWordLength tiles. Tiles are dropped cheapest first, equal values
// in rack order, so expensive tiles survive longest within a tier. Identical
// sub-racks reached by different paths are all yielded.
//
// Each tier is built only when the previous one has been consumed.
func Tiers(table *scoring.Table, rack model.Rack) iter.Seq2[int, []model.Rack] {
	return func(yield func(int, []model.Rack) bool) {
		tier := []model.Rack{rack.Clone()}
		for k := 0; ; k++ {
			if !yield(k, tier) {
				return
			}
			if len(rack)-k-1 < model.MinWordLength {
				return
			}
			tier = nextTier(table, tier)
		}
	}
}

func nextTier(table *scoring.Table, tier []model.Rack) []model.Rack {
	var next []model.Rack
	for _, r := range tier {
		for _, l := range table.SortByPoints(r) {
			sub, _ := r.Without(l)
			next = append(next, sub)
		}
	}
	return next
}
