package tiles

import (
	"fmt"
	"maps"
	"slices"

	"github.com/mcoot/wordtiles/internal/dependencies/random"
	"github.com/mcoot/wordtiles/internal/model"
)

// Pool is the bag of tiles players draw from. A tile is picked by drawing an
// index in [0, Remaining) and walking the letters in their fixed order.
// Not safe for concurrent use.
type Pool struct {
	order  []model.Letter
	counts map[model.Letter]int
	total  int
	random random.Random
}

// NewPool creates a fresh pool for the distribution
func (d *Distribution) NewPool(rnd random.Random) *Pool {
	return newPool(d.Letters(), d.Counts(), rnd)
}

// RestorePool rebuilds a pool from saved counts. Letters are walked in
// sorted order since the counts carry none.
func RestorePool(counts map[model.Letter]int, rnd random.Random) *Pool {
	order := slices.Sorted(maps.Keys(counts))
	return newPool(order, maps.Clone(counts), rnd)
}

func newPool(order []model.Letter, counts map[model.Letter]int, rnd random.Random) *Pool {
	p := &Pool{order: order, counts: counts, random: rnd}
	for _, n := range counts {
		p.total += n
	}
	return p
}

// Remaining is the number of tiles left
func (p *Pool) Remaining() int {
	return p.total
}

// IsEmpty reports whether no tiles are left
func (p *Pool) IsEmpty() bool {
	return p.total == 0
}

// Counts returns a copy of the tiles left per letter, zero counts omitted
func (p *Pool) Counts() map[model.Letter]int {
	out := make(map[model.Letter]int, len(p.counts))
	for l, n := range p.counts {
		if n > 0 {
			out[l] = n
		}
	}
	return out
}

// Clone returns an independent pool sharing the random source
func (p *Pool) Clone() *Pool {
	return &Pool{
		order:  slices.Clone(p.order),
		counts: maps.Clone(p.counts),
		total:  p.total,
		random: p.random,
	}
}

// Draw removes min(n, Remaining) random tiles from the pool
func (p *Pool) Draw(n int) model.Rack {
	n = min(n, p.total)
	drawn := make(model.Rack, 0, n)
	for range n {
		drawn = append(drawn, p.take(p.random.Intn(p.total), nil))
	}
	return drawn
}

// DrawOne removes a single random tile, never one of the excluded letters
func (p *Pool) DrawOne(exclude ...model.Letter) (model.Letter, error) {
	available := p.total
	for _, l := range exclude {
		available -= p.counts[l]
	}
	if available <= 0 {
		return 0, fmt.Errorf("%w: no drawable tile left", model.ErrPoolTooSmall)
	}
	return p.take(p.random.Intn(available), exclude), nil
}

// take removes the tile at idx counting only letters not in skip
func (p *Pool) take(idx int, skip []model.Letter) model.Letter {
	for _, l := range p.order {
		if slices.Contains(skip, l) {
			continue
		}
		n := p.counts[l]
		if idx < n {
			p.counts[l]--
			p.total--
			return l
		}
		idx -= n
	}
	panic(fmt.Sprintf("tile index %d out of range", idx))
}

// PutBack returns tiles to the pool
func (p *Pool) PutBack(tiles []model.Letter) {
	for _, l := range tiles {
		if _, known := p.counts[l]; !known {
			p.order = append(p.order, l)
		}
		p.counts[l]++
		p.total++
	}
}

// Exchange draws as many fresh tiles as given, then puts the given ones back
func (p *Pool) Exchange(tiles []model.Letter) (model.Rack, error) {
	if len(tiles) > p.total {
		return nil, fmt.Errorf("%w: cannot exchange %d tiles with %d left",
			model.ErrPoolTooSmall, len(tiles), p.total)
	}
	drawn := p.Draw(len(tiles))
	p.PutBack(tiles)
	return drawn, nil
}
