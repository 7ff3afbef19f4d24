package solver

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/services/dictionary"
	"github.com/mcoot/wordtiles/internal/services/scoring"
)

// Result is the outcome of a search. The zero Result means no playable word.
type Result struct {
	Word  string
	Score int
	// Letters are the folded letters of Word in word order
	Letters []model.Letter
	// Tiles are the rack tiles the word consumes, blanks as model.Blank
	Tiles model.Rack
	// Tier is how many rack tiles were left out
	Tier int

	found bool
}

// Found reports whether a playable word was found
func (r Result) Found() bool {
	return r.found
}

// Finder searches racks for their best scoring word. It only reads the
// table and index, so one Finder may serve concurrent searches.
type Finder struct {
	table    *scoring.Table
	index    *dictionary.Index
	alphabet []model.Letter
	logger   *slog.Logger
}

// Option configures a Finder
type Option func(*Finder)

// WithLogger sends search traces to logger at debug level
func WithLogger(logger *slog.Logger) Option {
	return func(f *Finder) {
		f.logger = logger.With(slog.String("component", "solver"))
	}
}

// New creates a Finder over the given table and index
func New(table *scoring.Table, index *dictionary.Index, opts ...Option) *Finder {
	f := &Finder{
		table:    table,
		index:    index,
		alphabet: table.Alphabet(),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FindBest returns the highest scoring word playable from rack. The full
// rack is tried first, then smaller sub-racks tier by tier; the search stops
// at the first tier holding any word. Tiles standing for blanks score 0.
// Equal scores go to the word met first.
func (f *Finder) FindBest(rack model.Rack) (Result, error) {
	if err := f.validate(rack); err != nil {
		return Result{}, err
	}

	for tier, racks := range Tiers(f.table, rack) {
		best, err := f.searchTier(tier, racks)
		if err != nil {
			return Result{}, err
		}
		f.logger.Debug("tier searched",
			slog.String("rack", rack.String()),
			slog.Int("tier", tier),
			slog.Int("racks", len(racks)),
			slog.Bool("found", best.found),
		)
		if best.found {
			return best, nil
		}
	}
	return Result{}, nil
}

func (f *Finder) validate(rack model.Rack) error {
	if len(rack) > model.RackSize {
		return fmt.Errorf("%w: %d tiles", model.ErrRackTooLarge, len(rack))
	}
	if n := rack.Blanks(); n > model.MaxBlanks {
		return fmt.Errorf("%w: %d blanks, at most %d", model.ErrTooManyBlanks, n, model.MaxBlanks)
	}
	for _, l := range rack {
		if !f.table.Knows(l) {
			return fmt.Errorf("%w: %s in rack %s", model.ErrUnknownLetter, l, rack)
		}
	}
	return nil
}

func (f *Finder) searchTier(tier int, racks []model.Rack) (Result, error) {
	var best Result
	for _, sub := range racks {
		words, ok := f.resolve(sub)
		if !ok {
			continue
		}
		score, err := f.table.Sum(sub)
		if err != nil {
			return Result{}, err
		}
		// Every spelling in a bucket scores the same, so only the first can win
		if !best.found || score > best.Score {
			best = f.result(words[0], sub, score, tier)
		}
	}
	return best, nil
}

// resolve looks up the sub-rack, trying blank substitutions in alphabet
// order until one spells a word
func (f *Finder) resolve(sub model.Rack) ([]string, bool) {
	for c := range Expand(f.alphabet, sub) {
		if words, ok := f.index.Lookup(c.Letters); ok {
			return words, true
		}
	}
	return nil, false
}

func (f *Finder) result(word string, sub model.Rack, score, tier int) Result {
	letters := dictionary.FoldLetters(word)

	held := make(map[model.Letter]int, len(sub))
	for _, l := range sub {
		held[l]++
	}
	tiles := make(model.Rack, len(letters))
	for i, l := range letters {
		if held[l] > 0 {
			held[l]--
			tiles[i] = l
		} else {
			tiles[i] = model.Blank
		}
	}

	return Result{
		Word:    word,
		Score:   score,
		Letters: letters,
		Tiles:   tiles,
		Tier:    tier,
		found:   true,
	}
}

// FindBest searches rack with a one-off Finder
func FindBest(table *scoring.Table, index *dictionary.Index, rack model.Rack) (Result, error) {
	return New(table, index).FindBest(rack)
}
