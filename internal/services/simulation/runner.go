package simulation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/services/game"
)

// Player is the game surface the runner drives
type Player interface {
	Play(ctx context.Context, opts game.Options) (*model.Game, error)
}

// Summary aggregates the outcome of a batch of games
type Summary struct {
	Games        int                     `json:"games"`
	Wins         map[string]int          `json:"wins"`
	Ties         int                     `json:"ties"`
	AverageScore float64                 `json:"average_score"`
	MaxScore     int                     `json:"max_score"`
	BestWord     string                  `json:"best_word,omitempty"`
	BestScore    int                     `json:"best_score,omitempty"`
	BestGame     model.GameID            `json:"best_game,omitempty"`
	GameIDs      []model.GameID          `json:"game_ids"`
	Elapsed      time.Duration           `json:"elapsed"`
	Turns        int                     `json:"turns"`
	Outcomes     map[model.EventType]int `json:"outcomes"`
}

// Runner plays batches of games, several at a time
type Runner struct {
	games   Player
	players int
	seed    *uint64
	logger  *slog.Logger
}

// Option configures a Runner
type Option func(*Runner)

// WithPlayers sets the number of seats per game
func WithPlayers(n int) Option {
	return func(r *Runner) {
		r.players = n
	}
}

// WithSeed makes the batch reproducible: game i is seeded with seed+i
func WithSeed(seed uint64) Option {
	return func(r *Runner) {
		r.seed = &seed
	}
}

// NewRunner creates a Runner playing through games
func NewRunner(games Player, logger *slog.Logger, opts ...Option) *Runner {
	r := &Runner{
		games:  games,
		logger: logger.With(slog.String("component", "simulation")),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run plays n games with at most parallel of them in flight. The first
// failing game cancels the rest.
func (r *Runner) Run(ctx context.Context, n, parallel int) (*Summary, error) {
	if n <= 0 {
		return nil, fmt.Errorf("number of games must be positive, got %d", n)
	}
	if parallel <= 0 {
		parallel = 1
	}

	start := time.Now()
	results := make([]*model.Game, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i := range n {
		g.Go(func() error {
			opts := game.Options{Players: r.players}
			if r.seed != nil {
				seed := *r.seed + uint64(i)
				opts.Seed = &seed
			}
			played, err := r.games.Play(gctx, opts)
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			results[i] = played
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := summarize(results)
	summary.Elapsed = time.Since(start)
	r.logger.Info("simulation finished",
		slog.Int("games", summary.Games),
		slog.Int("parallel", parallel),
		slog.Int("ties", summary.Ties),
		slog.Float64("average_score", summary.AverageScore),
		slog.String("best_word", summary.BestWord),
		slog.Duration("elapsed", summary.Elapsed),
	)
	return summary, nil
}

func summarize(games []*model.Game) *Summary {
	s := &Summary{
		Games:    len(games),
		Wins:     make(map[string]int),
		Outcomes: make(map[model.EventType]int),
	}
	seats, total := 0, 0
	for _, g := range games {
		s.GameIDs = append(s.GameIDs, g.ID)
		s.Turns += g.Turn
		if g.Winner == "" {
			s.Ties++
		} else {
			s.Wins[g.Winner]++
		}
		for _, p := range g.Players {
			seats++
			total += p.Points
			s.MaxScore = max(s.MaxScore, p.Points)
		}
		for _, e := range g.Events {
			switch e.Type {
			case model.EventWordPlayed, model.EventTilesExchange, model.EventPassed:
				s.Outcomes[e.Type]++
			}
		}
		if best, ok := g.BestPlay(); ok && best.Score > s.BestScore {
			s.BestWord, s.BestScore, s.BestGame = best.Word, best.Score, g.ID
		}
	}
	if seats > 0 {
		s.AverageScore = float64(total) / float64(seats)
	}
	return s
}
