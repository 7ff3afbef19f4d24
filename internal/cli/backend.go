package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/wordtiles/internal/api/request"
	"github.com/mcoot/wordtiles/internal/api/response"
	"github.com/mcoot/wordtiles/internal/config"
	"github.com/mcoot/wordtiles/internal/factory"
	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/services/game"
	"github.com/mcoot/wordtiles/internal/services/simulation"
	"github.com/mcoot/wordtiles/internal/services/solver"
)

// Backend is what commands run against: the HTTP API or an in-process app
type Backend interface {
	Health(ctx context.Context) (response.Health, error)
	Dictionary(ctx context.Context) (response.Dictionary, error)
	Solve(ctx context.Context, rack string) (response.Solve, error)
	Score(ctx context.Context, word string) (response.Score, error)
	PlayGame(ctx context.Context, req request.CreateGameRequest) (response.Game, error)
	Simulate(ctx context.Context, req request.SimulateRequest) (response.Simulation, error)
	GetGame(ctx context.Context, id string) (response.Game, error)
	ListGames(ctx context.Context, limit int) (response.GameList, error)
	DeleteGame(ctx context.Context, id string) (response.DeletedGame, error)
	Close() error
}

// Local runs commands against an in-process app
type Local struct {
	app *factory.App
}

var _ Backend = (*Local)(nil)

// NewLocal wraps an already wired app
func NewLocal(app *factory.App) *Local {
	return &Local{app: app}
}

// OpenLocal wires an app from configuration and loads its dictionary
func OpenLocal(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Local, error) {
	fc, err := factory.FromConfig(cfg, logger)
	if err != nil {
		return nil, err
	}
	app, err := factory.New(fc)
	if err != nil {
		return nil, err
	}
	if err := app.LoadDictionary(ctx); err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("load dictionary: %w", err)
	}
	return NewLocal(app), nil
}

// Health reports the app status
func (l *Local) Health(_ context.Context) (response.Health, error) {
	return response.Health{Status: "ok", DictionaryLoaded: l.app.DictionaryService.IsLoaded()}, nil
}

// Dictionary describes the loaded word list
func (l *Local) Dictionary(_ context.Context) (response.Dictionary, error) {
	d := l.app.DictionaryService
	return response.Dictionary{
		Loaded:      d.IsLoaded(),
		WordCount:   d.WordCount(),
		Fingerprint: d.Fingerprint(),
	}, nil
}

// Solve finds the best word for a rack
func (l *Local) Solve(_ context.Context, text string) (response.Solve, error) {
	rack, err := solver.ParseRack(text)
	if err != nil {
		return response.Solve{}, err
	}
	finder, err := l.app.Finder()
	if err != nil {
		return response.Solve{}, err
	}
	res, err := finder.FindBest(rack)
	if err != nil {
		return response.Solve{}, err
	}
	return response.SolveFromResult(rack, res), nil
}

// Score counts the points of a word
func (l *Local) Score(_ context.Context, word string) (response.Score, error) {
	points, err := l.app.ScoreTable.CountPoints(word)
	if err != nil {
		return response.Score{}, err
	}
	return response.Score{Word: word, Score: points}, nil
}

// PlayGame plays one game
func (l *Local) PlayGame(ctx context.Context, req request.CreateGameRequest) (response.Game, error) {
	g, err := l.app.GameController.Play(ctx, game.Options{Players: req.Players, Seed: req.Seed})
	if err != nil {
		return response.Game{}, err
	}
	return response.GameFromModel(g), nil
}

// Simulate plays a batch of games
func (l *Local) Simulate(ctx context.Context, req request.SimulateRequest) (response.Simulation, error) {
	var opts []simulation.Option
	if req.Players != 0 {
		opts = append(opts, simulation.WithPlayers(req.Players))
	}
	if req.Seed != nil {
		opts = append(opts, simulation.WithSeed(*req.Seed))
	}
	summary, err := l.app.Runner(opts...).Run(ctx, req.Games, req.Parallel)
	if err != nil {
		return response.Simulation{}, err
	}
	return *summary, nil
}

// GetGame fetches a stored game
func (l *Local) GetGame(ctx context.Context, id string) (response.Game, error) {
	g, err := l.app.GameController.GetGame(ctx, model.GameID(id))
	if err != nil {
		return response.Game{}, err
	}
	return response.GameFromModel(g), nil
}

// ListGames lists the most recent games
func (l *Local) ListGames(ctx context.Context, limit int) (response.GameList, error) {
	summaries, err := l.app.GameController.ListGames(ctx, limit)
	if err != nil {
		return response.GameList{}, err
	}
	return response.GameListFromModel(summaries), nil
}

// DeleteGame removes a stored game
func (l *Local) DeleteGame(ctx context.Context, id string) (response.DeletedGame, error) {
	if err := l.app.GameController.DeleteGame(ctx, model.GameID(id)); err != nil {
		return response.DeletedGame{}, err
	}
	return response.DeletedGame{ID: id}, nil
}

// Close releases the app's storage
func (l *Local) Close() error {
	return l.app.Close()
}
