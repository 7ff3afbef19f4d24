package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/wordtiles/internal/dependencies/clock"
	"github.com/mcoot/wordtiles/internal/dependencies/random"
	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/services/dictionary"
	"github.com/mcoot/wordtiles/internal/services/solver"
	"github.com/mcoot/wordtiles/internal/services/tiles"
	"github.com/mcoot/wordtiles/internal/storage"
)

// DefaultPlayers is the number of seats in a game unless told otherwise
const DefaultPlayers = 2

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// MaxConsecutiveNonScoring is how many turns in a row may go by without a
// word before the game is called
func MaxConsecutiveNonScoring(players int) int {
	return 2 * players * 3
}

// IndexProvider hands out the dictionary index games are played against
type IndexProvider interface {
	Index() (*dictionary.Index, error)
}

// Options configures a new game
type Options struct {
	Players int
	// Seed makes the tile draws reproducible when set
	Seed *uint64
}

// Match is a game in progress together with its pool and solver
type Match struct {
	Game   *model.Game
	pool   *tiles.Pool
	finder *solver.Finder
}

// Controller sets up and plays simulated games
type Controller struct {
	storage      storage.Storage
	dictionary   IndexProvider
	distribution *tiles.Distribution
	clock        clock.Clock
	random       random.Random
	logger       *slog.Logger
}

// NewController creates a new game Controller
func NewController(
	storage storage.Storage,
	dictionary IndexProvider,
	distribution *tiles.Distribution,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:      storage,
		dictionary:   dictionary,
		distribution: distribution,
		clock:        clock,
		random:       random,
		logger:       logger.With(slog.String("component", "game")),
	}
}

// NewMatch creates a game with a full pool and empty racks
func (c *Controller) NewMatch(opts Options) (*Match, error) {
	players := opts.Players
	if players == 0 {
		players = DefaultPlayers
	}
	if players < 2 {
		return nil, fmt.Errorf("%w: %d", model.ErrInsufficientPlayers, players)
	}

	index, err := c.dictionary.Index()
	if err != nil {
		return nil, err
	}
	table, err := c.distribution.ScoreTable()
	if err != nil {
		return nil, err
	}

	rnd := c.random
	if opts.Seed != nil {
		rnd = random.NewSeeded(*opts.Seed)
	}
	pool := c.distribution.NewPool(rnd)
	drawable := pool.Remaining() - pool.Counts()[model.Blank]
	if drawable < players {
		return nil, fmt.Errorf("%w: %d players, %d letter tiles", model.ErrPoolTooSmall, players, drawable)
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:        model.GameID(c.random.String(12, idAlphabet)),
		State:     model.GameStateNew,
		Pool:      pool.Counts(),
		Seed:      opts.Seed,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for i := range players {
		game.Players = append(game.Players, model.NewPlayer(fmt.Sprintf("Player %d", i+1)))
	}

	m := &Match{
		Game:   game,
		pool:   pool,
		finder: solver.New(table, index, solver.WithLogger(c.logger)),
	}
	c.record(m, model.Event{
		Type:    model.EventGameStarted,
		Message: fmt.Sprintf("Start game with %d tiles", pool.Remaining()),
	})
	return m, nil
}

// Setup picks the first player and deals the racks. Every player draws one
// letter tile from a copy of the pool and the tile closest to 'A' plays
// first, the earlier seat winning ties. Racks are then filled in play order.
func (c *Controller) Setup(m *Match) error {
	game := m.Game
	if game.State != model.GameStateNew {
		return model.ErrGameAlreadyStarted
	}

	draw := m.pool.Clone()
	first := 0
	var lowest model.Letter
	for i, p := range game.Players {
		l, err := draw.DrawOne(model.Blank)
		if err != nil {
			return err
		}
		c.record(m, model.Event{
			Type:    model.EventStartTile,
			Player:  p.Name,
			Tiles:   model.Rack{l},
			Message: fmt.Sprintf("%s has picked a '%s' tile", p.Name, l),
		})
		if i == 0 || l < lowest {
			first, lowest = i, l
		}
	}

	game.CurrentPlayer = first
	c.record(m, model.Event{
		Type:    model.EventFirstPlayer,
		Player:  game.Current().Name,
		Message: fmt.Sprintf("%s has the tile closest to 'A' and plays first", game.Current().Name),
	})

	for i := range game.Players {
		c.refill(m, game.Players[(first+i)%len(game.Players)])
	}

	game.State = model.GameStatePlaying
	c.sync(m)
	return nil
}

// PlayTurn plays the current player's best word and refills their rack.
// A player with no word exchanges the whole rack if the pool can cover it,
// and passes otherwise.
func (c *Controller) PlayTurn(m *Match) error {
	game := m.Game
	switch game.State {
	case model.GameStateNew:
		return model.ErrGameNotStarted
	case model.GameStateFinished:
		return model.ErrGameOver
	}

	p := game.Current()
	res, err := m.finder.FindBest(p.Rack)
	if err != nil {
		return fmt.Errorf("find best word for %s: %w", p.Name, err)
	}

	switch {
	case res.Found():
		if err := p.RemoveTiles(res.Tiles); err != nil {
			return err
		}
		p.Points += res.Score
		game.NonScoring = 0
		c.record(m, model.Event{
			Type:    model.EventWordPlayed,
			Player:  p.Name,
			Tiles:   res.Tiles,
			Word:    res.Word,
			Score:   res.Score,
			Message: fmt.Sprintf("%s plays %s for %d points", p.Name, res.Word, res.Score),
		})
		c.refill(m, p)

	case len(p.Rack) > 0 && m.pool.Remaining() >= len(p.Rack):
		old := p.Rack
		fresh, err := m.pool.Exchange(old)
		if err != nil {
			return err
		}
		p.Rack = fresh
		game.NonScoring++
		c.record(m, model.Event{
			Type:    model.EventTilesExchange,
			Player:  p.Name,
			Tiles:   old,
			Message: fmt.Sprintf("%s cannot play and exchanges %s for %s", p.Name, old, fresh),
		})

	default:
		game.NonScoring++
		c.record(m, model.Event{
			Type:    model.EventPassed,
			Player:  p.Name,
			Message: fmt.Sprintf("%s cannot play and passes", p.Name),
		})
	}

	game.Advance()
	c.sync(m)

	if m.pool.IsEmpty() || game.NonScoring >= MaxConsecutiveNonScoring(len(game.Players)) {
		c.finish(m)
	}
	return nil
}

// Play runs a whole game and stores the finished record
func (c *Controller) Play(ctx context.Context, opts Options) (*model.Game, error) {
	m, err := c.NewMatch(opts)
	if err != nil {
		return nil, err
	}
	if err := c.Setup(m); err != nil {
		return nil, err
	}
	for !m.Game.IsOver() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := c.PlayTurn(m); err != nil {
			return nil, err
		}
	}

	if err := c.storage.SaveGame(ctx, m.Game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(m.Game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	return m.Game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// DeleteGame removes a stored game
func (c *Controller) DeleteGame(ctx context.Context, gameID model.GameID) error {
	if _, err := c.storage.GetGame(ctx, gameID); err != nil {
		return err
	}
	if err := c.storage.DeleteGame(ctx, gameID); err != nil {
		return fmt.Errorf("delete game %s: %w", gameID, err)
	}
	c.logger.Info("game deleted", slog.String("game_id", string(gameID)))
	return nil
}

// ListGames returns the most recent games first
func (c *Controller) ListGames(ctx context.Context, limit int) ([]model.GameSummary, error) {
	return c.storage.ListGames(ctx, limit)
}

func (c *Controller) refill(m *Match, p *model.Player) {
	drawn := m.pool.Draw(p.NeedsTiles())
	if len(drawn) == 0 {
		return
	}
	p.AddTiles(drawn)
	c.record(m, model.Event{
		Type:    model.EventTilesDrawn,
		Player:  p.Name,
		Tiles:   drawn,
		Message: fmt.Sprintf("%s has picked %s", p.Name, drawn),
	})
}

func (c *Controller) finish(m *Match) {
	game := m.Game
	game.State = model.GameStateFinished
	game.Winner = game.Leader()

	msg := "Game over: tie"
	if game.Winner != "" {
		msg = fmt.Sprintf("Game over: %s wins", game.Winner)
	}
	c.record(m, model.Event{Type: model.EventGameFinished, Player: game.Winner, Message: msg})
}

func (c *Controller) sync(m *Match) {
	m.Game.Pool = m.pool.Counts()
	m.Game.UpdatedAt = c.clock.Now()
}

// record appends an event to the transcript and logs it
func (c *Controller) record(m *Match, e model.Event) {
	e.Timestamp = c.clock.Now()
	e.Turn = m.Game.Turn
	m.Game.Events = append(m.Game.Events, e)

	attrs := []any{
		slog.String("game_id", string(m.Game.ID)),
		slog.String("event", string(e.Type)),
		slog.Int("turn", e.Turn),
	}
	if e.Player != "" {
		attrs = append(attrs, slog.String("player", e.Player))
	}
	if e.Word != "" {
		attrs = append(attrs, slog.String("word", e.Word), slog.Int("score", e.Score))
	}
	c.logger.Info(e.Message, attrs...)
}
