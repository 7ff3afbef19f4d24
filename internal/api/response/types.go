package response

import (
	"time"

	"github.com/samber/lo"

	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/services/simulation"
	"github.com/mcoot/wordtiles/internal/services/solver"
)

// Health is the response for the health endpoint
type Health struct {
	Status           string `json:"status"`
	DictionaryLoaded bool   `json:"dictionary_loaded"`
}

// Dictionary describes the loaded word list
type Dictionary struct {
	Loaded      bool   `json:"loaded"`
	WordCount   int    `json:"word_count"`
	Fingerprint string `json:"fingerprint,omitempty"`
}

// Solve is the best word found for a rack
type Solve struct {
	Rack    string `json:"rack"`
	Found   bool   `json:"found"`
	Word    string `json:"word,omitempty"`
	Score   int    `json:"score"`
	Letters string `json:"letters,omitempty"`
	Tiles   string `json:"tiles,omitempty"`
	Tier    int    `json:"tier"`
}

// SolveFromResult converts a solver.Result
func SolveFromResult(rack model.Rack, res solver.Result) Solve {
	s := Solve{Rack: rack.String(), Found: res.Found()}
	if !s.Found {
		return s
	}
	s.Word = res.Word
	s.Score = res.Score
	s.Letters = model.Rack(res.Letters).String()
	s.Tiles = res.Tiles.String()
	s.Tier = res.Tier
	return s
}

// Score is the point value of a word
type Score struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}

// Player represents a seat in API responses
type Player struct {
	Name   string `json:"name"`
	Rack   string `json:"rack"`
	Points int    `json:"points"`
}

// Event represents one transcript line
type Event struct {
	Type      string    `json:"type"`
	Turn      int       `json:"turn"`
	Player    string    `json:"player,omitempty"`
	Tiles     string    `json:"tiles,omitempty"`
	Word      string    `json:"word,omitempty"`
	Score     int       `json:"score,omitempty"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// EventFromModel converts model.Event
func EventFromModel(e model.Event) Event {
	return Event{
		Type:      string(e.Type),
		Turn:      e.Turn,
		Player:    e.Player,
		Tiles:     e.Tiles.String(),
		Word:      e.Word,
		Score:     e.Score,
		Message:   e.Message,
		Timestamp: e.Timestamp,
	}
}

// Game is the full record of a game
type Game struct {
	ID            string         `json:"id"`
	State         string         `json:"state"`
	Turn          int            `json:"turn"`
	CurrentPlayer int            `json:"current_player"`
	Players       []Player       `json:"players"`
	Pool          map[string]int `json:"pool"`
	TilesInPool   int            `json:"tiles_in_pool"`
	Winner        *string        `json:"winner"`
	Seed          *uint64        `json:"seed,omitempty"`
	Events        []Event        `json:"events"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// GameFromModel converts model.Game
func GameFromModel(g *model.Game) Game {
	players := lo.Map(g.Players, func(p *model.Player, _ int) Player {
		return Player{Name: p.Name, Rack: p.Rack.String(), Points: p.Points}
	})
	pool := lo.MapKeys(g.Pool, func(_ int, l model.Letter) string {
		return l.String()
	})
	events := lo.Map(g.Events, func(e model.Event, _ int) Event {
		return EventFromModel(e)
	})

	return Game{
		ID:            string(g.ID),
		State:         string(g.State),
		Turn:          g.Turn,
		CurrentPlayer: g.CurrentPlayer,
		Players:       players,
		Pool:          pool,
		TilesInPool:   g.TilesInPool(),
		Winner:        winner(g.Winner),
		Seed:          g.Seed,
		Events:        events,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

// GameSummary is a game in listings
type GameSummary struct {
	ID        string         `json:"id"`
	State     string         `json:"state"`
	Turns     int            `json:"turns"`
	Scores    map[string]int `json:"scores"`
	Winner    *string        `json:"winner"`
	CreatedAt time.Time      `json:"created_at"`
}

// GameSummaryFromModel converts model.GameSummary
func GameSummaryFromModel(s model.GameSummary) GameSummary {
	return GameSummary{
		ID:        string(s.ID),
		State:     string(s.State),
		Turns:     s.Turns,
		Scores:    s.Scores,
		Winner:    winner(s.Winner),
		CreatedAt: s.CreatedAt,
	}
}

// GameList is the response for listing games
type GameList struct {
	Games []GameSummary `json:"games"`
}

// DeletedGame confirms a removed game. The API answers a delete with 204;
// the CLI prints this instead.
type DeletedGame struct {
	ID string `json:"id"`
}

// GameListFromModel converts a listing of model.GameSummary
func GameListFromModel(summaries []model.GameSummary) GameList {
	return GameList{Games: lo.Map(summaries, func(s model.GameSummary, _ int) GameSummary {
		return GameSummaryFromModel(s)
	})}
}

// Simulation is the aggregate of a batch of games
type Simulation = simulation.Summary

func winner(name string) *string {
	if name == "" {
		return nil
	}
	return &name
}
