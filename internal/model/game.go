package model

import "time"

// GameID uniquely identifies a game
type GameID string

// GameState represents the current phase of a game
type GameState string

const (
	GameStateNew      GameState = "new"      // Created, no tiles drawn yet
	GameStatePlaying  GameState = "playing"  // Racks dealt, turns in progress
	GameStateFinished GameState = "finished" // Pool exhausted or players stuck
)

// Game is the full record of a simulated game
type Game struct {
	ID      GameID    `json:"id"`
	State   GameState `json:"state"`
	Players []*Player `json:"players"`

	// Turn management
	Turn          int `json:"turn"`           // Number of turns played
	CurrentPlayer int `json:"current_player"` // Index into Players
	NonScoring    int `json:"non_scoring"`    // Consecutive turns without a word

	// Tiles left in the pool, per letter
	Pool map[Letter]int `json:"pool"`

	Events []Event `json:"events"`
	Winner string  `json:"winner"` // Empty while playing or on a tie
	Seed   *uint64 `json:"seed,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Current returns the player whose turn it is
func (g *Game) Current() *Player {
	if len(g.Players) == 0 {
		return nil
	}
	return g.Players[g.CurrentPlayer]
}

// Advance passes the turn to the next player
func (g *Game) Advance() {
	g.Turn++
	if len(g.Players) > 0 {
		g.CurrentPlayer = (g.CurrentPlayer + 1) % len(g.Players)
	}
}

// TilesInPool returns the number of tiles left to draw
func (g *Game) TilesInPool() int {
	n := 0
	for _, c := range g.Pool {
		n += c
	}
	return n
}

// IsOver returns true once the game has finished
func (g *Game) IsOver() bool {
	return g.State == GameStateFinished
}

// Leader returns the name of the player with the most points, or empty
// string if the top score is shared
func (g *Game) Leader() string {
	best, name, tie := -1, "", false
	for _, p := range g.Players {
		switch {
		case p.Points > best:
			best, name, tie = p.Points, p.Name, false
		case p.Points == best:
			tie = true
		}
	}
	if tie {
		return ""
	}
	return name
}

// BestPlay returns the highest scoring word event of the game
func (g *Game) BestPlay() (Event, bool) {
	var best Event
	found := false
	for _, e := range g.Events {
		if e.Type == EventWordPlayed && (!found || e.Score > best.Score) {
			best, found = e, true
		}
	}
	return best, found
}

// GameSummary is a lightweight record of a game for listings
type GameSummary struct {
	ID        GameID         `json:"id"`
	State     GameState      `json:"state"`
	Turns     int            `json:"turns"`
	Scores    map[string]int `json:"scores"`
	Winner    string         `json:"winner"`
	CreatedAt time.Time      `json:"created_at"`
}

// Summary condenses the game into a GameSummary
func (g *Game) Summary() GameSummary {
	scores := make(map[string]int, len(g.Players))
	for _, p := range g.Players {
		scores[p.Name] = p.Points
	}
	return GameSummary{
		ID:        g.ID,
		State:     g.State,
		Turns:     g.Turn,
		Scores:    scores,
		Winner:    g.Winner,
		CreatedAt: g.CreatedAt,
	}
}
