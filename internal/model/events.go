package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventGameStarted   EventType = "game_started"
	EventStartTile     EventType = "start_tile"
	EventFirstPlayer   EventType = "first_player"
	EventTilesDrawn    EventType = "tiles_drawn"
	EventWordPlayed    EventType = "word_played"
	EventTilesExchange EventType = "tiles_exchanged"
	EventPassed        EventType = "passed"
	EventGameFinished  EventType = "game_finished"
)

// Event is one line of a game transcript
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Turn      int       `json:"turn"`
	Player    string    `json:"player,omitempty"`
	Tiles     Rack      `json:"tiles,omitempty"` // Tiles drawn, played or exchanged
	Word      string    `json:"word,omitempty"`
	Score     int       `json:"score,omitempty"`
	Message   string    `json:"message"`
}
