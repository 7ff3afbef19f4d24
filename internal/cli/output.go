package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"time"

	"github.com/mcoot/wordtiles/internal/api/response"
	"github.com/mcoot/wordtiles/internal/config"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
	errW   io.Writer
}

// NewOutput creates a new Output formatter writing results to w and errors
// to errW
func NewOutput(format string, w, errW io.Writer) *Output {
	return &Output{format: format, w: w, errW: errW}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == config.OutputJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == config.OutputJSON {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		_, _ = fmt.Fprintln(o.errW, string(data))
	} else {
		_, _ = fmt.Fprintf(o.errW, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(o.w, format, args...)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Health:
		o.printHealth(v)
	case response.Dictionary:
		o.printDictionary(v)
	case response.Solve:
		o.printSolve(v)
	case response.Score:
		o.printf("%s: %d points\n", v.Word, v.Score)
	case response.Game:
		o.printGame(v)
	case response.GameList:
		o.printGameList(v)
	case response.DeletedGame:
		o.printf("Deleted game %s\n", v.ID)
	case response.Simulation:
		o.printSimulation(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printHealth(h response.Health) {
	o.printf("Status: %s\n", h.Status)
	o.printf("Dictionary loaded: %t\n", h.DictionaryLoaded)
}

func (o *Output) printDictionary(d response.Dictionary) {
	if !d.Loaded {
		o.printf("Dictionary: not loaded\n")
		return
	}
	o.printf("Words: %d\n", d.WordCount)
	o.printf("Fingerprint: %s\n", d.Fingerprint)
}

func (o *Output) printSolve(s response.Solve) {
	if !s.Found {
		o.printf("%s: no word\n", s.Rack)
		return
	}
	o.printf("%s: %s for %d points\n", s.Rack, s.Word, s.Score)
	o.printf("Tiles: %s\n", s.Tiles)
	if s.Tier > 0 {
		o.printf("Dropped tiles: %d\n", s.Tier)
	}
}

func (o *Output) printGame(g response.Game) {
	o.printf("Game: %s\n", g.ID)
	o.printf("State: %s\n", g.State)
	o.printf("Turns: %d\n", g.Turn)
	if g.Seed != nil {
		o.printf("Seed: %d\n", *g.Seed)
	}

	o.printf("\nTranscript:\n")
	for _, e := range g.Events {
		o.printf("  %3d  %s\n", e.Turn, e.Message)
	}

	o.printf("\nScores:\n")
	for _, p := range g.Players {
		o.printf("  %s: %d points (rack %s)\n", p.Name, p.Points, p.Rack)
	}
	if g.State == "finished" {
		o.printf("\nWinner: %s\n", winnerLabel(g.Winner))
	}
}

func (o *Output) printGameList(l response.GameList) {
	if len(l.Games) == 0 {
		o.printf("No games\n")
		return
	}
	for _, g := range l.Games {
		o.printf("%s  %-8s  %3d turns  winner: %s\n", g.ID, g.State, g.Turns, winnerLabel(g.Winner))
	}
}

func (o *Output) printSimulation(s response.Simulation) {
	o.printf("Games: %d\n", s.Games)
	o.printf("Turns: %d\n", s.Turns)
	o.printf("Ties: %d\n", s.Ties)
	if len(s.Wins) > 0 {
		o.printf("Wins:\n")
		for _, name := range slices.Sorted(maps.Keys(s.Wins)) {
			o.printf("  %s: %d\n", name, s.Wins[name])
		}
	}
	o.printf("Average score: %.1f\n", s.AverageScore)
	o.printf("Max score: %d\n", s.MaxScore)
	if s.BestWord != "" {
		o.printf("Best word: %s for %d points (game %s)\n", s.BestWord, s.BestScore, s.BestGame)
	}
	o.printf("Elapsed: %s\n", s.Elapsed.Round(time.Millisecond))
}

func winnerLabel(winner *string) string {
	if winner == nil {
		return "tie"
	}
	return *winner
}
