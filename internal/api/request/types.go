package request

// SolveRequest is the request body for finding the best word of a rack
type SolveRequest struct {
	Rack string `json:"rack"`
}

// ScoreRequest is the request body for scoring a word
type ScoreRequest struct {
	Word string `json:"word"`
}

// CreateGameRequest is the request body for playing a game
type CreateGameRequest struct {
	Players int     `json:"players,omitempty"`
	Seed    *uint64 `json:"seed,omitempty"`
}

// SimulateRequest is the request body for playing a batch of games
type SimulateRequest struct {
	Games    int     `json:"games"`
	Parallel int     `json:"parallel,omitempty"`
	Players  int     `json:"players,omitempty"`
	Seed     *uint64 `json:"seed,omitempty"`
}
