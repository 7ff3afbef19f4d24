package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/wordtiles/internal/api/request"
	"github.com/mcoot/wordtiles/internal/api/response"
	"github.com/mcoot/wordtiles/internal/services/dictionary"
	"github.com/mcoot/wordtiles/internal/services/scoring"
	"github.com/mcoot/wordtiles/internal/services/solver"
)

// FinderSource builds a solver over the current dictionary
type FinderSource interface {
	Finder() (*solver.Finder, error)
}

// SolverHandler handles word search and scoring endpoints
type SolverHandler struct {
	finders    FinderSource
	table      *scoring.Table
	dictionary dictionary.ServiceInterface
}

// NewSolverHandler creates a new solver handler
func NewSolverHandler(finders FinderSource, table *scoring.Table, dict dictionary.ServiceInterface) *SolverHandler {
	return &SolverHandler{
		finders:    finders,
		table:      table,
		dictionary: dict,
	}
}

// Dictionary handles GET /api/v1/dictionary
func (h *SolverHandler) Dictionary(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.Dictionary{
		Loaded:      h.dictionary.IsLoaded(),
		WordCount:   h.dictionary.WordCount(),
		Fingerprint: h.dictionary.Fingerprint(),
	})
}

// Solve handles POST /api/v1/solve
func (h *SolverHandler) Solve(w http.ResponseWriter, r *http.Request) {
	var req request.SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	rack, err := solver.ParseRack(req.Rack)
	if err != nil {
		WriteError(w, err)
		return
	}

	finder, err := h.finders.Finder()
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := finder.FindBest(rack)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SolveFromResult(rack, res))
}

// Score handles POST /api/v1/score
func (h *SolverHandler) Score(w http.ResponseWriter, r *http.Request) {
	var req request.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Word == "" {
		WriteError(w, NewInvalidRequestError("word is required"))
		return
	}

	points, err := h.table.CountPoints(req.Word)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Score{Word: req.Word, Score: points})
}
