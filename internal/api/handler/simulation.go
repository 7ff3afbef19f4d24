package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/wordtiles/internal/api/request"
	"github.com/mcoot/wordtiles/internal/api/response"
	"github.com/mcoot/wordtiles/internal/services/simulation"
)

// Simulation request bounds
const (
	MaxSimulatedGames = 500
	DefaultParallel   = 4
)

// RunnerFactory builds a simulation runner for one batch
type RunnerFactory func(opts ...simulation.Option) *simulation.Runner

// SimulationHandler handles batch simulation endpoints
type SimulationHandler struct {
	runners RunnerFactory
}

// NewSimulationHandler creates a new simulation handler
func NewSimulationHandler(runners RunnerFactory) *SimulationHandler {
	return &SimulationHandler{runners: runners}
}

// Run handles POST /api/v1/simulations
func (h *SimulationHandler) Run(w http.ResponseWriter, r *http.Request) {
	var req request.SimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Games <= 0 || req.Games > MaxSimulatedGames {
		WriteError(w, NewInvalidRequestError("games must be between 1 and 500"))
		return
	}
	if req.Parallel < 0 {
		WriteError(w, NewInvalidRequestError("parallel must not be negative"))
		return
	}

	parallel := req.Parallel
	if parallel == 0 {
		parallel = DefaultParallel
	}

	var opts []simulation.Option
	if req.Players != 0 {
		opts = append(opts, simulation.WithPlayers(req.Players))
	}
	if req.Seed != nil {
		opts = append(opts, simulation.WithSeed(*req.Seed))
	}

	summary, err := h.runners(opts...).Run(r.Context(), req.Games, parallel)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Simulation(*summary))
}
