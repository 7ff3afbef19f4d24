package handler

import (
	"errors"
	"net/http"

	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/services/dictionary"
	"github.com/mcoot/wordtiles/internal/services/solver"
	"github.com/mcoot/wordtiles/internal/web/templates/layout"
	"github.com/mcoot/wordtiles/internal/web/templates/pages"
)

// FinderSource builds a solver over the current dictionary
type FinderSource interface {
	Finder() (*solver.Finder, error)
}

// SolverHandler handles the solver page
type SolverHandler struct {
	finders    FinderSource
	dictionary dictionary.ServiceInterface
}

// NewSolverHandler creates a new SolverHandler
func NewSolverHandler(finders FinderSource, dict dictionary.ServiceInterface) *SolverHandler {
	return &SolverHandler{finders: finders, dictionary: dict}
}

// Home renders the solver form, and the best word when ?rack= is given
func (h *SolverHandler) Home(w http.ResponseWriter, r *http.Request) {
	data := pages.SolverData{
		PageData:  layout.PageData{Title: "Solver"},
		Rack:      r.URL.Query().Get("rack"),
		WordCount: h.dictionary.WordCount(),
	}
	if data.Rack == "" {
		render(w, r, http.StatusOK, pages.Solver(data))
		return
	}

	res, err := h.solve(data.Rack)
	if err != nil {
		if errors.Is(err, model.ErrDictionaryNotLoaded) {
			renderError(w, r, err)
			return
		}
		// Bad racks are shown on the form
		data.Error = rackMessage(err)
		render(w, r, http.StatusBadRequest, pages.Solver(data))
		return
	}

	data.Result = &res
	render(w, r, http.StatusOK, pages.Solver(data))
}

func (h *SolverHandler) solve(text string) (solver.Result, error) {
	rack, err := solver.ParseRack(text)
	if err != nil {
		return solver.Result{}, err
	}
	finder, err := h.finders.Finder()
	if err != nil {
		return solver.Result{}, err
	}
	return finder.FindBest(rack)
}

func rackMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrRackTooLarge):
		return "A rack holds at most 7 tiles."
	case errors.Is(err, model.ErrTooManyBlanks):
		return "A rack holds at most 2 blanks."
	case errors.Is(err, model.ErrUnknownLetter):
		return "That letter is not part of the tile set."
	default:
		return "Racks may only hold letters and ? blanks."
	}
}
