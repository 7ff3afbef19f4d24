package handler

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"

	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/web/templates/layout"
	"github.com/mcoot/wordtiles/internal/web/templates/pages"
)

// render writes a component as an HTML response
func render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := c.Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// renderStatus writes the error page with a status and message
func renderStatus(w http.ResponseWriter, r *http.Request, status int, message string) {
	render(w, r, status, pages.Error(pages.ErrorData{
		PageData: layout.PageData{Title: "Error"},
		Status:   status,
		Message:  message,
	}))
}

// renderError maps an error to an error page
func renderError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, model.ErrGameNotFound):
		renderStatus(w, r, http.StatusNotFound, "Game not found")
	case errors.Is(err, model.ErrDictionaryNotLoaded):
		renderStatus(w, r, http.StatusServiceUnavailable, "The dictionary is not loaded yet")
	case errors.Is(err, model.ErrInsufficientPlayers), errors.Is(err, model.ErrPoolTooSmall):
		renderStatus(w, r, http.StatusBadRequest, "Cannot start a game with that many players")
	default:
		renderStatus(w, r, http.StatusInternalServerError, "Something went wrong")
	}
}
