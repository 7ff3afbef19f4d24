package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/services/game"
	"github.com/mcoot/wordtiles/internal/web/templates/layout"
	"github.com/mcoot/wordtiles/internal/web/templates/pages"
)

const recentGames = 20

// GameHandler handles game pages
type GameHandler struct {
	gameController *game.Controller
}

// NewGameHandler creates a new GameHandler
func NewGameHandler(gameController *game.Controller) *GameHandler {
	return &GameHandler{gameController: gameController}
}

// List renders the most recent games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.gameController.ListGames(r.Context(), recentGames)
	if err != nil {
		renderError(w, r, err)
		return
	}
	render(w, r, http.StatusOK, pages.Games(pages.GamesData{
		PageData: layout.PageData{Title: "Games"},
		Games:    summaries,
	}))
}

// View renders the transcript of a game
func (h *GameHandler) View(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	g, err := h.gameController.GetGame(r.Context(), id)
	if err != nil {
		renderError(w, r, err)
		return
	}
	render(w, r, http.StatusOK, pages.Game(pages.GameData{
		PageData: layout.PageData{Title: "Game " + string(g.ID)},
		Game:     g,
	}))
}

// Create plays a game from the form and redirects to its transcript
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderStatus(w, r, http.StatusBadRequest, "Invalid form")
		return
	}

	opts := game.Options{}
	if raw := r.PostFormValue("players"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			renderStatus(w, r, http.StatusBadRequest, "Players must be a number")
			return
		}
		opts.Players = n
	}

	g, err := h.gameController.Play(r.Context(), opts)
	if err != nil {
		renderError(w, r, err)
		return
	}
	http.Redirect(w, r, "/games/"+string(g.ID), http.StatusSeeOther)
}
