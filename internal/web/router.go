package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordtiles/internal/factory"
	"github.com/mcoot/wordtiles/internal/web/handler"
	"github.com/mcoot/wordtiles/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger    *slog.Logger
	App       *factory.App
	StaticDir string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Apply global middleware to all routes
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	// Create handlers
	solverHandler := handler.NewSolverHandler(cfg.App, cfg.App.DictionaryService)
	gameHandler := handler.NewGameHandler(cfg.App.GameController)

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	r.HandleFunc("/", solverHandler.Home).Methods(http.MethodGet)
	r.HandleFunc("/games", gameHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/games", gameHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/games/{id}", gameHandler.View).Methods(http.MethodGet)

	return r
}
