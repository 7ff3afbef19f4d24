package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordtiles/internal/api/apierr"
	"github.com/mcoot/wordtiles/internal/api/handler"
	"github.com/mcoot/wordtiles/internal/api/middleware"
	"github.com/mcoot/wordtiles/internal/api/response"
	"github.com/mcoot/wordtiles/internal/factory"
	sharedmw "github.com/mcoot/wordtiles/internal/middleware"
)

const apiPrefix = "/api/v1"

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger *slog.Logger
	App    *factory.App
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	app := cfg.App

	// Create handlers
	solverHandler := handler.NewSolverHandler(app, app.ScoreTable, app.DictionaryService)
	gameHandler := handler.NewGameHandler(app.GameController)
	simulationHandler := handler.NewSimulationHandler(app.Runner)

	// Routes hang off the root router with full paths. A subrouter's
	// prefix matcher resets mux's method mismatch, turning 405 into 404.
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(sharedmw.Logging(cfg.Logger))
	r.MethodNotAllowedHandler = sharedmw.Logging(cfg.Logger)(http.HandlerFunc(methodNotAllowed))

	// Word routes
	r.HandleFunc(apiPrefix+"/dictionary", solverHandler.Dictionary).Methods(http.MethodGet)
	r.HandleFunc(apiPrefix+"/solve", solverHandler.Solve).Methods(http.MethodPost)
	r.HandleFunc(apiPrefix+"/score", solverHandler.Score).Methods(http.MethodPost)

	// Game routes
	r.HandleFunc(apiPrefix+"/games", gameHandler.Create).Methods(http.MethodPost)
	r.HandleFunc(apiPrefix+"/games", gameHandler.List).Methods(http.MethodGet)
	r.HandleFunc(apiPrefix+"/games/{id}", gameHandler.Get).Methods(http.MethodGet)
	r.HandleFunc(apiPrefix+"/games/{id}", gameHandler.Delete).Methods(http.MethodDelete)
	r.HandleFunc(apiPrefix+"/simulations", simulationHandler.Run).Methods(http.MethodPost)

	// Health check endpoint
	r.HandleFunc(apiPrefix+"/health", healthHandler(app)).Methods(http.MethodGet)

	return r
}

func healthHandler(app *factory.App) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		response.JSON(w, http.StatusOK, response.Health{
			Status:           "ok",
			DictionaryLoaded: app.DictionaryService.IsLoaded(),
		})
	}
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	handler.WriteError(w, apierr.NewMethodNotAllowedError(r.Method))
}
