package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/wordtiles/internal/config"
	"github.com/mcoot/wordtiles/internal/dependencies/clock"
	"github.com/mcoot/wordtiles/internal/dependencies/random"
	"github.com/mcoot/wordtiles/internal/services/dictionary"
	"github.com/mcoot/wordtiles/internal/services/game"
	"github.com/mcoot/wordtiles/internal/services/scoring"
	"github.com/mcoot/wordtiles/internal/services/simulation"
	"github.com/mcoot/wordtiles/internal/services/solver"
	"github.com/mcoot/wordtiles/internal/services/tiles"
	"github.com/mcoot/wordtiles/internal/storage"
	"github.com/mcoot/wordtiles/internal/storage/memory"
	redisstorage "github.com/mcoot/wordtiles/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = config.StorageMemory
	StorageTypeRedis  = config.StorageRedis
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Tiles
	Distribution *tiles.Distribution
	ScoreTable   *scoring.Table

	// Services
	DictionaryService *dictionary.Service
	GameController    *game.Controller

	dictionaryPath     string
	dictionaryEncoding dictionary.Encoding
	logger             *slog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// DictionaryPath is the word list loaded by LoadDictionary (optional)
	// If empty, LoadDictionary falls back to the words already in storage
	DictionaryPath string
	// DictionaryEncoding is the character set of DictionaryPath
	// If empty, defaults to UTF-8
	DictionaryEncoding dictionary.Encoding
	// DistributionPath is the letter distribution CSV (required unless
	// Distribution is set)
	DistributionPath string
	// Distribution overrides DistributionPath when set
	Distribution *tiles.Distribution
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// FromConfig maps resolved application configuration onto factory Config
func FromConfig(cfg *config.Config, logger *slog.Logger) (Config, error) {
	enc, err := cfg.DictionaryEncoding()
	if err != nil {
		return Config{}, err
	}
	fc := Config{
		DictionaryPath:     cfg.Dictionary,
		DictionaryEncoding: enc,
		DistributionPath:   cfg.Distribution,
		Logger:             logger,
		StorageType:        cfg.Storage,
	}
	if cfg.Storage == StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		fc.RedisConfig = &redisCfg
	}
	return fc, nil
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	dist := cfg.Distribution
	if dist == nil {
		if cfg.DistributionPath == "" {
			return nil, errors.New("a letter distribution is required")
		}
		loaded, err := tiles.LoadDistributionFile(cfg.DistributionPath)
		if err != nil {
			return nil, err
		}
		dist = loaded
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	app, err := newWithDependencies(store, clock.New(), random.New(), dist, logger)
	if err != nil {
		return nil, err
	}
	app.dictionaryPath = cfg.DictionaryPath
	app.dictionaryEncoding = cfg.DictionaryEncoding
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, dist *tiles.Distribution, logger *slog.Logger) (*App, error) {
	table, err := dist.ScoreTable()
	if err != nil {
		return nil, err
	}

	dictService := dictionary.New(store, logger)
	gameController := game.NewController(store, dictService, dist, clk, rnd, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		Distribution:      dist,
		ScoreTable:        table,
		DictionaryService: dictService,
		GameController:    gameController,
		logger:            logger,
	}, nil
}

// LoadDictionary loads the configured word list, or the one cached in
// storage when no path is configured
func (a *App) LoadDictionary(ctx context.Context) error {
	if a.dictionaryPath == "" {
		return a.DictionaryService.LoadFromStorage(ctx)
	}
	return a.DictionaryService.LoadFromFile(ctx, a.dictionaryPath, a.dictionaryEncoding)
}

// Finder returns a solver over the current dictionary
func (a *App) Finder() (*solver.Finder, error) {
	index, err := a.DictionaryService.Index()
	if err != nil {
		return nil, err
	}
	return solver.New(a.ScoreTable, index, solver.WithLogger(a.logger)), nil
}

// Runner returns a simulation runner playing through the game controller
func (a *App) Runner(opts ...simulation.Option) *simulation.Runner {
	return simulation.NewRunner(a.GameController, a.logger, opts...)
}

// Close releases the storage backend
func (a *App) Close() error {
	if closer, ok := a.Storage.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("close storage: %w", err)
		}
	}
	return nil
}
