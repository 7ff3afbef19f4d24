package storage

import (
	"context"

	"github.com/mcoot/wordtiles/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Dictionary operations
	GetDictionaryWords(ctx context.Context) ([]string, error)
	GetDictionaryFingerprint(ctx context.Context) (string, error)
	SaveDictionaryWords(ctx context.Context, words []string, fingerprint string) error

	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	ListGames(ctx context.Context, limit int) ([]model.GameSummary, error)
	DeleteGame(ctx context.Context, id model.GameID) error
}
