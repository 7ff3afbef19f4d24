package dictionary

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"

	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/storage"
)

// Service owns the anagram index built from the loaded word list
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu          sync.RWMutex
	index       *Index
	fingerprint string
}

// New creates a new DictionaryService
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger.With(slog.String("component", "dictionary-service")),
	}
}

// LoadFromStorage loads dictionary words from storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetDictionaryWords(ctx)
	if err != nil {
		return err
	}
	fp, err := s.storage.GetDictionaryFingerprint(ctx)
	if err != nil {
		return err
	}
	s.install(words, fp)
	return nil
}

// LoadFromFile loads dictionary words from a file (one word per line)
func (s *Service) LoadFromFile(ctx context.Context, path string, enc Encoding) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	words, err := ReadWords(file, enc)
	if err != nil {
		return err
	}

	fp := Fingerprint(words)

	// Save to storage for future use, unless it already holds this list
	stored, err := s.storage.GetDictionaryFingerprint(ctx)
	if err != nil && !errors.Is(err, model.ErrDictionaryNotLoaded) {
		return err
	}
	if stored != fp {
		if err := s.storage.SaveDictionaryWords(ctx, words, fp); err != nil {
			return err
		}
		s.logger.Info("dictionary saved to storage",
			slog.String("path", path),
			slog.Int("words", len(words)),
		)
	}

	s.install(words, fp)
	return nil
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(words []string) error {
	s.install(words, Fingerprint(words))
	return nil
}

func (s *Service) install(words []string, fingerprint string) {
	index := Build(words)

	s.mu.Lock()
	s.index = index
	s.fingerprint = fingerprint
	s.mu.Unlock()

	s.logger.Info("dictionary loaded",
		slog.Int("words", len(words)),
		slog.Int("indexed", index.Len()),
		slog.String("fingerprint", fingerprint),
	)
}

// Index returns the current anagram index. Callers keep the snapshot they
// got even if the dictionary is reloaded meanwhile.
func (s *Service) Index() (*Index, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.index == nil {
		return nil, model.ErrDictionaryNotLoaded
	}
	return s.index, nil
}

// IsValidWord checks if a playable word exists in the dictionary
func (s *Service) IsValidWord(word string) bool {
	index, err := s.Index()
	if err != nil {
		return false
	}
	return index.Contains(word)
}

// IsLoaded returns whether the dictionary has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index != nil
}

// WordCount returns the number of indexed words
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.index == nil {
		return 0
	}
	return s.index.Len()
}

// Fingerprint returns the digest of the loaded word list
func (s *Service) Fingerprint() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fingerprint
}

// Interface check
type ServiceInterface interface {
	Index() (*Index, error)
	IsValidWord(word string) bool
	IsLoaded() bool
	WordCount() int
	Fingerprint() string
	LoadFromStorage(ctx context.Context) error
	LoadFromFile(ctx context.Context, path string, enc Encoding) error
	LoadWords(words []string) error
}

var _ ServiceInterface = (*Service)(nil)
