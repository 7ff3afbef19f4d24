package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordtiles/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.GameTTL = time.Hour
	cfg.DictionaryChunk = 2

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func newGame(id string, createdAt time.Time) *model.Game {
	return &model.Game{
		ID:    model.GameID(id),
		State: model.GameStateFinished,
		Players: []*model.Player{
			{Name: "1", Rack: model.Rack{'A', model.Blank}, Points: 21},
			{Name: "2", Rack: model.Rack{}, Points: 9},
		},
		Turn: 6,
		Pool: map[model.Letter]int{'E': 2, model.Blank: 1},
		Events: []model.Event{
			{Type: model.EventWordPlayed, Player: "1", Word: "ZÈBRE", Score: 16, Tiles: model.Rack{'Z', 'E', 'B', 'R', 'E'}},
		},
		Winner:    "1",
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

// Game tests

func (s *StorageSuite) TestSaveAndGetGame() {
	created := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	game := newGame("game-1", created)

	err := s.storage.SaveGame(s.ctx, game)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(game.ID, retrieved.ID)
	s.Equal(game.State, retrieved.State)
	s.Equal(model.Rack{'A', model.Blank}, retrieved.Players[0].Rack)
	s.Equal(21, retrieved.Players[0].Points)
	s.Equal(2, retrieved.Pool['E'])
	s.Equal(1, retrieved.Pool[model.Blank])
	s.Require().Len(retrieved.Events, 1)
	s.Equal("ZÈBRE", retrieved.Events[0].Word)
	s.Equal(model.Rack{'Z', 'E', 'B', 'R', 'E'}, retrieved.Events[0].Tiles)
	s.True(created.Equal(retrieved.CreatedAt))
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestGameTTL() {
	_ = s.storage.SaveGame(s.ctx, newGame("game-1", time.Now()))

	ttl := s.mini.TTL(gameKey("game-1"))
	s.True(ttl > 0, "Game should have TTL")
}

func (s *StorageSuite) TestDeleteGame() {
	_ = s.storage.SaveGame(s.ctx, newGame("game-1", time.Now()))

	err := s.storage.DeleteGame(s.ctx, "game-1")
	s.Require().NoError(err)

	_, err = s.storage.GetGame(s.ctx, "game-1")
	s.ErrorIs(err, model.ErrGameNotFound)

	summaries, err := s.storage.ListGames(s.ctx, 0)
	s.Require().NoError(err)
	s.Empty(summaries)
}

func (s *StorageSuite) TestListGamesNewestFirst() {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	_ = s.storage.SaveGame(s.ctx, newGame("old", base))
	_ = s.storage.SaveGame(s.ctx, newGame("new", base.Add(time.Hour)))
	_ = s.storage.SaveGame(s.ctx, newGame("mid", base.Add(time.Minute)))

	summaries, err := s.storage.ListGames(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(summaries, 3)
	s.Equal(model.GameID("new"), summaries[0].ID)
	s.Equal(model.GameID("mid"), summaries[1].ID)
	s.Equal(model.GameID("old"), summaries[2].ID)
	s.Equal(21, summaries[0].Scores["1"])
	s.Equal("1", summaries[0].Winner)
}

func (s *StorageSuite) TestListGamesLimit() {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		_ = s.storage.SaveGame(s.ctx, newGame(id, base.Add(time.Duration(i)*time.Second)))
	}

	summaries, err := s.storage.ListGames(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(summaries, 2)
	s.Equal(model.GameID("c"), summaries[0].ID)
	s.Equal(model.GameID("b"), summaries[1].ID)
}

func (s *StorageSuite) TestListGamesSkipsExpired() {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	_ = s.storage.SaveGame(s.ctx, newGame("game-1", base))

	s.mini.FastForward(2 * time.Hour)

	summaries, err := s.storage.ListGames(s.ctx, 0)
	s.Require().NoError(err)
	s.Empty(summaries)
}

// Dictionary tests

func (s *StorageSuite) TestDictionaryNotLoaded() {
	_, err := s.storage.GetDictionaryWords(s.ctx)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)

	_, err = s.storage.GetDictionaryFingerprint(s.ctx)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *StorageSuite) TestSaveAndGetDictionaryWordsKeepsOrder() {
	// Chunk size is 2 so this spans several RPUSH commands
	words := []string{"zèbre", "abc", "été", "ete", "mot"}

	err := s.storage.SaveDictionaryWords(s.ctx, words, "fp-1")
	s.Require().NoError(err)

	retrieved, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Equal(words, retrieved)

	fp, err := s.storage.GetDictionaryFingerprint(s.ctx)
	s.Require().NoError(err)
	s.Equal("fp-1", fp)
}

func (s *StorageSuite) TestSaveDictionaryReplacesPrevious() {
	_ = s.storage.SaveDictionaryWords(s.ctx, []string{"old", "words", "here"}, "fp-old")
	_ = s.storage.SaveDictionaryWords(s.ctx, []string{"new"}, "fp-new")

	retrieved, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"new"}, retrieved)

	fp, _ := s.storage.GetDictionaryFingerprint(s.ctx)
	s.Equal("fp-new", fp)
}

func (s *StorageSuite) TestDictionaryHasNoTTL() {
	_ = s.storage.SaveDictionaryWords(s.ctx, []string{"abc"}, "fp")

	s.Equal(time.Duration(0), s.mini.TTL(dictionaryKey()))
}
