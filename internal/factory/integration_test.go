package factory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordtiles/internal/config"
	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/services/dictionary"
	"github.com/mcoot/wordtiles/internal/services/game"
	"github.com/mcoot/wordtiles/internal/services/simulation"
	"github.com/mcoot/wordtiles/internal/services/solver"
	"github.com/mcoot/wordtiles/internal/testutil"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
	s.Require().NoError(s.app.LoadTestDictionary())
}

// Test: Solve a rack through the wired finder
func (s *IntegrationSuite) TestFinderUsesLoadedDictionary() {
	finder, err := s.app.Finder()
	s.Require().NoError(err)

	rack, err := model.ParseRack("ZEBRE?")
	s.Require().NoError(err)
	res, err := finder.FindBest(rack)
	s.Require().NoError(err)

	s.Require().True(res.Found())
	s.Equal("zèbre", res.Word)
	s.Equal(16, res.Score)
	s.Equal(1, res.Tier)

	same, err := solver.FindBest(s.app.ScoreTable, mustIndex(s), rack)
	s.Require().NoError(err)
	s.Equal(res, same)
}

// Test: Complete game flow from setup to storage
func (s *IntegrationSuite) TestCompleteGameFlow() {
	s.app.MockRandom.QueueString("GAME01")
	seed := uint64(3)

	played, err := s.app.GameController.Play(s.ctx, game.Options{Seed: &seed})
	s.Require().NoError(err)
	s.Equal(model.GameID("GAME01"), played.ID)
	s.True(played.IsOver())

	stored, err := s.app.GameController.GetGame(s.ctx, "GAME01")
	s.Require().NoError(err)
	s.Equal(played.Events, stored.Events)

	games, err := s.app.GameController.ListGames(s.ctx, 0)
	s.Require().NoError(err)
	s.Len(games, 1)
}

// Test: Simulate a batch through the runner
func (s *IntegrationSuite) TestRunnerPlaysBatch() {
	s.app.MockRandom.QueueString("GAME01", "GAME02", "GAME03", "GAME04")
	summary, err := s.app.Runner(simulation.WithSeed(10)).Run(s.ctx, 4, 1)
	s.Require().NoError(err)
	s.Equal(4, summary.Games)
	s.Equal(4, summary.Ties+sumWins(summary.Wins))
}

func (s *IntegrationSuite) TestFinderWithoutDictionary() {
	app := NewTestApp()
	_, err := app.Finder()
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *IntegrationSuite) TestNewFromConfigWithFiles() {
	root := filepath.Join("..", "..", "data")
	cfg := &config.Config{
		Dictionary:   filepath.Join(root, "words.txt"),
		Distribution: filepath.Join(root, "french_distribution.csv"),
		Encoding:     "utf8",
		Storage:      config.StorageMemory,
	}

	fc, err := FromConfig(cfg, testutil.NopLogger())
	s.Require().NoError(err)
	app, err := New(fc)
	s.Require().NoError(err)
	defer app.Close()

	s.Equal(102, app.Distribution.TotalTiles())
	s.Require().NoError(app.LoadDictionary(s.ctx))
	s.True(app.DictionaryService.IsValidWord("ZEBRE"))
}

func (s *IntegrationSuite) TestRedisStorageSharesDictionary() {
	mr := miniredis.RunT(s.T())
	path := filepath.Join(s.T().TempDir(), "words.txt")
	s.Require().NoError(os.WriteFile(path, []byte("zèbre\nrat\n"), 0o600))

	cfg := &config.Config{
		Dictionary: path,
		Encoding:   "utf-8",
		Storage:    config.StorageRedis,
		RedisURL:   "redis://" + mr.Addr(),
	}
	fc, err := FromConfig(cfg, testutil.NopLogger())
	s.Require().NoError(err)
	fc.Distribution = TestDistribution()

	first, err := New(fc)
	s.Require().NoError(err)
	defer first.Close()
	s.Require().NoError(first.LoadDictionary(s.ctx))

	// A second instance without a word list picks the words up from Redis
	fc.DictionaryPath = ""
	second, err := New(fc)
	s.Require().NoError(err)
	defer second.Close()
	s.Require().NoError(second.LoadDictionary(s.ctx))
	s.Equal(2, second.DictionaryService.WordCount())
	s.Equal(first.DictionaryService.Fingerprint(), second.DictionaryService.Fingerprint())
}

func (s *IntegrationSuite) TestNewRequiresDistribution() {
	_, err := New(Config{})
	s.Error(err)

	_, err = New(Config{Distribution: TestDistribution(), StorageType: "sqlite"})
	s.Error(err)

	_, err = New(Config{Distribution: TestDistribution(), StorageType: StorageTypeRedis})
	s.Error(err)
}

func mustIndex(s *IntegrationSuite) *dictionary.Index {
	index, err := s.app.DictionaryService.Index()
	s.Require().NoError(err)
	return index
}

func sumWins(wins map[string]int) int {
	n := 0
	for _, w := range wins {
		n += w
	}
	return n
}
