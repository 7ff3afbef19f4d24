package dictionary

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/storage/memory"
	"github.com/mcoot/wordtiles/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) writeFile(content []byte) string {
	path := filepath.Join(s.T().TempDir(), "words.txt")
	s.Require().NoError(os.WriteFile(path, content, 0o600))
	return path
}

func (s *ServiceSuite) TestIsNotLoadedByDefault() {
	s.False(s.service.IsLoaded())
	s.Equal(0, s.service.WordCount())

	_, err := s.service.Index()
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *ServiceSuite) TestLoadWords() {
	err := s.service.LoadWords([]string{"pomme", "banane", "cerise"})
	s.Require().NoError(err)

	s.True(s.service.IsLoaded())
	s.Equal(3, s.service.WordCount())
	s.Equal(Fingerprint([]string{"pomme", "banane", "cerise"}), s.service.Fingerprint())
}

func (s *ServiceSuite) TestWordCountSkipsUnplayableWords() {
	_ = s.service.LoadWords([]string{"a", "ab", "anticonstitutionnellement"})

	s.Equal(1, s.service.WordCount())
}

func (s *ServiceSuite) TestIsValidWordAfterLoading() {
	_ = s.service.LoadWords([]string{"pomme", "zèbre"})

	s.True(s.service.IsValidWord("pomme"))
	s.True(s.service.IsValidWord("ZEBRE"))
	s.True(s.service.IsValidWord("Zèbre"))
	s.False(s.service.IsValidWord("poire"))
}

func (s *ServiceSuite) TestIsValidWordWhenNotLoaded() {
	s.False(s.service.IsValidWord("pomme"))
}

func (s *ServiceSuite) TestIndexSnapshotSurvivesReload() {
	_ = s.service.LoadWords([]string{"mot"})
	first, err := s.service.Index()
	s.Require().NoError(err)

	_ = s.service.LoadWords([]string{"tome"})

	s.True(first.Contains("mot"))
	s.False(s.service.IsValidWord("mot"))
	s.True(s.service.IsValidWord("tome"))
}

func (s *ServiceSuite) TestLoadFromStorage() {
	words := []string{"test", "mot", "exemple"}
	err := s.storage.SaveDictionaryWords(s.ctx, words, "fp-1")
	s.Require().NoError(err)

	err = s.service.LoadFromStorage(s.ctx)
	s.Require().NoError(err)

	s.True(s.service.IsLoaded())
	s.Equal(3, s.service.WordCount())
	s.Equal("fp-1", s.service.Fingerprint())
	s.True(s.service.IsValidWord("test"))
}

func (s *ServiceSuite) TestLoadFromStorageWhenEmpty() {
	err := s.service.LoadFromStorage(s.ctx)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *ServiceSuite) TestLoadFromFileSavesToStorage() {
	path := s.writeFile([]byte("zèbre\nmot\n\n"))

	err := s.service.LoadFromFile(s.ctx, path, EncodingUTF8)
	s.Require().NoError(err)

	s.Equal(2, s.service.WordCount())
	stored, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"zèbre", "mot"}, stored)

	fp, err := s.storage.GetDictionaryFingerprint(s.ctx)
	s.Require().NoError(err)
	s.Equal(Fingerprint([]string{"zèbre", "mot"}), fp)
}

func (s *ServiceSuite) TestLoadFromFileLatin1() {
	path := s.writeFile([]byte{'c', 'a', 'f', 0xE9, '\n'})

	err := s.service.LoadFromFile(s.ctx, path, EncodingLatin1)
	s.Require().NoError(err)

	s.True(s.service.IsValidWord("café"))
	s.True(s.service.IsValidWord("CAFE"))
}

func (s *ServiceSuite) TestLoadFromFileSkipsSaveWhenFingerprintMatches() {
	words := []string{"mot", "tome"}
	// Storage already claims to hold this exact list
	err := s.storage.SaveDictionaryWords(s.ctx, []string{"sentinel"}, Fingerprint(words))
	s.Require().NoError(err)

	path := s.writeFile([]byte("mot\ntome\n"))
	err = s.service.LoadFromFile(s.ctx, path, EncodingUTF8)
	s.Require().NoError(err)

	stored, _ := s.storage.GetDictionaryWords(s.ctx)
	s.Equal([]string{"sentinel"}, stored)
	s.True(s.service.IsValidWord("tome"))
}

func (s *ServiceSuite) TestLoadFromFileMissing() {
	err := s.service.LoadFromFile(s.ctx, filepath.Join(s.T().TempDir(), "nope.txt"), EncodingUTF8)
	s.Error(err)
	s.False(s.service.IsLoaded())
}
