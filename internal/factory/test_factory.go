package factory

import (
	"time"

	"github.com/mcoot/wordtiles/internal/dependencies/mocks"
	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/services/tiles"
	"github.com/mcoot/wordtiles/internal/storage/memory"
	"github.com/mcoot/wordtiles/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// TestDistribution is a small French-like tile set: A1 B3 E1 L1 R1 S1 T1 Z10
// and two blanks
func TestDistribution() *tiles.Distribution {
	dist, err := tiles.NewDistribution([]model.LetterValue{
		{Letter: 'A', Count: 9, Points: 1},
		{Letter: 'B', Count: 2, Points: 3},
		{Letter: 'E', Count: 15, Points: 1},
		{Letter: 'L', Count: 5, Points: 1},
		{Letter: 'R', Count: 6, Points: 1},
		{Letter: 'S', Count: 6, Points: 1},
		{Letter: 'T', Count: 6, Points: 1},
		{Letter: 'Z', Count: 1, Points: 10},
		{Letter: model.Blank, Count: 2, Points: 0},
	})
	if err != nil {
		panic(err)
	}
	return dist
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app, err := newWithDependencies(store, mockClock, mockRandom, TestDistribution(), testutil.NopLogger())
	if err != nil {
		panic(err)
	}

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// TestWords is the word list loaded by LoadTestDictionary
var TestWords = []string{
	"as", "ta", "le", "la", "es", "et", "ré", "sa", "ze",
	"art", "bars", "bas", "bat", "bel", "bât", "été", "lés", "rat", "rats",
	"sel", "tas", "tel", "ère",
	"abats", "arbre", "étals", "stère", "zèbre", "zest", "zestes",
	"balte", "blasé", "bêtas", "salter", "tables",
}

// LoadTestDictionary loads a small dictionary for testing
func (t *TestApp) LoadTestDictionary() error {
	return t.DictionaryService.LoadWords(TestWords)
}
