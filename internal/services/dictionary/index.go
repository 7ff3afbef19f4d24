package dictionary

import (
	"slices"
	"strings"
	"unicode"

	"github.com/mcoot/wordtiles/internal/model"
)

// Index groups dictionary words by length and anagram key.
// It is immutable once built and safe for concurrent readers.
type Index struct {
	buckets map[int]map[string][]string
	words   int
}

// Key returns the anagram key of a multiset of letters: the letters sorted
// and joined. Two words are anagrams iff their keys are equal.
func Key(letters []model.Letter) string {
	sorted := slices.Clone(letters)
	slices.Sort(sorted)

	var sb strings.Builder
	sb.Grow(len(sorted))
	for _, l := range sorted {
		sb.WriteRune(rune(l))
	}
	return sb.String()
}

// Build indexes words that a rack could ever form: between MinWordLength and
// RackSize letters once folded, and made of letters only. Other words are
// dropped silently. Spellings sharing a key keep their first-seen order.
func Build(words []string) *Index {
	ix := &Index{buckets: make(map[int]map[string][]string)}
	for _, word := range words {
		ix.add(strings.TrimSpace(word))
	}
	return ix
}

func (ix *Index) add(word string) {
	letters := FoldLetters(word)
	n := len(letters)
	if n < model.MinWordLength || n > model.RackSize {
		return
	}
	for _, l := range letters {
		if !unicode.IsLetter(rune(l)) {
			return
		}
	}

	key := Key(letters)
	byKey, ok := ix.buckets[n]
	if !ok {
		byKey = make(map[string][]string)
		ix.buckets[n] = byKey
	}
	if slices.Contains(byKey[key], word) {
		return
	}
	byKey[key] = append(byKey[key], word)
	ix.words++
}

// Lookup returns the words spelled by exactly these letters, in insertion
// order. The returned slice is shared and must not be modified.
func (ix *Index) Lookup(letters []model.Letter) ([]string, bool) {
	if len(letters) < model.MinWordLength || len(letters) > model.RackSize {
		return nil, false
	}
	byKey, ok := ix.buckets[len(letters)]
	if !ok {
		return nil, false
	}
	words, ok := byKey[Key(letters)]
	return words, ok
}

// Contains reports whether the exact (folded) word is indexed
func (ix *Index) Contains(word string) bool {
	words, ok := ix.Lookup(FoldLetters(word))
	if !ok {
		return false
	}
	folded := Fold(word)
	for _, w := range words {
		if Fold(w) == folded {
			return true
		}
	}
	return false
}

// Len returns the number of distinct spellings indexed
func (ix *Index) Len() int {
	return ix.words
}

// Buckets returns the number of anagram keys indexed for the given length
func (ix *Index) Buckets(length int) int {
	return len(ix.buckets[length])
}
