package dictionary

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/mcoot/wordtiles/internal/model"
)

// ligatures have no canonical decomposition, so they are spelled out first
var ligatures = strings.NewReplacer(
	"œ", "oe", "Œ", "OE",
	"æ", "ae", "Æ", "AE",
	"ß", "ss", "ẞ", "SS",
)

// Fold maps a word to the uppercase, diacritic-free spelling used for
// matching tiles. "Zèbre" and "ZEBRE" fold to the same string.
func Fold(word string) string {
	// Transformers carry state, so each call builds its own chain
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	// norm and runes transformers cannot fail on a complete string
	folded, _, _ := transform.String(t, ligatures.Replace(word))
	return strings.ToUpper(folded)
}

// FoldLetters folds a word and splits it into tile letters
func FoldLetters(word string) []model.Letter {
	folded := Fold(word)
	letters := make([]model.Letter, 0, len(folded))
	for _, r := range folded {
		letters = append(letters, model.Letter(r))
	}
	return letters
}
