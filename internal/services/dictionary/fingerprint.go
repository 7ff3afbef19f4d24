package dictionary

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint digests an ordered word list. Storage compares fingerprints to
// skip rewriting a dictionary it already holds.
func Fingerprint(words []string) string {
	h, err := blake2b.New256(nil)
	if err != nil {
		// Only a key longer than 64 bytes fails, and there is no key
		panic(err)
	}
	for _, w := range words {
		h.Write([]byte(w))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
