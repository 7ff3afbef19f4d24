package redis

import (
	"fmt"

	"github.com/mcoot/wordtiles/internal/model"
)

// Key prefix for all wordtiles data
const keyPrefix = "wordtiles"

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// gamesIndexKey returns the Redis key for the ZSET of games by creation time
func gamesIndexKey() string {
	return fmt.Sprintf("%s:idx:games", keyPrefix)
}

// dictionaryKey returns the Redis key for the dictionary word LIST.
// A list rather than a set: word order decides anagram bucket order.
func dictionaryKey() string {
	return fmt.Sprintf("%s:dictionary:words", keyPrefix)
}

// dictionaryFingerprintKey returns the Redis key for the dictionary digest
func dictionaryFingerprintKey() string {
	return fmt.Sprintf("%s:dictionary:fingerprint", keyPrefix)
}
