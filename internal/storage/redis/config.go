package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// GameTTL bounds how long simulated game records are kept.
	// Zero keeps them forever. The dictionary never expires.
	GameTTL time.Duration

	// DictionaryChunk is the number of words pushed per RPUSH command
	DictionaryChunk int
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:             "redis://localhost:6379",
		PoolSize:        10,
		MinIdleConns:    2,
		GameTTL:         7 * 24 * time.Hour,
		DictionaryChunk: 5000,
	}
}
