package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mcoot/wordtiles/internal/services/dictionary"
)

// EnvPrefix prefixes every environment override, e.g. WORDTILES_DICTIONARY
const EnvPrefix = "WORDTILES"

// Configuration keys
const (
	KeyDictionary   = "dictionary"
	KeyDistribution = "distribution"
	KeyEncoding     = "encoding"
	KeyStorage      = "storage"
	KeyRedisURL     = "redis_url"
	KeyAddr         = "addr"
	KeyServer       = "server"
	KeyPlayers      = "players"
	KeySeed         = "seed"
	KeyOutput       = "output"
	KeyVerbose      = "verbose"
)

// Storage backends
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config is the resolved application configuration
type Config struct {
	Dictionary   string `mapstructure:"dictionary"`
	Distribution string `mapstructure:"distribution"`
	Encoding     string `mapstructure:"encoding"`
	Storage      string `mapstructure:"storage"`
	RedisURL     string `mapstructure:"redis_url"`
	Addr         string `mapstructure:"addr"`
	Server       string `mapstructure:"server"`
	Players      int    `mapstructure:"players"`
	Seed         uint64 `mapstructure:"seed"` // 0 draws a fresh seed per game
	Output       string `mapstructure:"output"`
	Verbose      bool   `mapstructure:"verbose"`
}

// DictionaryEncoding parses the configured encoding
func (c *Config) DictionaryEncoding() (dictionary.Encoding, error) {
	return dictionary.ParseEncoding(c.Encoding)
}

// SeedPtr returns the configured seed, or nil when none was set
func (c *Config) SeedPtr() *uint64 {
	if c.Seed == 0 {
		return nil
	}
	seed := c.Seed
	return &seed
}

// Validate checks the values that can be checked without touching disk
func (c *Config) Validate() error {
	var errs []error
	if _, err := c.DictionaryEncoding(); err != nil {
		errs = append(errs, err)
	}
	switch c.Storage {
	case StorageMemory:
	case StorageRedis:
		if c.RedisURL == "" {
			errs = append(errs, errors.New("redis_url is required with redis storage"))
		}
	default:
		errs = append(errs, fmt.Errorf("invalid storage %q: must be %q or %q", c.Storage, StorageMemory, StorageRedis))
	}
	if c.Players < 2 {
		errs = append(errs, fmt.Errorf("players must be at least 2, got %d", c.Players))
	}
	if c.Output != OutputText && c.Output != OutputJSON {
		errs = append(errs, fmt.Errorf("invalid output %q: must be %q or %q", c.Output, OutputText, OutputJSON))
	}
	return errors.Join(errs...)
}

// Loader resolves configuration from, in decreasing precedence, bound
// flags, WORDTILES_* environment variables, a config file and defaults.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a Loader with defaults set
func NewLoader() *Loader {
	v := viper.New()
	v.SetDefault(KeyDictionary, "data/words.txt")
	v.SetDefault(KeyDistribution, "data/french_distribution.csv")
	v.SetDefault(KeyEncoding, string(dictionary.EncodingUTF8))
	v.SetDefault(KeyStorage, StorageMemory)
	v.SetDefault(KeyRedisURL, "")
	v.SetDefault(KeyAddr, ":8080")
	v.SetDefault(KeyServer, "")
	v.SetDefault(KeyPlayers, 2)
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeyOutput, OutputText)
	v.SetDefault(KeyVerbose, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return &Loader{v: v}
}

// BindFlag ties a configuration key to a command line flag. The flag only
// wins when it was set explicitly.
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("no flag for config key %q", key)
	}
	return l.v.BindPFlag(key, flag)
}

// Load reads the config file, if any, and resolves the configuration. An
// explicit path must exist; without one an optional wordtiles.yaml is looked
// up in the working directory.
func (l *Loader) Load(path string) (*Config, error) {
	if path != "" {
		l.v.SetConfigFile(path)
	} else {
		l.v.SetConfigName("wordtiles")
		l.v.SetConfigType("yaml")
		l.v.AddConfigPath(".")
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Load resolves configuration without flags
func Load(path string) (*Config, error) {
	return NewLoader().Load(path)
}
