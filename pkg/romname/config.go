package romname

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/josegonzalez/romname/pkg/internal/matching"
)

// Cache backends accepted by CacheConfig.Backend.
const (
	CacheMemory  = "memory"
	CacheGoCache = "gocache"
	CacheNone    = "none"
)

// DefaultMinSimilarity is the default Jaro-Winkler threshold used by Find.
const DefaultMinSimilarity = matching.DefaultMinSimilarity

// CacheConfig contains configuration for the parse cache.
type CacheConfig struct {
	// Backend is the cache backend type ("memory", "gocache", "none")
	Backend string `json:"backend"`
	// TTL is the default time-to-live in seconds (0 = never expire)
	TTL int `json:"ttl"`
	// MaxSize is the maximum number of entries for memory cache
	MaxSize int `json:"max_size"`
}

// DefaultCacheConfig returns a default cache configuration.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		Backend: CacheMemory,
		TTL:     3600, // 1 hour
		MaxSize: 10000,
	}
}

// Config is the main configuration for the Library.
type Config struct {
	// Workers is the number of goroutines parsing filenames in Add
	Workers int `json:"workers"`
	// Cache is the cache configuration
	Cache CacheConfig `json:"cache"`
	// FoldAccents sorts on accent-folded display names, so "Pokémon" sorts as "Pokemon"
	FoldAccents bool `json:"fold_accents"`
	// MinSimilarity is the minimum Jaro-Winkler score accepted by Find
	MinSimilarity float64 `json:"min_similarity"`
	// Aliases overrides display names by base filename
	Aliases Aliases `json:"-"`
	// Logger receives structured logs; nil discards them
	Logger *slog.Logger `json:"-"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Workers:       runtime.NumCPU(),
		Cache:         DefaultCacheConfig(),
		MinSimilarity: DefaultMinSimilarity,
	}
}

// Validate checks the configuration and returns a *ConfigError for the
// first invalid field.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return &ConfigError{Field: "workers", Details: fmt.Sprintf("must be at least 1, got %d", c.Workers)}
	}
	switch c.Cache.Backend {
	case CacheMemory, CacheGoCache, CacheNone:
	default:
		return &ConfigError{Field: "cache.backend", Details: fmt.Sprintf("unknown backend %q", c.Cache.Backend)}
	}
	if c.Cache.TTL < 0 {
		return &ConfigError{Field: "cache.ttl", Details: "must not be negative"}
	}
	if c.Cache.Backend == CacheMemory && c.Cache.MaxSize < 1 {
		return &ConfigError{Field: "cache.max_size", Details: "must be at least 1 for the memory backend"}
	}
	if c.MinSimilarity < 0 || c.MinSimilarity > 1 {
		return &ConfigError{Field: "min_similarity", Details: fmt.Sprintf("must be between 0 and 1, got %g", c.MinSimilarity)}
	}
	return nil
}

// Option is a functional option for configuring the Library.
type Option func(*Config)

// WithWorkers sets the number of parse workers.
func WithWorkers(n int) Option {
	return func(c *Config) {
		c.Workers = n
	}
}

// WithCache configures the cache backend.
func WithCache(backend string, ttl, maxSize int) Option {
	return func(c *Config) {
		c.Cache.Backend = backend
		c.Cache.TTL = ttl
		c.Cache.MaxSize = maxSize
	}
}

// WithFoldAccents enables accent folding of sort keys.
func WithFoldAccents(fold bool) Option {
	return func(c *Config) {
		c.FoldAccents = fold
	}
}

// WithMinSimilarity sets the Find threshold.
func WithMinSimilarity(score float64) Option {
	return func(c *Config) {
		c.MinSimilarity = score
	}
}

// WithAliases sets the alias map applied to entries as they are added.
func WithAliases(aliases Aliases) Option {
	return func(c *Config) {
		c.Aliases = aliases
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}
