package romname

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/josegonzalez/romname/pkg/internal/matching"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Workers < 1 {
		t.Errorf("Workers = %d, want >= 1", cfg.Workers)
	}
	if cfg.Cache.Backend != CacheMemory {
		t.Errorf("Cache.Backend = %q, want %q", cfg.Cache.Backend, CacheMemory)
	}
	if cfg.MinSimilarity != DefaultMinSimilarity {
		t.Errorf("MinSimilarity = %v, want %v", cfg.MinSimilarity, DefaultMinSimilarity)
	}
	if DefaultMinSimilarity != matching.DefaultMinSimilarity {
		t.Errorf("DefaultMinSimilarity = %v, matching uses %v", DefaultMinSimilarity, matching.DefaultMinSimilarity)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestOptions(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	cfg := DefaultConfig()
	for _, opt := range []Option{
		WithWorkers(3),
		WithCache(CacheGoCache, 60, 0),
		WithFoldAccents(true),
		WithMinSimilarity(0.9),
		WithLogger(logger),
	} {
		opt(&cfg)
	}

	if cfg.Workers != 3 {
		t.Errorf("Workers = %d, want 3", cfg.Workers)
	}
	if cfg.Cache.Backend != CacheGoCache || cfg.Cache.TTL != 60 {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if !cfg.FoldAccents {
		t.Error("FoldAccents = false, want true")
	}
	if cfg.MinSimilarity != 0.9 {
		t.Errorf("MinSimilarity = %v, want 0.9", cfg.MinSimilarity)
	}
	if cfg.Logger != logger {
		t.Error("Logger not set")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		opt   Option
		field string
	}{
		{"zero workers", WithWorkers(0), "workers"},
		{"unknown backend", WithCache("redis", 60, 10), "cache.backend"},
		{"negative ttl", WithCache(CacheMemory, -1, 10), "cache.ttl"},
		{"memory without size", WithCache(CacheMemory, 60, 0), "cache.max_size"},
		{"similarity above one", WithMinSimilarity(1.5), "min_similarity"},
		{"negative similarity", WithMinSimilarity(-0.1), "min_similarity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.opt(&cfg)

			err := cfg.Validate()
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Validate() error = %v, want *ConfigError", err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("ConfigError.Field = %q, want %q", cfgErr.Field, tt.field)
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Error("error should wrap ErrInvalidConfig")
			}
		})
	}
}

func TestNewLibraryRejectsInvalidConfig(t *testing.T) {
	lib, err := NewLibrary(WithWorkers(-1))
	if err == nil {
		lib.Close()
		t.Fatal("NewLibrary() error = nil, want error")
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("NewLibrary() error = %v, want ErrInvalidConfig", err)
	}
}
