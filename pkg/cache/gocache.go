package cache

import (
	"context"
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/josegonzalez/romname/pkg/filename"
)

// GoCache is a Cache backed by patrickmn/go-cache. Unlike MemoryCache it has
// no size bound; entries leave only by expiry or deletion.
type GoCache struct {
	c      *gocache.Cache
	hits   atomic.Int64
	misses atomic.Int64
}

// NewGoCache creates a go-cache backed cache. A defaultTTL of 0 or less means
// entries never expire; cleanupInterval of 0 or less disables the janitor.
func NewGoCache(defaultTTL, cleanupInterval time.Duration) *GoCache {
	if defaultTTL <= 0 {
		defaultTTL = gocache.NoExpiration
	}
	return &GoCache{c: gocache.New(defaultTTL, cleanupInterval)}
}

// Get retrieves a value from the cache.
func (g *GoCache) Get(_ context.Context, key string) (filename.ParsedName, bool, error) {
	v, found := g.c.Get(key)
	if !found {
		g.misses.Add(1)
		return filename.ParsedName{}, false, nil
	}
	parsed, ok := v.(filename.ParsedName)
	if !ok {
		g.misses.Add(1)
		return filename.ParsedName{}, false, nil
	}
	g.hits.Add(1)
	return parsed, true, nil
}

// Set stores a value in the cache.
func (g *GoCache) Set(_ context.Context, key string, value filename.ParsedName, ttl time.Duration) error {
	switch {
	case ttl == 0:
		ttl = gocache.DefaultExpiration
	case ttl < 0:
		ttl = gocache.NoExpiration
	}
	g.c.Set(key, value, ttl)
	return nil
}

// Delete removes a value from the cache.
func (g *GoCache) Delete(_ context.Context, key string) (bool, error) {
	_, found := g.c.Get(key)
	g.c.Delete(key)
	return found, nil
}

// Exists checks if an unexpired key exists in the cache.
func (g *GoCache) Exists(_ context.Context, key string) (bool, error) {
	_, found := g.c.Get(key)
	return found, nil
}

// Clear removes all entries from the cache.
func (g *GoCache) Clear(_ context.Context) error {
	g.c.Flush()
	return nil
}

// Close flushes the cache.
func (g *GoCache) Close() error {
	g.c.Flush()
	return nil
}

// Stats returns cache statistics.
func (g *GoCache) Stats(_ context.Context) (Stats, error) {
	return Stats{
		Size:   g.c.ItemCount(),
		Hits:   g.hits.Load(),
		Misses: g.misses.Load(),
	}, nil
}
