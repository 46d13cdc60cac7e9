package romname

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	csmap "github.com/mhmtszr/concurrent-swiss-map"

	"github.com/josegonzalez/romname/pkg/cache"
	"github.com/josegonzalez/romname/pkg/filename"
	"github.com/josegonzalez/romname/pkg/internal/matching"
	"github.com/josegonzalez/romname/pkg/internal/normalization"
	"github.com/josegonzalez/romname/pkg/natsort"
	"github.com/josegonzalez/romname/pkg/platform"
)

// Library is a set of ROM entries keyed by filename. It is safe for
// concurrent use.
type Library struct {
	config  Config
	cache   cache.Cache
	entries *csmap.CsMap[string, Entry]
	logger  *slog.Logger
}

// NewLibrary creates a new library with the given options.
func NewLibrary(opts ...Option) (*Library, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	l := &Library{
		config:  config,
		cache:   newCache(config.Cache),
		entries: csmap.Create[string, Entry](),
		logger:  logger,
	}

	logger.Debug("library created",
		"workers", config.Workers,
		"cache", config.Cache.Backend,
		"fold_accents", config.FoldAccents)

	return l, nil
}

// newCache expects a validated config.
func newCache(cfg CacheConfig) cache.Cache {
	ttl := time.Duration(cfg.TTL) * time.Second
	switch cfg.Backend {
	case CacheMemory:
		return cache.NewMemoryCache(
			cache.WithMaxSize(cfg.MaxSize),
			cache.WithDefaultTTL(ttl),
		)
	case CacheGoCache:
		return cache.NewGoCache(ttl, time.Minute)
	default:
		return cache.NewNullCache()
	}
}

// Config returns a copy of the library configuration.
func (l *Library) Config() Config {
	return l.config
}

// Add parses names and adds them to the library. Names already present are
// skipped. Parsing fans out over the configured number of workers; if ctx
// is canceled Add stops early and returns ctx.Err(), keeping the entries
// added so far.
func (l *Library) Add(ctx context.Context, names ...string) error {
	names = uniqueNames(names)
	if len(names) == 0 {
		return nil
	}

	workerCount := min(l.config.Workers, len(names))
	workCh := make(chan string)
	resultCh := make(chan Entry)
	var wg sync.WaitGroup

	for range workerCount {
		wg.Add(1)
		go l.worker(ctx, &wg, workCh, resultCh)
	}

	go func() {
		defer close(workCh)
		for _, name := range names {
			if ctx.Err() != nil {
				return
			}
			if l.entries.Has(name) {
				continue
			}
			select {
			case workCh <- name:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	added := 0
	for {
		select {
		case <-ctx.Done():
			l.logger.Warn("add canceled", "added", added, "requested", len(names))
			return ctx.Err()
		case entry, ok := <-resultCh:
			if !ok {
				l.logger.Debug("add finished", "added", added, "requested", len(names), "workers", workerCount)
				return ctx.Err()
			}
			l.entries.Store(entry.Filename, entry)
			added++
		}
	}
}

// uniqueNames drops repeated names, keeping first occurrences in order.
func uniqueNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	unique := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		unique = append(unique, name)
	}
	return unique
}

func (l *Library) worker(ctx context.Context, wg *sync.WaitGroup, workCh <-chan string, resultCh chan<- Entry) {
	defer wg.Done()

	for name := range workCh {
		if ctx.Err() != nil {
			return
		}

		entry := l.parse(ctx, name)

		select {
		case resultCh <- entry:
		case <-ctx.Done():
			return
		}
	}
}

// parse returns the entry for name, consulting the cache first. Cache
// failures are logged and fall back to parsing.
func (l *Library) parse(ctx context.Context, name string) Entry {
	parsed, ok, err := l.cache.Get(ctx, name)
	if err != nil {
		l.logger.Warn("cache lookup failed", "filename", name,
			"error", &CacheError{Op: "get", Details: err.Error()})
	}
	if !ok {
		parsed = filename.ParseNoIntroFilename(name)
		if err := l.cache.Set(ctx, name, parsed, 0); err != nil {
			l.logger.Warn("cache store failed", "filename", name,
				"error", &CacheError{Op: "set", Details: err.Error()})
		}
	}

	entry := Entry{
		Filename: name,
		Parsed:   parsed,
		Platform: platform.FromExtension(parsed.Extension),
	}
	if alias, ok := l.config.Aliases.Lookup(name); ok {
		entry.Alias = alias
	}
	l.logger.Debug("parsed filename",
		"filename", name,
		"title", parsed.Title,
		"region", parsed.Region,
		"platform", entry.Platform.String(),
		"cached", ok)
	return entry
}

// Get returns the entry for a filename exactly as it was added. Hidden
// entries are returned too.
func (l *Library) Get(name string) (Entry, error) {
	entry, ok := l.entries.Load(name)
	if !ok {
		return Entry{}, &EntryNotFoundError{Filename: name}
	}
	return entry, nil
}

// Remove deletes the entry for a filename. It reports whether the entry
// existed.
func (l *Library) Remove(name string) bool {
	return l.entries.Delete(name)
}

// Len returns the number of entries.
func (l *Library) Len() int {
	return l.entries.Count()
}

// sortKey is the string entries are ordered by.
func (l *Library) sortKey(e Entry) string {
	if l.config.FoldAccents {
		return normalization.FoldAccents(e.Name())
	}
	return e.Name()
}

// Entries returns every visible entry in natural order of name (alias or
// display name). Entries whose names compare equal are ordered by filename.
func (l *Library) Entries() []Entry {
	type keyed struct {
		key   string
		entry Entry
	}

	items := make([]keyed, 0, l.entries.Count())
	l.entries.Range(func(_ string, e Entry) bool {
		if !e.Hidden() {
			items = append(items, keyed{key: l.sortKey(e), entry: e})
		}
		return false
	})

	slices.SortFunc(items, func(a, b keyed) int {
		if c := natsort.Compare(a.key, b.key); c != 0 {
			return c
		}
		return strings.Compare(a.entry.Filename, b.entry.Filename)
	})

	entries := make([]Entry, len(items))
	for i, item := range items {
		entries[i] = item.entry
	}
	return entries
}

// EntriesByPlatform returns the entries of one platform in the same order
// as Entries.
func (l *Library) EntriesByPlatform(slug platform.Slug) []Entry {
	var entries []Entry
	for _, e := range l.Entries() {
		if e.Platform == slug {
			entries = append(entries, e)
		}
	}
	return entries
}

func entryNames(entries []Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names
}

// Find returns the visible entry whose name is most similar to query, with
// its score. Among equal scores the entry earliest in Entries order wins.
func (l *Library) Find(query string) (Entry, float64, error) {
	entries := l.Entries()

	opts := matching.DefaultFindBestMatchOptions()
	opts.MinSimilarityScore = l.config.MinSimilarity

	idx, score := matching.FindBestMatch(query, entryNames(entries), opts)
	if idx < 0 {
		l.logger.Debug("no match", "query", query, "min_similarity", l.config.MinSimilarity)
		return Entry{}, 0, &EntryNotFoundError{Query: query}
	}

	l.logger.Debug("matched", "query", query, "filename", entries[idx].Filename, "score", score)
	return entries[idx], score, nil
}

// Search returns up to limit visible entries whose names meet the
// similarity threshold, best first. A limit of 0 returns all of them.
func (l *Library) Search(query string, limit int) []Match {
	entries := l.Entries()
	results := matching.FindAllMatches(query, entryNames(entries), l.config.MinSimilarity, limit)

	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{
			Entry:      entries[r.Index],
			Score:      r.Score,
			Confidence: matching.MatchConfidence(query, r.Name),
		}
	}
	return matches
}

// Stats returns entry and cache statistics.
func (l *Library) Stats(ctx context.Context) (Stats, error) {
	stats := Stats{
		Entries: l.entries.Count(),
		Workers: l.config.Workers,
	}

	if sp, ok := l.cache.(cache.StatsProvider); ok {
		cs, err := sp.Stats(ctx)
		if err != nil {
			return stats, &CacheError{Op: "stats", Details: err.Error()}
		}
		stats.Cache = cs
	}

	return stats, nil
}

// Reset removes every entry and clears the cache.
func (l *Library) Reset(ctx context.Context) error {
	l.entries.Clear()
	if err := l.cache.Clear(ctx); err != nil {
		return &CacheError{Op: "clear", Details: err.Error()}
	}
	return nil
}

// Close releases the cache.
func (l *Library) Close() error {
	if err := l.cache.Close(); err != nil {
		return &CacheError{Op: "close", Details: err.Error()}
	}
	return nil
}
