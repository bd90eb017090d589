package taunt

import (
	"sync"

	"go.uber.org/zap"
)

// DefaultCorpusFile is the fallback corpus name, tried when the configured
// path fails to open.
const DefaultCorpusFile = "taunts.txt"

// Cache owns the lazily loaded corpus. It reloads when the requested path
// differs from the one already loaded, and can be invalidated explicitly
// (the file watcher does this when the corpus file changes on disk).
//
// A failed load is still a terminal state: the cache holds an empty corpus
// and will not retry until the path changes or Invalidate is called. Worst
// case is silence, never an error surfaced to the game loop.
//
// The mutex only guards against a watcher goroutine invalidating while the
// game thread reads; the intended use is still a single deciding thread.
type Cache struct {
	mu     sync.Mutex
	logger *zap.Logger

	corpus     *Corpus
	loaded     bool
	loadedPath string // configured path the current corpus was built for
}

// NewCache returns an empty cache. logger may be nil.
func NewCache(logger *zap.Logger) *Cache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{logger: logger}
}

// EnsureLoaded returns the corpus for the configured path, loading it on
// first use or when the path changed since the last load. An empty path
// means the default corpus file.
func (c *Cache) EnsureLoaded(path string) *Corpus {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded && c.loadedPath == path {
		return c.corpus
	}

	// Clear before re-parsing; no incremental merge.
	c.corpus = &Corpus{}
	c.loaded = true
	c.loadedPath = path

	requested := path
	if requested == "" {
		requested = DefaultCorpusFile
	}

	used := requested
	corpus, stats, err := LoadFile(requested)
	if err != nil && requested != DefaultCorpusFile {
		used = DefaultCorpusFile
		corpus, stats, err = LoadFile(DefaultCorpusFile)
	}

	if err != nil {
		c.logger.Warn("taunt corpus unavailable, commentary disabled",
			zap.String("requested", requested),
			zap.Error(err))
		return c.corpus
	}

	c.corpus = corpus
	c.logger.Info("taunt corpus loaded",
		zap.String("file", used),
		zap.Int("entries", stats.Entries),
		zap.Int("unknown_sections", len(stats.UnknownSections)))
	return c.corpus
}

// Invalidate drops the loaded corpus so the next EnsureLoaded re-reads it.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = false
	c.corpus = nil
	c.loadedPath = ""
}

// LoadedPath returns the configured path of the current corpus, or "" when
// nothing is loaded.
func (c *Cache) LoadedPath() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loaded {
		return ""
	}
	return c.loadedPath
}
