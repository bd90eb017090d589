package taunt

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher invalidates the corpus cache when the corpus file changes on disk,
// so edits to the taunt file take effect mid-session without a restart.
// It watches the file's directory rather than the file itself, because
// editors commonly replace files via rename.
type Watcher struct {
	mu      sync.Mutex
	watcher *fsnotify.Watcher
	cache   *Cache
	path    string // absolute corpus path
	logger  *zap.Logger

	debounceDur time.Duration
	lastEvent   time.Time
	running     bool
	doneCh      chan struct{}

	stats WatcherStats
}

// WatcherStats tracks watcher activity for diagnostics.
type WatcherStats struct {
	Events        int
	Invalidations int
	Errors        int
}

// NewWatcher creates a watcher for the corpus at path, tied to the given
// cache. Start must be called to begin watching.
func NewWatcher(path string, cache *Cache, logger *zap.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		fsw.Close()
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		watcher:     fsw,
		cache:       cache,
		path:        abs,
		logger:      logger,
		debounceDur: 500 * time.Millisecond,
		doneCh:      make(chan struct{}),
	}, nil
}

// Start begins watching until ctx is cancelled or Stop is called. It is
// non-blocking.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		w.watcher.Close()
		w.logger.Warn("corpus watch failed",
			zap.String("dir", filepath.Dir(w.path)),
			zap.Error(err))
		return err
	}

	w.logger.Info("watching corpus file", zap.String("path", w.path))
	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for the run loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	w.watcher.Close()
	<-w.doneCh
}

// Stats returns a snapshot of watcher activity.
func (w *Watcher) Stats() WatcherStats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()
			w.logger.Warn("corpus watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return
	}

	w.mu.Lock()
	w.stats.Events++
	now := time.Now()
	if now.Sub(w.lastEvent) < w.debounceDur {
		w.mu.Unlock()
		return
	}
	w.lastEvent = now
	w.stats.Invalidations++
	w.mu.Unlock()

	w.cache.Invalidate()
	w.logger.Info("corpus changed on disk, cache invalidated",
		zap.String("op", event.Op.String()))
}
