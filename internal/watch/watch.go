// Package watch re-runs a callback whenever a data file's content changes.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fsnotify/fsnotify"

	"github.com/sirspot/resume/pkg/log"
)

// Config holds configuration options for the watcher.
type Config struct {
	// DebounceDelay is the delay to wait after a file change before reloading.
	// Default: 100 milliseconds
	DebounceDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{DebounceDelay: 100 * time.Millisecond}
}

// ChangeFunc receives the new content of the watched file.
type ChangeFunc func(data []byte)

// Watcher watches one file. The callback runs once at Start and then after
// every change that alters the file's content. Calls never overlap.
type Watcher struct {
	mu sync.Mutex

	path          string
	debounceDelay time.Duration
	onChange      ChangeFunc
	logger        log.Logger

	emitMu  sync.Mutex
	lastSum uint64
	seen    bool

	cancel   context.CancelFunc
	wg       sync.WaitGroup
	debounce *time.Timer
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithLogger sets the logger for reload diagnostics.
func WithLogger(l log.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// New returns a watcher for path. It does nothing until Start.
func New(path string, cfg Config, onChange ChangeFunc, opts ...Option) *Watcher {
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = 100 * time.Millisecond
	}
	w := &Watcher{
		path:          filepath.Clean(path),
		debounceDelay: cfg.DebounceDelay,
		onChange:      onChange,
		logger:        log.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start delivers the current content and begins watching. The file's
// directory is watched so editors that replace the file are noticed.
func (w *Watcher) Start(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		fw.Close()
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}

	w.reload()

	watchCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	go w.watchLoop(watchCtx, fw)

	w.logger.Info("watching data file", log.String("path", w.path))
	return nil
}

// Stop ends watching and waits for the loop to exit. A reload already in
// flight may still complete.
func (w *Watcher) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()

	w.mu.Lock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.mu.Unlock()
}

func (w *Watcher) watchLoop(ctx context.Context, fw *fsnotify.Watcher) {
	defer w.wg.Done()
	defer fw.Close()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.debounceReload(ctx)

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.logger.Error("watcher error", log.Err(err))
		}
	}
}

func (w *Watcher) debounceReload(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(w.debounceDelay, func() {
		if ctx.Err() != nil {
			return
		}
		w.reload()
	})
}

// reload reads the file and calls onChange unless the content is unchanged
// since the last call.
func (w *Watcher) reload() {
	w.emitMu.Lock()
	defer w.emitMu.Unlock()

	data, err := os.ReadFile(w.path)
	if err != nil {
		w.logger.Warn("data file unreadable", log.String("path", w.path), log.Err(err))
		return
	}
	sum := xxhash.Sum64(data)
	if w.seen && sum == w.lastSum {
		w.logger.Debug("data file unchanged", log.Digest("xxhash", sum))
		return
	}
	w.seen = true
	w.lastSum = sum

	w.logger.Info("data file changed",
		log.String("path", w.path),
		log.Size("size", len(data)),
		log.Digest("xxhash", sum),
	)
	w.onChange(data)
}
