// Package watch reruns a program whenever its file changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/flobnar/internal/logger"
)

// DefaultInterval is the minimum time between two reruns.
const DefaultInterval = 250 * time.Millisecond

// Watcher observes a single program file.
type Watcher struct {
	path    string
	limiter *rate.Limiter
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithInterval sets the minimum time between two reruns.
func WithInterval(d time.Duration) Option {
	return func(w *Watcher) {
		w.limiter = rate.NewLimiter(rate.Every(d), 1)
	}
}

// New creates a watcher for path.
func New(path string, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	w := &Watcher{
		path:    abs,
		limiter: rate.NewLimiter(rate.Every(DefaultInterval), 1),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Changes signals each time the file is written or recreated. Bursts of
// events collapse into one signal. The channel closes when ctx is done.
//
// The parent directory is watched rather than the file itself, so editors
// that save by rename keep triggering.
func (w *Watcher) Changes(ctx context.Context) (<-chan struct{}, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(w.path), err)
	}

	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		defer fw.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-fw.Events:
				if !ok {
					return
				}
				if !w.isRelevant(ev) {
					continue
				}
				logger.Debug("Change detected: %s", ev)
				select {
				case out <- struct{}{}:
				default:
				}
			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				logger.Warn("Watcher error: %v", err)
			}
		}
	}()
	return out, nil
}

// Run calls fn once, then again after every change until ctx is done.
// An error from fn stops the loop and is returned.
func (w *Watcher) Run(ctx context.Context, fn func(context.Context) error) error {
	changes, err := w.Changes(ctx)
	if err != nil {
		return err
	}

	if err := fn(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-changes:
			if !ok {
				return nil
			}
		}

		if err := w.limiter.Wait(ctx); err != nil {
			return nil
		}
		// Events that arrived while throttled are covered by this rerun.
		select {
		case <-changes:
		default:
		}

		if err := fn(ctx); err != nil {
			return err
		}
	}
}

func (w *Watcher) isRelevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create)
}
