// Package fsnotify watches a content directory and triggers re-imports.
package fsnotify

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"
)

// Watcher watches a directory tree and invokes a callback when content
// changes. Bursts of events (editor saves, bulk copies) are coalesced:
// the callback runs at most once per limiter interval.
type Watcher struct {
	watcher *fsnotify.Watcher
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewWatcher creates a new Watcher. The callback fires at most once per
// second regardless of event volume.
func NewWatcher(logger *slog.Logger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		watcher: w,
		limiter: rate.NewLimiter(rate.Limit(1), 1),
		logger:  logger,
	}, nil
}

// Close releases watcher resources.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// Watch watches root and its subdirectories until the context is
// canceled, invoking fn after content changes. New subdirectories are
// added to the watch as they appear.
func (w *Watcher) Watch(ctx context.Context, root string, fn func()) error {
	if err := w.addRecursive(root); err != nil {
		return err
	}

	// dirty carries at most one pending rebuild; extra events coalesce.
	dirty := make(chan struct{}, 1)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-dirty:
				if err := w.limiter.Wait(ctx); err != nil {
					return
				}
				fn()
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}

			w.logger.Debug("content change", "path", event.Name, "op", event.Op.String())

			if event.Has(fsnotify.Create) && isDir(event.Name) {
				if err := w.addRecursive(event.Name); err != nil {
					w.logger.Warn("failed to watch new directory", "path", event.Name, "error", err)
				}
			}

			select {
			case dirty <- struct{}{}:
			default:
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", "error", err)
		}
	}
}

// addRecursive adds root and all its subdirectories to the watch.
func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.watcher.Add(path)
		}
		return nil
	})
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
