// Package watcher observes the cache file for out-of-band rewrites, e.g. the
// external tool running in another shell while cachet is idle.
package watcher

import (
	"context"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/cachet/internal/core/ports"
)

var _ ports.CacheWatcher = (*Watcher)(nil)

const eventChannelBuffer = 16

// Watcher implements single-file watching using fsnotify. It watches the
// parent directory rather than the file itself: the external tool replaces
// the cache via rename, which would silently drop a watch on the file.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer

	path     string
	events   chan ports.WatchEvent
	done     chan struct{}
	stopOnce sync.Once
}

// NewWatcher creates a new cache file watcher.
func NewWatcher() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fsWatcher: fsWatcher,
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
		done:      make(chan struct{}),
	}
	w.debouncer = NewDebouncer(DefaultDebounceWindow, w.emit)
	return w, nil
}

// Start begins watching the cache file at the given path.
func (w *Watcher) Start(ctx context.Context, path string) error {
	w.path = filepath.Clean(path)

	if err := w.fsWatcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}

	go w.processEvents(ctx)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	w.stopOnce.Do(func() { close(w.done) })
	return w.fsWatcher.Close()
}

// Events returns an iterator of debounced change events.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for {
			select {
			case <-w.done:
				return
			case event := <-w.events:
				if !yield(event) {
					return
				}
			}
		}
	}
}

// emit delivers a debounced event unless the watcher stopped.
func (w *Watcher) emit(op ports.WatchOp) {
	select {
	case <-w.done:
	case w.events <- ports.WatchEvent{Path: w.path, Operation: op}:
	}
}

// processEvents filters raw fsnotify directory events down to the cache file
// and feeds them through the debouncer.
func (w *Watcher) processEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if op, ok := convertOp(event.Op); ok {
				w.debouncer.Add(op)
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			fmt.Fprintf(os.Stderr, "watcher: file system error: %v\n", err)
		}
	}
}

// convertOp maps an fsnotify operation to a ports.WatchOp. Create counts as
// a write because a tmp-and-rename replacement surfaces as Create on the
// target path. Chmod is noise.
func convertOp(op fsnotify.Op) (ports.WatchOp, bool) {
	switch {
	case op.Has(fsnotify.Write), op.Has(fsnotify.Create):
		return ports.OpWrite, true
	case op.Has(fsnotify.Remove):
		return ports.OpRemove, true
	case op.Has(fsnotify.Rename):
		return ports.OpRename, true
	default:
		return 0, false
	}
}
