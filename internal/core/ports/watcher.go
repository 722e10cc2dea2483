package ports

import (
	"context"
	"iter"
)

// WatchOp represents the type of file system operation.
type WatchOp uint8

const (
	// OpWrite indicates the cache file was modified.
	OpWrite WatchOp = iota
	// OpRemove indicates the cache file was removed.
	OpRemove
	// OpRename indicates the cache file was renamed away.
	OpRename
)

// WatchEvent represents a change to the watched cache file.
type WatchEvent struct {
	// Path is the path of the file that changed.
	Path string
	// Operation is the type of change that occurred.
	Operation WatchOp
}

// CacheWatcher observes the persisted cache file for out-of-band rewrites,
// e.g. the operator running the external tool in another shell while cachet
// is idle.
type CacheWatcher interface {
	// Start begins watching the cache file at the given path.
	Start(ctx context.Context, path string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Events returns an iterator of debounced change events.
	Events() iter.Seq[WatchEvent]
}
