package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cachet/internal/core/ports"
)

// NodeID is the unique identifier for the cache watcher Graft node.
const NodeID graft.ID = "adapter.cache_watcher"

func init() {
	graft.Register(graft.Node[ports.CacheWatcher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CacheWatcher, error) {
			return NewWatcher()
		},
	})
}
