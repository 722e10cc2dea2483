package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cachet/internal/adapters/cachefile"
	"go.trai.ch/cachet/internal/adapters/logger"
	"go.trai.ch/cachet/internal/adapters/settings"
	"go.trai.ch/cachet/internal/adapters/watcher"
	"go.trai.ch/cachet/internal/core/ports"
)

// Components bundles the fully wired application for the entry point.
type Components struct {
	App    *App
	Logger ports.Logger
}

// ComponentsNodeID is the unique identifier for the App components Graft node.
const ComponentsNodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			cachefile.CodecNodeID,
			settings.NodeID,
			watcher.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			codec, err := graft.Dep[ports.Codec](ctx)
			if err != nil {
				return nil, err
			}
			loader, err := graft.Dep[ports.SettingsLoader](ctx)
			if err != nil {
				return nil, err
			}
			cacheWatcher, err := graft.Dep[ports.CacheWatcher](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    New(codec, loader, cacheWatcher, log),
				Logger: log,
			}, nil
		},
	})
}
