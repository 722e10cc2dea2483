// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cachet/internal/adapters/cachefile"
	_ "go.trai.ch/cachet/internal/adapters/logger"
	_ "go.trai.ch/cachet/internal/adapters/settings"
	_ "go.trai.ch/cachet/internal/adapters/watcher"
	// Register the app node.
	_ "go.trai.ch/cachet/internal/app"
)
