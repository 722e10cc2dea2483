package ports

import (
	"context"
	"time"

	"go.trai.ch/cachet/internal/core/domain"
)

// Renderer is the abstraction for presenting configure-pass progress.
// It decouples the orchestrator from presentation logic, allowing the same
// event stream to drive either the interactive TUI or linear CI logs.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Start initializes the renderer and begins its lifecycle.
	// For asynchronous renderers (like the TUI), this launches background
	// goroutines.
	Start(ctx context.Context) error

	// Stop signals the renderer to shut down, flushing buffered output.
	Stop() error

	// Wait blocks until the renderer has fully terminated.
	Wait() error

	// OnPassStart is called when a configure or generate pass begins.
	OnPassStart(pass int, startTime time.Time)

	// OnProcessOutput is called with raw output bytes from the external
	// process. Data may contain partial lines or ANSI sequences.
	OnProcessOutput(data []byte)

	// OnPassComplete is called when a pass finishes, with the resulting
	// lifecycle state and the cache diff. err is nil on success.
	OnPassComplete(pass int, state domain.ConfigureState, diff domain.DiffResult, err error)

	// OnCacheReload is called whenever the in-memory model was replaced,
	// after a successful pass or an out-of-band reload.
	OnCacheReload()
}
