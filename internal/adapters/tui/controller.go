package tui

import (
	"context"

	"go.trai.ch/cachet/internal/core/domain"
	"go.trai.ch/cachet/internal/engine/configure"
)

// Controller is the command surface the editor drives. It is implemented by
// the configure orchestrator; the editor never touches the model directly.
type Controller interface {
	VisibleEntries(showAdvanced bool) []*domain.CacheEntry
	OpenEdit(name string) (*configure.EditSession, error)
	Acknowledge(name string) error
	RunPass(ctx context.Context) error
	Generate(ctx context.Context) error
	Cancel()
	Reload() error
	State() domain.ConfigureState
	Dirty() bool
	LastDiff() domain.DiffResult
	CachePath() string
}

var _ Controller = (*configure.Orchestrator)(nil)
