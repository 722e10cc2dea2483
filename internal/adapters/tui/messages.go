package tui

import (
	"time"

	"go.trai.ch/cachet/internal/core/domain"
)

// MsgPassStart signals that a configure or generate pass began.
type MsgPassStart struct {
	Pass      int
	StartTime time.Time
}

// MsgProcessOutput carries raw output bytes from the external process.
type MsgProcessOutput struct {
	Data []byte
}

// MsgPassComplete signals that a pass finished.
type MsgPassComplete struct {
	Pass  int
	State domain.ConfigureState
	Diff  domain.DiffResult
	Err   error
}

// MsgCacheReload signals that the in-memory model was replaced and the entry
// table must be rebuilt.
type MsgCacheReload struct{}
