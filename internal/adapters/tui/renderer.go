package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/cachet/internal/core/domain"
	"go.trai.ch/cachet/internal/core/ports"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer wraps the Bubble Tea editor as a ports.Renderer, translating
// orchestrator events into program messages.
type Renderer struct {
	program *tea.Program
	model   *Model
	errCh   chan error
}

// NewRenderer creates a new TUI renderer.
func NewRenderer(model *Model, opts ...tea.ProgramOption) *Renderer {
	program := tea.NewProgram(model, opts...)
	return &Renderer{
		program: program,
		model:   model,
		errCh:   make(chan error, 1),
	}
}

// Start launches the TUI in a background goroutine.
func (r *Renderer) Start(_ context.Context) error {
	go func() {
		_, err := r.program.Run()
		r.errCh <- err
	}()
	return nil
}

// Stop signals the TUI to quit.
func (r *Renderer) Stop() error {
	r.program.Quit()
	return nil
}

// Wait blocks until the TUI has terminated.
func (r *Renderer) Wait() error {
	return <-r.errCh
}

// OnPassStart forwards the pass start to the editor.
func (r *Renderer) OnPassStart(pass int, startTime time.Time) {
	r.program.Send(MsgPassStart{Pass: pass, StartTime: startTime})
}

// OnProcessOutput forwards raw process output to the output pane.
func (r *Renderer) OnProcessOutput(data []byte) {
	r.program.Send(MsgProcessOutput{Data: data})
}

// OnPassComplete forwards the pass outcome to the editor.
func (r *Renderer) OnPassComplete(pass int, state domain.ConfigureState, diff domain.DiffResult, err error) {
	r.program.Send(MsgPassComplete{Pass: pass, State: state, Diff: diff, Err: err})
}

// OnCacheReload tells the editor to rebuild its entry table.
func (r *Renderer) OnCacheReload() {
	r.program.Send(MsgCacheReload{})
}

// Program returns the underlying tea.Program for testing.
func (r *Renderer) Program() *tea.Program {
	return r.program
}
