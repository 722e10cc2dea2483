// Package tui provides the interactive terminal editor for the cache.
package tui

import (
	"context"
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/cachet/internal/ui/output"
)

// NewModel creates the editor model. The writer is the terminal the program
// will draw on; it determines the color profile.
func NewModel(ctx context.Context, ctrl Controller, w io.Writer) *Model {
	out := output.New(w)
	lipgloss.SetColorProfile(out.Profile)

	input := textinput.New()
	input.CharLimit = 0

	m := &Model{
		ctrl:  ctrl,
		ctx:   ctx,
		input: input,
		term:  NewVterm(),
	}
	m.refresh()
	return m
}

// WithShowAdvanced makes advanced entries visible from the start.
func (m *Model) WithShowAdvanced() *Model {
	m.showAdvanced = true
	m.refresh()
	return m
}
