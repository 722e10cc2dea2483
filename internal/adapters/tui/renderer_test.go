package tui_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cachet/internal/adapters/tui"
	"go.trai.ch/cachet/internal/core/domain"
)

func newTestRenderer(t *testing.T) *tui.Renderer {
	t.Helper()
	model, _, _ := newTestEditor(t)
	return tui.NewRenderer(
		model,
		tea.WithInput(strings.NewReader("")),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
		tea.WithoutRenderer(),
	)
}

func TestRenderer_Lifecycle(t *testing.T) {
	r := newTestRenderer(t)

	require.NoError(t, r.Start(context.Background()))
	require.NoError(t, r.Stop())
	require.NoError(t, r.Wait())
}

func TestRenderer_ForwardsEvents(t *testing.T) {
	r := newTestRenderer(t)

	require.NoError(t, r.Start(context.Background()))
	defer func() {
		_ = r.Stop()
		_ = r.Wait()
	}()

	r.OnPassStart(1, time.Now())
	r.OnProcessOutput([]byte("-- Configuring\n"))
	r.OnPassComplete(1, domain.StateConverged, domain.DiffResult{}, nil)
	r.OnCacheReload()

	// Sends are asynchronous; give the program loop a beat to drain them.
	time.Sleep(10 * time.Millisecond)
}
