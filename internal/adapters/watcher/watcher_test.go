package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cachet/internal/adapters/watcher"
	"go.trai.ch/cachet/internal/core/ports"
)

// collectEvents drains the watcher's iterator into a channel so tests can
// wait for events with a timeout.
func collectEvents(w *watcher.Watcher) <-chan ports.WatchEvent {
	out := make(chan ports.WatchEvent, 16)
	go func() {
		defer close(out)
		for event := range w.Events() {
			out <- event
		}
	}()
	return out
}

func awaitEvent(t *testing.T, events <-chan ports.WatchEvent) ports.WatchEvent {
	t.Helper()
	select {
	case event := <-events:
		return event
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for watch event")
		return ports.WatchEvent{}
	}
}

func TestWatcher_ReportsWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "CMakeCache.txt")
	require.NoError(t, os.WriteFile(path, []byte("A:BOOL=ON\n"), 0o644))

	w, err := watcher.NewWatcher()
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	require.NoError(t, w.Start(context.Background(), path))
	events := collectEvents(w)

	require.NoError(t, os.WriteFile(path, []byte("A:BOOL=OFF\n"), 0o644))

	event := awaitEvent(t, events)
	assert.Equal(t, path, event.Path)
	assert.Equal(t, ports.OpWrite, event.Operation)
}

func TestWatcher_ReportsRenameReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "CMakeCache.txt")
	require.NoError(t, os.WriteFile(path, []byte("A:BOOL=ON\n"), 0o644))

	w, err := watcher.NewWatcher()
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	require.NoError(t, w.Start(context.Background(), path))
	events := collectEvents(w)

	// Tmp-and-rename replacement, the way the external tool rewrites.
	tmp := path + ".tmp"
	require.NoError(t, os.WriteFile(tmp, []byte("A:BOOL=OFF\n"), 0o644))
	require.NoError(t, os.Rename(tmp, path))

	event := awaitEvent(t, events)
	assert.Equal(t, path, event.Path)
	assert.Equal(t, ports.OpWrite, event.Operation)
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "CMakeCache.txt")
	require.NoError(t, os.WriteFile(path, []byte("A:BOOL=ON\n"), 0o644))

	w, err := watcher.NewWatcher()
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	require.NoError(t, w.Start(context.Background(), path))
	events := collectEvents(w)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "CMakeError.log"), []byte("noise"), 0o644))

	select {
	case event := <-events:
		t.Fatalf("unexpected event for sibling file: %+v", event)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_StopEndsIteration(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "CMakeCache.txt")
	require.NoError(t, os.WriteFile(path, []byte("A:BOOL=ON\n"), 0o644))

	w, err := watcher.NewWatcher()
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background(), path))
	events := collectEvents(w)

	require.NoError(t, w.Stop())

	select {
	case _, ok := <-events:
		assert.False(t, ok)
	case <-time.After(3 * time.Second):
		t.Fatal("iterator did not terminate after Stop")
	}
}
