package tui_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.trai.ch/cachet/internal/adapters/cachefile"
	"go.trai.ch/cachet/internal/adapters/tui"
	"go.trai.ch/cachet/internal/core/domain"
	"go.trai.ch/cachet/internal/engine/configure"
)

// nullRenderer satisfies ports.Renderer for the orchestrator under test; the
// model tests inject Bubble Tea messages directly.
type nullRenderer struct{}

func (nullRenderer) Start(_ context.Context) error                                             { return nil }
func (nullRenderer) Stop() error                                                               { return nil }
func (nullRenderer) Wait() error                                                               { return nil }
func (nullRenderer) OnPassStart(_ int, _ time.Time)                                            {}
func (nullRenderer) OnProcessOutput(_ []byte)                                                  {}
func (nullRenderer) OnPassComplete(_ int, _ domain.ConfigureState, _ domain.DiffResult, _ error) {}
func (nullRenderer) OnCacheReload()                                                            {}

type nullLogger struct{}

func (nullLogger) Info(_ string)        {}
func (nullLogger) Warn(_ string)        {}
func (nullLogger) Error(_ error)        {}
func (nullLogger) SetOutput(_ io.Writer) {}

// rewriteRunner simulates the external tool by writing a fixed cache file on
// each configure invocation.
type rewriteRunner struct {
	mu    sync.Mutex
	path  string
	cache string
}

func (r *rewriteRunner) Configure(_ context.Context, stdout, _ io.Writer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = stdout.Write([]byte("-- Configuring done\n"))
	return os.WriteFile(r.path, []byte(r.cache), 0o644)
}

func (r *rewriteRunner) Generate(_ context.Context, _, _ io.Writer) error {
	return nil
}

const testCache = `// Build tests for the project.
BUILD_TESTS:BOOL=OFF
CMAKE_BUILD_TYPE:STRING=Debug
CMAKE_BUILD_TYPE-STRINGS:INTERNAL=Debug;Release
// Install prefix.
CMAKE_INSTALL_PREFIX:PATH=/usr/local
// ADVANCED:property=1
CMAKE_VERBOSE_MAKEFILE:BOOL=OFF
`

// newTestEditor builds a model over a real orchestrator, codec and store in
// a temp build directory.
func newTestEditor(t *testing.T) (*tui.Model, *configure.Orchestrator, *rewriteRunner) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, domain.CacheFileName)
	require.NoError(t, os.WriteFile(path, []byte(testCache), 0o644))

	runner := &rewriteRunner{path: path, cache: testCache}
	orch := configure.NewOrchestrator(
		cachefile.NewCodec(),
		cachefile.NewStore(dir),
		runner,
		nullRenderer{},
		nullLogger{},
	)
	require.NoError(t, orch.Load())

	t.Setenv("NO_COLOR", "1")
	model := tui.NewModel(context.Background(), orch, io.Discard)
	return model, orch, runner
}
