// Package app implements the application layer for cachet.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/cachet/internal/adapters/cachefile"
	"go.trai.ch/cachet/internal/adapters/cmake"
	"go.trai.ch/cachet/internal/adapters/detector"
	"go.trai.ch/cachet/internal/adapters/linear"
	"go.trai.ch/cachet/internal/adapters/tui"
	"go.trai.ch/cachet/internal/core/domain"
	"go.trai.ch/cachet/internal/core/ports"
	"go.trai.ch/cachet/internal/engine/configure"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	codec          ports.Codec
	settingsLoader ports.SettingsLoader
	watcher        ports.CacheWatcher
	logger         ports.Logger
	teaOptions     []tea.ProgramOption
}

// New creates a new App instance.
func New(
	codec ports.Codec,
	loader ports.SettingsLoader,
	watcher ports.CacheWatcher,
	log ports.Logger,
) *App {
	return &App{
		codec:          codec,
		settingsLoader: loader,
		watcher:        watcher,
		logger:         log,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// OutputMode is "auto", "tui" or "linear".
	OutputMode string
	// Passes is the configure-pass budget in linear mode. Each pass beyond
	// the first stands in for the interactive confirmation of newly surfaced
	// entries.
	Passes int
	// Generate runs build-file generation after convergence in linear mode.
	Generate bool
	// ShowAdvanced makes advanced entries visible from the start of a TUI
	// session.
	ShowAdvanced bool
}

// Run opens the cache of the given build directory and drives the configure
// workflow, interactively in a terminal or as a linear pass sequence
// otherwise.
//
//nolint:cyclop // orchestration function
func (a *App) Run(ctx context.Context, buildDir string, opts RunOptions) error {
	// 1. Validate the build directory
	info, err := os.Stat(buildDir)
	if err != nil || !info.IsDir() {
		return zerr.With(domain.ErrBuildDirMissing, "build_dir", buildDir)
	}

	// 2. Load settings and construct the per-directory components
	settings, err := a.settingsLoader.Load(buildDir)
	if err != nil {
		return zerr.Wrap(err, "failed to load settings")
	}

	store := cachefile.NewStore(buildDir)
	runner := cmake.NewRunner(buildDir, settings, a.logger)

	// The orchestrator needs a renderer at construction time but the TUI
	// renderer needs the orchestrator as its controller, so the orchestrator
	// gets a hub that is bound once the renderer exists.
	hub := &rendererHub{}
	orch := configure.NewOrchestrator(a.codec, store, runner, hub, a.logger)
	if err := orch.Load(); err != nil {
		return zerr.Wrap(err, "failed to load cache")
	}

	// 3. Initialize Renderer
	autoMode := detector.DetectEnvironment()
	mode := detector.ResolveMode(autoMode, opts.OutputMode)

	var renderer ports.Renderer
	if mode == detector.ModeTUI {
		model := tui.NewModel(ctx, orch, os.Stderr)
		if opts.ShowAdvanced || settings.ShowAdvanced {
			model.WithShowAdvanced()
		}
		optsTea := append([]tea.ProgramOption{tea.WithContext(ctx)}, a.teaOptions...)
		renderer = tui.NewRenderer(model, optsTea...)

		// The TUI owns the terminal while it runs.
		a.logger.SetOutput(io.Discard)
		defer a.logger.SetOutput(os.Stderr)
	} else {
		renderer = linear.NewRenderer(os.Stdout, os.Stderr)
	}
	hub.Bind(renderer)

	// 4. Watch for out-of-band cache rewrites while a session is open
	if mode == detector.ModeTUI && a.watcher != nil {
		if err := a.watcher.Start(ctx, store.Path()); err != nil {
			a.logger.Warn("cache watcher unavailable: " + err.Error())
		} else {
			defer func() {
				_ = a.watcher.Stop()
			}()
			go a.watchCache(orch)
		}
	}

	// 5. Run Renderer and command flow concurrently
	g, ctx := errgroup.WithContext(ctx)

	// Renderer Routine
	g.Go(func() error {
		if err := renderer.Start(ctx); err != nil {
			return err
		}
		// Wait blocks until the renderer has terminated.
		return renderer.Wait()
	})

	// Command Routine. The TUI drives passes itself through its controller,
	// so it only exists in linear mode.
	if mode != detector.ModeTUI {
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					fmt.Fprintf(os.Stderr, "configure panic: %v\n", r)
				}
				_ = renderer.Stop()
			}()

			return a.runLinear(ctx, orch, opts)
		})
	}

	return g.Wait()
}

// runLinear executes up to opts.Passes configure passes, stopping early on
// convergence, and optionally generates afterwards.
func (a *App) runLinear(ctx context.Context, orch *configure.Orchestrator, opts RunOptions) error {
	passes := opts.Passes
	if passes < 1 {
		passes = 1
	}

	for i := 0; i < passes; i++ {
		if err := orch.RunPass(ctx); err != nil {
			return err
		}
		if orch.State() == domain.StateConverged {
			break
		}
		// The operator granted the pass budget up front, which covers the
		// confirmation of newly surfaced entries.
		orch.AcknowledgeAll()
	}

	if orch.State() != domain.StateConverged {
		return zerr.With(domain.ErrNotConverged, "passes", passes)
	}
	if opts.Generate {
		return orch.Generate(ctx)
	}
	return nil
}

// watchCache forwards debounced file events to the orchestrator. A reload is
// refused while a pass runs or edits are staged, which is fine: the next
// successful pass re-reads the file anyway.
func (a *App) watchCache(orch *configure.Orchestrator) {
	for ev := range a.watcher.Events() {
		switch ev.Operation {
		case ports.OpWrite:
			if err := orch.Reload(); err != nil && !errors.Is(err, domain.ErrPassRunning) {
				a.logger.Warn("cache changed on disk but reload failed: " + err.Error())
			}
		case ports.OpRemove, ports.OpRename:
			a.logger.Warn("cache file was removed from disk, keeping the in-memory model")
		}
	}
}
