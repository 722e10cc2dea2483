// Package cmake invokes the external build-system process for a build directory.
package cmake

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/creack/pty"
	"go.trai.ch/cachet/internal/core/domain"
	"go.trai.ch/cachet/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.Runner using os/exec and a pty.
//
// The process runs under a pty so tools that color or progress-format their
// output keep doing so while cachet captures it. The pty merges stdout and
// stderr into a single stream; both writers receive the combined output.
type Runner struct {
	buildDir string
	settings *domain.Settings
	logger   ports.Logger
}

var _ ports.Runner = (*Runner)(nil)

// NewRunner creates a runner bound to one build directory.
func NewRunner(buildDir string, settings *domain.Settings, logger ports.Logger) *Runner {
	return &Runner{
		buildDir: buildDir,
		settings: settings,
		logger:   logger,
	}
}

// Configure runs a cache-only reconfiguration pass.
func (r *Runner) Configure(ctx context.Context, stdout, stderr io.Writer) error {
	return r.run(ctx, r.settings.ConfigureArgs, stdout, stderr)
}

// Generate runs build-file generation.
func (r *Runner) Generate(ctx context.Context, stdout, stderr io.Writer) error {
	return r.run(ctx, r.settings.GenerateArgs, stdout, stderr)
}

func (r *Runner) run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	outLog := &logWriter{logger: r.logger}

	writers := []io.Writer{outLog, stdout}
	if stderr != nil && stderr != stdout {
		writers = append(writers, stderr)
	}
	combined := io.MultiWriter(writers...)

	cmd := exec.CommandContext(ctx, r.settings.CMakePath, args...) //nolint:gosec // operator-configured command
	cmd.Dir = r.buildDir
	cmd.Env = resolveEnvironment(os.Environ(), r.settings.Env)

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return errors.Join(domain.ErrSpawn, err)
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		defer func() { _ = ptmx.Close() }()
		defer func() { _ = outLog.Close() }()

		_, _ = io.Copy(combined, ptmx)
	}()

	waitErr := cmd.Wait()
	<-ioDone

	if waitErr != nil {
		if ctx.Err() != nil {
			return errors.Join(domain.ErrCancelled, ctx.Err())
		}
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return errors.Join(domain.ErrExit, zerr.With(zerr.Wrap(waitErr, "process exited"), "exit_code", exitCode))
	}

	return nil
}

// logWriter feeds complete output lines to the structured logger.
type logWriter struct {
	logger ports.Logger
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	// PTYs may introduce \r. Remove it.
	w.logger.Info(strings.TrimSuffix(string(line), "\r"))
}

// resolveEnvironment starts from the ambient environment and applies
// operator-configured overrides. Unlike a hermetic build runner, the external
// configure process legitimately depends on the ambient toolchain (CC, CXX,
// PATH and friends), so nothing is filtered.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	if len(overrides) == 0 {
		return sysEnv
	}

	out := make([]string, 0, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		k, _, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, overridden := overrides[k]; !overridden {
			out = append(out, entry)
		}
	}
	for k, v := range overrides {
		out = append(out, k+"="+v)
	}
	return out
}
