// Package linear provides a synchronous, line-buffered renderer for CI and
// other non-interactive environments.
package linear

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/cachet/internal/core/domain"
	"go.trai.ch/cachet/internal/core/ports"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer for CI/non-interactive environments.
// Process output goes to stdout in chronological order with a pass prefix;
// lifecycle messages go to stderr.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	output *termenv.Output

	mu        sync.Mutex
	pass      int
	startTime time.Time
	buffer    bytes.Buffer
}

// NewRenderer creates a new linear renderer. Nil writers default to the
// process streams.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	output := termenv.NewOutput(stderr, termenv.WithProfile(colorProfile()))

	return &Renderer{
		stdout: stdout,
		stderr: stderr,
		output: output,
	}
}

// colorProfile returns the color profile based on environment.
func colorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	// Basic color support is enough for CI logs.
	return termenv.ANSI
}

// Start is a no-op: the linear renderer is synchronous.
func (r *Renderer) Start(_ context.Context) error {
	return nil
}

// Stop flushes any buffered partial line.
func (r *Renderer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flushLocked()
	return nil
}

// Wait is a no-op: the linear renderer is synchronous.
func (r *Renderer) Wait() error {
	return nil
}

// OnPassStart prints a pass header.
func (r *Renderer) OnPassStart(pass int, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pass = pass
	r.startTime = startTime

	prefix := r.output.String(r.prefixLocked()).Faint().String()
	_, _ = fmt.Fprintf(r.stderr, "%s Running...\n", prefix)
}

// OnProcessOutput buffers raw process output and prints complete lines with
// the pass prefix.
func (r *Renderer) OnProcessOutput(data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.buffer.Write(data)

	for {
		line, err := r.buffer.ReadBytes('\n')
		if err != nil {
			// Incomplete line, put it back.
			if len(line) > 0 {
				var rest bytes.Buffer
				rest.Write(line)
				r.buffer = rest
			}
			break
		}
		r.printLineLocked(line)
	}
}

// OnPassComplete flushes remaining output and prints the pass outcome with a
// summary of the cache diff.
func (r *Renderer) OnPassComplete(pass int, state domain.ConfigureState, diff domain.DiffResult, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.flushLocked()

	duration := time.Since(r.startTime).Round(time.Millisecond)
	prefix := fmt.Sprintf("[pass %d]", pass)

	if err != nil {
		symbol := r.output.String("✗").Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s Failed after %v: %v\n", prefix, symbol, duration, err)
		return
	}

	symbol := r.output.String("✓").Foreground(termenv.ANSIGreen).String()
	_, _ = fmt.Fprintf(r.stderr, "%s %s %s in %v%s\n",
		prefix, symbol, describeState(state), duration, summarizeDiff(diff))

	if len(diff.Added) > 0 {
		_, _ = fmt.Fprintf(r.stderr, "%s New entries: %s\n", prefix, strings.Join(diff.Added, ", "))
	}
}

// OnCacheReload is a no-op: the next pass summary carries the interesting state.
func (r *Renderer) OnCacheReload() {}

func describeState(state domain.ConfigureState) string {
	switch state {
	case domain.StateConverged:
		return "Converged"
	case domain.StateNeedsAnotherPass:
		return "Needs another pass"
	default:
		return string(state)
	}
}

// summarizeDiff renders non-zero diff counters, e.g. " (2 added, 1 changed)".
func summarizeDiff(diff domain.DiffResult) string {
	if diff.Empty() {
		return ""
	}

	var parts []string
	if n := len(diff.Added); n > 0 {
		parts = append(parts, fmt.Sprintf("%d added", n))
	}
	if n := len(diff.Changed); n > 0 {
		parts = append(parts, fmt.Sprintf("%d changed", n))
	}
	if n := len(diff.Removed); n > 0 {
		parts = append(parts, fmt.Sprintf("%d removed", n))
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

// flushLocked prints any buffered partial line. Must be called with r.mu held.
func (r *Renderer) flushLocked() {
	if r.buffer.Len() > 0 {
		r.printLineLocked(r.buffer.Bytes())
		r.buffer.Reset()
	}
}

// printLineLocked prints one output line with the pass prefix. Must be
// called with r.mu held.
func (r *Renderer) printLineLocked(line []byte) {
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))

	if len(line) == 0 {
		return
	}

	_, _ = fmt.Fprintf(r.stdout, "%s %s\n", r.prefixLocked(), string(line))
}

func (r *Renderer) prefixLocked() string {
	return fmt.Sprintf("[pass %d]", r.pass)
}
