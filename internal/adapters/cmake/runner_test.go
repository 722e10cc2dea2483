package cmake_test

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cachet/internal/adapters/cmake"
	"go.trai.ch/cachet/internal/core/domain"
)

type captureLogger struct {
	lines []string
}

func (l *captureLogger) Info(msg string)     { l.lines = append(l.lines, msg) }
func (l *captureLogger) Warn(msg string)     {}
func (l *captureLogger) Error(err error)     {}
func (l *captureLogger) SetOutput(io.Writer) {}

func shellRunner(t *testing.T, buildDir string, script string) *cmake.Runner {
	t.Helper()
	return cmake.NewRunner(buildDir, &domain.Settings{
		CMakePath:     "sh",
		ConfigureArgs: []string{"-c", script},
		GenerateArgs:  []string{"-c", script},
	}, &captureLogger{})
}

func TestRunner_Configure_StreamsOutput(t *testing.T) {
	runner := shellRunner(t, t.TempDir(), "echo first; echo second")

	var out bytes.Buffer
	err := runner.Configure(context.Background(), &out, io.Discard)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "first")
	assert.Contains(t, out.String(), "second")
}

func TestRunner_Configure_RunsInBuildDir(t *testing.T) {
	buildDir := t.TempDir()
	runner := shellRunner(t, buildDir, "pwd")

	var out bytes.Buffer
	err := runner.Configure(context.Background(), &out, io.Discard)
	require.NoError(t, err)

	assert.Contains(t, out.String(), filepath.Base(buildDir))
}

func TestRunner_Configure_EnvironmentOverride(t *testing.T) {
	runner := cmake.NewRunner(t.TempDir(), &domain.Settings{
		CMakePath:     "sh",
		ConfigureArgs: []string{"-c", "echo CC=$CC"},
		Env:           map[string]string{"CC": "clang-padded-xyz"},
	}, &captureLogger{})

	var out bytes.Buffer
	err := runner.Configure(context.Background(), &out, io.Discard)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "CC=clang-padded-xyz")
}

func TestRunner_Configure_NonZeroExit(t *testing.T) {
	runner := shellRunner(t, t.TempDir(), "echo doomed; exit 3")

	var out bytes.Buffer
	err := runner.Configure(context.Background(), &out, io.Discard)
	require.ErrorIs(t, err, domain.ErrExit)
	assert.Contains(t, err.Error(), "exit_code")
	assert.Contains(t, out.String(), "doomed", "output captured up to the failure")
}

func TestRunner_Configure_SpawnFailure(t *testing.T) {
	runner := cmake.NewRunner(t.TempDir(), &domain.Settings{
		CMakePath:     "/nonexistent/cmake-binary-xyz",
		ConfigureArgs: []string{"."},
	}, &captureLogger{})

	err := runner.Configure(context.Background(), io.Discard, io.Discard)
	require.ErrorIs(t, err, domain.ErrSpawn)
}

func TestRunner_Configure_Cancelled(t *testing.T) {
	runner := shellRunner(t, t.TempDir(), "sleep 5")

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	err := runner.Configure(ctx, io.Discard, io.Discard)
	require.ErrorIs(t, err, domain.ErrCancelled)
	assert.Less(t, time.Since(start), 3*time.Second, "cancellation must not wait for the process")
}

func TestRunner_Generate_UsesGenerateArgs(t *testing.T) {
	runner := cmake.NewRunner(t.TempDir(), &domain.Settings{
		CMakePath:     "sh",
		ConfigureArgs: []string{"-c", "echo configure"},
		GenerateArgs:  []string{"-c", "echo generate"},
	}, &captureLogger{})

	var out bytes.Buffer
	err := runner.Generate(context.Background(), &out, io.Discard)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "generate")
}
