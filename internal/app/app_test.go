package app_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cachet/internal/adapters/cachefile"
	"go.trai.ch/cachet/internal/app"
	"go.trai.ch/cachet/internal/core/domain"
	"go.trai.ch/cachet/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const testCache = "BUILD_TESTS:BOOL=ON\nCMAKE_INSTALL_PREFIX:PATH=/usr/local\n"

// shSettings makes the app run sh scripts instead of cmake.
func shSettings(configure, generate string) *domain.Settings {
	return &domain.Settings{
		CMakePath:     "sh",
		ConfigureArgs: []string{"-c", configure},
		GenerateArgs:  []string{"-c", generate},
	}
}

func setupAppTest(t *testing.T, settings *domain.Settings) (*app.App, string) {
	t.Helper()

	ctrl := gomock.NewController(t)

	buildDir := t.TempDir()
	err := os.WriteFile(filepath.Join(buildDir, "CMakeCache.txt"), []byte(testCache), 0o644)
	require.NoError(t, err)

	mockLoader := mocks.NewMockSettingsLoader(ctrl)
	mockLoader.EXPECT().Load(buildDir).Return(settings, nil).AnyTimes()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().SetOutput(gomock.Any()).AnyTimes()

	return app.New(cachefile.NewCodec(), mockLoader, nil, mockLogger), buildDir
}

func TestApp_Run_MissingBuildDir(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLoader := mocks.NewMockSettingsLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	a := app.New(cachefile.NewCodec(), mockLoader, nil, mockLogger)

	err := a.Run(context.Background(), filepath.Join(t.TempDir(), "missing"), app.RunOptions{OutputMode: "linear"})
	require.ErrorIs(t, err, domain.ErrBuildDirMissing)
}

func TestApp_Run_SettingsLoadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	buildDir := t.TempDir()
	mockLoader := mocks.NewMockSettingsLoader(ctrl)
	mockLoader.EXPECT().Load(buildDir).Return(nil, zerr.New("bad yaml"))
	mockLogger := mocks.NewMockLogger(ctrl)
	a := app.New(cachefile.NewCodec(), mockLoader, nil, mockLogger)

	err := a.Run(context.Background(), buildDir, app.RunOptions{OutputMode: "linear"})
	require.ErrorContains(t, err, "failed to load settings")
}

func TestApp_Run_MalformedCache(t *testing.T) {
	a, buildDir := setupAppTest(t, shSettings("true", "true"))

	err := os.WriteFile(filepath.Join(buildDir, "CMakeCache.txt"), []byte("NOT A CACHE LINE\n"), 0o644)
	require.NoError(t, err)

	err = a.Run(context.Background(), buildDir, app.RunOptions{OutputMode: "linear"})
	require.ErrorIs(t, err, domain.ErrCacheParse)
}

func TestApp_Run_Linear_Converged(t *testing.T) {
	a, buildDir := setupAppTest(t, shSettings("echo configuring", "echo generating"))

	err := a.Run(context.Background(), buildDir, app.RunOptions{
		OutputMode: "linear",
		Generate:   true,
	})
	require.NoError(t, err)
}

func TestApp_Run_Linear_PassBudgetExhausted(t *testing.T) {
	// Every pass surfaces a fresh entry, so no budget converges.
	a, buildDir := setupAppTest(t, shSettings(
		`echo "EXTRA_$$:BOOL=ON" >> CMakeCache.txt`,
		"true",
	))

	err := a.Run(context.Background(), buildDir, app.RunOptions{OutputMode: "linear", Passes: 1})
	require.ErrorIs(t, err, domain.ErrNotConverged)
}

func TestApp_Run_Linear_ConvergesOnSecondPass(t *testing.T) {
	a, buildDir := setupAppTest(t, shSettings(
		`grep -q EXTRA CMakeCache.txt || echo "EXTRA:BOOL=ON" >> CMakeCache.txt`,
		"true",
	))

	err := a.Run(context.Background(), buildDir, app.RunOptions{OutputMode: "linear", Passes: 2})
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(buildDir, "CMakeCache.txt"))
	require.NoError(t, err)
	require.Contains(t, string(raw), "EXTRA:BOOL=ON")
}

func TestApp_Run_Linear_ConfigureFailure(t *testing.T) {
	a, buildDir := setupAppTest(t, shSettings("exit 3", "true"))

	err := a.Run(context.Background(), buildDir, app.RunOptions{OutputMode: "linear"})
	require.ErrorIs(t, err, domain.ErrExit)
}

func TestApp_Run_TUI_QuitImmediately(t *testing.T) {
	a, buildDir := setupAppTest(t, shSettings("true", "true"))
	a.WithTeaOptions(
		tea.WithInput(strings.NewReader("q")),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
		tea.WithoutRenderer(),
	)

	err := a.Run(context.Background(), buildDir, app.RunOptions{OutputMode: "tui"})
	require.NoError(t, err)
}
