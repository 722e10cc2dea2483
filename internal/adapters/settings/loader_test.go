package settings_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cachet/internal/adapters/settings"
	"go.trai.ch/cachet/internal/core/domain"
)

type noopLogger struct{}

func (noopLogger) Info(string)         {}
func (noopLogger) Warn(string)         {}
func (noopLogger) Error(error)         {}
func (noopLogger) SetOutput(io.Writer) {}

func TestLoader_MissingFileYieldsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	loader := settings.NewLoader(noopLogger{})
	s, err := loader.Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultSettings(), s)
}

func TestLoader_BuildDirFileOverridesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	buildDir := t.TempDir()

	content := `
cmake: /opt/cmake/bin/cmake
configureArgs: ["-Wno-dev", "."]
environment:
  CC: clang
showAdvanced: true
`
	require.NoError(t, os.WriteFile(filepath.Join(buildDir, ".cachet.yaml"), []byte(content), 0o644))

	loader := settings.NewLoader(noopLogger{})
	s, err := loader.Load(buildDir)
	require.NoError(t, err)

	assert.Equal(t, "/opt/cmake/bin/cmake", s.CMakePath)
	assert.Equal(t, []string{"-Wno-dev", "."}, s.ConfigureArgs)
	assert.Equal(t, []string{"."}, s.GenerateArgs, "unset fields keep defaults")
	assert.Equal(t, map[string]string{"CC": "clang"}, s.Env)
	assert.True(t, s.ShowAdvanced)
}

func TestLoader_HomeFileUsedAsFallback(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	require.NoError(t, os.WriteFile(filepath.Join(home, ".cachet.yaml"), []byte("cmake: cmake4\n"), 0o644))

	loader := settings.NewLoader(noopLogger{})
	s, err := loader.Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "cmake4", s.CMakePath)
}

func TestLoader_MalformedFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	buildDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(buildDir, ".cachet.yaml"), []byte("cmake: [unclosed"), 0o644))

	loader := settings.NewLoader(noopLogger{})
	_, err := loader.Load(buildDir)
	require.ErrorIs(t, err, domain.ErrSettingsParseFailed)
}
