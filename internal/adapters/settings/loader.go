// Package settings provides the loader for the optional .cachet.yaml file.
package settings

import (
	"errors"
	"os"

	"go.trai.ch/cachet/internal/core/domain"
	"go.trai.ch/cachet/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.SettingsLoader using YAML files.
type Loader struct {
	Logger ports.Logger
}

var _ ports.SettingsLoader = (*Loader)(nil)

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads settings for the given build directory. The build directory is
// checked first, then the user's home directory. Fields left empty in the
// file keep their defaults; a missing file yields pure defaults.
func (l *Loader) Load(buildDir string) (*domain.Settings, error) {
	s := domain.DefaultSettings()

	for _, path := range l.candidates(buildDir) {
		raw, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Join(domain.ErrSettingsParseFailed, err)
		}

		var file File
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return nil, errors.Join(domain.ErrSettingsParseFailed, err)
		}

		apply(s, &file)
		l.Logger.Info("loaded settings from " + path)
		return s, nil
	}

	return s, nil
}

// candidates returns the settings file paths in priority order.
func (l *Loader) candidates(buildDir string) []string {
	paths := []string{domain.SettingsFilePath(buildDir)}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, domain.SettingsFilePath(home))
	}
	return paths
}

func apply(s *domain.Settings, file *File) {
	if file.CMake != "" {
		s.CMakePath = file.CMake
	}
	if len(file.ConfigureArgs) > 0 {
		s.ConfigureArgs = file.ConfigureArgs
	}
	if len(file.GenerateArgs) > 0 {
		s.GenerateArgs = file.GenerateArgs
	}
	if len(file.Environment) > 0 {
		s.Env = file.Environment
	}
	if file.ShowAdvanced {
		s.ShowAdvanced = true
	}
}
