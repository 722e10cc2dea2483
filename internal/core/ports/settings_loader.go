package ports

import "go.trai.ch/cachet/internal/core/domain"

// SettingsLoader loads the optional cachet settings file.
//
//go:generate mockgen -source=settings_loader.go -destination=mocks/mock_settings_loader.go -package=mocks
type SettingsLoader interface {
	// Load reads settings for the given build directory, falling back to the
	// user's home directory and finally to defaults. A missing file is not an
	// error.
	Load(buildDir string) (*domain.Settings, error)
}
