package domain

// Settings holds operator-tunable tool configuration, loaded from the
// optional .cachet.yaml file.
type Settings struct {
	// CMakePath is the external tool binary, resolved via PATH when relative.
	CMakePath string
	// ConfigureArgs is the argument convention for a cache-only
	// reconfiguration pass, executed with the build directory as cwd.
	ConfigureArgs []string
	// GenerateArgs is the argument convention for build-file generation.
	GenerateArgs []string
	// Env holds extra environment variables for the external process.
	Env map[string]string
	// ShowAdvanced makes advanced entries visible by default.
	ShowAdvanced bool
}

// DefaultSettings returns the settings used when no settings file exists.
// "." makes the external tool re-read the cache of the working directory.
func DefaultSettings() *Settings {
	return &Settings{
		CMakePath:     "cmake",
		ConfigureArgs: []string{"."},
		GenerateArgs:  []string{"."},
	}
}
