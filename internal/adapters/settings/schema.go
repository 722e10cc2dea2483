package settings

// File represents the structure of the .cachet.yaml settings file.
type File struct {
	CMake         string            `yaml:"cmake"`
	ConfigureArgs []string          `yaml:"configureArgs"`
	GenerateArgs  []string          `yaml:"generateArgs"`
	Environment   map[string]string `yaml:"environment"`
	ShowAdvanced  bool              `yaml:"showAdvanced"`
}
