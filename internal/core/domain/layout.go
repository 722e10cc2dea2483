package domain

import "path/filepath"

const (
	// CacheFileName is the name of the persisted cache file inside the build directory.
	CacheFileName = "CMakeCache.txt"

	// SettingsFileName is the name of the optional cachet settings file.
	SettingsFileName = ".cachet.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// CacheFilePath returns the path of the persisted cache file for a build directory.
func CacheFilePath(buildDir string) string {
	return filepath.Join(buildDir, CacheFileName)
}

// SettingsFilePath returns the path of the settings file inside a directory.
func SettingsFilePath(dir string) string {
	return filepath.Join(dir, SettingsFileName)
}
