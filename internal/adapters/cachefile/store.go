package cachefile

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/cachet/internal/core/domain"
	"go.trai.ch/cachet/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.CacheStore for one build directory.
type Store struct {
	path string
}

var _ ports.CacheStore = (*Store)(nil)

// NewStore creates a store for the cache file of the given build directory.
func NewStore(buildDir string) *Store {
	return &Store{path: domain.CacheFilePath(buildDir)}
}

// Path returns the path of the cache file.
func (s *Store) Path() string {
	return s.path
}

// Read returns the raw bytes of the cache file.
func (s *Store) Read() ([]byte, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, zerr.With(domain.ErrCacheNotFound, "path", s.path)
		}
		return nil, errors.Join(domain.ErrCacheReadFailed, err)
	}
	return raw, nil
}

// Write atomically replaces the cache file: the new content is written to a
// sibling temp file and renamed into place, so a crash mid-write can never
// leave a torn cache behind.
func (s *Store) Write(raw []byte) error {
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, domain.FilePerm); err != nil {
		return errors.Join(domain.ErrCacheWriteFailed, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return errors.Join(domain.ErrCacheWriteFailed, err)
	}
	return nil
}

// Digest returns the xxhash of the cache file as it is on disk.
func (s *Store) Digest() (uint64, error) {
	raw, err := s.Read()
	if err != nil {
		return 0, err
	}
	return xxhash.Sum64(raw), nil
}

// BuildDir returns the directory containing the cache file.
func (s *Store) BuildDir() string {
	return filepath.Dir(s.path)
}
