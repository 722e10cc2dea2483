package ports

// CacheStore provides access to the persisted cache file of one build directory.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type CacheStore interface {
	// Read returns the raw bytes of the cache file.
	Read() ([]byte, error)

	// Write atomically replaces the cache file contents.
	Write(raw []byte) error

	// Digest returns a content hash of the cache file as it is on disk.
	// Used to detect whether the external process rewrote the file.
	Digest() (uint64, error)

	// Path returns the absolute path of the cache file.
	Path() string
}
