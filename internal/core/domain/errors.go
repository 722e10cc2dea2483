package domain

import "go.trai.ch/zerr"

var (
	// ErrCacheNotFound is returned when the cache file does not exist in the build directory.
	ErrCacheNotFound = zerr.New("cache file not found")

	// ErrCacheParse is returned when the cache file contains a structurally malformed entry line.
	ErrCacheParse = zerr.New("malformed cache entry")

	// ErrCacheReadFailed is returned when the cache file cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read cache file")

	// ErrCacheWriteFailed is returned when the cache file cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write cache file")

	// ErrEntryExists is returned when an entry with the same name is already present.
	ErrEntryExists = zerr.New("entry already exists")

	// ErrEntryNotFound is returned when a requested entry is not present in the model.
	ErrEntryNotFound = zerr.New("entry not found")

	// ErrSpawn is returned when the external configure or generate process cannot be started.
	ErrSpawn = zerr.New("failed to start external process")

	// ErrExit is returned when the external process exits with a non-zero status.
	ErrExit = zerr.New("external process failed")

	// ErrCancelled is returned when an in-flight configure pass is cancelled by the operator.
	ErrCancelled = zerr.New("configure pass cancelled")

	// ErrPassRunning is returned when an operation requires an idle orchestrator
	// but a configure pass is in flight.
	ErrPassRunning = zerr.New("configure pass already running")

	// ErrEditPending is returned when a configure pass is requested while an
	// edit session still holds a lease.
	ErrEditPending = zerr.New("edit session still open, commit or discard first")

	// ErrAlreadyEditing is returned when an edit session is opened while another
	// session holds the lease.
	ErrAlreadyEditing = zerr.New("another entry is being edited")

	// ErrNotEditable is returned when an edit session targets an internal or
	// uninitialized entry.
	ErrNotEditable = zerr.New("entry is not editable")

	// ErrNotEditing is returned when commit or discard is called without an open session.
	ErrNotEditing = zerr.New("no edit in progress")

	// ErrInvalidBool is returned when a bool entry is committed with a value
	// outside the two canonical states.
	ErrInvalidBool = zerr.New("bool value must be ON or OFF")

	// ErrInvalidChoice is returned when an enum entry is committed with a value
	// not present in its choice list.
	ErrInvalidChoice = zerr.New("value is not in the choice list")

	// ErrNotConverged is returned when generation is requested before the
	// configuration has converged.
	ErrNotConverged = zerr.New("configuration has not converged")

	// ErrBuildDirMissing is returned when the build directory does not exist.
	// This is a fatal startup precondition.
	ErrBuildDirMissing = zerr.New("build directory does not exist")

	// ErrSettingsParseFailed is returned when the settings file cannot be parsed.
	ErrSettingsParseFailed = zerr.New("failed to parse settings file")
)

func zerrWithValue(err error, entry, value string) error {
	return zerr.With(zerr.With(err, "entry", entry), "value", value)
}
