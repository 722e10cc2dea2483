package ports

import (
	"context"
	"io"
)

// Runner invokes the external build-system process against the build directory.
//
// Both invocations stream combined process output incrementally to stdout and
// stderr writers so that long-running invocations stay observable. A failure
// to start the process is reported as domain.ErrSpawn; a non-zero exit as
// domain.ErrExit with the exit code attached.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Configure runs a cache-only reconfiguration pass. The process reads the
	// persisted cache file and may rewrite it.
	Configure(ctx context.Context, stdout, stderr io.Writer) error

	// Generate runs the one-shot build-file generation. Only the exit status
	// is consumed.
	Generate(ctx context.Context, stdout, stderr io.Writer) error
}
