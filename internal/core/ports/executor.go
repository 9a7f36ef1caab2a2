// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/justrun/internal/core/domain"
)

// Executor defines the interface for running external processes.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Build runs the build command in dir, writing its output to stdout and stderr.
	//
	// It returns an error wrapping domain.ErrBuildFailed if the command exits non-zero.
	Build(ctx context.Context, command []string, dir string, stdout, stderr io.Writer) error

	// Spawn runs the artifact as a child process with the executor's own
	// standard streams forwarded, and returns once the child has exited.
	//
	// It returns an error wrapping domain.ErrArtifactFailed if the child exits non-zero.
	Spawn(ctx context.Context, spec domain.SpawnSpec) error
}
