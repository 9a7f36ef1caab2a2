// Package shell provides the process executor adapter.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"go.trai.ch/justrun/internal/core/domain"
	"go.trai.ch/justrun/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Streams are the standard streams handed to a spawned artifact.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// OSStreams returns the streams of the current process.
func OSStreams() Streams {
	return Streams{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Executor implements ports.Executor using os/exec.
type Executor struct {
	streams Streams
}

// NewExecutor creates a new Executor that forwards streams to spawned artifacts.
func NewExecutor(streams Streams) *Executor {
	return &Executor{streams: streams}
}

// Build runs command in dir and waits for it. The child inherits the
// environment of the current process. Output goes to stdout and stderr;
// nil writers discard it.
func (e *Executor) Build(ctx context.Context, command []string, dir string, stdout, stderr io.Writer) error {
	if len(command) == 0 {
		return domain.ErrEmptyCommand
	}

	cmd := exec.CommandContext(ctx, command[0], command[1:]...) //nolint:gosec // user provided command
	cmd.Dir = dir
	cmd.Stdout = orDiscard(stdout)
	cmd.Stderr = orDiscard(stderr)

	if err := cmd.Run(); err != nil {
		return zerr.With(withExitCode(errors.Join(domain.ErrBuildFailed, err)), "command", command)
	}
	return nil
}

// Spawn starts the artifact with the executor's streams attached and
// returns once the child has exited.
func (e *Executor) Spawn(ctx context.Context, spec domain.SpawnSpec) error {
	if len(spec.Argv) == 0 {
		return domain.ErrEmptyCommand
	}

	cmd := exec.CommandContext(ctx, spec.Argv[0], spec.Argv[1:]...) //nolint:gosec // user provided artifact
	cmd.Dir = spec.Dir
	cmd.Stdin = e.streams.Stdin
	cmd.Stdout = e.streams.Stdout
	cmd.Stderr = e.streams.Stderr

	if err := cmd.Run(); err != nil {
		return zerr.With(withExitCode(errors.Join(domain.ErrArtifactFailed, err)), "artifact", spec.Argv[0])
	}
	return nil
}

// withExitCode attaches the child's exit status, or -1 when the child did
// not exit normally (not found, killed by a signal).
func withExitCode(err error) error {
	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	return zerr.With(err, "exit_code", exitCode)
}

func orDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}
