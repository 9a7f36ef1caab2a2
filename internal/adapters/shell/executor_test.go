package shell_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/justrun/internal/adapters/shell"
	"go.trai.ch/justrun/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestExecutor_Build_StreamsOutput(t *testing.T) {
	executor := shell.NewExecutor(shell.Streams{})
	var stdout, stderr bytes.Buffer

	err := executor.Build(context.Background(),
		[]string{"sh", "-c", "echo hello to stdout; echo hello to stderr >&2"},
		t.TempDir(), &stdout, &stderr)
	require.NoError(t, err)

	assert.Equal(t, "hello to stdout\n", stdout.String())
	assert.Equal(t, "hello to stderr\n", stderr.String())
}

func TestExecutor_Build_WorkingDirectory(t *testing.T) {
	executor := shell.NewExecutor(shell.Streams{})
	dir := t.TempDir()

	err := executor.Build(context.Background(), []string{"sh", "-c", "echo built > out.txt"}, dir, nil, nil)
	require.NoError(t, err)

	//nolint:gosec // Test file with controlled path
	content, err := os.ReadFile(filepath.Join(dir, "out.txt"))
	require.NoError(t, err)
	assert.Equal(t, "built\n", string(content))
}

func TestExecutor_Build_InheritsEnvironment(t *testing.T) {
	t.Setenv("JUSTRUN_TEST_VAR", "test-value-123")
	executor := shell.NewExecutor(shell.Streams{})
	var stdout bytes.Buffer

	err := executor.Build(context.Background(), []string{"sh", "-c", "echo $JUSTRUN_TEST_VAR"}, t.TempDir(), &stdout, nil)
	require.NoError(t, err)
	assert.Equal(t, "test-value-123\n", stdout.String())
}

func TestExecutor_Build_Failure(t *testing.T) {
	executor := shell.NewExecutor(shell.Streams{})

	err := executor.Build(context.Background(), []string{"sh", "-c", "exit 42"}, t.TempDir(), nil, nil)
	require.ErrorIs(t, err, domain.ErrBuildFailed)

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 42, exitErr.ExitCode())

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, []string{"sh", "-c", "exit 42"}, zErr.Metadata()["command"])
}

func TestExecutor_Build_CommandNotFound(t *testing.T) {
	executor := shell.NewExecutor(shell.Streams{})

	err := executor.Build(context.Background(), []string{"nonexistent-command-xyz123"}, t.TempDir(), nil, nil)
	require.ErrorIs(t, err, domain.ErrBuildFailed)
	assert.True(t, errors.Is(err, exec.ErrNotFound))
}

func TestExecutor_Build_EmptyCommand(t *testing.T) {
	executor := shell.NewExecutor(shell.Streams{})

	err := executor.Build(context.Background(), nil, t.TempDir(), nil, nil)
	require.ErrorIs(t, err, domain.ErrEmptyCommand)
}

func TestExecutor_Build_Canceled(t *testing.T) {
	executor := shell.NewExecutor(shell.Streams{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := executor.Build(ctx, []string{"sh", "-c", "sleep 5"}, t.TempDir(), nil, nil)
	require.ErrorIs(t, err, domain.ErrBuildFailed)
}

func TestExecutor_Spawn_ForwardsStreams(t *testing.T) {
	var stdout, stderr bytes.Buffer
	executor := shell.NewExecutor(shell.Streams{
		Stdin:  strings.NewReader("from stdin"),
		Stdout: &stdout,
		Stderr: &stderr,
	})

	err := executor.Spawn(context.Background(), domain.SpawnSpec{
		Argv: []string{"sh", "-c", `cat; echo " $1"; echo oops >&2`, "sh", "arg1"},
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)

	assert.Equal(t, "from stdin arg1\n", stdout.String())
	assert.Equal(t, "oops\n", stderr.String())
}

func TestExecutor_Spawn_ExitCode(t *testing.T) {
	executor := shell.NewExecutor(shell.Streams{})

	err := executor.Spawn(context.Background(), domain.SpawnSpec{
		Argv: []string{"sh", "-c", "exit 3"},
		Dir:  t.TempDir(),
	})
	require.ErrorIs(t, err, domain.ErrArtifactFailed)

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 3, exitErr.ExitCode())
}

func TestExecutor_Spawn_EmptyArgv(t *testing.T) {
	err := shell.NewExecutor(shell.Streams{}).Spawn(context.Background(), domain.SpawnSpec{})
	require.ErrorIs(t, err, domain.ErrEmptyCommand)
}
