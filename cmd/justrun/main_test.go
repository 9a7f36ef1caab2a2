package main

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/justrun/internal/adapters/telemetry"
	"go.trai.ch/justrun/internal/app"
	"go.trai.ch/justrun/internal/core/domain"
	"go.trai.ch/justrun/internal/core/ports"
	"go.trai.ch/justrun/internal/core/ports/mocks"
	"go.trai.ch/justrun/internal/engine/orchestrator"
	"go.uber.org/mock/gomock"
)

type testApp struct {
	configLoader *mocks.MockConfigLoader
	hasher       *mocks.MockHasher
	store        *mocks.MockDigestStore
	executor     *mocks.MockExecutor
	logger       *mocks.MockLogger
	provider     ComponentProvider
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	ctrl := gomock.NewController(t)
	ta := &testApp{
		configLoader: mocks.NewMockConfigLoader(ctrl),
		hasher:       mocks.NewMockHasher(ctrl),
		store:        mocks.NewMockDigestStore(ctrl),
		executor:     mocks.NewMockExecutor(ctrl),
		logger:       mocks.NewMockLogger(ctrl),
	}

	orch := orchestrator.New(ta.hasher, ta.store, ta.executor, mocks.NewMockArtifactLoader(ctrl), ta.logger, telemetry.NewNoOp())
	application := app.New(
		ta.configLoader,
		orch,
		ta.logger,
		ta.store,
		mocks.NewMockInputResolver(ctrl),
		func(ports.Logger) ports.Telemetry { return telemetry.NewNoOp() },
		func() (ports.Watcher, error) { return mocks.NewMockWatcher(ctrl), nil },
	)

	ta.provider = func(context.Context) (*app.Components, error) {
		return &app.Components{App: application, Logger: ta.logger}, nil
	}
	return ta
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ta := newTestApp(t)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), ta.provider)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "justrun version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(context.Context) (*app.Components, error) {
		return nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ConfigError verifies that a failing command is reported and exits 1.
func TestRun_ConfigError(t *testing.T) {
	ta := newTestApp(t)

	ta.configLoader.EXPECT().Discover(gomock.Any()).Return("", nil)
	ta.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrInvalidOptions)
	})

	exitCode := run(context.Background(), []string{"run"}, new(bytes.Buffer), new(bytes.Buffer), ta.provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_ArtifactExitCode verifies that a spawned artifact's exit status is passed through.
func TestRun_ArtifactExitCode(t *testing.T) {
	ta := newTestApp(t)

	exitErr := exec.Command("sh", "-c", "exit 3").Run()
	require.Error(t, exitErr)

	ta.configLoader.EXPECT().Discover(gomock.Any()).Return("", nil)
	ta.hasher.EXPECT().HashInputs(gomock.Any(), []string{"src"}, gomock.Any()).
		Return(domain.Digest("1111111111111111111111111111111111111111111111111111111111111111"), nil)
	ta.store.EXPECT().Load(gomock.Any()).
		Return(domain.Digest("1111111111111111111111111111111111111111111111111111111111111111"), true, nil)
	ta.executor.EXPECT().Spawn(gomock.Any(), gomock.Any()).Return(errors.Join(domain.ErrArtifactFailed, exitErr))
	ta.logger.EXPECT().Error(gomock.Any())

	exitCode := run(context.Background(),
		[]string{"run", "-e", "dist/main.js", "-b", "make", "-i", "src"},
		new(bytes.Buffer), new(bytes.Buffer), ta.provider)
	assert.Equal(t, 3, exitCode)
}

// TestRun_Canceled verifies that a canceled context fails the run.
func TestRun_Canceled(t *testing.T) {
	ta := newTestApp(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ta.configLoader.EXPECT().Discover(gomock.Any()).Return("", nil)
	ta.hasher.EXPECT().HashInputs(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ []string, _ string) (domain.Digest, error) {
			return "", ctx.Err()
		})
	ta.logger.EXPECT().Error(gomock.Any())

	exitCode := run(ctx, []string{"hash", "-e", "a", "-b", "make", "-i", "src"}, new(bytes.Buffer), new(bytes.Buffer), ta.provider)
	assert.Equal(t, 1, exitCode)
}
