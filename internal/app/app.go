// Package app implements the application layer for justrun.
package app

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"go.trai.ch/justrun/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/justrun/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/justrun/internal/core/domain"
	"go.trai.ch/justrun/internal/core/ports"
	"go.trai.ch/justrun/internal/engine/orchestrator"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	orchestrator *orchestrator.Orchestrator
	logger       ports.Logger
	store        ports.DigestStore
	resolver     ports.InputResolver
	telemetry    ports.TelemetryFactory
	watchers     ports.WatcherFactory
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	orch *orchestrator.Orchestrator,
	log ports.Logger,
	store ports.DigestStore,
	resolver ports.InputResolver,
	telemetry ports.TelemetryFactory,
	watchers ports.WatcherFactory,
) *App {
	return &App{
		configLoader: loader,
		orchestrator: orch,
		logger:       log,
		store:        store,
		resolver:     resolver,
		telemetry:    telemetry,
		watchers:     watchers,
	}
}

// session binds the orchestrator to the sink and telemetry of one run.
// The returned function closes the telemetry.
func (a *App) session(opts *domain.Options) (*orchestrator.Orchestrator, ports.Logger, func()) {
	sink := logger.Discard()
	if opts.LoggingEnabled {
		sink = a.logger
	}
	tel := a.telemetry(sink)
	orch := a.orchestrator.WithLogger(sink).WithTelemetry(tel)
	return orch, sink, func() { _ = tel.Close() }
}

// Run brings the entry artifact up to date and invokes it with args.
func (a *App) Run(ctx context.Context, opts *domain.Options, args []string) (orchestrator.Outcome, error) {
	orch, _, done := a.session(opts)
	defer done()

	return orch.Run(ctx, opts, args)
}

// Hash computes the current input digest. Nothing is built or written.
func (a *App) Hash(ctx context.Context, opts *domain.Options) (domain.Digest, error) {
	orch, _, done := a.session(opts)
	defer done()

	return orch.Digest(ctx, opts)
}

// Status compares the current input digest with the cache record.
func (a *App) Status(ctx context.Context, opts *domain.Options) (orchestrator.Decision, error) {
	orch, _, done := a.session(opts)
	defer done()

	return orch.Status(ctx, opts)
}

// Clean deletes the cache record so that the next run rebuilds.
func (a *App) Clean(_ context.Context, opts *domain.Options) error {
	if err := a.store.Remove(opts.WorkingDir); err != nil {
		return zerr.Wrap(err, "failed to remove cache record")
	}
	a.logger.Info("removed " + domain.CacheRecordPath(opts.WorkingDir))
	return nil
}

// Watch rebuilds whenever an input changes, until ctx is canceled.
// A failing build is reported and the session keeps watching.
func (a *App) Watch(ctx context.Context, opts *domain.Options) error {
	orch, sink, done := a.session(opts)
	defer done()

	if _, err := orch.Prepare(ctx, opts); err != nil {
		if !errors.Is(err, domain.ErrBuildFailed) {
			return err
		}
		a.logger.Error(err)
	}

	paths, err := a.resolver.ResolveInputs(opts.Inputs, opts.WorkingDir)
	if err != nil {
		return err
	}

	w, err := a.watchers()
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	if err := w.Start(ctx, paths); err != nil {
		return err
	}
	sink.Info(fmt.Sprintf("watching %d inputs", len(paths)))

	// One pending batch is enough: the next Prepare hashes everything again.
	changes := make(chan []string, 1)
	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(paths []string) {
		select {
		case changes <- paths:
		default:
		}
	})
	defer debouncer.Stop()

	go func() {
		for event := range w.Events() {
			debouncer.Add(event.Path)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case changed := <-changes:
			sink.Info(fmt.Sprintf("%d paths changed", len(changed)))
			if _, err := orch.Prepare(ctx, opts); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				a.logger.Error(err)
			}
		}
	}
}

// ExitCode maps a run error to a process exit status.
// A failing spawned artifact passes its own exit code through.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.Is(err, domain.ErrArtifactFailed) && errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}
	return 1
}
