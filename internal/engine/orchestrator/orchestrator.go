// Package orchestrator decides whether a build is needed and invokes the entry artifact.
package orchestrator

import (
	"context"
	"fmt"
	"io"

	"go.trai.ch/justrun/internal/core/domain"
	"go.trai.ch/justrun/internal/core/ports"
	"go.trai.ch/zerr"
)

// Decision is the result of comparing the current input digest with the cache record.
type Decision struct {
	// Digest is the digest of the inputs as they are now.
	Digest domain.Digest
	// Previous is the digest found in the cache record, empty if there was none.
	Previous domain.Digest
	// Rebuilt reports whether the build command ran.
	Rebuilt bool
}

// Unchanged reports whether the cache record matched the inputs.
func (d Decision) Unchanged() bool {
	return !d.Rebuilt && !d.Digest.IsZero() && d.Digest == d.Previous
}

// Outcome is the result of a complete run.
type Outcome struct {
	Decision Decision
	// State is domain.StateDone on success and domain.StateFail otherwise.
	State domain.RunState
	// Payload is what an imported artifact returned. It is nil in spawn mode.
	Payload domain.Payload
}

// Orchestrator runs the hash, compare, build and invoke sequence.
type Orchestrator struct {
	hasher    ports.Hasher
	store     ports.DigestStore
	executor  ports.Executor
	loader    ports.ArtifactLoader
	logger    ports.Logger
	telemetry ports.Telemetry
}

// New creates a new Orchestrator.
func New(
	hasher ports.Hasher,
	store ports.DigestStore,
	executor ports.Executor,
	loader ports.ArtifactLoader,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Orchestrator {
	return &Orchestrator{
		hasher:    hasher,
		store:     store,
		executor:  executor,
		loader:    loader,
		logger:    logger,
		telemetry: telemetry,
	}
}

// WithLogger returns a copy of o reporting to logger.
func (o *Orchestrator) WithLogger(logger ports.Logger) *Orchestrator {
	c := *o
	c.logger = logger
	return &c
}

// WithTelemetry returns a copy of o recording its phases on telemetry.
func (o *Orchestrator) WithTelemetry(telemetry ports.Telemetry) *Orchestrator {
	c := *o
	c.telemetry = telemetry
	return &c
}

// Digest computes the current input digest without touching the cache record.
func (o *Orchestrator) Digest(ctx context.Context, opts *domain.Options) (domain.Digest, error) {
	if err := opts.Check(domain.RequireInputs); err != nil {
		return "", err
	}
	hasher := o.hasher
	if opts.Parallelism > 0 {
		hasher = hasher.WithParallelism(opts.Parallelism)
	}

	_, v := o.telemetry.Record(ctx, "hash inputs")
	current, err := hasher.HashInputs(ctx, opts.Inputs, opts.WorkingDir)
	v.Complete(err)
	if err != nil {
		return "", zerr.With(err, "working_dir", opts.WorkingDir)
	}
	return current, nil
}

// Status compares the current input digest with the cache record.
// Nothing is built or written.
func (o *Orchestrator) Status(ctx context.Context, opts *domain.Options) (Decision, error) {
	current, err := o.Digest(ctx, opts)
	if err != nil {
		return Decision{}, err
	}

	previous, _, err := o.store.Load(opts.WorkingDir)
	if err != nil {
		return Decision{Digest: current}, err
	}
	return Decision{Digest: current, Previous: previous}, nil
}

// Prepare hashes the inputs and runs the build command when they differ from
// the cache record. The record is only updated after a successful build.
func (o *Orchestrator) Prepare(ctx context.Context, opts *domain.Options) (Decision, error) {
	if err := opts.Validate(); err != nil {
		return Decision{}, err
	}
	command, err := domain.SplitCommand(opts.BuildCommand)
	if err != nil {
		return Decision{}, err
	}

	decision, err := o.Status(ctx, opts)
	if err != nil {
		return decision, err
	}

	if decision.Unchanged() {
		o.logger.Info(fmt.Sprintf("inputs unchanged (%s), skipping build", decision.Digest.Short()))
		_, v := o.telemetry.Record(ctx, "build")
		v.Cached()
		v.Complete(nil)
		return decision, nil
	}

	o.logger.Info(fmt.Sprintf("inputs changed (%s), running %q", decision.Digest.Short(), opts.BuildCommand))
	if err := o.build(ctx, command, opts); err != nil {
		return decision, err
	}

	if err := o.store.Save(opts.WorkingDir, decision.Digest); err != nil {
		return decision, err
	}
	decision.Rebuilt = true
	return decision, nil
}

func (o *Orchestrator) build(ctx context.Context, command []string, opts *domain.Options) error {
	_, v := o.telemetry.Record(ctx, "build")

	var stdout, stderr io.Writer = io.Discard, io.Discard
	if opts.LoggingEnabled {
		out := newLogWriter(o.logger.Info)
		errOut := newLogWriter(o.logger.Warn)
		defer out.Flush()
		defer errOut.Flush()
		stdout = io.MultiWriter(out, v.Stdout())
		stderr = io.MultiWriter(errOut, v.Stderr())
	}

	err := o.executor.Build(ctx, command, opts.WorkingDir, stdout, stderr)
	v.Complete(err)
	return err
}

// Run prepares the artifact and then invokes it according to opts.Mode.
// It returns once the artifact has finished.
func (o *Orchestrator) Run(ctx context.Context, opts *domain.Options, args []string) (Outcome, error) {
	decision, err := o.Prepare(ctx, opts)
	if err != nil {
		return Outcome{Decision: decision, State: domain.StateFail}, err
	}

	_, v := o.telemetry.Record(ctx, "run "+opts.EntryArtifact)

	var payload domain.Payload
	switch opts.Mode {
	case domain.ModeImport:
		o.logger.Info("loading " + opts.EntryArtifact)
		payload, err = o.loader.Load(ctx, opts.EntryPath(), opts.SymbolName(), args)
	default:
		o.logger.Info("starting " + opts.EntryArtifact)
		var argv []string
		if argv, err = spawnArgv(opts, args); err == nil {
			err = o.executor.Spawn(ctx, domain.SpawnSpec{Argv: argv, Dir: opts.WorkingDir})
		}
	}
	v.Complete(err)

	if err != nil {
		return Outcome{Decision: decision, State: domain.StateFail}, err
	}
	return Outcome{Decision: decision, State: domain.StateDone, Payload: payload}, nil
}

// spawnArgv builds the child command line: the optional interpreter, the
// artifact path, then the forwarded arguments untouched.
func spawnArgv(opts *domain.Options, args []string) ([]string, error) {
	argv, err := domain.SplitWords(opts.Interpreter)
	if err != nil {
		return nil, err
	}
	argv = append(argv, opts.EntryPath())
	return append(argv, args...), nil
}
