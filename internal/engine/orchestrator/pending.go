package orchestrator

import (
	"context"

	"go.trai.ch/justrun/internal/core/domain"
)

// Pending is a run started with Start.
type Pending struct {
	done    chan struct{}
	outcome Outcome
	err     error
}

// Start runs Run on a new goroutine and returns immediately.
func (o *Orchestrator) Start(ctx context.Context, opts *domain.Options, args []string) *Pending {
	p := &Pending{done: make(chan struct{})}
	go func() {
		defer close(p.done)
		p.outcome, p.err = o.Run(ctx, opts, args)
	}()
	return p
}

// Done is closed once the run has finished, including the artifact itself.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the run has finished and returns its result.
func (p *Pending) Wait() (Outcome, error) {
	<-p.done
	return p.outcome, p.err
}
