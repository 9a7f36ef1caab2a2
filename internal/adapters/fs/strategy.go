package fs

import (
	"context"

	"go.trai.ch/justrun/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

// HashFunc computes the digest of a single path.
type HashFunc func(ctx context.Context, path string) (domain.Digest, error)

// Strategy decides how a HashFunc is applied to a list of paths.
// Implementations must return the digests in the order of paths so that
// folding them stays deterministic.
type Strategy interface {
	Map(ctx context.Context, paths []string, fn HashFunc) ([]domain.Digest, error)
}

// StrategyFor returns Sequential for n below 2 and Parallel otherwise.
func StrategyFor(n int) Strategy {
	if n < 2 {
		return Sequential{}
	}
	return Parallel{Limit: n}
}

// Sequential hashes one path after the other on the calling goroutine.
type Sequential struct{}

// Map applies fn to each path in order.
func (Sequential) Map(ctx context.Context, paths []string, fn HashFunc) ([]domain.Digest, error) {
	out := make([]domain.Digest, len(paths))
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		d, err := fn(ctx, path)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

// Parallel hashes up to Limit paths at a time.
type Parallel struct {
	Limit int
}

// Map applies fn concurrently. The first failure cancels the remaining work.
func (p Parallel) Map(ctx context.Context, paths []string, fn HashFunc) ([]domain.Digest, error) {
	out := make([]domain.Digest, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	if p.Limit > 0 {
		g.SetLimit(p.Limit)
	}

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			d, err := fn(gctx, path)
			if err != nil {
				return err
			}
			out[i] = d
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
