package fs

import (
	"context"

	"go.trai.ch/justrun/internal/core/domain"
)

// HashFileAsync runs HashFile on a new goroutine.
// The returned channel receives exactly one result and is then closed.
func (h *Hasher) HashFileAsync(ctx context.Context, path string) <-chan domain.HashResult {
	return async(func() (domain.Digest, error) { return h.HashFile(ctx, path) })
}

// HashDirectoryAsync runs HashDirectory on a new goroutine.
func (h *Hasher) HashDirectoryAsync(ctx context.Context, dir string) <-chan domain.HashResult {
	return async(func() (domain.Digest, error) { return h.HashDirectory(ctx, dir) })
}

// HashInputsAsync runs HashInputs on a new goroutine.
func (h *Hasher) HashInputsAsync(ctx context.Context, inputs []string, cwd string) <-chan domain.HashResult {
	return async(func() (domain.Digest, error) { return h.HashInputs(ctx, inputs, cwd) })
}

func async(fn func() (domain.Digest, error)) <-chan domain.HashResult {
	ch := make(chan domain.HashResult, 1)
	go func() {
		defer close(ch)
		d, err := fn()
		ch <- domain.HashResult{Digest: d, Err: err}
	}()
	return ch
}
