package fs

import (
	"path/filepath"
	"slices"

	"go.trai.ch/justrun/internal/core/domain"
	"go.trai.ch/zerr"
)

// Resolver turns declared inputs into absolute, sorted paths.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolveInputs resolves each input against root and sorts the result by
// byte order. Duplicates are kept; inputs are not expanded as globs.
func (r *Resolver) ResolveInputs(inputs []string, root string) ([]string, error) {
	base, err := filepath.Abs(root)
	if err != nil {
		return nil, domain.Mark(domain.ErrIO, zerr.With(zerr.Wrap(err, "failed to resolve working directory"), "path", root))
	}

	result := make([]string, 0, len(inputs))
	for _, input := range inputs {
		if filepath.IsAbs(input) {
			result = append(result, filepath.Clean(input))
			continue
		}
		result = append(result, filepath.Join(base, input))
	}
	slices.Sort(result)

	return result, nil
}
