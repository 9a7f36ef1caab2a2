package ports

import (
	"context"

	"go.trai.ch/justrun/internal/core/domain"
)

// Hasher defines the interface for computing content digests.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// HashFile streams the file at path through the digest function.
	HashFile(ctx context.Context, path string) (domain.Digest, error)

	// HashDirectory folds the relative path and content digest of every
	// descendant file of path, in full-path order, into one digest.
	HashDirectory(ctx context.Context, path string) (domain.Digest, error)

	// HashInputs resolves the declared inputs against cwd, sorts them and
	// folds their digests into one. It fails with domain.ErrMissingInput
	// if any input does not exist.
	HashInputs(ctx context.Context, inputs []string, cwd string) (domain.Digest, error)

	// WithParallelism returns a Hasher hashing up to n files concurrently.
	// n below 2 selects sequential hashing. Digests are identical either way.
	WithParallelism(n int) Hasher
}
