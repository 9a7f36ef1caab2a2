package fs

import (
	"context"
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/justrun/internal/core/domain"
	"go.trai.ch/justrun/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes SHA-256 digests of files, directory trees and input sets.
type Hasher struct {
	walker   *Walker
	resolver ports.InputResolver
	strategy Strategy
}

// NewHasher creates a new Hasher that hashes files according to strategy.
func NewHasher(walker *Walker, resolver ports.InputResolver, strategy Strategy) *Hasher {
	if strategy == nil {
		strategy = Sequential{}
	}
	return &Hasher{
		walker:   walker,
		resolver: resolver,
		strategy: strategy,
	}
}

// WithParallelism returns a Hasher sharing h's walker and resolver that
// hashes up to n files at a time.
func (h *Hasher) WithParallelism(n int) ports.Hasher {
	return NewHasher(h.walker, h.resolver, StrategyFor(n))
}

// HashFile streams the file content through SHA-256.
func (h *Hasher) HashFile(ctx context.Context, path string) (domain.Digest, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", ioError(domain.ErrFileOpenFailed, err, path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	digester := domain.Algorithm.Digester()
	if _, err := io.Copy(digester.Hash(), f); err != nil {
		return "", ioError(domain.ErrFileHashFailed, err, path)
	}

	return domain.NewDigest(digester.Digest()), nil
}

// HashDirectory hashes every file below dir. Files are ordered by full path
// and folded one after the other as relative path followed by the hex file
// digest. The fold is flat; subdirectories do not get digests of their own.
func (h *Hasher) HashDirectory(ctx context.Context, dir string) (domain.Digest, error) {
	entries, err := h.Snapshot(ctx, dir)
	if err != nil {
		return "", err
	}
	return foldTree(entries), nil
}

// Snapshot lists and hashes every file below dir, sorted by full path.
func (h *Hasher) Snapshot(ctx context.Context, dir string) ([]domain.TreeEntry, error) {
	var paths []string
	for path, err := range h.walker.WalkFiles(dir) {
		if err != nil {
			return nil, ioError(domain.ErrWalkFailed, err, dir)
		}
		paths = append(paths, path)
	}
	slices.Sort(paths)

	digests, err := h.strategy.Map(ctx, paths, h.HashFile)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.TreeEntry, len(paths))
	for i, path := range paths {
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return nil, ioError(domain.ErrWalkFailed, err, path)
		}
		entries[i] = domain.TreeEntry{Path: path, RelPath: rel, Digest: digests[i]}
	}
	return entries, nil
}

// HashInputs computes one digest over all declared inputs.
// Every input is checked for existence before any content is read.
func (h *Hasher) HashInputs(ctx context.Context, inputs []string, cwd string) (domain.Digest, error) {
	paths, err := h.resolver.ResolveInputs(inputs, cwd)
	if err != nil {
		return "", err
	}

	isDir := make([]bool, len(paths))
	for i, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, iofs.ErrNotExist) {
				return "", zerr.With(zerr.Wrap(domain.ErrMissingInput, "declared input does not exist"), "path", path)
			}
			return "", ioError(domain.ErrPathStatFailed, err, path)
		}
		isDir[i] = info.IsDir()
	}

	digester := domain.Algorithm.Digester()
	w := digester.Hash()
	for i, path := range paths {
		var d domain.Digest
		if isDir[i] {
			d, err = h.HashDirectory(ctx, path)
		} else {
			d, err = h.HashFile(ctx, path)
		}
		if err != nil {
			return "", err
		}
		_, _ = io.WriteString(w, d.String())
	}

	return domain.NewDigest(digester.Digest()), nil
}

// foldTree folds the snapshot in order into one digest.
func foldTree(entries []domain.TreeEntry) domain.Digest {
	digester := domain.Algorithm.Digester()
	w := digester.Hash()
	for _, e := range entries {
		_, _ = io.WriteString(w, e.RelPath)
		_, _ = io.WriteString(w, e.Digest.String())
	}
	return domain.NewDigest(digester.Digest())
}

// ioError wraps err with the detail message and tags it as domain.ErrIO.
func ioError(detail, err error, path string) error {
	return domain.Mark(domain.ErrIO, zerr.With(zerr.Wrap(err, detail.Error()), "path", path))
}
