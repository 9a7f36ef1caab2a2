// Package cas persists the last-known input digest of a working directory.
package cas

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/justrun/internal/core/domain"
	"go.trai.ch/justrun/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DigestStore = (*Store)(nil)

// Store implements ports.DigestStore with one record file per working directory.
type Store struct {
	name string
}

// NewStore creates a Store using the default record file name.
func NewStore() *Store {
	return NewStoreWithName(domain.CacheFileName)
}

// NewStoreWithName creates a Store whose record file is called name.
func NewStoreWithName(name string) *Store {
	return &Store{name: name}
}

func (s *Store) path(cwd string) string {
	return filepath.Join(cwd, s.name)
}

// Load reads the stored digest. A missing, empty or malformed record reports false.
func (s *Store) Load(cwd string) (domain.Digest, bool, error) {
	path := s.path(cwd)

	//nolint:gosec // Path is built from the working directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, recordError(domain.ErrCacheReadFailed, err, path)
	}

	// A record that is not a digest cannot match any input set.
	d := domain.Digest(strings.TrimSpace(string(data)))
	if d.Validate() != nil {
		return "", false, nil
	}
	return d, true, nil
}

// Save replaces the record with digest. The new content is written to a
// temporary file in the same directory and renamed over the record.
func (s *Store) Save(cwd string, digest domain.Digest) error {
	path := s.path(cwd)

	tmp, err := os.CreateTemp(cwd, s.name+".*.tmp")
	if err != nil {
		return recordError(domain.ErrCacheWriteFailed, err, path)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.WriteString(digest.String()); err != nil {
		_ = tmp.Close()
		return recordError(domain.ErrCacheWriteFailed, err, path)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return recordError(domain.ErrCacheWriteFailed, err, path)
	}
	if err := tmp.Close(); err != nil {
		return recordError(domain.ErrCacheWriteFailed, err, path)
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return recordError(domain.ErrCacheWriteFailed, err, path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return recordError(domain.ErrCacheWriteFailed, err, path)
	}

	committed = true
	return nil
}

// Remove deletes the record.
func (s *Store) Remove(cwd string) error {
	path := s.path(cwd)
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return recordError(domain.ErrCacheWriteFailed, err, path)
	}
	return nil
}

func recordError(detail, err error, path string) error {
	return domain.Mark(domain.ErrIO, zerr.With(zerr.Wrap(err, detail.Error()), "path", path))
}
