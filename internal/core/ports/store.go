package ports

import "go.trai.ch/justrun/internal/core/domain"

// DigestStore persists the last-known input digest of a working directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type DigestStore interface {
	// Load returns the stored digest. The boolean is false when no record exists.
	Load(cwd string) (domain.Digest, bool, error)

	// Save replaces the stored digest.
	Save(cwd string, digest domain.Digest) error

	// Remove deletes the record. A missing record is not an error.
	Remove(cwd string) error
}
