package domain

import (
	// Registers SHA-256 for the go-digest algorithms.
	_ "crypto/sha256"

	"github.com/opencontainers/go-digest"
)

// Algorithm is the hash function behind every Digest.
const Algorithm = digest.SHA256

// shortLen is the number of hex characters shown by Digest.Short.
const shortLen = 12

// Digest is the lowercase hex encoding of a SHA-256 sum.
// It is stored without the "sha256:" prefix used by go-digest.
type Digest string

// NewDigest converts a go-digest value into a Digest.
func NewDigest(d digest.Digest) Digest {
	return Digest(d.Encoded())
}

// String returns the hex representation.
func (d Digest) String() string {
	return string(d)
}

// IsZero reports whether the digest is empty.
func (d Digest) IsZero() bool {
	return d == ""
}

// Short returns an abbreviated form for log output.
func (d Digest) Short() string {
	if len(d) <= shortLen {
		return string(d)
	}
	return string(d[:shortLen])
}

// Validate checks that d is a well-formed SHA-256 hex string.
func (d Digest) Validate() error {
	return Algorithm.Validate(string(d))
}

// TreeEntry is one file of a directory snapshot.
type TreeEntry struct {
	// Path is the full path of the file.
	Path string
	// RelPath is Path relative to the hashed directory.
	RelPath string
	// Digest is the content digest of the file.
	Digest Digest
}

// HashResult carries the outcome of an asynchronous hash computation.
type HashResult struct {
	Digest Digest
	Err    error
}
