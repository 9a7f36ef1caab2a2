package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingInput is returned when a declared input file or directory does not exist.
	ErrMissingInput = zerr.New("input not found")

	// ErrIO is the kind shared by every read, enumeration or cache-file failure.
	ErrIO = zerr.New("i/o failure")

	// ErrBuildFailed is returned when the build command exits with a non-zero status.
	ErrBuildFailed = zerr.New("build failed")

	// ErrArtifactFailed is returned when the entry artifact exits with a non-zero status.
	ErrArtifactFailed = zerr.New("artifact failed")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails mid-stream.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrWalkFailed is returned when a directory cannot be enumerated.
	ErrWalkFailed = zerr.New("failed to enumerate directory")

	// ErrPathStatFailed is returned when stating a path fails.
	ErrPathStatFailed = zerr.New("failed to stat path")

	// ErrCacheReadFailed is returned when the cache record cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read cache record")

	// ErrCacheWriteFailed is returned when the cache record cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write cache record")

	// ErrArtifactLoadFailed is returned when the entry artifact cannot be loaded in import mode.
	ErrArtifactLoadFailed = zerr.New("failed to load artifact")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidMode is returned for an unknown invocation mode.
	ErrInvalidMode = zerr.New("invalid invocation mode, expected 'blocking-import' or 'spawn-and-forward-streams'")

	// ErrInvalidOptions is returned when a required option is missing.
	ErrInvalidOptions = zerr.New("invalid options")

	// ErrEmptyCommand is returned when a command string contains no program name.
	ErrEmptyCommand = zerr.New("empty command")

	// ErrCommandSyntax is returned when a command string cannot be split into words.
	ErrCommandSyntax = zerr.New("malformed command")
)

// kindError tags a detailed error with one of the error kinds above.
type kindError struct {
	kind error
	err  error
}

func (e *kindError) Error() string {
	return e.err.Error()
}

func (e *kindError) Unwrap() []error {
	return []error{e.err, e.kind}
}

// Mark tags err with kind so that errors.Is matches both the kind and
// everything already in err's chain. The message of err is unchanged.
func Mark(kind, err error) error {
	if err == nil {
		return nil
	}
	return &kindError{kind: kind, err: err}
}
