package domain

import (
	"path/filepath"
	"strings"

	"github.com/mattn/go-shellwords"
	"go.trai.ch/zerr"
)

// InvocationMode selects how the entry artifact is invoked.
type InvocationMode string

const (
	// ModeImport loads the artifact in-process and returns its payload.
	ModeImport InvocationMode = "blocking-import"
	// ModeSpawn runs the artifact as a child process with forwarded streams.
	ModeSpawn InvocationMode = "spawn-and-forward-streams"
)

// ParseMode converts a configuration value to an InvocationMode.
// The empty string selects ModeSpawn. The short aliases "import"/"module"
// and "spawn"/"script" are accepted as well.
func ParseMode(s string) (InvocationMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(ModeSpawn), "spawn", "script":
		return ModeSpawn, nil
	case string(ModeImport), "import", "module":
		return ModeImport, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrInvalidMode, "unknown mode"), "mode", s)
	}
}

// Options holds everything a single run needs.
type Options struct {
	// WorkingDir is the base path every other path is resolved against.
	WorkingDir string
	// EntryArtifact is the executable or loadable build output, relative to WorkingDir.
	EntryArtifact string
	// BuildCommand is run in WorkingDir when the inputs changed.
	BuildCommand string
	// Inputs are the files and directories forming the cache key.
	Inputs []string
	// LoggingEnabled turns the diagnostic sink on for this run.
	LoggingEnabled bool
	// Mode selects how the artifact is invoked.
	Mode InvocationMode
	// Interpreter, when set, is prepended to the artifact in spawn mode (e.g. "node").
	Interpreter string
	// Symbol is the name looked up in the artifact in import mode.
	Symbol string
	// Parallelism bounds concurrent file hashing. Values below 2 hash sequentially.
	Parallelism int
}

// Requirement is how much of Options a command depends on.
type Requirement int

const (
	// RequireWorkingDir is enough for commands that only touch the cache record.
	RequireWorkingDir Requirement = iota
	// RequireInputs adds the input declaration, for commands that hash.
	RequireInputs
	// RequireAll adds the entry artifact and the build command, for commands that build.
	RequireAll
)

// Validate checks that the options describe a runnable configuration.
func (o *Options) Validate() error {
	return o.Check(RequireAll)
}

// Check validates the options a command with requirement r depends on.
// Mode and parallelism are always checked. Inputs must be declared, but an
// explicitly empty list is accepted.
func (o *Options) Check(r Requirement) error {
	if o.WorkingDir == "" {
		return invalidOption("working directory is required", "workingDirectory")
	}
	if _, err := ParseMode(string(o.Mode)); err != nil {
		return err
	}
	if o.Parallelism < 0 {
		return invalidOption("parallelism must not be negative", "parallelism")
	}
	if r < RequireInputs {
		return nil
	}
	if o.Inputs == nil {
		return invalidOption("inputs are required", "inputs")
	}
	if r < RequireAll {
		return nil
	}
	if o.EntryArtifact == "" {
		return invalidOption("entry artifact is required", "entryArtifact")
	}
	if strings.TrimSpace(o.BuildCommand) == "" {
		return invalidOption("build command is required", "buildCommand")
	}
	if _, err := SplitCommand(o.BuildCommand); err != nil {
		return Mark(ErrInvalidOptions, zerr.With(err, "option", "buildCommand"))
	}
	if _, err := SplitWords(o.Interpreter); err != nil {
		return Mark(ErrInvalidOptions, zerr.With(err, "option", "interpreter"))
	}
	return nil
}

func invalidOption(msg, option string) error {
	return zerr.With(zerr.Wrap(ErrInvalidOptions, msg), "option", option)
}

// EntryPath returns the absolute location of the entry artifact.
func (o *Options) EntryPath() string {
	if filepath.IsAbs(o.EntryArtifact) {
		return filepath.Clean(o.EntryArtifact)
	}
	return filepath.Join(o.WorkingDir, o.EntryArtifact)
}

// SymbolName returns the configured symbol or DefaultSymbol.
func (o *Options) SymbolName() string {
	if o.Symbol == "" {
		return DefaultSymbol
	}
	return o.Symbol
}

// SplitCommand splits a command line into a program and its arguments.
// Quotes and backslash escapes work as in a POSIX shell. Nothing is expanded
// and control operators such as "&&" or ">" are rejected: wrap the command in
// `sh -c '...'` to use them.
func SplitCommand(command string) ([]string, error) {
	words, err := SplitWords(command)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, zerr.With(zerr.Wrap(ErrEmptyCommand, "command has no program name"), "command", command)
	}
	return words, nil
}

// SplitWords splits s like SplitCommand. A blank s yields no words.
func SplitWords(s string) ([]string, error) {
	parser := shellwords.NewParser()
	words, err := parser.Parse(s)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(ErrCommandSyntax, err.Error()), "command", s)
	}
	// The parser stops at the first unquoted control operator.
	if parser.Position >= 0 {
		return nil, zerr.With(zerr.Wrap(ErrCommandSyntax, "shell operators are not supported"), "command", s)
	}
	return words, nil
}
