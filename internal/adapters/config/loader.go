// Package config provides the configuration loader for justrun.
package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"go.trai.ch/justrun/internal/core/domain"
	"go.trai.ch/justrun/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader for YAML, JSON and JSONC files.
type FileConfigLoader struct {
	// Filenames are the candidates tried by Discover, in order.
	Filenames []string
}

// NewLoader creates a loader searching for domain.ConfigFileNames.
func NewLoader() *FileConfigLoader {
	return &FileConfigLoader{Filenames: domain.ConfigFileNames}
}

// Discover returns the first candidate file present in dir, or "" if none is.
func (l *FileConfigLoader) Discover(dir string) (string, error) {
	for _, name := range l.Filenames {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return "", domain.Mark(domain.ErrIO, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path))
		}
		if !info.IsDir() {
			return path, nil
		}
	}
	return "", nil
}

// Load reads the options from the config file at path.
func (l *FileConfigLoader) Load(path string) (*domain.Options, error) {
	return Load(path)
}

// Load reads a config file and converts it into run options.
func Load(path string) (*domain.Options, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, domain.Mark(domain.ErrIO, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path))
	}

	runfile, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, domain.Mark(domain.ErrIO, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path))
	}

	return runfile.Options(filepath.Dir(abs))
}

// Parse decodes config file content. JSONC comments and trailing commas
// are stripped before JSON decoding; any other extension is read as YAML.
func Parse(data []byte, ext string) (*Runfile, error) {
	var runfile Runfile
	var err error
	switch strings.ToLower(ext) {
	case ".json", ".jsonc":
		err = json.Unmarshal(jsonc.ToJSON(data), &runfile)
	default:
		err = yaml.Unmarshal(data, &runfile)
	}
	if err != nil {
		return nil, errors.Join(domain.ErrConfigParseFailed, err)
	}
	return &runfile, nil
}

// Options converts the file into run options. A relative working directory
// is resolved against base; an empty one means base itself.
func (r *Runfile) Options(base string) (*domain.Options, error) {
	mode, err := domain.ParseMode(r.InvocationMode)
	if err != nil {
		return nil, err
	}

	wd := r.WorkingDirectory
	switch {
	case wd == "":
		wd = base
	case !filepath.IsAbs(wd):
		wd = filepath.Join(base, wd)
	}

	return &domain.Options{
		WorkingDir:     filepath.Clean(wd),
		EntryArtifact:  r.EntryArtifact,
		BuildCommand:   r.BuildCommand,
		Inputs:         r.Inputs,
		LoggingEnabled: r.LoggingEnabled,
		Mode:           mode,
		Interpreter:    r.Interpreter,
		Symbol:         r.Symbol,
		Parallelism:    r.Parallelism,
	}, nil
}
