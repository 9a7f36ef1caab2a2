package app

import (
	"go.trai.ch/justrun/internal/core/domain"
	"go.trai.ch/zerr"
)

// Override applies one command line setting on top of the config file.
type Override func(*domain.Options)

// LoadOptions builds the options for a command run in cwd.
// configPath selects the config file; when empty, a known config file in cwd
// is used if there is one. Overrides are applied last and the result is
// checked against need, so `clean` works without a build command.
func (a *App) LoadOptions(cwd, configPath string, need domain.Requirement, overrides ...Override) (*domain.Options, error) {
	if configPath == "" {
		found, err := a.configLoader.Discover(cwd)
		if err != nil {
			return nil, err
		}
		configPath = found
	}

	opts := &domain.Options{WorkingDir: cwd, Mode: domain.ModeSpawn}
	if configPath != "" {
		loaded, err := a.configLoader.Load(configPath)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to load configuration")
		}
		opts = loaded
	}

	for _, apply := range overrides {
		apply(opts)
	}

	mode, err := domain.ParseMode(string(opts.Mode))
	if err != nil {
		return nil, err
	}
	opts.Mode = mode

	if err := opts.Check(need); err != nil {
		return nil, err
	}
	return opts, nil
}
