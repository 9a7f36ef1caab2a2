package ports

import "go.trai.ch/justrun/internal/core/domain"

// ConfigLoader defines the interface for loading run options.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Discover returns the first known config file in dir, or "" if there is none.
	Discover(dir string) (string, error)

	// Load reads the options from the config file at path.
	// Relative working directories are resolved against the file's directory.
	Load(path string) (*domain.Options, error)
}
