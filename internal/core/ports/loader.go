package ports

import (
	"context"

	"go.trai.ch/justrun/internal/core/domain"
)

// ArtifactLoader loads an entry artifact in-process.
//
//go:generate go run go.uber.org/mock/mockgen -source=loader.go -destination=mocks/mock_loader.go -package=mocks
type ArtifactLoader interface {
	// Load opens the artifact at path, resolves symbol and returns what it yields.
	// If the symbol is a function it is called with args.
	Load(ctx context.Context, path, symbol string, args []string) (domain.Payload, error)
}
