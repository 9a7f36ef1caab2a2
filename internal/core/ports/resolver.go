package ports

// InputResolver turns declared inputs into absolute paths.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type InputResolver interface {
	// ResolveInputs resolves inputs against root and returns them sorted.
	ResolveInputs(inputs []string, root string) ([]string, error)
}
