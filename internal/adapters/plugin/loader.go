// Package plugin loads entry artifacts in-process as Go plugins.
package plugin

import (
	"context"
	"errors"
	goplugin "plugin"
	"reflect"

	"go.trai.ch/justrun/internal/core/domain"
	"go.trai.ch/justrun/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactLoader = (*Loader)(nil)

// Entry functions an artifact may export under its symbol.
type (
	// EntryFunc receives the context and the forwarded arguments.
	EntryFunc = func(ctx context.Context, args []string) (any, error)
	// ArgsFunc receives the forwarded arguments.
	ArgsFunc = func(args []string) (any, error)
)

// Module is an opened artifact.
type Module interface {
	Lookup(symbol string) (goplugin.Symbol, error)
}

// OpenFunc opens the artifact at path.
type OpenFunc func(path string) (Module, error)

// Loader implements ports.ArtifactLoader.
type Loader struct {
	open OpenFunc
}

// NewLoader creates a Loader backed by the plugin package.
func NewLoader() *Loader {
	return NewLoaderWithOpener(func(path string) (Module, error) {
		return goplugin.Open(path)
	})
}

// NewLoaderWithOpener creates a Loader that opens artifacts with open.
func NewLoaderWithOpener(open OpenFunc) *Loader {
	return &Loader{open: open}
}

// Load opens the artifact and resolves symbol. A function symbol of type
// EntryFunc or ArgsFunc is called with args and its result is returned.
// An exported variable is returned by value; anything else is returned as is.
func (l *Loader) Load(ctx context.Context, path, symbol string, args []string) (domain.Payload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mod, err := l.open(path)
	if err != nil {
		return nil, loadError(err, path, symbol)
	}

	sym, err := mod.Lookup(symbol)
	if err != nil {
		return nil, loadError(err, path, symbol)
	}

	switch fn := sym.(type) {
	case EntryFunc:
		return call(func() (any, error) { return fn(ctx, args) }, path, symbol)
	case *EntryFunc:
		return call(func() (any, error) { return (*fn)(ctx, args) }, path, symbol)
	case ArgsFunc:
		return call(func() (any, error) { return fn(args) }, path, symbol)
	case *ArgsFunc:
		return call(func() (any, error) { return (*fn)(args) }, path, symbol)
	}

	// Lookup returns a pointer for exported variables.
	if v := reflect.ValueOf(sym); v.Kind() == reflect.Pointer && !v.IsNil() {
		return v.Elem().Interface(), nil
	}
	return sym, nil
}

func call(fn func() (any, error), path, symbol string) (domain.Payload, error) {
	payload, err := fn()
	if err != nil {
		return nil, zerr.With(zerr.With(errors.Join(domain.ErrArtifactFailed, err), "artifact", path), "symbol", symbol)
	}
	return payload, nil
}

func loadError(err error, path, symbol string) error {
	return domain.Mark(domain.ErrArtifactLoadFailed,
		zerr.With(zerr.With(zerr.Wrap(err, domain.ErrArtifactLoadFailed.Error()), "artifact", path), "symbol", symbol))
}
