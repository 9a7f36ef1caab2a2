package ports

import (
	"context"
	"iter"
)

//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks

// WatchOp is the kind of file system change.
type WatchOp uint8

const (
	// OpCreate indicates a file or directory was created.
	OpCreate WatchOp = iota
	// OpWrite indicates a file was modified.
	OpWrite
	// OpRemove indicates a file or directory was removed.
	OpRemove
	// OpRename indicates a file or directory was renamed.
	OpRename
)

// WatchEvent is a change to one of the watched inputs.
type WatchEvent struct {
	// Path is the absolute path that changed.
	Path string
	// Operation is the kind of change.
	Operation WatchOp
}

// Watcher reports changes to a set of input paths.
type Watcher interface {
	// Start watches every path, directories recursively. Paths must be absolute.
	Start(ctx context.Context, paths []string) error
	// Stop releases the watcher. Events ends after Stop.
	Stop() error
	// Events returns the change events in arrival order.
	Events() iter.Seq[WatchEvent]
}

// WatcherFactory creates a Watcher. Watchers are only created for watch sessions.
type WatcherFactory func() (Watcher, error)
