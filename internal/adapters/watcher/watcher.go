// Package watcher reports changes to declared inputs using fsnotify.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/justrun/internal/core/domain"
	"go.trai.ch/justrun/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 100

// Watcher watches input files and directories.
// Directory inputs are watched recursively. File inputs are watched through
// their parent directory so that editors replacing the file are still seen.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	logger    ports.Logger
	files     map[string]struct{}
	dirs      []string
	events    chan ports.WatchEvent
}

// NewWatcher creates a Watcher reporting watch errors to logger.
func NewWatcher(logger ports.Logger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create file watcher")
	}
	return &Watcher{
		fsWatcher: w,
		logger:    logger,
		files:     make(map[string]struct{}),
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
	}, nil
}

// Start begins watching paths and returns once every watch is in place.
func (w *Watcher) Start(ctx context.Context, paths []string) error {
	for _, p := range paths {
		info, err := os.Stat(p)
		if errors.Is(err, fs.ErrNotExist) {
			return zerr.With(zerr.Wrap(domain.ErrMissingInput, "declared input does not exist"), "path", p)
		}
		if err != nil {
			return domain.Mark(domain.ErrIO, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", p))
		}

		if !info.IsDir() {
			w.files[p] = struct{}{}
			if err := w.fsWatcher.Add(filepath.Dir(p)); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to watch"), "path", p)
			}
			continue
		}

		w.dirs = append(w.dirs, p)
		for dir := range walkDirs(p) {
			if err := w.fsWatcher.Add(dir); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to watch"), "path", dir)
			}
		}
	}

	go w.processEvents(ctx)
	return nil
}

// Stop closes the underlying watcher.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator over the change events.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event.Name) {
				continue
			}

			op, ok := convertOp(event.Op)
			if !ok {
				continue
			}

			select {
			case w.events <- ports.WatchEvent{Path: event.Name, Operation: op}:
			case <-ctx.Done():
				return
			}

			if op == ports.OpCreate {
				w.addCreatedDir(event.Name)
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn(fmt.Sprintf("watcher: %v", err))
		}
	}
}

// addCreatedDir starts watching a directory created inside a watched input.
func (w *Watcher) addCreatedDir(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}
	for dir := range walkDirs(path) {
		if err := w.fsWatcher.Add(dir); err != nil {
			w.logger.Warn(fmt.Sprintf("watcher: %s: %v", dir, err))
		}
	}
}

// relevant reports whether a change at path can affect the input digest.
func (w *Watcher) relevant(path string) bool {
	if IsCacheRecord(path) {
		return false
	}
	if _, ok := w.files[path]; ok {
		return true
	}
	for _, dir := range w.dirs {
		if path == dir || strings.HasPrefix(path, dir+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// IsCacheRecord reports whether path is the cache record or one of its temporary files.
func IsCacheRecord(path string) bool {
	return strings.HasPrefix(filepath.Base(path), domain.CacheFileName)
}

func convertOp(op fsnotify.Op) (ports.WatchOp, bool) {
	switch {
	case op.Has(fsnotify.Write):
		return ports.OpWrite, true
	case op.Has(fsnotify.Create):
		return ports.OpCreate, true
	case op.Has(fsnotify.Remove):
		return ports.OpRemove, true
	case op.Has(fsnotify.Rename):
		return ports.OpRename, true
	default:
		return 0, false
	}
}

// walkDirs yields root and every directory below it. Unreadable entries are skipped.
func walkDirs(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // Unreadable directories are not watched.
			}
			if d.IsDir() && !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}
