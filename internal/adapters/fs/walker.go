// Package fs provides file system adapters for walking and hashing files.
package fs

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every file below root, with paths joined onto root.
// Directories are not yielded. Symbolic links are resolved the way stat does:
// a link to a directory is descended into, any other link is yielded as a file.
// A link to a directory already on the path being walked, or to one of its
// ancestors, is skipped.
//
// An enumeration failure is yielded once with an empty path, and the walk stops.
func (w *Walker) WalkFiles(root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		w.walk(root, nil, yield)
	}
}

// walk reports whether the consumer wants more entries. trail holds the real
// parent directory of every link followed to reach dir.
func (w *Walker) walk(dir string, trail []string, yield func(string, error) bool) bool {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return yield("", err)
	}

	more := true
	err = filepath.WalkDir(resolved, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		// Report the path as seen through dir, not through the resolved target.
		rel, err := filepath.Rel(resolved, path)
		if err != nil {
			return err
		}
		visible := filepath.Join(dir, rel)

		if d.Type()&fs.ModeSymlink != 0 {
			info, err := os.Stat(path)
			if err != nil {
				return err
			}
			if info.IsDir() {
				target, err := filepath.EvalSymlinks(path)
				if err != nil {
					return err
				}
				// path lies below resolved, which is real, so its parent is real too.
				next := append(slices.Clip(trail), filepath.Dir(path))
				if onTrail(target, next) {
					return nil
				}
				if !w.walk(visible, next, yield) {
					more = false
					return filepath.SkipAll
				}
				return nil
			}
		}

		if !yield(visible, nil) {
			more = false
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil && more {
		return yield("", err)
	}
	return more
}

// onTrail reports whether dir is one of the directories in trail or an ancestor of one.
func onTrail(dir string, trail []string) bool {
	prefix := dir
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	for _, p := range trail {
		if p == dir || strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}
