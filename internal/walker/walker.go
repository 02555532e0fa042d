// Package walker enumerates the template files an apply or validate pass
// touches: everything under src/ and tests/ plus the root metadata file,
// minus tool caches and compiled artifacts.
package walker

import (
	"io"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// IgnoredDirs are directory names pruned anywhere in the tree.
var IgnoredDirs = []string{
	".venv",
	".git",
	"__pycache__",
	".mypy_cache",
	".pytest_cache",
	".ruff_cache",
	"node_modules",
}

// IgnoredSuffixes are file name suffixes never yielded.
var IgnoredSuffixes = []string{".pyc", ".pyo", ".DS_Store"}

// Walker walks a project root.
type Walker struct {
	root  string
	roots []string
	extra []string
	log   *log.Logger
}

// Option configures a Walker.
type Option func(*Walker)

// WithLogger sets the logger used for skipped roots and walk errors.
func WithLogger(l *log.Logger) Option {
	return func(w *Walker) { w.log = l }
}

// WithRoots replaces the default directory roots (src, tests).
func WithRoots(rel ...string) Option {
	return func(w *Walker) { w.roots = rel }
}

// WithFiles replaces the default root-level files (pyproject.toml).
func WithFiles(rel ...string) Option {
	return func(w *Walker) { w.extra = rel }
}

// New creates a Walker for root.
func New(root string, opts ...Option) *Walker {
	w := &Walker{
		root:  root,
		roots: []string{"src", "tests"},
		extra: []string{"pyproject.toml"},
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.log == nil {
		w.log = log.New(io.Discard)
	}
	return w
}

// Files yields absolute paths of regular files in a stable order: each root
// in turn (lexical within a root), then the root-level files. Missing roots
// are skipped. Iteration is lazy; stopping early stops the walk. Directory
// symlinks are not followed; file symlinks are yielded.
func (w *Walker) Files() iter.Seq[string] {
	return func(yield func(string) bool) {
		seen := make(map[string]struct{})
		emit := func(path string) bool {
			if _, ok := seen[path]; ok {
				return true
			}
			seen[path] = struct{}{}
			return yield(path)
		}

		for _, rel := range w.roots {
			dir := filepath.Join(w.root, rel)
			info, err := os.Stat(dir)
			if err != nil || !info.IsDir() {
				w.log.Debug("walk root skipped", "root", rel)
				continue
			}
			if !w.walkDir(dir, emit) {
				return
			}
		}

		for _, rel := range w.extra {
			path := filepath.Join(w.root, rel)
			if !isRegular(path) || ignoredFile(filepath.Base(path)) {
				continue
			}
			if !emit(path) {
				return
			}
		}
	}
}

// walkDir returns false when the consumer stopped the iteration.
func (w *Walker) walkDir(dir string, emit func(string) bool) bool {
	stopped := false
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			w.log.Warn("walk error", "path", path, "err", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != dir && ignoredDir(d.Name()) {
				return fs.SkipDir
			}
			return nil
		}
		if ignoredFile(d.Name()) || ignoredDir(d.Name()) {
			return nil
		}
		if !d.Type().IsRegular() {
			if d.Type()&fs.ModeSymlink == 0 || !isRegular(path) {
				return nil
			}
		}
		if !emit(path) {
			stopped = true
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		w.log.Warn("walk failed", "root", dir, "err", err)
	}
	return !stopped
}

// Collect drains Files into a slice.
func (w *Walker) Collect() []string {
	var out []string
	for p := range w.Files() {
		out = append(out, p)
	}
	return out
}

func ignoredDir(name string) bool {
	for _, d := range IgnoredDirs {
		if name == d {
			return true
		}
	}
	return false
}

func ignoredFile(name string) bool {
	for _, s := range IgnoredSuffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}

// isRegular follows symlinks.
func isRegular(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
