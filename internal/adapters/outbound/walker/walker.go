// Package walker enumerates the files a scan works on.
package walker

import (
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// dependencyMarker excludes any path that contains it, at any depth.
const dependencyMarker = "node_modules"

// Walker implements domain.FileWalker. Paths containing node_modules are
// always skipped; Exclude adds gitignore-style patterns matched against
// the path relative to the walk root.
type Walker struct {
	matcher *ignore.GitIgnore
}

// New creates a Walker with extra exclusion patterns.
func New(exclude ...string) *Walker {
	w := &Walker{}
	if len(exclude) > 0 {
		w.matcher = ignore.CompileIgnoreLines(exclude...)
	}
	return w
}

// Walk visits every regular file under root depth-first with its absolute
// path. Symlinks are reported as files and never followed.
func (w *Walker) Walk(root string, visit func(path string)) error {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return err
	}
	return w.walk(absRoot, absRoot, visit)
}

func (w *Walker) walk(absRoot, dir string, visit func(path string)) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if w.excluded(absRoot, path, entry.IsDir()) {
			continue
		}
		if entry.IsDir() {
			if err := w.walk(absRoot, path, visit); err != nil {
				return err
			}
			continue
		}
		visit(path)
	}
	return nil
}

func (w *Walker) excluded(absRoot, path string, isDir bool) bool {
	if strings.Contains(path, dependencyMarker) {
		return true
	}
	if w.matcher == nil {
		return false
	}
	rel, err := filepath.Rel(absRoot, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	if isDir {
		rel += "/"
	}
	return w.matcher.MatchesPath(rel)
}
