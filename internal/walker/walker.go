// Package walker finds candidate source files under a root directory and
// applies include/exclude glob filtering. The engine treats each returned
// path as opaque text to parse.
package walker

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

var skipDirs = map[string]struct{}{
	"node_modules": {},
	"vendor":       {},
	".git":         {},
	".hg":          {},
	".svn":         {},
	"__pycache__":  {},
	"venv":         {},
	".venv":        {},
	"build":        {},
	"dist":         {},
	"target":       {},
	".idea":        {},
	".vscode":      {},
}

// Filter holds compiled include/exclude patterns. Patterns use
// gitignore-style glob syntax. An empty include set matches every file.
type Filter struct {
	include *ignore.GitIgnore
	exclude *ignore.GitIgnore
}

// NewFilter compiles include and exclude patterns. Empty pattern lines are
// dropped.
func NewFilter(include, exclude []string) *Filter {
	f := &Filter{}
	if lines := nonEmpty(include); len(lines) > 0 {
		f.include = ignore.CompileIgnoreLines(lines...)
	}
	if lines := nonEmpty(exclude); len(lines) > 0 {
		f.exclude = ignore.CompileIgnoreLines(lines...)
	}
	return f
}

// Match reports whether a root-relative path passes the filter.
func (f *Filter) Match(rel string) bool {
	if f.include != nil && !f.include.MatchesPath(rel) {
		return false
	}
	if f.exclude != nil && f.exclude.MatchesPath(rel) {
		return false
	}
	return true
}

func nonEmpty(lines []string) []string {
	var out []string
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}

// Files walks root and returns the root-relative, forward-slash paths of
// regular files passing the filter, sorted for deterministic analysis order.
// If root is itself a regular file, it is returned directly.
func Files(root string, filter *Filter) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{filepath.Base(root)}, nil
	}

	var results []string
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable entries are skipped, not fatal
		}

		name := d.Name()
		if d.IsDir() {
			if path == root {
				return nil
			}
			if _, skip := skipDirs[name]; skip || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(name, ".") {
			return nil
		}
		if d.Type()&os.ModeSymlink != 0 {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if !filter.Match(rel) {
			return nil
		}

		results = append(results, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(results)
	return results, nil
}
