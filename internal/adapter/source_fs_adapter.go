// Package adapter contains filesystem, persistence and parser adapters for the
// paramfix CLI.
package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"github.com/spf13/afero"

	"github.com/mouse-blink/paramfix/internal/debug"
	m "github.com/mouse-blink/paramfix/internal/model"
)

// ErrInvalidPattern is returned when an exclude glob does not compile.
var ErrInvalidPattern = errors.New("invalid exclude pattern")

// skippedDirs are never descended into.
var skippedDirs = map[string]struct{}{
	".git":         {},
	"node_modules": {},
	".next":        {},
}

// SourceFSAdapter abstracts the filesystem operations the workflow needs so it
// can be tested without touching the disk.
type SourceFSAdapter interface {
	// Discover walks root in lexical order and returns every regular file
	// named filename whose root-relative path matches none of the exclude
	// globs.
	Discover(root m.Path, filename string, exclude []string) ([]m.Path, error)

	// ReadFile loads a file and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile replaces the content of an existing file, keeping its mode.
	WriteFile(path m.Path, content []byte) error
}

// LocalSourceFSAdapter implements SourceFSAdapter on top of an afero.Fs.
type LocalSourceFSAdapter struct {
	fs afero.Fs
}

// NewLocalSourceFSAdapter constructs an adapter backed by the OS filesystem.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return NewSourceFSAdapter(afero.NewOsFs())
}

// NewSourceFSAdapter constructs an adapter backed by fs.
func NewSourceFSAdapter(fs afero.Fs) *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{fs: fs}
}

// Discover collects candidate files below root.
func (a *LocalSourceFSAdapter) Discover(root m.Path, filename string, exclude []string) ([]m.Path, error) {
	patterns, err := CompilePatterns(exclude)
	if err != nil {
		return nil, err
	}

	rootPath, err := normalizeRootPath(string(root))
	if err != nil {
		return nil, err
	}

	info, err := a.FileInfo(m.Path(rootPath))
	if err != nil {
		return nil, fmt.Errorf("root path error: %w", err)
	}

	if !info.IsDir() {
		if filepath.Base(rootPath) == filename && info.Mode().IsRegular() {
			return []m.Path{m.Path(rootPath)}, nil
		}

		return []m.Path{}, nil
	}

	paths := []m.Path{}

	err = afero.Walk(a.fs, rootPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(rootPath, path)
		if err != nil {
			return err
		}

		rel = filepath.ToSlash(rel)

		if info.IsDir() {
			if path == rootPath {
				return nil
			}

			if _, skip := skippedDirs[info.Name()]; skip || matchesDir(patterns, rel) {
				debug.Debug("skipping directory", "path", path)
				return filepath.SkipDir
			}

			return nil
		}

		if info.Name() != filename || !info.Mode().IsRegular() {
			return nil
		}

		if matchesAny(patterns, rel) {
			debug.Debug("excluded", "path", path)
			return nil
		}

		paths = append(paths, m.Path(path))

		return nil
	})
	if err != nil {
		return nil, err
	}

	debug.Debug("discovered route files", "root", rootPath, "count", len(paths))

	return paths, nil
}

// ReadFile loads file contents.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return afero.ReadFile(a.fs, string(path))
}

// WriteFile writes content to an existing file with its current permissions.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte) error {
	info, err := a.FileInfo(path)
	if err != nil {
		return err
	}

	return afero.WriteFile(a.fs, string(path), content, info.Mode().Perm())
}

// FileInfo returns metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return a.fs.Stat(string(path))
}

// CompilePatterns compiles exclude globs using '/' as the separator.
func CompilePatterns(patterns []string) ([]glob.Glob, error) {
	compiled := make([]glob.Glob, 0, len(patterns))

	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidPattern, pattern, err)
		}

		compiled = append(compiled, g)
	}

	return compiled, nil
}

func matchesAny(patterns []glob.Glob, rel string) bool {
	for _, g := range patterns {
		if g.Match(rel) {
			return true
		}
	}

	return false
}

// matchesDir reports whether a directory is excluded as a whole, so that a
// pattern like "legacy/**" prunes the walk at "legacy".
func matchesDir(patterns []glob.Glob, rel string) bool {
	return matchesAny(patterns, rel) || matchesAny(patterns, rel+"/**")
}

func normalizeRootPath(root string) (string, error) {
	if strings.HasPrefix(root, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}

		suffix := strings.TrimPrefix(root, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		root = filepath.Join(home, suffix)
	}

	if root == "" {
		root = "."
	}

	return filepath.Clean(root), nil
}
