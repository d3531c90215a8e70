// Package adapter contains the infrastructure adapters of the marauders CLI:
// file system access, configuration files, report storage and test command
// execution.
package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	m "github.com/mouse-blink/marauders/internal/model"
)

// ErrProjectRootNotFound is returned by FindProjectRoot when no parent
// directory holds a configuration file.
var ErrProjectRootNotFound = errors.New("project root not found")

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning user projects. It hides direct `os` access so the
// workflow logic can be tested without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type SourceFSAdapter interface {
	// ResolveRoot turns a user supplied path into an absolute one. A trailing
	// "/..." requests a recursive scan.
	ResolveRoot(root string) (m.Path, bool, error)

	// Collect lists the candidate source files under root, sorted.
	Collect(root m.Path, recursive bool, opts CollectOptions) ([]m.Path, error)

	// Walk traverses the provided root path. When recursive is false the
	// implementation limits itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// FindProjectRoot searches for a marauder configuration file walking up
	// the directory tree.
	FindProjectRoot(startPath m.Path) (m.Path, error)

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// CollectOptions narrows the files returned by Collect.
type CollectOptions struct {
	// Extensions keeps only files with one of these extensions (without the
	// dot). Empty keeps every file.
	Extensions []string
	// Ignore holds doublestar patterns matched against slash-separated paths
	// relative to IgnoreBase.
	Ignore []string
	// IgnoreBase anchors the ignore patterns. Empty means the collected root.
	IgnoreBase m.Path
	// UseGitignore lists files through git so .gitignore rules apply.
	UseGitignore bool
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// skipDirs are never descended into by the fallback walk.
var skipDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
	"__pycache__":  true,
	"_build":       true,
	"target":       true,
}

// LocalSourceFSAdapter is the os backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ResolveRoot normalizes root and reports whether a recursive scan was asked for.
func (a *LocalSourceFSAdapter) ResolveRoot(root string) (m.Path, bool, error) {
	abs, recursive, err := normalizeRootPath(root)
	if err != nil {
		return "", false, err
	}

	return m.Path(abs), recursive, nil
}

// Collect lists candidate files. A file root is returned as is when its
// extension matches.
func (a *LocalSourceFSAdapter) Collect(root m.Path, recursive bool, opts CollectOptions) ([]m.Path, error) {
	info, err := a.FileInfo(root)
	if err != nil {
		return nil, fmt.Errorf("root path error: %w", err)
	}

	if !info.IsDir() {
		if !matchesExtension(string(root), opts.Extensions) {
			return nil, nil
		}

		return []m.Path{root}, nil
	}

	var paths []string

	if opts.UseGitignore {
		paths, err = gitListFiles(string(root))
	}

	if !opts.UseGitignore || err != nil {
		paths, err = a.walkListFiles(root, recursive)
		if err != nil {
			return nil, err
		}
	}

	base := root
	if opts.IgnoreBase != "" {
		base = opts.IgnoreBase
	}

	var out []m.Path

	for _, path := range paths {
		rel, err := filepath.Rel(string(root), path)
		if err != nil {
			return nil, err
		}

		if !recursive && strings.ContainsRune(rel, filepath.Separator) {
			continue
		}

		if !matchesExtension(path, opts.Extensions) {
			continue
		}

		anchored, err := filepath.Rel(string(base), path)
		if err != nil {
			return nil, err
		}

		ignored, err := isIgnored(filepath.ToSlash(anchored), opts.Ignore)
		if err != nil {
			return nil, err
		}

		if ignored {
			continue
		}

		out = append(out, m.Path(path))
	}

	slices.Sort(out)

	return slices.Compact(out), nil
}

// gitListFiles uses git ls-files to discover tracked and untracked (but not
// ignored) files under root.
func gitListFiles(root string) ([]string, error) {
	// --cached: tracked files, --others: untracked files,
	// --exclude-standard: respect .gitignore, .git/info/exclude, global excludes.
	cmd := exec.Command("git", "ls-files", "--cached", "--others", "--exclude-standard")
	cmd.Dir = root

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("git ls-files: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	var paths []string

	for _, line := range strings.Split(stdout.String(), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		path := filepath.Join(root, filepath.FromSlash(line))

		// deleted but still tracked files are listed too
		if info, err := os.Stat(path); err != nil || info.IsDir() {
			continue
		}

		paths = append(paths, path)
	}

	return paths, nil
}

func (a *LocalSourceFSAdapter) walkListFiles(root m.Path, recursive bool) ([]string, error) {
	var paths []string

	err := a.Walk(root, recursive, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			name := info.Name()
			if path != string(root) && (strings.HasPrefix(name, ".") || skipDirs[name]) {
				return filepath.SkipDir
			}

			return nil
		}

		paths = append(paths, path)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}

	return paths, nil
}

func matchesExtension(path string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	return slices.ContainsFunc(extensions, func(e string) bool {
		return strings.ToLower(strings.TrimPrefix(e, ".")) == ext
	})
}

// isIgnored matches rel against every pattern. A pattern naming a directory
// also ignores everything below it.
func isIgnored(rel string, patterns []string) (bool, error) {
	for _, pattern := range patterns {
		pattern = strings.TrimPrefix(filepath.ToSlash(pattern), "./")
		if pattern == "" {
			continue
		}

		if !doublestar.ValidatePattern(pattern) {
			return false, fmt.Errorf("invalid ignore pattern %q: %w", pattern, doublestar.ErrBadPattern)
		}

		for _, candidate := range []string{pattern, strings.TrimSuffix(pattern, "/") + "/**"} {
			ok, err := doublestar.Match(candidate, rel)
			if err != nil {
				return false, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
			}

			if ok {
				return true, nil
			}
		}
	}

	return false, nil
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// FindProjectRoot returns the closest directory at or above startPath that
// holds a configuration file.
func (a *LocalSourceFSAdapter) FindProjectRoot(startPath m.Path) (m.Path, error) {
	dir := string(startPath)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	for {
		for _, name := range ConfigFileNames {
			if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
				return m.Path(dir), nil
			} else if !errors.Is(err, fs.ErrNotExist) {
				return "", err
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: no %s in any parent directory of %s",
				ErrProjectRootNotFound, ConfigFileNames[0], startPath)
		}

		dir = parent
	}
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

func normalizeRootPath(root string) (string, bool, error) {
	rootStr, recursive := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	abs, err := filepath.Abs(rootStr)
	if err != nil {
		return "", false, err
	}

	return abs, recursive, nil
}

func parseRootPath(rootStr string) (path string, recursive bool) {
	if rootStr == "..." {
		return ".", true
	}

	if len(rootStr) >= 4 && rootStr[len(rootStr)-4:] == "/..." {
		return rootStr[:len(rootStr)-4], true
	}

	return rootStr, false
}
