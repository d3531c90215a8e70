package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mouse-blink/marauders/internal/adapter"
	"github.com/mouse-blink/marauders/internal/domain/syntax"
	m "github.com/mouse-blink/marauders/internal/model"
)

// File is a parsed source file of a project.
type File struct {
	Path m.Path
	Code *m.Code
}

// Project is the in-memory set of files holding variations. Files without
// variations are not kept.
type Project struct {
	Root       m.Path
	ConfigPath m.Path
	Config     m.ProjectConfig
	Languages  *Languages
	Files      []*File
}

// LocatedVariation is a variation together with where it was found.
type LocatedVariation struct {
	File      *File
	Line      int
	Variation *m.Variation
}

// Location formats the variation position as path:line.
func (l LocatedVariation) Location() string {
	return fmt.Sprintf("%s:%d", l.File.Path, l.Line)
}

// Variations returns every variation of the project in file order.
func (p *Project) Variations() []LocatedVariation {
	var out []LocatedVariation

	for _, f := range p.Files {
		for _, span := range f.Code.Spans {
			if span.Kind != m.SpanVariation {
				continue
			}

			out = append(out, LocatedVariation{File: f, Line: span.Line, Variation: span.Variation})
		}
	}

	return out
}

// VariantNames returns every variant name, in declaration order.
func (p *Project) VariantNames() []string {
	var names []string
	for _, f := range p.Files {
		names = append(names, f.Code.VariantNames()...)
	}

	return names
}

// AllBase reports whether every variation has its base active.
func (p *Project) AllBase() bool {
	for _, f := range p.Files {
		if !f.Code.AllBase() {
			return false
		}
	}

	return true
}

// ActiveVariations lists the variations that are not on their base.
func (p *Project) ActiveVariations() []ActiveVariation {
	var active []ActiveVariation

	for _, lv := range p.Variations() {
		if lv.Variation.Active == 0 {
			continue
		}

		active = append(active, ActiveVariation{
			File:      lv.File.Path,
			Line:      lv.Line,
			Variation: lv.Variation.DisplayName(),
			Variant:   lv.Variation.ActiveName(),
		})
	}

	return active
}

// ProjectLoader reads projects from disk and writes modified files back.
type ProjectLoader interface {
	// Load resolves path (a file, a directory, or a directory with a "/..."
	// suffix) and parses every supported file below it.
	Load(path string) (*Project, error)
	// Save writes the current state of the given files.
	Save(files ...*File) error
}

type projectLoader struct {
	fsAdapter adapter.SourceFSAdapter
	configs   adapter.ConfigStore
	logger    *slog.Logger
}

// NewProjectLoader constructs a ProjectLoader. A nil logger uses slog.Default.
func NewProjectLoader(fsAdapter adapter.SourceFSAdapter, configs adapter.ConfigStore, logger *slog.Logger) ProjectLoader {
	return &projectLoader{fsAdapter: fsAdapter, configs: configs, logger: logger}
}

func (l *projectLoader) log() *slog.Logger {
	if l.logger == nil {
		return slog.Default()
	}

	return l.logger
}

func (l *projectLoader) Load(path string) (*Project, error) {
	root, recursive, err := l.fsAdapter.ResolveRoot(path)
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", path, err)
	}

	info, err := l.fsAdapter.FileInfo(root)
	if err != nil {
		return nil, fmt.Errorf("root path error: %w", err)
	}

	projectRoot, err := findProjectRoot(l.fsAdapter, root, info.IsDir())
	if err != nil {
		return nil, err
	}

	cfg, cfgPath, err := l.configs.Load(projectRoot)
	if err != nil {
		return nil, err
	}

	languages, err := NewLanguages(cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration %s: %w", cfgPath, err)
	}

	if !info.IsDir() {
		if _, err := languages.Lookup(root); err != nil {
			return nil, err
		}
	}

	paths, err := l.fsAdapter.Collect(root, recursive, adapter.CollectOptions{
		Extensions:   languages.Extensions(),
		Ignore:       cfg.Ignore,
		IgnoreBase:   projectRoot,
		UseGitignore: cfg.UseGitignore,
	})
	if err != nil {
		return nil, err
	}

	l.log().Debug("collected candidate files", "root", root, "recursive", recursive, "count", len(paths))

	project := &Project{Root: projectRoot, ConfigPath: cfgPath, Config: cfg, Languages: languages}

	for _, p := range paths {
		file, err := l.loadFile(p, languages)
		if err != nil {
			return nil, err
		}

		if file == nil {
			continue
		}

		project.Files = append(project.Files, file)
	}

	l.log().Info("project loaded", "root", projectRoot, "files", len(project.Files))

	return project, nil
}

// findProjectRoot returns the directory holding the configuration above root.
// Without one the scanned directory, or the directory of a scanned file, is
// the project root.
func findProjectRoot(fsAdapter adapter.SourceFSAdapter, root m.Path, isDir bool) (m.Path, error) {
	found, err := fsAdapter.FindProjectRoot(root)
	if err == nil {
		return found, nil
	}

	if !errors.Is(err, adapter.ErrProjectRootNotFound) {
		return "", err
	}

	if isDir {
		return root, nil
	}

	return m.Path(filepath.Dir(string(root))), nil
}

func (l *projectLoader) loadFile(path m.Path, languages *Languages) (*File, error) {
	profile, err := languages.Lookup(path)
	if err != nil {
		return nil, err
	}

	content, err := l.fsAdapter.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	spans, err := syntax.Parse(string(content), profile)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	code := &m.Code{Profile: profile, Spans: spans}
	if len(code.Variations()) == 0 {
		return nil, nil
	}

	l.log().Debug("parsed file", "path", path, "language", profile.Name, "variations", len(code.Variations()))

	return &File{Path: path, Code: code}, nil
}

func (l *projectLoader) Save(files ...*File) error {
	for _, f := range files {
		perm := os.FileMode(0o644)
		if info, err := l.fsAdapter.FileInfo(f.Path); err == nil {
			perm = info.Mode().Perm()
		}

		if err := l.fsAdapter.WriteFile(f.Path, []byte(f.Code.Render()), perm); err != nil {
			return fmt.Errorf("failed to write %s: %w", f.Path, err)
		}

		l.log().Debug("saved file", "path", f.Path)
	}

	return nil
}
