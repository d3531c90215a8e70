package domain

import (
	"path/filepath"
	"slices"
	"strings"

	m "github.com/mouse-blink/marauders/internal/model"
)

// DefaultProfiles returns the built-in language profiles.
func DefaultProfiles() []m.LanguageProfile {
	return []m.LanguageProfile{
		{Name: "coq", Extensions: []string{"v"}, CommentBegin: "(*", CommentEnd: "*)", Marker: '!'},
		{Name: "haskell", Extensions: []string{"hs"}, CommentBegin: "{-", CommentEnd: "-}", Marker: '!'},
		{Name: "racket", Extensions: []string{"rkt"}, CommentBegin: "#|", CommentEnd: "|#", Marker: '!'},
		{Name: "rust", Extensions: []string{"rs"}, CommentBegin: "/*", CommentEnd: "*/", Marker: '|'},
		{Name: "python", Extensions: []string{"py"}, CommentBegin: `"""`, CommentEnd: `"""`, Marker: '!'},
		{Name: "go", Extensions: []string{"go"}, CommentBegin: "/*", CommentEnd: "*/", Marker: '|'},
		{Name: "c", Extensions: []string{"c", "h"}, CommentBegin: "/*", CommentEnd: "*/", Marker: '|'},
		{Name: "cpp", Extensions: []string{"cc", "cpp", "cxx", "hpp"}, CommentBegin: "/*", CommentEnd: "*/", Marker: '|'},
		{Name: "java", Extensions: []string{"java"}, CommentBegin: "/*", CommentEnd: "*/", Marker: '|'},
		{Name: "javascript", Extensions: []string{"js", "mjs"}, CommentBegin: "/*", CommentEnd: "*/", Marker: '|'},
		{Name: "typescript", Extensions: []string{"ts", "tsx"}, CommentBegin: "/*", CommentEnd: "*/", Marker: '|'},
		{Name: "ocaml", Extensions: []string{"ml", "mli"}, CommentBegin: "(*", CommentEnd: "*)", Marker: '!'},
	}
}

// Languages is the registry of profiles enabled for a project. Custom
// languages take precedence over built-in ones sharing an extension.
type Languages struct {
	profiles []m.LanguageProfile
}

// NewLanguages builds the registry described by cfg. An empty language list
// enables every built-in language.
func NewLanguages(cfg m.ProjectConfig) (*Languages, error) {
	builtin := DefaultProfiles()

	var profiles []m.LanguageProfile

	for _, custom := range cfg.CustomLanguages {
		p, err := custom.Profile()
		if err != nil {
			return nil, err
		}

		profiles = append(profiles, p)
	}

	if len(cfg.Languages) == 0 {
		return &Languages{profiles: append(profiles, builtin...)}, nil
	}

	for _, name := range cfg.Languages {
		idx := slices.IndexFunc(builtin, func(p m.LanguageProfile) bool {
			return strings.EqualFold(p.Name, name)
		})

		if idx >= 0 {
			profiles = append(profiles, builtin[idx])
			continue
		}

		// a custom language may be listed by name as well
		if slices.ContainsFunc(profiles, func(p m.LanguageProfile) bool { return strings.EqualFold(p.Name, name) }) {
			continue
		}

		return nil, &UnknownLanguageError{Name: name, Known: profileNames(builtin)}
	}

	return &Languages{profiles: profiles}, nil
}

// Lookup returns the profile handling path.
func (l *Languages) Lookup(path m.Path) (m.LanguageProfile, error) {
	ext := filepath.Ext(string(path))
	if ext != "" {
		for _, p := range l.profiles {
			if p.HasExtension(ext) {
				return p, nil
			}
		}
	}

	return m.LanguageProfile{}, &UnsupportedLanguageError{Path: path}
}

// ByName returns the profile called name.
func (l *Languages) ByName(name string) (m.LanguageProfile, bool) {
	for _, p := range l.profiles {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}

	return m.LanguageProfile{}, false
}

// All returns every enabled profile.
func (l *Languages) All() []m.LanguageProfile {
	return slices.Clone(l.profiles)
}

// Extensions lists the file extensions handled by the registry.
func (l *Languages) Extensions() []string {
	var exts []string

	for _, p := range l.profiles {
		for _, e := range p.Extensions {
			e = strings.ToLower(strings.TrimPrefix(e, "."))
			if !slices.Contains(exts, e) {
				exts = append(exts, e)
			}
		}
	}

	return exts
}

func profileNames(profiles []m.LanguageProfile) []string {
	names := make([]string, 0, len(profiles))
	for _, p := range profiles {
		names = append(names, p.Name)
	}

	return names
}
