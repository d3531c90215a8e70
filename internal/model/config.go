package model

import (
	"fmt"
	"unicode/utf8"
)

// ProjectConfig is the persisted project configuration document.
type ProjectConfig struct {
	Languages       []string         `toml:"languages" yaml:"languages" json:"languages"`
	CustomLanguages []CustomLanguage `toml:"custom_languages" yaml:"custom_languages" json:"custom_languages"`
	Ignore          []string         `toml:"ignore" yaml:"ignore" json:"ignore"`
	UseGitignore    bool             `toml:"use_gitignore" yaml:"use_gitignore" json:"use_gitignore"`
}

// DefaultProjectConfig is used when a project has no configuration file.
func DefaultProjectConfig() ProjectConfig {
	return ProjectConfig{UseGitignore: true}
}

// CustomLanguage declares a language profile in the project configuration.
type CustomLanguage struct {
	Name           string `toml:"name" yaml:"name" json:"name"`
	Extension      string `toml:"extension" yaml:"extension" json:"extension"`
	CommentBegin   string `toml:"comment_begin" yaml:"comment_begin" json:"comment_begin"`
	CommentEnd     string `toml:"comment_end" yaml:"comment_end" json:"comment_end"`
	MutationMarker string `toml:"mutation_marker" yaml:"mutation_marker" json:"mutation_marker"`
}

// Profile converts the declaration into a validated LanguageProfile.
func (c CustomLanguage) Profile() (LanguageProfile, error) {
	if c.Name == "" {
		return LanguageProfile{}, &InvalidProfileError{Name: c.Extension, Reason: "custom language has no name"}
	}

	if c.Extension == "" {
		return LanguageProfile{}, &InvalidProfileError{Name: c.Name, Reason: "custom language has no extension"}
	}

	if utf8.RuneCountInString(c.MutationMarker) != 1 {
		return LanguageProfile{}, &InvalidProfileError{
			Name:   c.Name,
			Reason: fmt.Sprintf("mutation marker %q must be a single character", c.MutationMarker),
		}
	}

	marker, _ := utf8.DecodeRuneInString(c.MutationMarker)

	profile := LanguageProfile{
		Name:         c.Name,
		Extensions:   []string{c.Extension},
		CommentBegin: c.CommentBegin,
		CommentEnd:   c.CommentEnd,
		Marker:       marker,
	}

	if err := profile.Validate(); err != nil {
		return LanguageProfile{}, err
	}

	return profile, nil
}
