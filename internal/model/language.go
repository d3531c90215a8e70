package model

import (
	"fmt"
	"strings"
	"unicode"
)

// LanguageProfile describes how mutation markers are spelled in one host
// language: the block comment delimiters plus a single marker character.
type LanguageProfile struct {
	Name         string
	Extensions   []string
	CommentBegin string
	CommentEnd   string
	Marker       rune
}

// InvalidProfileError reports a language profile whose delimiters would make
// the marker grammar ambiguous.
type InvalidProfileError struct {
	Name   string
	Reason string
}

func (e *InvalidProfileError) Error() string {
	return fmt.Sprintf("invalid language profile %q: %s", e.Name, e.Reason)
}

func (p LanguageProfile) marker() string {
	return string(p.Marker)
}

// VariationBegin opens a variation header, e.g. "/*|".
func (p LanguageProfile) VariationBegin() string {
	return p.CommentBegin + p.marker()
}

// VariationEnd closes a variation, e.g. "/* |*/". The marker sits before the
// comment end so the token never reads as another begin marker.
func (p LanguageProfile) VariationEnd() string {
	return p.CommentBegin + " " + p.marker() + p.CommentEnd
}

// VariantHeaderBegin opens a variant header, e.g. "/*||".
func (p LanguageProfile) VariantHeaderBegin() string {
	return p.CommentBegin + p.marker() + p.marker()
}

// VariantHeaderEnd closes a variant header.
func (p LanguageProfile) VariantHeaderEnd() string {
	return p.CommentEnd
}

// VariantBodyBegin opens the comment wrapping an inactive body.
func (p LanguageProfile) VariantBodyBegin() string {
	return p.CommentBegin + p.marker()
}

// VariantBodyEnd closes the comment wrapping an inactive body.
func (p LanguageProfile) VariantBodyEnd() string {
	return p.CommentEnd
}

// HasExtension reports whether ext (with or without the leading dot) belongs
// to the profile.
func (p LanguageProfile) HasExtension(ext string) bool {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	for _, e := range p.Extensions {
		if strings.ToLower(strings.TrimPrefix(e, ".")) == ext {
			return true
		}
	}

	return false
}

// Validate checks that the delimiters can be recognised unambiguously.
func (p LanguageProfile) Validate() error {
	switch {
	case p.CommentBegin == "":
		return &InvalidProfileError{Name: p.Name, Reason: "comment begin is empty"}
	case p.CommentEnd == "":
		return &InvalidProfileError{Name: p.Name, Reason: "comment end is empty"}
	case strings.ContainsFunc(p.CommentBegin+p.CommentEnd, unicode.IsSpace):
		return &InvalidProfileError{Name: p.Name, Reason: "comment delimiters contain whitespace"}
	case p.Marker == 0 || unicode.IsSpace(p.Marker):
		return &InvalidProfileError{Name: p.Name, Reason: "mutation marker must be a visible character"}
	case strings.ContainsRune("[],", p.Marker) || IsIdentRune(p.Marker):
		return &InvalidProfileError{Name: p.Name, Reason: fmt.Sprintf("mutation marker %q clashes with header syntax", p.Marker)}
	}

	// The comment end may only appear as the opening delimiter itself (as in
	// Python's """), otherwise the host language would close the comment early.
	if strings.Contains(p.VariantHeaderBegin()[1:], p.CommentEnd) {
		return &InvalidProfileError{
			Name:   p.Name,
			Reason: fmt.Sprintf("comment end %q occurs inside marker %q", p.CommentEnd, p.VariantHeaderBegin()),
		}
	}

	return nil
}
