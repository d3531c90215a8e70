package domain

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/marauders/internal/model"
)

// UnsupportedLanguageError is returned for a file whose extension matches no
// language profile.
type UnsupportedLanguageError struct {
	Path m.Path
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("unsupported language for file %s", e.Path)
}

// UnknownLanguageError is returned when the configuration names a language
// that is not built in.
type UnknownLanguageError struct {
	Name  string
	Known []string
}

func (e *UnknownLanguageError) Error() string {
	return fmt.Sprintf("unknown language %q (known languages: %s)", e.Name, strings.Join(e.Known, ", "))
}

// VariantNotFoundError is returned when no variation declares the variant.
type VariantNotFoundError struct {
	Variant   string
	Available []string
}

func (e *VariantNotFoundError) Error() string {
	return fmt.Sprintf("variant %q not found", e.Variant)
}

// AmbiguousVariantNameError is returned when a variant name is declared by
// more than one variation, so the target cannot be chosen.
type AmbiguousVariantNameError struct {
	Variant   string
	Locations []string
}

func (e *AmbiguousVariantNameError) Error() string {
	return fmt.Sprintf("variant %q is declared more than once: %s", e.Variant, strings.Join(e.Locations, ", "))
}

// AmbiguousVariationNameError is returned when two variations share a name,
// which makes the name unusable in selection expressions.
type AmbiguousVariationNameError struct {
	Name      string
	Locations []string
}

func (e *AmbiguousVariationNameError) Error() string {
	return fmt.Sprintf("variation %q is declared more than once: %s", e.Name, strings.Join(e.Locations, ", "))
}

// VariantAlreadyActiveError is returned when activating the active variant.
type VariantAlreadyActiveError struct {
	Variant string
	File    m.Path
	Line    int
}

func (e *VariantAlreadyActiveError) Error() string {
	return fmt.Sprintf("variant %q is already active (%s:%d)", e.Variant, e.File, e.Line)
}

// VariantNotActiveError is returned when unsetting a variant that is not the
// active one.
type VariantNotActiveError struct {
	Variant string
	Active  string
}

func (e *VariantNotActiveError) Error() string {
	return fmt.Sprintf("variant %q is not active (active: %s)", e.Variant, e.Active)
}

// ActiveVariation identifies a variation that is not on its base.
type ActiveVariation struct {
	File      m.Path
	Line      int
	Variation string
	Variant   string
}

func (a ActiveVariation) String() string {
	return fmt.Sprintf("%s:%d %s=%s", a.File, a.Line, a.Variation, a.Variant)
}

// PreconditionError is returned when a test run starts from a project that is
// not entirely on base.
type PreconditionError struct {
	Active []ActiveVariation
}

func (e *PreconditionError) Error() string {
	parts := make([]string, 0, len(e.Active))
	for _, a := range e.Active {
		parts = append(parts, a.String())
	}

	return fmt.Sprintf("project is not in its base state, run reset first: %s", strings.Join(parts, "; "))
}
