package domain

import (
	"log/slog"

	m "github.com/mouse-blink/marauders/internal/model"
)

// VariantLocation points at one declaration of a variant.
type VariantLocation struct {
	LocatedVariation
	// Index is the activation index of the variant inside its variation.
	Index   int
	Variant string
}

// Selector queries and toggles the active bodies of a loaded project. It only
// changes the in-memory model; callers persist the returned files.
type Selector interface {
	List(project *Project) []m.VariationInfo
	Find(project *Project, variant string) (VariantLocation, error)
	Set(project *Project, variant string) (m.SetResult, *File, error)
	Unset(project *Project, variant string) (m.SetResult, *File, error)
	Reset(project *Project) ([]m.SetResult, []*File)
}

type selector struct {
	logger *slog.Logger
}

// NewSelector constructs a Selector. A nil logger uses slog.Default.
func NewSelector(logger *slog.Logger) Selector {
	return &selector{logger: logger}
}

func (s *selector) log() *slog.Logger {
	if s.logger == nil {
		return slog.Default()
	}

	return s.logger
}

// List describes every variation of the project.
func (s *selector) List(project *Project) []m.VariationInfo {
	variations := project.Variations()
	infos := make([]m.VariationInfo, 0, len(variations))

	for _, lv := range variations {
		infos = append(infos, m.VariationInfo{
			Path:     lv.File.Path,
			Line:     lv.Line,
			Name:     lv.Variation.Name,
			Variants: lv.Variation.VariantNames(),
			Active:   lv.Variation.Active,
			Tags:     lv.Variation.Tags,
		})
	}

	return infos
}

// Find locates the single declaration of variant.
func (s *selector) Find(project *Project, variant string) (VariantLocation, error) {
	var matches []VariantLocation

	for _, lv := range project.Variations() {
		if idx, ok := lv.Variation.VariantIndex(variant); ok {
			matches = append(matches, VariantLocation{LocatedVariation: lv, Index: idx, Variant: variant})
		}
	}

	switch len(matches) {
	case 0:
		return VariantLocation{}, &VariantNotFoundError{Variant: variant, Available: project.VariantNames()}
	case 1:
		return matches[0], nil
	}

	locations := make([]string, 0, len(matches))
	for _, match := range matches {
		locations = append(locations, match.Location())
	}

	return VariantLocation{}, &AmbiguousVariantNameError{Variant: variant, Locations: locations}
}

// Set activates variant in its variation.
func (s *selector) Set(project *Project, variant string) (m.SetResult, *File, error) {
	loc, err := s.Find(project, variant)
	if err != nil {
		return m.SetResult{}, nil, err
	}

	v := loc.Variation
	if v.IsActive(loc.Index) {
		return m.SetResult{}, nil, &VariantAlreadyActiveError{Variant: variant, File: loc.File.Path, Line: loc.Line}
	}

	previous := v.Active
	if err := v.Activate(loc.Index); err != nil {
		return m.SetResult{}, nil, err
	}

	s.log().Debug("variant activated", "variant", variant, "variation", v.DisplayName(), "path", loc.File.Path)

	return resultFor(loc, previous), loc.File, nil
}

// Unset puts the variation of variant back on its base. The variant has to be
// the active one.
func (s *selector) Unset(project *Project, variant string) (m.SetResult, *File, error) {
	loc, err := s.Find(project, variant)
	if err != nil {
		return m.SetResult{}, nil, err
	}

	v := loc.Variation
	if !v.IsActive(loc.Index) {
		return m.SetResult{}, nil, &VariantNotActiveError{Variant: variant, Active: v.ActiveName()}
	}

	previous := v.Active
	if err := v.Activate(0); err != nil {
		return m.SetResult{}, nil, err
	}

	s.log().Debug("variant deactivated", "variant", variant, "variation", v.DisplayName(), "path", loc.File.Path)

	return resultFor(loc, previous), loc.File, nil
}

// Reset puts every variation back on its base and returns what changed.
func (s *selector) Reset(project *Project) ([]m.SetResult, []*File) {
	var (
		results []m.SetResult
		changed []*File
	)

	for _, lv := range project.Variations() {
		v := lv.Variation
		if v.Active == 0 {
			continue
		}

		loc := VariantLocation{LocatedVariation: lv, Index: v.Active, Variant: v.ActiveName()}
		previous := v.Active

		// index 0 always exists
		_ = v.Activate(0)

		results = append(results, resultFor(loc, previous))

		if len(changed) == 0 || changed[len(changed)-1] != lv.File {
			changed = append(changed, lv.File)
		}
	}

	if len(results) > 0 {
		s.log().Debug("variations reset", "count", len(results), "files", len(changed))
	}

	return results, changed
}

func resultFor(loc VariantLocation, previous int) m.SetResult {
	return m.SetResult{
		File:      loc.File.Path,
		Line:      loc.Line,
		Variation: loc.Variation.Name,
		Previous:  previous,
		Current:   loc.Variation.Active,
		From:      loc.Variation.NameAt(previous),
		To:        loc.Variation.ActiveName(),
	}
}
