package domain

import (
	"slices"

	"github.com/mouse-blink/marauders/internal/domain/algebra"
)

// BuildIndex collects the names a selection expression may refer to. Tags
// map to the variations carrying them, in declaration order. Variations
// without a name or without variants are left out of the variation index.
func BuildIndex(project *Project) (algebra.Index, error) {
	ix := algebra.Index{
		Tags:       map[string][]string{},
		Variations: map[string][]string{},
	}

	declared := map[string][]string{}

	for _, lv := range project.Variations() {
		v := lv.Variation
		ix.Variants = append(ix.Variants, v.VariantNames()...)

		if v.Anonymous() {
			continue
		}

		declared[v.Name] = append(declared[v.Name], lv.Location())
		if len(declared[v.Name]) > 1 {
			return algebra.Index{}, &AmbiguousVariationNameError{Name: v.Name, Locations: declared[v.Name]}
		}

		if len(v.Variants) > 0 {
			ix.Variations[v.Name] = v.VariantNames()
		}

		for _, tag := range v.Tags {
			if !slices.Contains(ix.Tags[tag], v.Name) {
				ix.Tags[tag] = append(ix.Tags[tag], v.Name)
			}
		}
	}

	return ix, nil
}
