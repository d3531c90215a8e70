package algebra

import (
	"fmt"
	"slices"
)

// Index is what an expression is resolved against.
type Index struct {
	// Tags maps a tag to the names carrying it, in declaration order.
	Tags map[string][]string
	// Variations maps a variation name to its variant names.
	Variations map[string][]string
	// Variants lists every variant name of the project.
	Variants []string
}

// TagMembers returns the names carrying tag.
func (ix Index) TagMembers(tag string) ([]string, bool) {
	members, ok := ix.Tags[tag]
	return members, ok && len(members) > 0
}

// VariationVariants returns the variant names of the named variation.
func (ix Index) VariationVariants(name string) ([]string, bool) {
	variants, ok := ix.Variations[name]
	return variants, ok
}

// HasVariant reports whether name is a known variant.
func (ix Index) HasVariant(name string) bool {
	return slices.Contains(ix.Variants, name)
}

// Compile parses expr and expands it against ix into the ordered list of
// variant combinations. Any failure aborts the whole expansion.
func Compile(expr string, ix Index) ([][]string, error) {
	e, err := Parse(expr)
	if err != nil {
		return nil, err
	}

	e, err = DistributeTags(e, ix)
	if err != nil {
		return nil, err
	}

	e = DistributeVariations(e, ix)

	if err := Validate(e, ix); err != nil {
		return nil, err
	}

	return IntoSumOfProducts(e)
}

// DistributeTags replaces every "+tag" and "*tag" with a left associated
// chain over the tag members.
func DistributeTags(e Expr, ix Index) (Expr, error) {
	switch e := e.(type) {
	case Sum:
		left, right, err := distributeTagsPair(e.Left, e.Right, ix)
		if err != nil {
			return nil, err
		}

		return Sum{Left: left, Right: right}, nil
	case Product:
		left, right, err := distributeTagsPair(e.Left, e.Right, ix)
		if err != nil {
			return nil, err
		}

		return Product{Left: left, Right: right}, nil
	case UnarySum:
		members, ok := ix.TagMembers(e.Tag)
		if !ok {
			return nil, &TagHasNoMembersError{Tag: e.Tag}
		}

		return chain(members, func(l, r Expr) Expr { return Sum{Left: l, Right: r} }), nil
	case UnaryProduct:
		members, ok := ix.TagMembers(e.Tag)
		if !ok {
			return nil, &TagHasNoMembersError{Tag: e.Tag}
		}

		return chain(members, func(l, r Expr) Expr { return Product{Left: l, Right: r} }), nil
	default:
		return e, nil
	}
}

func distributeTagsPair(l, r Expr, ix Index) (Expr, Expr, error) {
	left, err := DistributeTags(l, ix)
	if err != nil {
		return nil, nil, err
	}

	right, err := DistributeTags(r, ix)
	if err != nil {
		return nil, nil, err
	}

	return left, right, nil
}

// DistributeVariations replaces every identifier naming a variation with the
// sum of its variants. Other identifiers are kept as variant names.
func DistributeVariations(e Expr, ix Index) Expr {
	switch e := e.(type) {
	case Sum:
		return Sum{Left: DistributeVariations(e.Left, ix), Right: DistributeVariations(e.Right, ix)}
	case Product:
		return Product{Left: DistributeVariations(e.Left, ix), Right: DistributeVariations(e.Right, ix)}
	case Ident:
		variants, ok := ix.VariationVariants(e.Name)
		if !ok || len(variants) == 0 {
			return e
		}

		return chain(variants, func(l, r Expr) Expr { return Sum{Left: l, Right: r} })
	default:
		return e
	}
}

// Validate checks that every leaf is a known variant. The first unknown
// leaf in left to right order is reported.
func Validate(e Expr, ix Index) error {
	for _, name := range leaves(e) {
		if !ix.HasVariant(name) {
			return &UnknownVariantError{Name: name, Known: ix.Variants}
		}
	}

	return nil
}

func leaves(e Expr) []string {
	switch e := e.(type) {
	case Sum:
		return append(leaves(e.Left), leaves(e.Right)...)
	case Product:
		return append(leaves(e.Left), leaves(e.Right)...)
	case Ident:
		return []string{e.Name}
	case UnarySum:
		return []string{"+" + e.Tag}
	case UnaryProduct:
		return []string{"*" + e.Tag}
	default:
		return nil
	}
}

// IntoSumOfProducts expands a distributed expression. A product nests the
// configurations of its left operand as the outer loop; a sum concatenates.
func IntoSumOfProducts(e Expr) ([][]string, error) {
	switch e := e.(type) {
	case Ident:
		return [][]string{{e.Name}}, nil
	case Sum:
		left, err := IntoSumOfProducts(e.Left)
		if err != nil {
			return nil, err
		}

		right, err := IntoSumOfProducts(e.Right)
		if err != nil {
			return nil, err
		}

		return append(left, right...), nil
	case Product:
		left, err := IntoSumOfProducts(e.Left)
		if err != nil {
			return nil, err
		}

		right, err := IntoSumOfProducts(e.Right)
		if err != nil {
			return nil, err
		}

		out := make([][]string, 0, len(left)*len(right))
		for _, l := range left {
			for _, r := range right {
				out = append(out, slices.Concat(l, r))
			}
		}

		return out, nil
	default:
		return nil, fmt.Errorf("cannot expand %s before its tags are distributed", e)
	}
}

func chain(names []string, join func(l, r Expr) Expr) Expr {
	var e Expr = Ident{Name: names[0]}
	for _, name := range names[1:] {
		e = join(e, Ident{Name: name})
	}

	return e
}
