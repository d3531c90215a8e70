package algebra

import (
	"fmt"
	"strings"
)

// ParseError reports a malformed expression. Pos is the 0-indexed byte
// offset of the offending token.
type ParseError struct {
	Expr string
	Pos  int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid expression %q at offset %d: %s", e.Expr, e.Pos, e.Msg)
}

// TagHasNoMembersError is returned when an expression uses a tag that no
// variation carries.
type TagHasNoMembersError struct {
	Tag string
}

func (e *TagHasNoMembersError) Error() string {
	return fmt.Sprintf("tag %q has no members", e.Tag)
}

// UnknownVariantError is returned when an expression names something that
// is neither a variation nor a variant of the project.
type UnknownVariantError struct {
	Name  string
	Known []string
}

func (e *UnknownVariantError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("unknown variant %q: the project declares no variants", e.Name)
	}

	return fmt.Sprintf("unknown variant %q (known variants: %s)", e.Name, strings.Join(e.Known, ", "))
}
