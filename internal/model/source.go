// Package model defines the data structures shared by the marker parser,
// the selection algebra and the project workflow.
package model

import "unicode"

// Path represents a file system path.
type Path string

// String returns the path as a plain string.
func (p Path) String() string {
	return string(p)
}

// IsIdentRune reports whether r may appear in a variation, variant or tag
// name. The marker grammar and the selection expression language share it.
func IsIdentRune(r rune) bool {
	if r == '_' || r == '-' || r == '.' {
		return true
	}

	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
