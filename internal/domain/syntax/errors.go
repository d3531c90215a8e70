package syntax

import (
	"errors"
	"fmt"
)

// ErrGrammar is the category every GrammarError unwraps to.
var ErrGrammar = errors.New("grammar error")

// GrammarError reports malformed marker structure. Line and Column are
// 1-indexed; Column is a byte offset within the line.
type GrammarError struct {
	Line   int
	Column int
	Msg    string
}

func (e *GrammarError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("line %d:%d: %s", e.Line, e.Column, e.Msg)
	}

	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func (e *GrammarError) Unwrap() error {
	return ErrGrammar
}

func errorf(line, column int, format string, args ...any) error {
	return &GrammarError{Line: line, Column: column, Msg: fmt.Sprintf(format, args...)}
}
