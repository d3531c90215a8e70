package algebra

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	m "github.com/mouse-blink/marauders/internal/model"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokPlus
	tokStar
	tokLParen
	tokRParen
	tokIdent
)

func (k tokenKind) String() string {
	switch k {
	case tokPlus:
		return "'+'"
	case tokStar:
		return "'*'"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	case tokIdent:
		return "identifier"
	default:
		return "end of expression"
	}
}

type token struct {
	kind tokenKind
	text string
	pos  int
}

func (t token) describe() string {
	if t.kind == tokIdent {
		return fmt.Sprintf("identifier %q", t.text)
	}

	return t.kind.String()
}

func lex(src string) ([]token, error) {
	var tokens []token

	for i := 0; i < len(src); {
		r, size := utf8.DecodeRuneInString(src[i:])

		switch {
		case unicode.IsSpace(r):
			i += size
		case r == '+':
			tokens = append(tokens, token{kind: tokPlus, text: "+", pos: i})
			i += size
		case r == '*':
			tokens = append(tokens, token{kind: tokStar, text: "*", pos: i})
			i += size
		case r == '(':
			tokens = append(tokens, token{kind: tokLParen, text: "(", pos: i})
			i += size
		case r == ')':
			tokens = append(tokens, token{kind: tokRParen, text: ")", pos: i})
			i += size
		case m.IsIdentRune(r):
			start := i
			for i < len(src) {
				r, size = utf8.DecodeRuneInString(src[i:])
				if !m.IsIdentRune(r) {
					break
				}

				i += size
			}

			tokens = append(tokens, token{kind: tokIdent, text: src[start:i], pos: start})
		default:
			return nil, &ParseError{Expr: src, Pos: i, Msg: fmt.Sprintf("unexpected character %q", r)}
		}
	}

	return append(tokens, token{kind: tokEOF, pos: len(src)}), nil
}
