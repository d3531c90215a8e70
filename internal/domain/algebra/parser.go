package algebra

import "fmt"

type parser struct {
	src    string
	tokens []token
	pos    int
}

// Parse reads a selection expression. "+" and "*" are left associative and
// "*" binds tighter than "+".
func Parse(src string) (Expr, error) {
	tokens, err := lex(src)
	if err != nil {
		return nil, err
	}

	p := &parser{src: src, tokens: tokens}

	if p.peek().kind == tokEOF {
		return nil, p.errorf(p.peek(), "empty expression")
	}

	e, err := p.sum()
	if err != nil {
		return nil, err
	}

	if tok := p.peek(); tok.kind != tokEOF {
		return nil, p.errorf(tok, "unexpected %s", tok.describe())
	}

	return e, nil
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	tok := p.tokens[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}

	return tok
}

func (p *parser) sum() (Expr, error) {
	left, err := p.product()
	if err != nil {
		return nil, err
	}

	for p.peek().kind == tokPlus {
		p.next()

		right, err := p.product()
		if err != nil {
			return nil, err
		}

		left = Sum{Left: left, Right: right}
	}

	return left, nil
}

func (p *parser) product() (Expr, error) {
	left, err := p.primary()
	if err != nil {
		return nil, err
	}

	for p.peek().kind == tokStar {
		p.next()

		right, err := p.primary()
		if err != nil {
			return nil, err
		}

		left = Product{Left: left, Right: right}
	}

	return left, nil
}

func (p *parser) primary() (Expr, error) {
	tok := p.next()

	switch tok.kind {
	case tokIdent:
		return Ident{Name: tok.text}, nil
	case tokPlus, tokStar:
		tag := p.next()
		if tag.kind != tokIdent {
			return nil, p.errorf(tag, "expected a tag name after %s, found %s", tok.kind, tag.describe())
		}

		if tok.kind == tokPlus {
			return UnarySum{Tag: tag.text}, nil
		}

		return UnaryProduct{Tag: tag.text}, nil
	case tokLParen:
		if p.peek().kind == tokRParen {
			return nil, p.errorf(p.peek(), "empty parentheses")
		}

		e, err := p.sum()
		if err != nil {
			return nil, err
		}

		if closing := p.next(); closing.kind != tokRParen {
			return nil, p.errorf(closing, "expected ')', found %s", closing.describe())
		}

		return e, nil
	default:
		return nil, p.errorf(tok, "expected an identifier, a tag or '(', found %s", tok.describe())
	}
}

func (p *parser) errorf(tok token, format string, args ...any) error {
	return &ParseError{Expr: p.src, Pos: tok.pos, Msg: fmt.Sprintf(format, args...)}
}
