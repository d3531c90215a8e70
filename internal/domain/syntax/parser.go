// Package syntax recognises the comment-delimited mutation markers embedded
// in host-language source text and turns a file into a sequence of spans.
//
// The grammar is line oriented. A marker line is a line whose first
// non-blank characters form a marker token; everything else is code.
//
//	code             := (line | mutation)*
//	mutation         := variation_header base variant* variation_end
//	variation_header := indent cb m [name] ["[" tag ("," tag)* "]"] ce
//	variant          := indent cb m m name ce body
//	body             := active_lines | indent cb m NL raw_lines indent ce | indent cb m raw ce
//	variation_end    := indent cb " " m ce
package syntax

import (
	"strings"
	"unicode/utf8"

	m "github.com/mouse-blink/marauders/internal/model"
)

type token int

const (
	tokText token = iota
	tokVariationBegin
	tokVariantHeader
	tokBodyOpen
	tokBodyClose
	tokVariationEnd
)

type sourceLine struct {
	num  int
	text string // without the line feed
	eol  string // "\n", or "" on an unterminated last line
}

func (l sourceLine) raw() string {
	return l.text + l.eol
}

type classified struct {
	kind   token
	indent string
	body   string // the line after indentation, trailing blanks removed
	trail  string // the trailing blanks and the line break
}

func (c classified) marker() m.Marker {
	return m.Marker{Indent: c.indent, Text: c.body, EOL: c.trail}
}

func (c classified) column(offset int) int {
	return len(c.indent) + offset + 1
}

type parser struct {
	profile m.LanguageProfile
	lines   []sourceLine
	pos     int
	spans   []m.Span

	pending     strings.Builder
	pendingLine int
}

// Parse splits text into plain text spans and variations. Consecutive plain
// lines are merged into a single span.
func Parse(text string, profile m.LanguageProfile) ([]m.Span, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	p := &parser{profile: profile, lines: splitLines(text)}
	if err := p.parseCode(); err != nil {
		return nil, err
	}

	return p.spans, nil
}

func splitLines(text string) []sourceLine {
	var lines []sourceLine

	for num := 1; text != ""; num++ {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			lines = append(lines, sourceLine{num: num, text: text})
			break
		}

		lines = append(lines, sourceLine{num: num, text: text[:i], eol: "\n"})
		text = text[i+1:]
	}

	return lines
}

func (p *parser) classify(l sourceLine) classified {
	rest := strings.TrimLeft(l.text, " \t")
	body := strings.TrimRight(rest, " \t\r")

	c := classified{
		indent: l.text[:len(l.text)-len(rest)],
		body:   body,
		trail:  rest[len(body):] + l.eol,
	}

	switch {
	case body == p.profile.VariationEnd():
		c.kind = tokVariationEnd
	case strings.HasPrefix(body, p.profile.VariantHeaderBegin()):
		c.kind = tokVariantHeader
	case body == p.profile.VariantBodyBegin():
		c.kind = tokBodyOpen
	case strings.HasPrefix(body, p.profile.VariationBegin()):
		c.kind = tokVariationBegin
	case body == p.profile.VariantBodyEnd():
		c.kind = tokBodyClose
	default:
		c.kind = tokText
	}

	return c
}

func (p *parser) parseCode() error {
	for p.pos < len(p.lines) {
		line := p.lines[p.pos]
		c := p.classify(line)

		switch c.kind {
		case tokVariationBegin:
			p.flush()

			v, err := p.parseVariation()
			if err != nil {
				return err
			}

			p.spans = append(p.spans, m.VariationSpan(v, line.num))
		case tokVariantHeader:
			return errorf(line.num, c.column(0), "variant header %q outside of a variation", c.body)
		case tokBodyOpen:
			return errorf(line.num, c.column(0), "variant body marker %q outside of a variation", c.body)
		case tokVariationEnd:
			return errorf(line.num, c.column(0), "variation end %q without a matching begin", c.body)
		default:
			p.text(line)
			p.pos++
		}
	}

	p.flush()

	return nil
}

func (p *parser) text(l sourceLine) {
	if p.pending.Len() == 0 {
		p.pendingLine = l.num
	}

	p.pending.WriteString(l.raw())
}

func (p *parser) flush() {
	if p.pending.Len() == 0 {
		return
	}

	p.spans = append(p.spans, m.LineSpan(p.pending.String(), p.pendingLine))
	p.pending.Reset()
}

func (p *parser) parseVariation() (*m.Variation, error) {
	start := p.lines[p.pos]
	sc := p.classify(start)

	name, tags, err := p.parseVariationHeader(start, sc)
	if err != nil {
		return nil, err
	}

	p.pos++

	v := &m.Variation{
		Name:   name,
		Tags:   tags,
		Indent: sc.indent,
		Header: sc.marker(),
	}

	var actives []int

	base, active, err := p.parseBody()
	if err != nil {
		return nil, err
	}

	v.Base = base
	if active {
		actives = append(actives, 0)
	}

	for {
		if p.pos >= len(p.lines) {
			return nil, errorf(start.num, sc.column(0), "variation %s is not closed by %q",
				v.DisplayName(), p.profile.VariationEnd())
		}

		line := p.lines[p.pos]
		c := p.classify(line)

		switch c.kind {
		case tokVariationEnd:
			v.End = c.marker()
			p.pos++

			return p.settle(v, actives, start.num, sc)
		case tokVariantHeader:
			variant, err := p.parseVariantHeader(line, c)
			if err != nil {
				return nil, err
			}

			if _, dup := v.VariantIndex(variant.Name); dup {
				return nil, errorf(line.num, c.column(0), "variant %q declared twice in variation %s",
					variant.Name, v.DisplayName())
			}

			p.pos++

			body, active, err := p.parseBody()
			if err != nil {
				return nil, err
			}

			variant.Body = body
			v.Variants = append(v.Variants, variant)

			if active {
				actives = append(actives, len(v.Variants))
			}
		default:
			return nil, errorf(line.num, c.column(0), "expected a variant header or %q, found %q",
				p.profile.VariationEnd(), c.body)
		}
	}
}

func (p *parser) settle(v *m.Variation, actives []int, line int, sc classified) (*m.Variation, error) {
	switch len(actives) {
	case 1:
		v.Active = actives[0]
		return v, nil
	case 0:
		return nil, errorf(line, sc.column(0), "variation %s has no active body", v.DisplayName())
	}

	names := make([]string, 0, len(actives))
	for _, idx := range actives {
		if idx == 0 {
			names = append(names, m.BaseName)
			continue
		}

		names = append(names, v.Variants[idx-1].Name)
	}

	return nil, errorf(line, sc.column(0), "variation %s has %d active bodies (%s), expected exactly one",
		v.DisplayName(), len(actives), strings.Join(names, ", "))
}

// parseBody reads the body following a header. The boolean reports whether
// the body is active, i.e. not wrapped in a comment.
func (p *parser) parseBody() (m.Body, bool, error) {
	if p.pos >= len(p.lines) {
		return m.Body{}, true, nil
	}

	line := p.lines[p.pos]
	c := p.classify(line)

	switch c.kind {
	case tokVariantHeader, tokVariationEnd:
		return m.Body{}, true, nil
	case tokBodyOpen:
		return p.parseWrappedBody(line, c)
	case tokVariationBegin:
		return p.parseInlineBody(line, c)
	default:
		return p.parseActiveBody()
	}
}

func (p *parser) parseWrappedBody(open sourceLine, oc classified) (m.Body, bool, error) {
	p.pos++

	var lines []string

	for p.pos < len(p.lines) {
		line := p.lines[p.pos]
		p.pos++

		if c := p.classify(line); c.kind == tokBodyClose {
			return m.Body{Lines: lines, Open: oc.marker(), Close: c.marker()}, false, nil
		}

		lines = append(lines, line.text)
	}

	return m.Body{}, false, errorf(open.num, oc.column(0), "variant body is not closed by %q",
		p.profile.VariantBodyEnd())
}

func (p *parser) parseInlineBody(line sourceLine, c classified) (m.Body, bool, error) {
	begin, end := p.profile.VariantBodyBegin(), p.profile.VariantBodyEnd()
	inner := c.body[len(begin):]

	if len(inner) < len(end) || !strings.HasSuffix(inner, end) {
		return m.Body{}, false, errorf(line.num, c.column(0),
			"variant body must start on its own line after %q or be closed by %q on the same line", begin, end)
	}

	code := strings.TrimSpace(inner[:len(inner)-len(end)])
	p.pos++

	return m.Body{
		Lines:  []string{c.indent + code},
		Open:   c.marker(),
		Inline: true,
	}, false, nil
}

func (p *parser) parseActiveBody() (m.Body, bool, error) {
	var lines []string

	for p.pos < len(p.lines) {
		line := p.lines[p.pos]
		c := p.classify(line)

		switch c.kind {
		case tokVariantHeader, tokVariationEnd:
			return m.Body{Lines: lines}, true, nil
		case tokBodyOpen, tokVariationBegin:
			return m.Body{}, false, errorf(line.num, c.column(0),
				"unexpected %q inside active code; an inactive body must directly follow its header", c.body)
		}

		lines = append(lines, line.text)
		p.pos++
	}

	return m.Body{Lines: lines}, true, nil
}

func (p *parser) parseVariationHeader(line sourceLine, c classified) (string, []string, error) {
	begin, end := p.profile.VariationBegin(), p.profile.CommentEnd
	inner := c.body[len(begin):]

	if len(inner) < len(end) || !strings.HasSuffix(inner, end) {
		return "", nil, errorf(line.num, c.column(0), "variation header is not closed by %q", end)
	}

	cur := &cursor{s: inner[:len(inner)-len(end)], line: line.num, col: c.column(len(begin))}

	cur.skipSpace()
	name := cur.ident()
	cur.skipSpace()

	var tags []string

	if cur.peek() == '[' {
		var err error

		tagCol := cur.column()

		tags, err = cur.tagList()
		if err != nil {
			return "", nil, err
		}

		if name == "" {
			return "", nil, errorf(line.num, tagCol, "tags require a named variation")
		}
	}

	cur.skipSpace()

	if !cur.done() {
		return "", nil, cur.errorf("unexpected %q in variation header", cur.rest())
	}

	return name, tags, nil
}

func (p *parser) parseVariantHeader(line sourceLine, c classified) (m.Variant, error) {
	begin, end := p.profile.VariantHeaderBegin(), p.profile.VariantHeaderEnd()
	inner := c.body[len(begin):]

	if len(inner) < len(end) || !strings.HasSuffix(inner, end) {
		return m.Variant{}, errorf(line.num, c.column(0), "variant header is not closed by %q", end)
	}

	cur := &cursor{s: inner[:len(inner)-len(end)], line: line.num, col: c.column(len(begin))}

	cur.skipSpace()

	name := cur.ident()
	if name == "" {
		return m.Variant{}, cur.errorf("variant header requires a name")
	}

	cur.skipSpace()

	if !cur.done() {
		return m.Variant{}, cur.errorf("unexpected %q in variant header", cur.rest())
	}

	return m.Variant{Name: name, Header: c.marker()}, nil
}

// cursor scans the inside of a header comment.
type cursor struct {
	s    string
	i    int
	line int
	col  int // column of s[0]
}

func (c *cursor) done() bool {
	return c.i >= len(c.s)
}

func (c *cursor) rest() string {
	return strings.TrimRight(c.s[c.i:], " \t")
}

func (c *cursor) column() int {
	return c.col + c.i
}

func (c *cursor) peek() byte {
	if c.done() {
		return 0
	}

	return c.s[c.i]
}

func (c *cursor) skipSpace() {
	for !c.done() && (c.s[c.i] == ' ' || c.s[c.i] == '\t') {
		c.i++
	}
}

func (c *cursor) ident() string {
	start := c.i

	for !c.done() {
		r, size := utf8.DecodeRuneInString(c.s[c.i:])
		if !m.IsIdentRune(r) {
			break
		}

		c.i += size
	}

	return c.s[start:c.i]
}

func (c *cursor) tagList() ([]string, error) {
	c.i++ // '['

	var tags []string

	for {
		c.skipSpace()

		tag := c.ident()
		if tag == "" {
			return nil, c.errorf("expected a tag name")
		}

		tags = append(tags, tag)

		c.skipSpace()

		switch c.peek() {
		case ',':
			c.i++
		case ']':
			c.i++
			return tags, nil
		default:
			return nil, c.errorf("expected ',' or ']' in tag list")
		}
	}
}

func (c *cursor) errorf(format string, args ...any) error {
	return errorf(c.line, c.column(), format, args...)
}
