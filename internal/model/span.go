package model

import "strings"

// SpanKind distinguishes plain text from variations.
type SpanKind int

const (
	// SpanLine is unmodified source text.
	SpanLine SpanKind = iota
	// SpanVariation is a parsed mutation region.
	SpanVariation
)

// Span is one piece of a parsed file. Line is the 1-indexed line on which
// the span starts.
type Span struct {
	Kind      SpanKind
	Line      int
	Text      string
	Variation *Variation
}

// LineSpan builds a plain text span. Text keeps its line breaks.
func LineSpan(text string, line int) Span {
	return Span{Kind: SpanLine, Line: line, Text: text}
}

// VariationSpan builds a span holding v.
func VariationSpan(v *Variation, line int) Span {
	return Span{Kind: SpanVariation, Line: line, Variation: v}
}

// LineCount is the number of lines the span covers. A trailing fragment
// without a line break counts as a line.
func (s Span) LineCount() int {
	if s.Kind == SpanVariation {
		return s.Variation.LineCount()
	}

	n := strings.Count(s.Text, "\n")
	if s.Text != "" && !strings.HasSuffix(s.Text, "\n") {
		n++
	}

	return n
}

// Code is the parsed content of one source file.
type Code struct {
	Profile LanguageProfile
	Spans   []Span
}

// Render serializes every span back to source text.
func (c *Code) Render() string {
	var sb strings.Builder

	for _, span := range c.Spans {
		if span.Kind == SpanVariation {
			span.Variation.write(&sb, c.Profile)
			continue
		}

		sb.WriteString(span.Text)
	}

	return sb.String()
}

// Variations returns the variations in source order.
func (c *Code) Variations() []*Variation {
	var variations []*Variation

	for _, span := range c.Spans {
		if span.Kind == SpanVariation {
			variations = append(variations, span.Variation)
		}
	}

	return variations
}

// VariantNames returns every variant name declared in the file.
func (c *Code) VariantNames() []string {
	var names []string
	for _, v := range c.Variations() {
		names = append(names, v.VariantNames()...)
	}

	return names
}

// AllBase reports whether every variation has its base active.
func (c *Code) AllBase() bool {
	for _, v := range c.Variations() {
		if v.Active != 0 {
			return false
		}
	}

	return true
}
