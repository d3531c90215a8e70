package model

import (
	"fmt"
	"strings"
)

// BaseName is how the base implementation of a variation is reported.
const BaseName = "base"

// IndexOutOfRangeError is returned when activating a body that does not exist.
type IndexOutOfRangeError struct {
	Index int
	Count int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("variant index %d out of range [0, %d]", e.Index, e.Count)
}

// Marker is one marker line as it was read from the source.
type Marker struct {
	Indent string // whitespace preceding the marker
	Text   string // marker text, without indentation or line break
	EOL    string // rest of the line after Text, line break included
}

// Recorded reports whether the marker was captured from a source file.
func (mk Marker) Recorded() bool {
	return mk.Text != ""
}

func (mk Marker) write(sb *strings.Builder) {
	sb.WriteString(mk.Indent)
	sb.WriteString(mk.Text)
	sb.WriteString(mk.EOL)
}

// Body is the code of a base implementation or of a variant.
//
// Lines hold the code the way it reads while the body is active; activation
// never rewrites them. Open and Close remember the wrapping comment of a
// body that was inactive when parsed so it can be reproduced byte for byte.
// An inline body was wrapped on a single line and only uses Open.
type Body struct {
	Lines  []string
	Open   Marker
	Close  Marker
	Inline bool
}

// Wrapped reports whether the body carries a recorded wrapping comment.
func (b Body) Wrapped() bool {
	return b.Open.Recorded()
}

func (b Body) lineCount(active bool) int {
	switch {
	case active:
		return len(b.Lines)
	case b.Inline:
		return 1
	default:
		return len(b.Lines) + 2
	}
}

func (b Body) write(sb *strings.Builder, p LanguageProfile, active bool, indent, eol string) {
	if active {
		for _, line := range b.Lines {
			sb.WriteString(line)
			sb.WriteString("\n")
		}

		return
	}

	if b.Inline && b.Wrapped() {
		b.Open.write(sb)
		return
	}

	open, closing := b.Open, b.Close
	if !open.Recorded() {
		open = Marker{Indent: indent, Text: p.VariantBodyBegin(), EOL: eol}
	}

	if !closing.Recorded() {
		closing = Marker{Indent: indent, Text: p.VariantBodyEnd(), EOL: eol}
	}

	open.write(sb)

	for _, line := range b.Lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	closing.write(sb)
}

// Variant is one named alternative implementation.
type Variant struct {
	Name   string
	Header Marker
	Body   Body
}

// Variation is a marked region holding a base implementation and its named
// variants. Active is 0 for the base and i for Variants[i-1].
type Variation struct {
	Name     string
	Tags     []string
	Base     Body
	Variants []Variant
	Active   int
	Indent   string
	Header   Marker
	End      Marker
}

// Anonymous reports whether the variation has no name.
func (v *Variation) Anonymous() bool {
	return v.Name == ""
}

// DisplayName returns the variation name or "anonymous".
func (v *Variation) DisplayName() string {
	if v.Anonymous() {
		return "anonymous"
	}

	return v.Name
}

// Activate makes the body at index the active one. It always performs the
// assignment; callers decide whether a repeated activation is an error.
func (v *Variation) Activate(index int) error {
	if index < 0 || index > len(v.Variants) {
		return &IndexOutOfRangeError{Index: index, Count: len(v.Variants)}
	}

	v.Active = index

	return nil
}

// IsActive reports whether the body at index (0 = base) is the active one.
func (v *Variation) IsActive(index int) bool {
	return v.Active == index
}

// ActiveName returns the active variant name, or BaseName.
func (v *Variation) ActiveName() string {
	return v.NameAt(v.Active)
}

// NameAt returns the name of the body at index, BaseName for 0 or an index
// out of range.
func (v *Variation) NameAt(index int) string {
	if index <= 0 || index > len(v.Variants) {
		return BaseName
	}

	return v.Variants[index-1].Name
}

// VariantIndex returns the activation index of the named variant.
func (v *Variation) VariantIndex(name string) (int, bool) {
	for i, variant := range v.Variants {
		if variant.Name == name {
			return i + 1, true
		}
	}

	return 0, false
}

// VariantNames lists the variant names in declaration order.
func (v *Variation) VariantNames() []string {
	names := make([]string, 0, len(v.Variants))
	for _, variant := range v.Variants {
		names = append(names, variant.Name)
	}

	return names
}

// LineCount is the number of source lines the variation occupies in its
// current state.
func (v *Variation) LineCount() int {
	lines := 1 + v.Base.lineCount(v.Active == 0)
	for i, variant := range v.Variants {
		lines += 1 + variant.Body.lineCount(v.Active == i+1)
	}

	return lines + 1
}

// Render serializes the variation in its current state.
func (v *Variation) Render(p LanguageProfile) string {
	var sb strings.Builder

	v.write(&sb, p)

	return sb.String()
}

func (v *Variation) eol() string {
	if strings.HasSuffix(v.Header.EOL, "\r\n") {
		return "\r\n"
	}

	return "\n"
}

func (v *Variation) write(sb *strings.Builder, p LanguageProfile) {
	eol := v.eol()

	header := v.Header
	if !header.Recorded() {
		header = Marker{Indent: v.Indent, Text: v.headerText(p), EOL: eol}
	}

	header.write(sb)
	v.Base.write(sb, p, v.Active == 0, v.Indent, eol)

	for i, variant := range v.Variants {
		vh := variant.Header
		if !vh.Recorded() {
			vh = Marker{
				Indent: v.Indent,
				Text:   p.VariantHeaderBegin() + " " + variant.Name + " " + p.VariantHeaderEnd(),
				EOL:    eol,
			}
		}

		vh.write(sb)
		variant.Body.write(sb, p, v.Active == i+1, v.Indent, eol)
	}

	end := v.End
	if !end.Recorded() {
		end = Marker{Indent: v.Indent, Text: p.VariationEnd(), EOL: eol}
	}

	end.write(sb)
}

func (v *Variation) headerText(p LanguageProfile) string {
	var title strings.Builder

	title.WriteString(p.VariationBegin())
	title.WriteString(" ")

	if v.Name != "" {
		title.WriteString(v.Name)
		title.WriteString(" ")
	}

	if len(v.Tags) > 0 {
		title.WriteString("[")
		title.WriteString(strings.Join(v.Tags, ", "))
		title.WriteString("] ")
	}

	title.WriteString(p.CommentEnd)

	return title.String()
}
