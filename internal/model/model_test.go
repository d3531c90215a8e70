package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rust = LanguageProfile{Name: "rust", Extensions: []string{"rs"}, CommentBegin: "/*", CommentEnd: "*/", Marker: '|'}

func newVariation() *Variation {
	return &Variation{
		Name:   "v",
		Tags:   []string{"a", "b"},
		Indent: "  ",
		Base:   Body{Lines: []string{"  x"}},
		Variants: []Variant{
			{Name: "w", Body: Body{Lines: []string{"  y"}}},
			{Name: "z", Body: Body{Lines: []string{"  z1", "  z2"}}},
		},
	}
}

func TestLanguageProfile_Tokens(t *testing.T) {
	assert.Equal(t, "/*|", rust.VariationBegin())
	assert.Equal(t, "/* |*/", rust.VariationEnd())
	assert.Equal(t, "/*||", rust.VariantHeaderBegin())
	assert.Equal(t, "*/", rust.VariantHeaderEnd())
	assert.Equal(t, "/*|", rust.VariantBodyBegin())
	assert.Equal(t, "*/", rust.VariantBodyEnd())
}

func TestLanguageProfile_HasExtension(t *testing.T) {
	assert.True(t, rust.HasExtension("rs"))
	assert.True(t, rust.HasExtension(".RS"))
	assert.False(t, rust.HasExtension("r"))
}

func TestLanguageProfile_Validate(t *testing.T) {
	tests := []struct {
		name    string
		profile LanguageProfile
		valid   bool
	}{
		{name: "rust", profile: rust, valid: true},
		{name: "python", profile: LanguageProfile{Name: "python", CommentBegin: `"""`, CommentEnd: `"""`, Marker: '!'}, valid: true},
		{name: "coq", profile: LanguageProfile{Name: "coq", CommentBegin: "(*", CommentEnd: "*)", Marker: '!'}, valid: true},
		{name: "empty begin", profile: LanguageProfile{CommentEnd: "*/", Marker: '|'}},
		{name: "empty end", profile: LanguageProfile{CommentBegin: "/*", Marker: '|'}},
		{name: "space in delimiter", profile: LanguageProfile{CommentBegin: "/ *", CommentEnd: "*/", Marker: '|'}},
		{name: "no marker", profile: LanguageProfile{CommentBegin: "/*", CommentEnd: "*/"}},
		{name: "bracket marker", profile: LanguageProfile{CommentBegin: "/*", CommentEnd: "*/", Marker: '['}},
		{name: "identifier marker", profile: LanguageProfile{CommentBegin: "/*", CommentEnd: "*/", Marker: 'x'}},
		{name: "end inside marker", profile: LanguageProfile{CommentBegin: "/*", CommentEnd: "*/", Marker: '/'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Validate()
			if tt.valid {
				require.NoError(t, err)
				return
			}

			var perr *InvalidProfileError
			require.True(t, errors.As(err, &perr))
		})
	}
}

func TestCustomLanguage_Profile(t *testing.T) {
	p, err := CustomLanguage{Name: "lean", Extension: "lean", CommentBegin: "/-", CommentEnd: "-/", MutationMarker: "!"}.Profile()
	require.NoError(t, err)
	assert.Equal(t, '!', p.Marker)
	assert.Equal(t, []string{"lean"}, p.Extensions)

	_, err = CustomLanguage{Name: "lean", Extension: "lean", CommentBegin: "/-", CommentEnd: "-/", MutationMarker: "!!"}.Profile()
	require.Error(t, err)

	_, err = CustomLanguage{Extension: "lean", CommentBegin: "/-", CommentEnd: "-/", MutationMarker: "!"}.Profile()
	require.Error(t, err)

	_, err = CustomLanguage{Name: "lean", CommentBegin: "/-", CommentEnd: "-/", MutationMarker: "!"}.Profile()
	require.Error(t, err)
}

func TestVariation_Activate(t *testing.T) {
	v := newVariation()

	require.NoError(t, v.Activate(2))
	assert.True(t, v.IsActive(2))
	assert.Equal(t, "z", v.ActiveName())

	require.NoError(t, v.Activate(0))
	assert.Equal(t, BaseName, v.ActiveName())

	err := v.Activate(3)

	var rangeErr *IndexOutOfRangeError
	require.True(t, errors.As(err, &rangeErr))
	assert.Equal(t, 3, rangeErr.Index)
	assert.Equal(t, 2, rangeErr.Count)
	assert.Equal(t, 0, v.Active)

	require.Error(t, v.Activate(-1))
}

func TestVariation_Lookup(t *testing.T) {
	v := newVariation()

	idx, ok := v.VariantIndex("z")
	assert.True(t, ok)
	assert.Equal(t, 2, idx)

	_, ok = v.VariantIndex("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"w", "z"}, v.VariantNames())
	assert.Equal(t, "w", v.NameAt(1))
	assert.Equal(t, BaseName, v.NameAt(0))
	assert.Equal(t, BaseName, v.NameAt(7))
	assert.False(t, v.Anonymous())
	assert.Equal(t, "anonymous", (&Variation{}).DisplayName())
}

func TestVariation_RenderWithoutRecordedMarkers(t *testing.T) {
	v := newVariation()
	require.NoError(t, v.Activate(1))

	want := "  /*| v [a, b] */\n" +
		"  /*|\n" +
		"  x\n" +
		"  */\n" +
		"  /*|| w */\n" +
		"  y\n" +
		"  /*|| z */\n" +
		"  /*|\n" +
		"  z1\n" +
		"  z2\n" +
		"  */\n" +
		"  /* |*/\n"

	assert.Equal(t, want, v.Render(rust))
	assert.Equal(t, 12, v.LineCount())
}

func TestVariation_RenderAnonymousHeader(t *testing.T) {
	v := &Variation{Base: Body{Lines: []string{"x"}}}

	assert.Equal(t, "/*| */\nx\n/* |*/\n", v.Render(rust))
}

func TestCode_Queries(t *testing.T) {
	v := newVariation()
	code := &Code{Profile: rust, Spans: []Span{
		LineSpan("fn a() {\n", 1),
		VariationSpan(v, 2),
		LineSpan("}", 8),
	}}

	assert.True(t, code.AllBase())
	assert.Equal(t, []*Variation{v}, code.Variations())
	assert.Equal(t, []string{"w", "z"}, code.VariantNames())
	assert.Equal(t, 1, code.Spans[2].LineCount())

	require.NoError(t, v.Activate(1))
	assert.False(t, code.AllBase())
}

func TestVariationInfo_Names(t *testing.T) {
	info := VariationInfo{Variants: []string{"a", "b"}, Active: 2}
	assert.Equal(t, "b", info.ActiveName())
	assert.Equal(t, "anonymous", info.DisplayName())

	info.Active = 0
	assert.Equal(t, BaseName, info.ActiveName())
}

func TestRunReport_Count(t *testing.T) {
	report := RunReport{Results: []ConfigurationResult{
		{Status: StatusPassed}, {Status: StatusFailed}, {Status: StatusPassed},
	}}

	assert.Equal(t, 2, report.Count(StatusPassed))
	assert.Equal(t, 0, report.Count(StatusError))
}
