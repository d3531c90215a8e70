package algebra

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Precedence(t *testing.T) {
	e, err := Parse("a + b * c")
	require.NoError(t, err)

	want := Sum{Left: Ident{Name: "a"}, Right: Product{Left: Ident{Name: "b"}, Right: Ident{Name: "c"}}}
	assert.Equal(t, want, e)
	assert.Equal(t, "(a + (b * c))", e.String())
}

func TestParse_LeftAssociative(t *testing.T) {
	e, err := Parse("a + b + c")
	require.NoError(t, err)
	assert.Equal(t, "((a + b) + c)", e.String())

	e, err = Parse("a*b*c")
	require.NoError(t, err)
	assert.Equal(t, "((a * b) * c)", e.String())
}

func TestParse_UnaryTagsAndGroups(t *testing.T) {
	e, err := Parse("+easy * (insert + delete) + *hard")
	require.NoError(t, err)

	want := Sum{
		Left: Product{
			Left:  UnarySum{Tag: "easy"},
			Right: Sum{Left: Ident{Name: "insert"}, Right: Ident{Name: "delete"}},
		},
		Right: UnaryProduct{Tag: "hard"},
	}
	assert.Equal(t, want, e)
}

func TestParse_IdentifierCharacters(t *testing.T) {
	e, err := Parse("insert_1 + bst-delete.v2")
	require.NoError(t, err)
	assert.Equal(t, Sum{Left: Ident{Name: "insert_1"}, Right: Ident{Name: "bst-delete.v2"}}, e)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		pos  int
		msg  string
	}{
		{name: "empty", src: "", pos: 0, msg: "empty expression"},
		{name: "blank", src: "   ", pos: 3, msg: "empty expression"},
		{name: "empty parentheses", src: "()", pos: 1, msg: "empty parentheses"},
		{name: "nested empty parentheses", src: "a * (())", pos: 6, msg: "empty parentheses"},
		{name: "dangling plus", src: "a +", pos: 3, msg: "found end of expression"},
		{name: "unclosed group", src: "(a", pos: 2, msg: "expected ')'"},
		{name: "juxtaposition", src: "a b", pos: 2, msg: `unexpected identifier "b"`},
		{name: "unary without tag", src: "+(a)", pos: 1, msg: "expected a tag name after '+'"},
		{name: "stray paren", src: ")", pos: 0, msg: "found ')'"},
		{name: "bad character", src: "a & b", pos: 2, msg: "unexpected character '&'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.pos, perr.Pos)
			assert.Contains(t, perr.Msg, tt.msg)
		})
	}
}

func TestCompile_Distributivity(t *testing.T) {
	ix := Index{
		Tags: map[string][]string{"easy": {"a", "b"}},
		Variations: map[string][]string{
			"insert": {"insert_1", "insert_2"},
			"delete": {"delete_1", "delete_2"},
		},
		Variants: []string{"a", "b", "insert_1", "insert_2", "delete_1", "delete_2"},
	}

	got, err := Compile("+easy * (insert + delete)", ix)
	require.NoError(t, err)

	want := [][]string{
		{"a", "insert_1"}, {"a", "insert_2"}, {"a", "delete_1"}, {"a", "delete_2"},
		{"b", "insert_1"}, {"b", "insert_2"}, {"b", "delete_1"}, {"b", "delete_2"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Compile() mismatch (-want +got):\n%s", diff)
	}
}

func TestCompile_ProductDistributesOverSum(t *testing.T) {
	ix := Index{Variants: []string{"a", "b", "c", "d"}}

	grouped, err := Compile("(a + b) * (c + d)", ix)
	require.NoError(t, err)

	left, err := Compile("a * (c + d)", ix)
	require.NoError(t, err)

	right, err := Compile("b * (c + d)", ix)
	require.NoError(t, err)

	assert.Equal(t, append(left, right...), grouped)
}

func TestCompile_SumOfProducts(t *testing.T) {
	got, err := Compile("a + b * c", Index{Variants: []string{"a", "b", "c"}})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a"}, {"b", "c"}}, got)
}

func TestCompile_UnaryProduct(t *testing.T) {
	ix := Index{
		Tags:     map[string][]string{"hard": {"x", "y", "z"}},
		Variants: []string{"x", "y", "z"},
	}

	got, err := Compile("*hard", ix)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"x", "y", "z"}}, got)
}

func TestCompile_TagOfVariations(t *testing.T) {
	ix := Index{
		Tags:       map[string][]string{"list": {"insert", "delete"}},
		Variations: map[string][]string{"insert": {"insert_1"}, "delete": {"delete_1", "delete_2"}},
		Variants:   []string{"insert_1", "delete_1", "delete_2"},
	}

	got, err := Compile("+list", ix)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"insert_1"}, {"delete_1"}, {"delete_2"}}, got)
}

func TestCompile_UnknownVariant(t *testing.T) {
	_, err := Compile("ghost", Index{Variants: []string{"a", "b"}})

	var uerr *UnknownVariantError
	require.True(t, errors.As(err, &uerr))
	assert.Equal(t, "ghost", uerr.Name)
	assert.Equal(t, []string{"a", "b"}, uerr.Known)
	assert.Contains(t, err.Error(), "a, b")
}

func TestCompile_FirstUnknownVariantReported(t *testing.T) {
	_, err := Compile("a * (x + y)", Index{Variants: []string{"a"}})

	var uerr *UnknownVariantError
	require.True(t, errors.As(err, &uerr))
	assert.Equal(t, "x", uerr.Name)
}

func TestCompile_TagWithoutMembers(t *testing.T) {
	tests := []struct {
		name string
		tags map[string][]string
	}{
		{name: "absent", tags: nil},
		{name: "empty", tags: map[string][]string{"easy": {}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile("a + +easy", Index{Tags: tt.tags, Variants: []string{"a"}})

			var terr *TagHasNoMembersError
			require.True(t, errors.As(err, &terr))
			assert.Equal(t, "easy", terr.Tag)
		})
	}
}

func TestCompile_ParseErrorAbortsExpansion(t *testing.T) {
	got, err := Compile("a * ()", Index{Variants: []string{"a"}})
	require.Error(t, err)
	assert.Nil(t, got)
}

func TestDistributeTags_SingleMemberIsBareIdent(t *testing.T) {
	ix := Index{Tags: map[string][]string{"solo": {"a"}}}

	e, err := DistributeTags(UnarySum{Tag: "solo"}, ix)
	require.NoError(t, err)
	assert.Equal(t, Ident{Name: "a"}, e)

	e, err = DistributeTags(UnaryProduct{Tag: "solo"}, ix)
	require.NoError(t, err)
	assert.Equal(t, Ident{Name: "a"}, e)
}

func TestDistributeTags_LeftAssociatedChain(t *testing.T) {
	ix := Index{Tags: map[string][]string{"t": {"a", "b", "c"}}}

	e, err := DistributeTags(UnarySum{Tag: "t"}, ix)
	require.NoError(t, err)
	assert.Equal(t, "((a + b) + c)", e.String())

	e, err = DistributeTags(UnaryProduct{Tag: "t"}, ix)
	require.NoError(t, err)
	assert.Equal(t, "((a * b) * c)", e.String())
}

func TestDistributeVariations_KeepsUnknownNames(t *testing.T) {
	ix := Index{Variations: map[string][]string{"insert": {"insert_1", "insert_2"}}}

	e := DistributeVariations(Product{Left: Ident{Name: "insert"}, Right: Ident{Name: "other"}}, ix)
	assert.Equal(t, "((insert_1 + insert_2) * other)", e.String())
}

func TestIntoSumOfProducts_RejectsUndistributedTags(t *testing.T) {
	_, err := IntoSumOfProducts(Sum{Left: Ident{Name: "a"}, Right: UnarySum{Tag: "t"}})
	require.Error(t, err)
}
