package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mouse-blink/marauders/internal/domain/algebra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIndex(t *testing.T) {
	project, _ := loadSample(t)

	ix, err := BuildIndex(project)
	require.NoError(t, err)

	want := algebra.Index{
		Tags: map[string][]string{
			"arith": {"add", "neg"},
			"sign":  {"neg"},
		},
		Variations: map[string][]string{
			"add": {"add_sub", "add_mul"},
			"neg": {"neg_id"},
		},
		Variants: []string{"add_sub", "add_mul", "neg_id", "anon_a"},
	}

	if diff := cmp.Diff(want, ix); diff != "" {
		t.Errorf("BuildIndex() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildIndex_DuplicateVariationName(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"a.rs": "/*| op */\nx\n/*|| op_a */\n/*|\ny\n*/\n/* |*/\n",
		"b.rs": "/*| op */\nx\n/*|| op_b */\n/*|\ny\n*/\n/* |*/\n",
	})

	project, err := newTestLoader().Load(dir + "/...")
	require.NoError(t, err)

	_, err = BuildIndex(project)

	var ambiguous *AmbiguousVariationNameError
	require.ErrorAs(t, err, &ambiguous)
	assert.Equal(t, "op", ambiguous.Name)
	assert.Len(t, ambiguous.Locations, 2)
}

func TestBuildIndex_CompilesSelections(t *testing.T) {
	project, _ := loadSample(t)

	ix, err := BuildIndex(project)
	require.NoError(t, err)

	tests := []struct {
		expr string
		want [][]string
	}{
		{expr: "add", want: [][]string{{"add_sub"}, {"add_mul"}}},
		{expr: "+arith", want: [][]string{{"add_sub"}, {"add_mul"}, {"neg_id"}}},
		{expr: "*arith", want: [][]string{{"add_sub", "neg_id"}, {"add_mul", "neg_id"}}},
		{expr: "anon_a * neg", want: [][]string{{"anon_a", "neg_id"}}},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := algebra.Compile(tt.expr, ix)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
