package dimension_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dimension-mapper/dimension"
)

func doubleAny(v any) int { return 2 * v.(int) }

func TestMap_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		in    any
		want  any
	}{
		{
			name:  "depth 1",
			depth: 1,
			in:    []int{1, 2, 4},
			want:  []int{2, 4, 8},
		},
		{
			name:  "depth 2",
			depth: 2,
			in:    [][]int{{1, 4, 10}, {5, 3, -1}},
			want:  [][]int{{2, 8, 20}, {10, 6, -2}},
		},
		{
			name:  "depth 3",
			depth: 3,
			in:    [][][]int{{{1, 9, 25}, {23}}, {{5, 5, 5, 5}, {2, 9}, {1}, {3, -10}}},
			want:  [][][]int{{{2, 18, 50}, {46}}, {{10, 10, 10, 10}, {4, 18}, {2}, {6, -20}}},
		},
		{
			name:  "untyped nesting",
			depth: 2,
			in:    []any{[]any{1, 2}, []int{3}},
			want:  [][]int{{2, 4}, {6}},
		},
		{
			name:  "arrays",
			depth: 2,
			in:    [2][2]int{{1, 2}, {3, 4}},
			want:  [][]int{{2, 4}, {6, 8}},
		},
		{
			name:  "empty at every level",
			depth: 3,
			in:    [][][]int{{}, {{}}},
			want:  [][][]int{{}, {{}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dimension.Map(tt.depth, tt.in, doubleAny)
			require.NoError(t, err)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Map mismatch (-want +got):\n%s\ngot: %s", diff, spew.Sdump(got))
			}
		})
	}
}

func TestMapIndexed(t *testing.T) {
	t.Run("depth 1 adds index", func(t *testing.T) {
		got, err := dimension.MapIndexed(1, []int{1, 2, 4}, func(v any, p dimension.IndexPath) int {
			return 2*v.(int) + p[0]
		})
		require.NoError(t, err)
		assert.Equal(t, []int{2, 5, 10}, got)
	})

	t.Run("depth 2 lookup reproduces input", func(t *testing.T) {
		in := [][]int{{1, 4, 10}, {5, 3, -1}}
		got, err := dimension.MapIndexed(2, in, func(_ any, p dimension.IndexPath) int {
			return in[p[0]][p[1]]
		})
		require.NoError(t, err)
		assert.Equal(t, in, got)
	})

	t.Run("paths are outermost first and not shared", func(t *testing.T) {
		var seen []dimension.IndexPath

		_, err := dimension.MapIndexed(3, [][][]string{{{"a"}, {"b", "c"}}, {{"d"}}},
			func(_ any, p dimension.IndexPath) bool {
				seen = append(seen, p)
				return true
			})
		require.NoError(t, err)

		want := []dimension.IndexPath{{0, 0, 0}, {0, 1, 0}, {0, 1, 1}, {1, 0, 0}}
		assert.Equal(t, want, seen)
	})
}

func TestMap_IdentityLaw(t *testing.T) {
	in := [][][]float64{{{1.5}, {}}, {{2, 3}, {4}}}
	got, err := dimension.Map(3, in, func(v any) float64 { return v.(float64) })
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestMap_ShapePreserved(t *testing.T) {
	in := []any{[]any{[]any{1, 2}}, []any{}, []any{[]any{}, []any{3, 4, 5}}}

	got, err := dimension.Map(3, in, func(v any) string { return fmt.Sprint(v) })
	require.NoError(t, err)

	before, err := dimension.ShapeOf(3, in)
	require.NoError(t, err)

	after, err := dimension.ShapeOf(3, got)
	require.NoError(t, err)

	assert.True(t, before.Equal(after), "before %s, after %s", before, after)
}

func TestMap_NilSliceStaysNil(t *testing.T) {
	got, err := dimension.Map(2, [][]int{nil, {1}}, doubleAny)
	require.NoError(t, err)

	rows := got.([][]int)
	assert.Nil(t, rows[0])
	assert.Equal(t, []int{2}, rows[1])
}

func TestMap_InterfaceResult(t *testing.T) {
	got, err := dimension.Map(1, []int{1, 2}, func(v any) error {
		if v.(int) == 1 {
			return nil
		}
		return errors.New("two")
	})
	require.NoError(t, err)

	errs := got.([]error)
	assert.NoError(t, errs[0])
	assert.EqualError(t, errs[1], "two")
}

func TestMap_Errors(t *testing.T) {
	t.Run("invalid depth", func(t *testing.T) {
		_, err := dimension.Map(0, []int{1}, doubleAny)
		require.ErrorIs(t, err, dimension.ErrInvalidDepth)
	})

	t.Run("huge depth on shallow input", func(t *testing.T) {
		for _, depth := range []int{1 << 40, 2_000_000} {
			_, err := dimension.Map(depth, []int{1}, doubleAny)

			var de *dimension.DepthError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, 2, de.Level)
			assert.Equal(t, dimension.IndexPath{0}, de.Path)
		}

		err := dimension.ForEach(1<<40, [][]int{{1}}, func(any, dimension.IndexPath) {})
		require.ErrorIs(t, err, dimension.ErrDepthMismatch)

		_, err = dimension.ShapeOf(1<<40, []any{[]any{}, 3})
		require.ErrorIs(t, err, dimension.ErrDepthMismatch)
	})

	t.Run("depth above maximum without mismatch", func(t *testing.T) {
		_, err := dimension.MapIndexed(dimension.MaxDepth+1, []any{}, func(any, dimension.IndexPath) int { return 0 })
		require.ErrorIs(t, err, dimension.ErrInvalidDepth)
		require.NotErrorIs(t, err, dimension.ErrDepthMismatch)

		_, err = dimension.Map(dimension.MaxDepth, []any{}, doubleAny)
		require.NoError(t, err)
	})

	t.Run("scalar where sequence expected", func(t *testing.T) {
		_, err := dimension.Map(3, []any{[]any{[]any{1}, 2}}, doubleAny)
		require.ErrorIs(t, err, dimension.ErrDepthMismatch)

		var de *dimension.DepthError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, 3, de.Depth)
		assert.Equal(t, 3, de.Level)
		assert.Equal(t, dimension.IndexPath{0, 1}, de.Path)
		assert.Equal(t, "int", de.Found)
		assert.EqualError(t, err, "declared depth 3: expected a sequence at [0][1] (level 3), found int")
	})

	t.Run("nil input", func(t *testing.T) {
		_, err := dimension.Map(1, nil, doubleAny)

		var de *dimension.DepthError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "<nil>", de.Found)
		assert.Equal(t, "root", de.Path.String())
	})

	t.Run("strings are not sequences", func(t *testing.T) {
		_, err := dimension.Map(2, []string{"ab"}, func(v any) any { return v })
		require.ErrorIs(t, err, dimension.ErrDepthMismatch)
	})

	t.Run("deeper nesting is passed to the leaf", func(t *testing.T) {
		got, err := dimension.Map(1, [][]int{{1, 2}, {3}}, func(v any) int { return len(v.([]int)) })
		require.NoError(t, err)
		assert.Equal(t, []int{2, 1}, got)
	})
}

func TestForEach(t *testing.T) {
	var leaves []any

	var paths []string

	err := dimension.ForEach(2, [][]int{{1, 2}, {}, {3}}, func(v any, p dimension.IndexPath) {
		leaves = append(leaves, v)
		paths = append(paths, p.String())
	})
	require.NoError(t, err)

	assert.Equal(t, []any{1, 2, 3}, leaves)
	assert.Equal(t, []string{"[0][0]", "[0][1]", "[2][0]"}, paths)

	err = dimension.ForEach(2, []int{1}, func(any, dimension.IndexPath) {})
	require.ErrorIs(t, err, dimension.ErrDepthMismatch)

	err = dimension.ForEach(-1, []int{1}, func(any, dimension.IndexPath) {})
	require.ErrorIs(t, err, dimension.ErrInvalidDepth)
}
