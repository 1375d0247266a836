package dimension_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dimension-mapper/dimension"
)

func TestShapeOf(t *testing.T) {
	s, err := dimension.ShapeOf(3, [][][]int{{{1, 9, 25}, {23}}, {{5, 5, 5, 5}, {2, 9}, {1}, {3, -10}}})
	require.NoError(t, err)

	assert.Equal(t, "2{2{3, 1}, 4{4, 2, 1, 2}}", s.String())
	assert.Equal(t, 13, s.Leaves())

	flat, err := dimension.ShapeOf(1, []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, dimension.Shape{Len: 2}, flat)
	assert.Equal(t, "2", flat.String())
}

func TestShape_Equal(t *testing.T) {
	a, err := dimension.ShapeOf(2, [][]int{{1, 2}, {3}})
	require.NoError(t, err)

	b, err := dimension.ShapeOf(2, []any{[]any{"x", "y"}, []any{"z"}})
	require.NoError(t, err)

	c, err := dimension.ShapeOf(2, [][]int{{1}, {2, 3}})
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestShapeOf_Mismatch(t *testing.T) {
	_, err := dimension.ShapeOf(2, []any{[]any{1}, 2})
	require.ErrorIs(t, err, dimension.ErrDepthMismatch)
}
