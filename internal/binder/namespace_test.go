package binder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dimension-mapper/internal/binder"
)

func TestBind(t *testing.T) {
	ns := binder.NewNamespace()

	clamp := func(x float64) float64 { return min(max(x, 0), 1) }

	require.NoError(t, ns.Bind("dot.Utils.clamp", clamp))
	require.NoError(t, ns.Bind("dot.Utils.index-sum", 2))
	require.NoError(t, ns.Bind("phet", "root"))

	v, ok := ns.Lookup("dot.Utils.index-sum")
	require.True(t, ok)
	assert.Equal(t, 2, v)

	fn, ok := binder.LookupAs[func(float64) float64](ns, "dot.Utils.clamp")
	require.True(t, ok)
	assert.InDelta(t, 1.0, fn(3), 1e-9)

	_, ok = binder.LookupAs[string](ns, "dot.Utils.index-sum")
	assert.False(t, ok)

	_, ok = ns.Lookup("dot.Utils")
	assert.False(t, ok, "namespaces are not values")

	_, ok = ns.Lookup("dot.Utils.missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"dot.Utils.clamp", "dot.Utils.index-sum", "phet"}, ns.Paths())
}

func TestBind_Errors(t *testing.T) {
	ns := binder.NewNamespace()
	require.NoError(t, ns.Bind("a.b", 1))

	require.ErrorIs(t, ns.Bind("a.b", 2), binder.ErrAlreadyBound)
	require.ErrorIs(t, ns.Bind("a", 2), binder.ErrAlreadyBound)
	require.ErrorIs(t, ns.Bind("a.b.c", 2), binder.ErrNotNamespace)
	require.ErrorIs(t, ns.Bind("", 2), binder.ErrInvalidPath)
	require.ErrorIs(t, ns.Bind("a..c", 2), binder.ErrInvalidPath)
	require.ErrorIs(t, ns.Bind("a.9lives", 2), binder.ErrInvalidPath)
	require.Error(t, ns.Bind("a.c", nil))

	v, ok := ns.Lookup("a.b")
	require.True(t, ok)
	assert.Equal(t, 1, v, "failed binds leave the original value")
}
