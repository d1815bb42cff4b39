package core_test

import (
	"testing"

	"github.com/katalvlaran/lvlbayes/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInstantiation_Order verifies the canonical iteration order over a
// 2x3 table: axis 0 varies fastest.
func TestInstantiation_Order(t *testing.T) {
	b := mustVar(t, "B", 2)
	a := mustVar(t, "A", 3)
	p, err := core.NewPotential(b, a)
	require.NoError(t, err)
	require.NoError(t, p.SetValues([]float64{0, 1, 2, 3, 4, 5}))

	wantVals := [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}, {1, 2}}
	pos := 0
	for it := core.NewInstantiation(p); !it.End(); it.Inc() {
		require.Less(t, pos, len(wantVals), "cursor must visit exactly Size() combinations")
		assert.Equal(t, wantVals[pos][0], it.Val(0), "axis 0 at step %d", pos)
		assert.Equal(t, wantVals[pos][1], it.Val(1), "axis 1 at step %d", pos)
		assert.Equal(t, pos, it.Pos())
		assert.Equal(t, float64(pos), it.Value())
		pos++
	}
	assert.Equal(t, p.Size(), pos, "cursor must cover the full domain")
}

// TestInstantiation_FirstRewinds checks that First restarts iteration.
func TestInstantiation_FirstRewinds(t *testing.T) {
	x := mustVar(t, "X", 2)
	p, err := core.NewPotential(x)
	require.NoError(t, err)
	require.NoError(t, p.SetValues([]float64{0.7, 0.3}))

	it := core.NewInstantiation(p)
	it.Inc()
	it.Inc()
	assert.True(t, it.End())

	it.First()
	assert.False(t, it.End())
	assert.Equal(t, 0, it.Pos())
	assert.Equal(t, 0.7, it.Value())
}

// TestInstantiation_NilPotential ensures a nil potential yields an
// already-finished cursor instead of a panic.
func TestInstantiation_NilPotential(t *testing.T) {
	it := core.NewInstantiation(nil)
	assert.True(t, it.End())
	assert.Equal(t, 0.0, it.Value())
	it.Inc() // must be a no-op
	assert.True(t, it.End())
}
