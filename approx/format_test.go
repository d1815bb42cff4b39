package approx_test

import (
	"testing"

	"github.com/katalvlaran/lvlbayes/approx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCompact_FixedWidth verifies the 8-wide/4-decimal pipe-delimited layout.
func TestCompact_FixedWidth(t *testing.T) {
	v := mustVar(t, "X", 2)
	p := mustPot(t, []float64{0.9, 0.1}, v)
	assert.Equal(t, "[ 90.0000| 10.0000]", approx.Compact(p))

	full, err := approx.Deterministic(v, 0)
	require.NoError(t, err)
	assert.Equal(t, "[100.0000|  0.0000]", approx.Compact(full))
}

// TestCompact_MultiVariable renders the full table in canonical order.
func TestCompact_MultiVariable(t *testing.T) {
	b := mustVar(t, "B", 2)
	a := mustVar(t, "A", 2)
	p := mustPot(t, []float64{0.9, 0.1, 0.4, 0.6}, b, a)
	assert.Equal(t, "[ 90.0000| 10.0000| 40.0000| 60.0000]", approx.Compact(p))
}

// TestCompact_Nil renders an empty bracket pair.
func TestCompact_Nil(t *testing.T) {
	assert.Equal(t, "[]", approx.Compact(nil))
}
