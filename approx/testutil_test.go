package approx_test

import (
	"testing"

	"github.com/katalvlaran/lvlbayes/bayesnet"
	"github.com/katalvlaran/lvlbayes/core"
	"github.com/stretchr/testify/require"
)

// mustVar builds a Variable or fails the test immediately.
func mustVar(t *testing.T, name string, size int) *core.Variable {
	t.Helper()
	v, err := core.NewVariable(name, size)
	require.NoError(t, err)

	return v
}

// mustPot builds a potential with the given values or fails the test.
func mustPot(t *testing.T, vals []float64, vars ...*core.Variable) *core.Potential {
	t.Helper()
	p, err := core.NewPotential(vars...)
	require.NoError(t, err)
	require.NoError(t, p.SetValues(vals))

	return p
}

// chainABC builds the three-node chain A→B→C with
//
//	P(A)   = [0.3, 0.7]
//	P(B|A) = [0.9, 0.1, 0.4, 0.6]  (order B0A0, B1A0, B0A1, B1A1)
//	P(C|B) = [0.2, 0.8, 0.5, 0.5]  (order C0B0, C1B0, C0B1, C1B1)
func chainABC(t *testing.T) *bayesnet.BayesNet {
	t.Helper()
	bn := bayesnet.NewBayesNet()

	av := mustVar(t, "A", 2)
	bv := mustVar(t, "B", 2)
	cv := mustVar(t, "C", 2)
	a, err := bn.Add(av)
	require.NoError(t, err)
	b, err := bn.Add(bv)
	require.NoError(t, err)
	c, err := bn.Add(cv)
	require.NoError(t, err)
	require.NoError(t, bn.AddArc(a, b))
	require.NoError(t, bn.AddArc(b, c))

	require.NoError(t, bn.SetCPT(a, mustPot(t, []float64{0.3, 0.7}, av)))
	require.NoError(t, bn.SetCPT(b, mustPot(t, []float64{0.9, 0.1, 0.4, 0.6}, bv, av)))
	require.NoError(t, bn.SetCPT(c, mustPot(t, []float64{0.2, 0.8, 0.5, 0.5}, cv, bv)))

	return bn
}

// cptOf fetches the CPT of the named node or fails the test.
func cptOf(t *testing.T, bn *bayesnet.BayesNet, name string) *core.Potential {
	t.Helper()
	id, err := bn.IDFromName(name)
	require.NoError(t, err)
	cpt, err := bn.CPT(id)
	require.NoError(t, err)

	return cpt
}
