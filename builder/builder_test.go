package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlbayes/approx"
	"github.com/katalvlaran/lvlbayes/bayesnet"
	"github.com/katalvlaran/lvlbayes/builder"
)

// cptValues fetches the CPT values of the named node or fails the test.
func cptValues(t *testing.T, bn *bayesnet.BayesNet, name string) []float64 {
	t.Helper()
	id, err := bn.IDFromName(name)
	require.NoError(t, err)
	cpt, err := bn.CPT(id)
	require.NoError(t, err)

	return cpt.Values()
}

// assertBlocksNormalized checks that every contiguous child-domain block of
// vals sums to 1.
func assertBlocksNormalized(t *testing.T, vals []float64, domainSize int) {
	t.Helper()
	require.Zero(t, len(vals)%domainSize)
	for off := 0; off < len(vals); off += domainSize {
		sum := 0.0
		for _, x := range vals[off : off+domainSize] {
			sum += x
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "block at offset %d", off)
	}
}

// TestChain_Structure verifies names, arcs, and CPT shapes of a 4-node chain.
func TestChain_Structure(t *testing.T) {
	bn, err := builder.Chain(4)
	require.NoError(t, err)

	assert.Equal(t, 4, bn.Size())
	for i, name := range []string{"X0", "X1", "X2", "X3"} {
		id, err := bn.IDFromName(name)
		require.NoError(t, err)
		v, err := bn.Variable(id)
		require.NoError(t, err)
		assert.Equal(t, 2, v.DomainSize())

		parents, err := bn.Parents(id)
		require.NoError(t, err)
		if i == 0 {
			assert.Empty(t, parents, "root has no parent")
		} else {
			require.Len(t, parents, 1)
			pname, err := bn.Name(parents[0])
			require.NoError(t, err)
			assert.Equal(t, "X"+string(rune('0'+i-1)), pname)
		}
	}
	assert.Len(t, bn.TopologicalOrder(), 4, "acyclic with all nodes ordered")
}

// TestChain_CPTsNormalized verifies Dirichlet-sampled tables are proper CPTs.
func TestChain_CPTsNormalized(t *testing.T) {
	bn, err := builder.Chain(3, builder.WithSeed(7), builder.WithDomainSize(3))
	require.NoError(t, err)

	assertBlocksNormalized(t, cptValues(t, bn, "X0"), 3)
	vals := cptValues(t, bn, "X1")
	assert.Len(t, vals, 9, "3-value child × 3-value parent")
	assertBlocksNormalized(t, vals, 3)
}

// TestChain_SeedDeterminism verifies that equal seeds reproduce the exact
// parameters and that distinct seeds diverge.
func TestChain_SeedDeterminism(t *testing.T) {
	a, err := builder.Chain(5, builder.WithSeed(42))
	require.NoError(t, err)
	b, err := builder.Chain(5, builder.WithSeed(42))
	require.NoError(t, err)
	c, err := builder.Chain(5, builder.WithSeed(43))
	require.NoError(t, err)

	for _, name := range []string{"X0", "X1", "X2", "X3", "X4"} {
		assert.Equal(t, cptValues(t, a, name), cptValues(t, b, name), "node %s", name)
	}
	assert.NotEqual(t, cptValues(t, a, "X0"), cptValues(t, c, "X0"),
		"different seeds draw different parameters")
}

// TestChain_UniformCPTs verifies WithUniformCPTs skips sampling entirely.
func TestChain_UniformCPTs(t *testing.T) {
	bn, err := builder.Chain(2, builder.WithUniformCPTs())
	require.NoError(t, err)

	assert.Equal(t, []float64{0.5, 0.5}, cptValues(t, bn, "X0"))
	assert.Equal(t, []float64{0.5, 0.5, 0.5, 0.5}, cptValues(t, bn, "X1"))
}

// TestNaiveBayes_Structure verifies the class→feature star.
func TestNaiveBayes_Structure(t *testing.T) {
	bn, err := builder.NaiveBayes(3, builder.WithSeed(5))
	require.NoError(t, err)

	assert.Equal(t, 4, bn.Size())
	class, err := bn.IDFromName("Class")
	require.NoError(t, err)
	parents, err := bn.Parents(class)
	require.NoError(t, err)
	assert.Empty(t, parents, "the class node is the single root")

	for _, name := range []string{"F0", "F1", "F2"} {
		id, err := bn.IDFromName(name)
		require.NoError(t, err)
		assert.True(t, bn.HasArc(class, id), "arc Class→%s", name)
		assert.Len(t, cptValues(t, bn, name), 4, "binary feature × binary class")
	}
	assertBlocksNormalized(t, cptValues(t, bn, "F0"), 2)
}

// TestRandomDAG_Determinism verifies a fixed seed fixes both structure and
// parameters.
func TestRandomDAG_Determinism(t *testing.T) {
	a, err := builder.RandomDAG(8, 3, builder.WithSeed(11))
	require.NoError(t, err)
	b, err := builder.RandomDAG(8, 3, builder.WithSeed(11))
	require.NoError(t, err)

	require.Equal(t, a.Size(), b.Size())
	for _, id := range a.Nodes() {
		name, err := a.Name(id)
		require.NoError(t, err)

		pa, err := a.Parents(id)
		require.NoError(t, err)
		pb, err := b.Parents(id)
		require.NoError(t, err)
		assert.Equal(t, pa, pb, "structure of %s", name)
		assert.Equal(t, cptValues(t, a, name), cptValues(t, b, name), "parameters of %s", name)
	}
}

// TestRandomDAG_ParentLimit verifies the in-degree bound and acyclicity.
func TestRandomDAG_ParentLimit(t *testing.T) {
	const maxParents = 2
	bn, err := builder.RandomDAG(12, maxParents, builder.WithSeed(3))
	require.NoError(t, err)

	assert.Len(t, bn.TopologicalOrder(), 12, "every node ordered ⇒ acyclic")
	for _, id := range bn.Nodes() {
		parents, err := bn.Parents(id)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(parents), maxParents)
	}
}

// TestRandomDAG_SingleNode covers the degenerate n=1 case.
func TestRandomDAG_SingleNode(t *testing.T) {
	bn, err := builder.RandomDAG(1, 5)
	require.NoError(t, err)

	assert.Equal(t, 1, bn.Size())
	assertBlocksNormalized(t, cptValues(t, bn, "X0"), 2)
}

// TestConstructors_Validation covers every sentinel.
func TestConstructors_Validation(t *testing.T) {
	_, err := builder.Chain(0)
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)

	_, err = builder.NaiveBayes(0)
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)

	_, err = builder.RandomDAG(0, 1)
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)

	_, err = builder.RandomDAG(3, -1)
	assert.ErrorIs(t, err, builder.ErrBadParentLimit)

	_, err = builder.Chain(3, builder.WithDomainSize(1))
	assert.ErrorIs(t, err, builder.ErrBadDomainSize)

	_, err = builder.Chain(3, builder.WithConcentration(0))
	assert.ErrorIs(t, err, builder.ErrBadConcentration)
}

// TestChain_Concentration verifies that a sharp α produces tables with a
// strictly positive minimum (Dirichlet draws are almost surely interior).
func TestChain_Concentration(t *testing.T) {
	bn, err := builder.Chain(4, builder.WithSeed(9), builder.WithConcentration(0.1))
	require.NoError(t, err)

	min, ok := bn.MinNonZeroParam()
	require.True(t, ok)
	assert.Greater(t, min, 0.0)

	total := 0.0
	for _, id := range bn.Nodes() {
		cpt, err := bn.CPT(id)
		require.NoError(t, err)
		total += cpt.Sum()
	}
	// 4 CPTs: one prior (1 block) + three conditionals (2 blocks each).
	assert.InDelta(t, 7.0, total, 1e-9)
}

// TestChain_FeedsEvidenceTransforms smoke-checks that builder output is
// usable by the evidence transforms without adjustment.
func TestChain_FeedsEvidenceTransforms(t *testing.T) {
	bn, err := builder.Chain(3, builder.WithSeed(1))
	require.NoError(t, err)

	cond, residual, err := approx.ConditionalModel(bn, approx.Evidence{"X0": 0})
	require.NoError(t, err)
	assert.Equal(t, 2, cond.Size(), "the root is absorbed")
	assert.Empty(t, residual)
	assertBlocksNormalized(t, cptValues(t, cond, "X1"), 2)
}
