// File: divergence.go
// Role: Kullback-Leibler divergence estimate and tolerance-based equality.

package approx

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlbayes/core"
)

// klPenalty is the fixed cost accumulated for every value p supports but q
// assigns zero mass to. It keeps the estimate finite where the true
// divergence would be infinite.
const klPenalty = 1.0

// almostEqualTolerance bounds the maximum absolute elementwise difference
// below which two potentials count as equal.
const almostEqualTolerance = 1e-5

// KL computes a Kullback-Leibler divergence estimate between two tables of
// the same total domain size, iterating both in canonical order:
//
//	p(x) > 0, q(x) > 0 ⇒ add p(x)·log₂(p(x)/q(x))
//	p(x) > 0, q(x) = 0 ⇒ add the fixed penalty 1
//	p(x) = 0           ⇒ contributes nothing
//
// A slightly negative accumulated sum (numerical residue when p == q) is
// clamped to 0. The result is not symmetric and not a metric; it serves as
// a convergence/quality signal for approximate inference.
//
// Returns ErrNilPotential or ErrDomainMismatch on invalid input.
//
// Complexity: O(Size()).
func KL(p, q *core.Potential) (float64, error) {
	if p == nil || q == nil {
		return 0, ErrNilPotential
	}
	if p.Size() != q.Size() {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDomainMismatch, p.Size(), q.Size())
	}

	s := 0.0
	ip := core.NewInstantiation(p)
	iq := core.NewInstantiation(q)
	for !ip.End() {
		pv, qv := ip.Value(), iq.Value()
		switch {
		case pv > 0 && qv > 0:
			s += pv * math.Log2(pv/qv)
		case pv > 0:
			s += klPenalty
		}
		ip.Inc()
		iq.Inc()
	}
	if s < 0 {
		s = 0
	}

	return s, nil
}

// AlmostEqual reports whether two potentials hold the same parameters up to
// almostEqualTolerance, compared elementwise in raw storage order. The
// potentials need matching total size, not matching variables.
//
// Returns ErrNilPotential or ErrDomainMismatch on invalid input.
func AlmostEqual(p, q *core.Potential) (bool, error) {
	if p == nil || q == nil {
		return false, ErrNilPotential
	}
	if p.Size() != q.Size() {
		return false, fmt.Errorf("%w: %d vs %d", ErrDomainMismatch, p.Size(), q.Size())
	}

	// Chebyshev distance = max |p(x) - q(x)| over the aligned storage.
	diff := floats.Distance(p.Values(), q.Values(), math.Inf(1))

	return diff < almostEqualTolerance, nil
}
