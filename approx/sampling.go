// File: sampling.go
// Role: Inverse-CDF sampling from univariate distributions and argmax.

package approx

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlbayes/core"
)

// Draw samples one value from p, a normalized distribution over exactly one
// variable, using standard inverse-CDF walking: subtract each entry's mass
// from a uniform r ∈ [0,1) and stop at the first value where r drops to ≤ 0.
// When floating-point rounding exhausts the walk (entries summing slightly
// under 1), the sample falls back to the last value carrying mass.
//
// A nil rng uses the fixed deterministic default stream (see NewRand).
//
// Returns the sampled value together with its point-mass potential, or
// ErrNilPotential / ErrNotUnivariate on invalid input.
func Draw(p *core.Potential, rng *rand.Rand) (int, *core.Potential, error) {
	if p == nil {
		return 0, nil, ErrNilPotential
	}
	vars := p.Variables()
	if len(vars) != 1 {
		return 0, nil, fmt.Errorf("%w: got %d variables", ErrNotUnivariate, len(vars))
	}

	r := orDefault(rng).Float64()
	chosen := -1
	last := 0
	for i, mass := range p.Values() {
		if mass > 0 {
			last = i
		}
		r -= mass
		if r <= 0 {
			chosen = i
			break
		}
	}
	if chosen < 0 {
		// Rounding shortfall: clamp to the last value with positive mass.
		chosen = last
	}

	det, err := Deterministic(vars[0], chosen)
	if err != nil {
		return 0, nil, err
	}

	return chosen, det, nil
}

// Argmax returns the index of the maximum score, ties broken by first
// occurrence. Returns ErrEmptySequence for an empty slice.
func Argmax(scores []float64) (int, error) {
	if len(scores) == 0 {
		return 0, ErrEmptySequence
	}

	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}

	return best, nil
}
