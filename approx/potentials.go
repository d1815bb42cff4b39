// File: potentials.go
// Role: Point-mass and uniform single-variable distribution constructors.

package approx

import (
	"fmt"

	"github.com/katalvlaran/lvlbayes/core"
)

// Deterministic returns the point-mass distribution over v: probability 1 at
// val and 0 elsewhere. The result is already normalized.
// Returns core.ErrNilVariable for a nil variable and ErrValueOutOfRange when
// val lies outside 0..v.DomainSize()-1.
func Deterministic(v *core.Variable, val int) (*core.Potential, error) {
	if v == nil {
		return nil, core.ErrNilVariable
	}
	if val < 0 || val >= v.DomainSize() {
		return nil, fmt.Errorf("%w: %s=%d", ErrValueOutOfRange, v.Name(), val)
	}

	p, err := core.NewPotential(v)
	if err != nil {
		return nil, err
	}
	vals := make([]float64, v.DomainSize())
	vals[val] = 1
	if err = p.SetValues(vals); err != nil {
		return nil, err
	}

	return p, nil
}

// Uniform returns the uniform distribution over v: every entry equals
// 1/v.DomainSize(). Returns core.ErrNilVariable for a nil variable.
func Uniform(v *core.Variable) (*core.Potential, error) {
	if v == nil {
		return nil, core.ErrNilVariable
	}

	p, err := core.NewPotential(v)
	if err != nil {
		return nil, err
	}
	// DomainSize >= 1 by Variable construction, so normalization cannot
	// meet zero mass here.
	if err = p.Fill(1).Normalize(); err != nil {
		return nil, err
	}

	return p, nil
}
