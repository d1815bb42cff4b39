// File: potential.go
// Role: Potential construction, accessors, filling, and cloning.
// Determinism:
//   - Axis 0 varies fastest; Values() therefore exposes entries in a stable
//     canonical order shared by Instantiation.

package core

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Potential is a dense table mapping every combination of values of an
// ordered tuple of variables to a float64.
//
// The first variable in the tuple varies fastest in raw storage order.
// For a CPT, axis 0 is by convention the child variable and the remaining
// axes are its parents.
type Potential struct {
	vars    []*Variable
	strides []int
	data    []float64
}

// NewPotential creates a zero-filled potential over the given variables.
// Variables must be non-nil and pairwise distinct by name.
// Returns ErrNilVariable or ErrDuplicateVariable on invalid input.
func NewPotential(vars ...*Variable) (*Potential, error) {
	seen := make(map[string]struct{}, len(vars))
	strides := make([]int, len(vars))
	size := 1
	for i, v := range vars {
		if v == nil {
			return nil, fmt.Errorf("%w: position %d", ErrNilVariable, i)
		}
		if _, dup := seen[v.name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateVariable, v.name)
		}
		seen[v.name] = struct{}{}
		strides[i] = size
		size *= v.size
	}

	return &Potential{
		vars:    append([]*Variable(nil), vars...),
		strides: strides,
		data:    make([]float64, size),
	}, nil
}

// Clone returns a deep copy of the potential.
// Variables are shared (they are immutable); storage is copied.
func (p *Potential) Clone() *Potential {
	q := &Potential{
		vars:    append([]*Variable(nil), p.vars...),
		strides: append([]int(nil), p.strides...),
		data:    append([]float64(nil), p.data...),
	}

	return q
}

// Variables returns a copy of the potential's variable tuple in axis order.
func (p *Potential) Variables() []*Variable {
	return append([]*Variable(nil), p.vars...)
}

// Variable returns the variable at axis i.
// The caller must ensure 0 <= i < len(Variables()).
func (p *Potential) Variable(i int) *Variable { return p.vars[i] }

// Names returns the variable names in axis order.
func (p *Potential) Names() []string {
	names := make([]string, len(p.vars))
	for i, v := range p.vars {
		names[i] = v.name
	}

	return names
}

// VariableIndex returns the axis of the named variable, or ok=false when the
// variable is not part of the potential.
func (p *Potential) VariableIndex(name string) (axis int, ok bool) {
	for i, v := range p.vars {
		if v.name == name {
			return i, true
		}
	}

	return 0, false
}

// Size returns the total number of entries in the table.
func (p *Potential) Size() int { return len(p.data) }

// Values returns a copy of the table entries in canonical raw order.
func (p *Potential) Values() []float64 {
	return append([]float64(nil), p.data...)
}

// SetValues overwrites the table entries from vals, interpreted in canonical
// raw order. Returns ErrSizeMismatch when len(vals) != Size().
func (p *Potential) SetValues(vals []float64) error {
	if len(vals) != len(p.data) {
		return fmt.Errorf("%w: got %d, want %d", ErrSizeMismatch, len(vals), len(p.data))
	}
	copy(p.data, vals)

	return nil
}

// Fill sets every entry to x and returns the potential for chaining.
func (p *Potential) Fill(x float64) *Potential {
	for i := range p.data {
		p.data[i] = x
	}

	return p
}

// Sum returns the sum of all table entries.
func (p *Potential) Sum() float64 { return floats.Sum(p.data) }

// MaxValue returns the largest table entry. Zero-sized tables cannot occur:
// every variable has domain size >= 1, so the table has >= 1 entry.
func (p *Potential) MaxValue() float64 { return floats.Max(p.data) }

// MinNonZero returns the smallest strictly positive entry of the table.
// ok is false when every entry is zero.
func (p *Potential) MinNonZero() (min float64, ok bool) {
	for _, x := range p.data {
		if x <= 0 {
			continue
		}
		if !ok || x < min {
			min, ok = x, true
		}
	}

	return min, ok
}
