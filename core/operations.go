// File: operations.go
// Role: Table algebra — normalization, evidence slicing (Extract), and axis
//       permutation (Reorganize).

package core

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Normalize scales the table so that all entries sum to 1.
// Returns ErrZeroMass when the table sums to zero.
func (p *Potential) Normalize() error {
	total := floats.Sum(p.data)
	if total == 0 {
		return ErrZeroMass
	}
	floats.Scale(1/total, p.data)

	return nil
}

// NormalizeAsCPT normalizes the table as a conditional probability table:
// axis 0 is the child variable, and each block of child values is scaled to
// sum to 1 independently per combination of the remaining axes.
//
// Returns ErrZeroMass when any block sums to zero; the table is left
// untouched in that case.
//
// Complexity: O(Size()).
func (p *Potential) NormalizeAsCPT() error {
	d := p.vars[0].size
	// Axis 0 varies fastest, so each parent combination owns a contiguous
	// block of d entries.
	for lo := 0; lo < len(p.data); lo += d {
		if floats.Sum(p.data[lo:lo+d]) == 0 {
			return fmt.Errorf("%w: block at offset %d", ErrZeroMass, lo)
		}
	}
	for lo := 0; lo < len(p.data); lo += d {
		block := p.data[lo : lo+d]
		floats.Scale(1/floats.Sum(block), block)
	}

	return nil
}

// Extract fixes the given variables to concrete values and returns the table
// over the remaining variables, preserving their relative axis order.
//
// Returns ErrVariableNotFound for a name absent from the potential,
// ErrInvalidValueIndex for a value outside its variable's domain, and
// ErrNoFreeVariable when fixed covers every variable.
//
// Complexity: O(Size() of the result).
func (p *Potential) Extract(fixed map[string]int) (*Potential, error) {
	if len(fixed) == 0 {
		return p.Clone(), nil
	}
	for name := range fixed {
		if _, ok := p.VariableIndex(name); !ok {
			return nil, fmt.Errorf("%w: %q", ErrVariableNotFound, name)
		}
	}

	// Partition axes into fixed (folded into a base offset) and kept.
	base := 0
	kept := make([]*Variable, 0, len(p.vars))
	keptStrides := make([]int, 0, len(p.vars))
	for i, v := range p.vars {
		val, isFixed := fixed[v.name]
		if !isFixed {
			kept = append(kept, v)
			keptStrides = append(keptStrides, p.strides[i])
			continue
		}
		if val < 0 || val >= v.size {
			return nil, fmt.Errorf("%w: %q=%d, domain size %d", ErrInvalidValueIndex, v.name, val, v.size)
		}
		base += val * p.strides[i]
	}
	if len(kept) == 0 {
		return nil, ErrNoFreeVariable
	}

	q, err := NewPotential(kept...)
	if err != nil {
		return nil, err
	}
	for it := NewInstantiation(q); !it.End(); it.Inc() {
		off := base
		for k := range kept {
			off += it.Val(k) * keptStrides[k]
		}
		q.data[it.Pos()] = p.data[off]
	}

	return q, nil
}

// Reorganize returns a copy of the potential with its axes permuted to match
// names. names must be a permutation of the potential's variable names;
// otherwise ErrBadPermutation is returned.
//
// Complexity: O(Size()).
func (p *Potential) Reorganize(names []string) (*Potential, error) {
	if len(names) != len(p.vars) {
		return nil, fmt.Errorf("%w: got %d names, want %d", ErrBadPermutation, len(names), len(p.vars))
	}
	perm := make([]*Variable, len(names))
	srcStrides := make([]int, len(names))
	seen := make(map[string]struct{}, len(names))
	for i, name := range names {
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrBadPermutation, name)
		}
		seen[name] = struct{}{}
		axis, ok := p.VariableIndex(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown name %q", ErrBadPermutation, name)
		}
		perm[i] = p.vars[axis]
		srcStrides[i] = p.strides[axis]
	}

	q, err := NewPotential(perm...)
	if err != nil {
		return nil, err
	}
	for it := NewInstantiation(q); !it.End(); it.Inc() {
		off := 0
		for k := range perm {
			off += it.Val(k) * srcStrides[k]
		}
		q.data[it.Pos()] = p.data[off]
	}

	return q, nil
}
