// File: types.go
// Role: Variable type, sentinel errors, and constructors shared by the
//       potential algebra.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core potential operations.
var (
	// ErrEmptyVariableName indicates a Variable was created with an empty name.
	ErrEmptyVariableName = errors.New("core: variable name is empty")

	// ErrEmptyDomain indicates a Variable was created with a domain size < 1.
	ErrEmptyDomain = errors.New("core: variable domain is empty")

	// ErrNilVariable indicates a nil *Variable was passed where one is required.
	ErrNilVariable = errors.New("core: variable is nil")

	// ErrDuplicateVariable indicates the same variable name appears twice in
	// a potential's variable tuple.
	ErrDuplicateVariable = errors.New("core: duplicate variable in potential")

	// ErrSizeMismatch indicates a value slice whose length does not match the
	// potential's domain size.
	ErrSizeMismatch = errors.New("core: values length does not match domain size")

	// ErrZeroMass indicates an attempt to normalize a table (or a CPT block)
	// whose entries sum to zero.
	ErrZeroMass = errors.New("core: cannot normalize zero mass")

	// ErrVariableNotFound indicates a referenced variable name is not part of
	// the potential.
	ErrVariableNotFound = errors.New("core: variable not found in potential")

	// ErrInvalidValueIndex indicates a value index outside a variable's domain.
	ErrInvalidValueIndex = errors.New("core: value index out of domain range")

	// ErrNoFreeVariable indicates Extract was asked to fix every variable,
	// which would leave a scalar table.
	ErrNoFreeVariable = errors.New("core: extract leaves no free variable")

	// ErrBadPermutation indicates Reorganize received names that are not a
	// permutation of the potential's variables.
	ErrBadPermutation = errors.New("core: names are not a permutation of the potential's variables")
)

// Variable represents a named, finite-domain random variable.
//
// The domain is the ordered set of value indices 0..DomainSize()-1.
// A Variable is immutable once created and may be shared freely between
// potentials and networks.
type Variable struct {
	name string
	size int
}

// NewVariable creates a Variable with the given name and domain size.
// Returns ErrEmptyVariableName if name is empty, ErrEmptyDomain if size < 1.
func NewVariable(name string, size int) (*Variable, error) {
	if name == "" {
		return nil, ErrEmptyVariableName
	}
	if size < 1 {
		return nil, fmt.Errorf("%w: %q has size %d", ErrEmptyDomain, name, size)
	}

	return &Variable{name: name, size: size}, nil
}

// Name returns the variable's unique name.
func (v *Variable) Name() string { return v.name }

// DomainSize returns the number of values in the variable's domain.
func (v *Variable) DomainSize() int { return v.size }

// String renders the variable as "name[size]".
func (v *Variable) String() string { return fmt.Sprintf("%s[%d]", v.name, v.size) }
