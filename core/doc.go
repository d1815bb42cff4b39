// Package core defines the central Variable, Potential, and Instantiation
// types, and provides the dense table algebra every other lvlbayes package
// builds on.
//
// What
//
//   - Variable: an immutable, named, finite-domain random variable whose
//     domain is the ordered set of value indices 0..DomainSize()-1.
//   - Potential: a dense table mapping every combination of values of an
//     ordered tuple of variables to a float64. The first axis varies
//     fastest, so Values() exposes entries in a stable canonical order.
//   - Instantiation: a cursor over a potential's domain supporting First,
//     End, Inc, Val, Pos and Value — the iteration protocol used by the
//     approx helpers.
//
// Why
//
//   - Conditional probability tables (CPTs), evidence slicing, and
//     normalization are the raw material of Bayesian-network transforms.
//   - Keeping the algebra in one small package gives bayesnet and approx a
//     single, well-tested substrate with value semantics.
//
// Semantics
//
//   - Potentials are value objects: Clone, Extract, and Reorganize return
//     fresh tables and never alias the receiver's storage.
//   - Normalize scales the whole table to sum to 1. NormalizeAsCPT treats
//     axis 0 as the child variable and normalizes each block of child
//     values independently per combination of the remaining axes.
//   - Extract fixes a subset of variables to concrete values and returns
//     the table over the remaining variables, preserving their relative
//     order. Reorganize permutes axes by variable name.
//
// Errors
//
//   - ErrEmptyVariableName, ErrEmptyDomain     — invalid Variable construction.
//   - ErrNilVariable, ErrDuplicateVariable     — invalid Potential construction.
//   - ErrSizeMismatch                          — SetValues length mismatch.
//   - ErrZeroMass                              — normalizing a zero table/block.
//   - ErrVariableNotFound, ErrInvalidValueIndex — bad Extract arguments.
//   - ErrNoFreeVariable                        — Extract fixed every variable.
//   - ErrBadPermutation                        — Reorganize names are not a
//     permutation of the potential's variables.
//
// Complexity
//
//	All table operations are linear in the number of entries; Extract and
//	Reorganize allocate exactly one new table.
package core
