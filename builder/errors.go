// File: errors.go
// Role: Sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with
//     errors.Is(err, ErrX).
//   - Sentinels carry no parameters; constructors attach context via %w.
//   - Constructors never panic.

package builder

import "errors"

// ErrTooFewNodes indicates a node-count parameter below the constructor's
// minimum (Chain and RandomDAG need n ≥ 1, NaiveBayes needs features ≥ 1).
var ErrTooFewNodes = errors.New("builder: too few nodes")

// ErrBadDomainSize indicates a WithDomainSize value below 2; a variable with
// fewer than two values carries no information.
var ErrBadDomainSize = errors.New("builder: domain size below 2")

// ErrBadConcentration indicates a WithConcentration value that is not
// strictly positive; the symmetric Dirichlet requires α > 0.
var ErrBadConcentration = errors.New("builder: concentration must be positive")

// ErrBadParentLimit indicates a negative maxParents in RandomDAG.
var ErrBadParentLimit = errors.New("builder: negative parent limit")
