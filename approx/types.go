// File: types.go
// Role: Sentinel errors, Evidence mapping, and functional options for the
//       network transforms.

package approx

import (
	"errors"
	"fmt"
)

// Sentinel errors for approx helpers.
var (
	// ErrNilPotential is returned when a nil potential is passed.
	ErrNilPotential = errors.New("approx: potential is nil")

	// ErrNilNetwork is returned when a nil network is passed.
	ErrNilNetwork = errors.New("approx: network is nil")

	// ErrDomainMismatch is returned when two potentials do not cover domains
	// of the same total size.
	ErrDomainMismatch = errors.New("approx: potential domain sizes differ")

	// ErrNotUnivariate is returned when a single-variable distribution is
	// required but the potential spans several variables.
	ErrNotUnivariate = errors.New("approx: potential must cover exactly one variable")

	// ErrValueOutOfRange is returned for a value index outside a variable's domain.
	ErrValueOutOfRange = errors.New("approx: value index out of domain range")

	// ErrEmptySequence is returned by Argmax on an empty score slice.
	ErrEmptySequence = errors.New("approx: sequence must be non-empty")

	// ErrEvidenceNotFound is returned when evidence names a variable absent
	// from the network.
	ErrEvidenceNotFound = errors.New("approx: evidence variable not found in network")

	// ErrEvidenceValue is returned when an evidence value lies outside its
	// variable's domain.
	ErrEvidenceValue = errors.New("approx: evidence value out of domain range")

	// ErrOptionViolation is returned when an invalid option is supplied.
	ErrOptionViolation = errors.New("approx: invalid option supplied")
)

// Evidence maps a variable name to its observed value index.
type Evidence map[string]int

// Clone returns an independent copy of the evidence mapping.
func (e Evidence) Clone() Evidence {
	out := make(Evidence, len(e))
	for name, val := range e {
		out[name] = val
	}

	return out
}

// DefaultEpsilon is the unsharpening constant used when WithEpsilon is not given.
const DefaultEpsilon = 0.01

// ModelOption configures the network transforms via functional arguments.
// An invalid option (e.g. non-positive epsilon) is recorded internally and
// surfaced as ErrOptionViolation when the transform is invoked.
type ModelOption func(*modelOptions)

// modelOptions holds resolved transform parameters.
type modelOptions struct {
	epsilon float64
	err     error
}

// defaultModelOptions returns the default parameters (epsilon = DefaultEpsilon).
func defaultModelOptions() modelOptions {
	return modelOptions{epsilon: DefaultEpsilon}
}

// WithEpsilon sets the unsharpening constant. Values ≤ 0 are invalid and
// yield ErrOptionViolation at call time.
func WithEpsilon(eps float64) ModelOption {
	return func(o *modelOptions) {
		if eps <= 0 {
			o.err = fmt.Errorf("%w: epsilon must be positive, got %g", ErrOptionViolation, eps)
			return
		}
		o.epsilon = eps
	}
}
