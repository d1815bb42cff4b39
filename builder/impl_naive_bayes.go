// File: impl_naive_bayes.go
// Role: NaiveBayes(features) constructor — one class node feeding every
//       feature node.
//
// Contract:
//   - features ≥ 1 (else ErrTooFewNodes).
//   - Variables "Class" and "F0".."F{features-1}", all with cfg.domainSize
//     values; arcs Class→Fi.
//
// Complexity: O(features·k²) for domain size k.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvlbayes/bayesnet"
	"github.com/katalvlaran/lvlbayes/core"
)

const minNaiveBayesFeatures = 1

// NaiveBayes builds the star Class→F0, …, Class→F{features-1}.
func NaiveBayes(features int, opts ...BuilderOption) (*bayesnet.BayesNet, error) {
	cfg := newBuilderConfig(opts...)
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if features < minNaiveBayesFeatures {
		return nil, fmt.Errorf("%w: features=%d", ErrTooFewNodes, features)
	}

	bn := bayesnet.NewBayesNet()
	cv, err := core.NewVariable("Class", cfg.domainSize)
	if err != nil {
		return nil, err
	}
	class, err := bn.Add(cv)
	if err != nil {
		return nil, err
	}
	for i := 0; i < features; i++ {
		v, err := core.NewVariable("F"+strconv.Itoa(i), cfg.domainSize)
		if err != nil {
			return nil, err
		}
		id, err := bn.Add(v)
		if err != nil {
			return nil, err
		}
		if err = bn.AddArc(class, id); err != nil {
			return nil, err
		}
	}
	if err = sampleCPTs(bn, cfg); err != nil {
		return nil, err
	}

	return bn, nil
}
