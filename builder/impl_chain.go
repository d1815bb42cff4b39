// File: impl_chain.go
// Role: Chain(n) constructor — the linear network X0→X1→…→X{n-1}.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes).
//   - Variables named "X0".."X{n-1}", all with cfg.domainSize values.
//   - CPTs Dirichlet-sampled unless WithUniformCPTs.
//
// Complexity: O(n·k²) for domain size k.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvlbayes/bayesnet"
	"github.com/katalvlaran/lvlbayes/core"
)

const minChainNodes = 1

// Chain builds the linear chain X0→X1→…→X{n-1}.
func Chain(n int, opts ...BuilderOption) (*bayesnet.BayesNet, error) {
	cfg := newBuilderConfig(opts...)
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if n < minChainNodes {
		return nil, fmt.Errorf("%w: n=%d", ErrTooFewNodes, n)
	}

	bn := bayesnet.NewBayesNet()
	var prev bayesnet.NodeID
	for i := 0; i < n; i++ {
		v, err := core.NewVariable("X"+strconv.Itoa(i), cfg.domainSize)
		if err != nil {
			return nil, err
		}
		id, err := bn.Add(v)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			if err = bn.AddArc(prev, id); err != nil {
				return nil, err
			}
		}
		prev = id
	}
	if err := sampleCPTs(bn, cfg); err != nil {
		return nil, err
	}

	return bn, nil
}
