// File: impl_random.go
// Role: RandomDAG(n, maxParents) constructor — ancestral random structure.
//
// Canonical model:
//   - Nodes X0..X{n-1} in index order; node i may only take parents among
//     X0..X{i-1}, so the result is acyclic by construction.
//   - Parent count for node i: uniform over 0..min(maxParents, i).
//   - Parent set: the first entries of a seeded permutation of 0..i-1,
//     attached in ascending index order for a stable CPT axis order.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes).
//   - maxParents ≥ 0 (else ErrBadParentLimit).
//   - CPTs Dirichlet-sampled unless WithUniformCPTs.
//
// Determinism: fixed seed ⇒ identical structure and identical parameters.
//
// Complexity: O(n²) structure draws plus O(n·k^(maxParents+1)) CPT mass.

package builder

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/katalvlaran/lvlbayes/bayesnet"
	"github.com/katalvlaran/lvlbayes/core"
)

const minRandomDAGNodes = 1

// RandomDAG builds a random network over n nodes where every node has at
// most maxParents parents drawn from its predecessors.
func RandomDAG(n, maxParents int, opts ...BuilderOption) (*bayesnet.BayesNet, error) {
	cfg := newBuilderConfig(opts...)
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if n < minRandomDAGNodes {
		return nil, fmt.Errorf("%w: n=%d", ErrTooFewNodes, n)
	}
	if maxParents < 0 {
		return nil, fmt.Errorf("%w: maxParents=%d", ErrBadParentLimit, maxParents)
	}

	rng := cfg.structRNG()
	bn := bayesnet.NewBayesNet()
	ids := make([]bayesnet.NodeID, n)
	for i := 0; i < n; i++ {
		v, err := core.NewVariable("X"+strconv.Itoa(i), cfg.domainSize)
		if err != nil {
			return nil, err
		}
		id, err := bn.Add(v)
		if err != nil {
			return nil, err
		}
		ids[i] = id

		limit := maxParents
		if limit > i {
			limit = i
		}
		if limit == 0 {
			continue
		}
		count := rng.Intn(limit + 1)
		if count == 0 {
			continue
		}
		picked := rng.Perm(i)[:count]
		sort.Ints(picked)
		for _, p := range picked {
			if err = bn.AddArc(ids[p], id); err != nil {
				return nil, err
			}
		}
	}
	if err := sampleCPTs(bn, cfg); err != nil {
		return nil, err
	}

	return bn, nil
}
