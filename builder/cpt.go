// File: cpt.go
// Role: Shared config validation and Dirichlet CPT sampling.
//
// Determinism:
//   - Nodes are visited in ascending handle order, blocks in storage order,
//     so a fixed seed fixes every parameter of the network.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distmv"

	"github.com/katalvlaran/lvlbayes/bayesnet"
)

// validateConfig checks the resolved knobs shared by all constructors.
func validateConfig(cfg builderConfig) error {
	if cfg.domainSize < minDomainSize {
		return fmt.Errorf("%w: %d", ErrBadDomainSize, cfg.domainSize)
	}
	if cfg.concentration <= 0 {
		return fmt.Errorf("%w: %g", ErrBadConcentration, cfg.concentration)
	}

	return nil
}

// sampleCPTs replaces every uniform CPT of bn with columns drawn from a
// symmetric Dirichlet(α,…,α) over the child domain, one independent draw per
// parent combination. No-op under WithUniformCPTs.
func sampleCPTs(bn *bayesnet.BayesNet, cfg builderConfig) error {
	if cfg.uniformCPTs {
		return nil
	}

	alpha := make([]float64, cfg.domainSize)
	for i := range alpha {
		alpha[i] = cfg.concentration
	}
	dir := distmv.NewDirichlet(alpha, cfg.paramSource())

	column := make([]float64, cfg.domainSize)
	for _, id := range bn.Nodes() {
		cpt, err := bn.CPT(id)
		if err != nil {
			return err
		}
		// Canonical order keeps each child column contiguous.
		vals := cpt.Values()
		for off := 0; off < len(vals); off += cfg.domainSize {
			dir.Rand(column)
			copy(vals[off:off+cfg.domainSize], column)
		}
		if err = cpt.SetValues(vals); err != nil {
			return err
		}
		if err = bn.SetCPT(id, cpt); err != nil {
			return err
		}
	}

	return nil
}
