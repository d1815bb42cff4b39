// File: model.go
// Role: Structural evidence transforms — conditioning, mutilation,
//       unsharpening. All three operate on clones and never mutate the
//       caller's network.

package approx

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlbayes/bayesnet"
)

// ConditionalModel folds the given evidence into a copy of bn.
//
// For each evidence variable, ancestors first:
//  1. Every child has the observed value extracted from its CPT and the
//     evidence arc erased; the reduced table (same axis order minus the
//     evidence variable) is installed as the child's new CPT.
//  2. If the evidence variable ends up parentless it is absorbed: erased
//     from the network and dropped from the returned residual evidence.
//     Evidence variables that still have parents stay in both.
//
// The ancestor-first order makes the result independent of evidence map
// iteration order. The invariant that every node's CPT covers exactly
// {node} ∪ parents(node) is preserved throughout.
//
// Returns the conditioned network and the residual evidence, or
// ErrNilNetwork / ErrEvidenceNotFound / ErrEvidenceValue.
func ConditionalModel(bn *bayesnet.BayesNet, evs Evidence) (*bayesnet.BayesNet, Evidence, error) {
	if bn == nil {
		return nil, nil, ErrNilNetwork
	}

	// 1. Validate all evidence against the input network up front.
	for name, val := range evs {
		id, err := bn.IDFromName(name)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %q", ErrEvidenceNotFound, name)
		}
		v, err := bn.Variable(id)
		if err != nil {
			return nil, nil, err
		}
		if val < 0 || val >= v.DomainSize() {
			return nil, nil, fmt.Errorf("%w: %s=%d, domain size %d",
				ErrEvidenceValue, name, val, v.DomainSize())
		}
	}

	// 2. Fix the processing order: evidence variables in topological order.
	names := make([]string, 0, len(evs))
	for _, id := range bn.TopologicalOrder() {
		name, err := bn.Name(id)
		if err != nil {
			return nil, nil, err
		}
		if _, isEvidence := evs[name]; isEvidence {
			names = append(names, name)
		}
	}

	// 3. Transform a private copy.
	cond := bn.Clone()
	residual := evs.Clone()
	for _, name := range names {
		id, err := cond.IDFromName(name)
		if err != nil {
			return nil, nil, err
		}
		children, err := cond.Children(id)
		if err != nil {
			return nil, nil, err
		}
		for _, ch := range children {
			cpt, err := cond.CPT(ch)
			if err != nil {
				return nil, nil, err
			}
			// Extract preserves the remaining axis order, so the reduced
			// table already matches (child, parents minus evidence).
			reduced, err := cpt.Extract(map[string]int{name: evs[name]})
			if err != nil {
				return nil, nil, fmt.Errorf("reducing CPT of node %d on %s=%d: %w",
					ch, name, evs[name], err)
			}
			if err = cond.EraseArc(id, ch); err != nil {
				return nil, nil, err
			}
			if err = cond.SetCPT(ch, reduced); err != nil {
				return nil, nil, err
			}
		}

		parents, err := cond.Parents(id)
		if err != nil {
			return nil, nil, err
		}
		if len(parents) == 0 {
			// Fully absorbed: no child references it, no parent feeds it.
			if err = cond.Erase(id); err != nil {
				return nil, nil, err
			}
			delete(residual, name)
		}
	}

	return cond, residual, nil
}

// MutilatedModel conditions bn on the evidence and then removes every
// residual evidence variable from the result. After conditioning those
// variables have no children left, so erasing them touches no CPT.
// The returned network contains no evidence variable at all.
func MutilatedModel(bn *bayesnet.BayesNet, evs Evidence) (*bayesnet.BayesNet, error) {
	mut, residual, err := ConditionalModel(bn, evs)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(residual))
	for name := range residual {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		id, err := mut.IDFromName(name)
		if err != nil {
			return nil, err
		}
		if err = mut.Erase(id); err != nil {
			return nil, err
		}
	}

	return mut, nil
}

// UnsharpenedModel softens near-deterministic CPTs: when the network's
// smallest nonzero parameter is below epsilon (DefaultEpsilon unless
// WithEpsilon is given), every originally nonzero entry of every CPT gets
// epsilon added before the table is renormalized per parent combination.
// Zero entries — structurally forbidden transitions — stay exactly zero.
//
// The result is always a network the caller owns: the fast path (nothing
// below epsilon) returns a clone rather than aliasing the input.
func UnsharpenedModel(bn *bayesnet.BayesNet, opts ...ModelOption) (*bayesnet.BayesNet, error) {
	if bn == nil {
		return nil, ErrNilNetwork
	}
	o := defaultModelOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	min, ok := bn.MinNonZeroParam()
	if !ok || min >= o.epsilon {
		return bn.Clone(), nil
	}

	soft := bn.Clone()
	for _, id := range soft.Nodes() {
		cpt, err := soft.CPT(id)
		if err != nil {
			return nil, err
		}
		vals := cpt.Values()
		for i, x := range vals {
			if x > 0 {
				vals[i] = x + o.epsilon
			}
		}
		if err = cpt.SetValues(vals); err != nil {
			return nil, err
		}
		if err = cpt.NormalizeAsCPT(); err != nil {
			return nil, fmt.Errorf("unsharpening node %d: %w", id, err)
		}
		if err = soft.SetCPT(id, cpt); err != nil {
			return nil, err
		}
	}

	return soft, nil
}
