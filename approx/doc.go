// Package approx provides the helper routines approximate-inference
// algorithms need around a bayesnet.BayesNet: distribution constructors,
// divergence and equality checks, sampling, compact rendering, and the
// structural evidence transforms (conditioning, mutilation, unsharpening).
//
// What
//
//   - Deterministic(v, val) / Uniform(v): point-mass and uniform
//     single-variable potentials, already normalized.
//   - KL(p, q): Kullback-Leibler divergence estimate over two aligned
//     tables, with a fixed +1 penalty whenever q assigns zero mass to a
//     value p supports. Negative numerical residue is clamped to 0.
//   - AlmostEqual(p, q): elementwise comparison in raw storage order with
//     tolerance 1e-5 — the tables need matching shape, not matching
//     variables.
//   - Draw(p, rng): inverse-CDF sampling from a univariate distribution,
//     returning the sampled value together with its point-mass potential.
//   - Argmax(scores): index of the maximum, ties broken by first occurrence.
//   - Compact(p): fixed-width, pipe-delimited rendering of 100·p(x).
//   - ConditionalModel(bn, evs): a new network in which every evidence
//     variable's children have the observed value folded into their CPTs
//     and the evidence arcs removed; parentless evidence nodes are absorbed
//     and dropped from the returned residual evidence.
//   - MutilatedModel(bn, evs): conditioning plus removal of every residual
//     evidence node — the result contains no evidence variable at all.
//   - UnsharpenedModel(bn, WithEpsilon(ε)): nudges every nonzero CPT entry
//     toward uniform by adding ε before renormalizing per parent
//     combination, applied only when the network's smallest nonzero
//     parameter is below ε. Structural zeros are preserved exactly.
//
// Copy-on-write
//
//	No transform ever mutates its input network. ConditionalModel,
//	MutilatedModel and UnsharpenedModel always return a network the caller
//	owns — including UnsharpenedModel's fast path, which returns a clone
//	rather than aliasing the input.
//
// Determinism
//
//   - Evidence variables are processed in the network's topological order
//     (ancestors first), so the outcome never depends on map iteration
//     order: slicing an evidence ancestor before its evidence descendants
//     maximizes absorption and yields one canonical result.
//   - Draw takes an injected *rand.Rand; a nil rng falls back to a fixed
//     deterministic default stream (fresh per call — inject your own
//     generator for anything beyond reproducible one-shot defaults).
//
// Errors
//
//   - ErrNilPotential, ErrNilNetwork    — nil receivers.
//   - ErrDomainMismatch                 — KL/AlmostEqual shape mismatch.
//   - ErrNotUnivariate                  — Draw on a multi-variable table.
//   - ErrValueOutOfRange                — Deterministic with a bad index.
//   - ErrEmptySequence                  — Argmax of nothing.
//   - ErrEvidenceNotFound, ErrEvidenceValue — evidence naming a variable
//     absent from the network, or a value outside its domain.
//   - ErrOptionViolation                — WithEpsilon(ε ≤ 0).
//
// Usage
//
//	cond, rest, err := approx.ConditionalModel(bn, approx.Evidence{"A": 0})
//	mut, err := approx.MutilatedModel(bn, approx.Evidence{"A": 0})
//	soft, err := approx.UnsharpenedModel(bn, approx.WithEpsilon(0.05))
//	val, q, err := approx.Draw(p, approx.NewRand(42))
package approx
