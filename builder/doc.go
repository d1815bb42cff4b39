// Package builder provides deterministic Bayesian-network fixtures for tests,
// benchmarks, and examples: a linear chain, a naive-Bayes star, and a random
// DAG with bounded in-degree.
//
// The package offers the following key components:
//
//   - Constructors:
//     – Chain(n, opts...):              X0→X1→…→X{n-1}.
//     – NaiveBayes(features, opts...):  Class→F0, …, Class→F{features-1}.
//     – RandomDAG(n, maxParents, opts...): ancestral random structure.
//   - Functional options:
//     – WithSeed:          lock both structure and parameter randomness.
//     – WithDomainSize:    per-variable domain size (default 2).
//     – WithConcentration: symmetric Dirichlet α for random CPTs (default 1).
//     – WithUniformCPTs:   keep the uniform tables instead of sampling.
//
// Determinism:
//
//   - A fixed seed fixes the whole network: structure draws come from a
//     seeded math/rand stream, CPT columns from a PCG-seeded symmetric
//     Dirichlet (gonum distuv). Seed 0 maps to a fixed default, so the
//     zero value is reproducible too, never time-based.
//
// Errors:
//
//   - Constructors return only sentinel errors (ErrTooFewNodes,
//     ErrBadDomainSize, ErrBadConcentration, ErrBadParentLimit), wrapped
//     with parameter context; branch with errors.Is. No panics.
//
// Complexity: building n nodes with domain size k and at most m parents costs
// O(n·k^(m+1)) time and space, the size of the produced CPTs.
package builder
