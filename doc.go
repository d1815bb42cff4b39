// Package lvlbayes is your in-memory toolkit for discrete Bayesian
// networks — finite-domain variables, probability tables, and the
// structural transforms that approximate-inference algorithms rely on.
//
// 🚀 What is lvlbayes?
//
//	A small, deterministic, explicit-error library that brings together:
//		• Core primitives: finite-domain variables, dense potentials (factors),
//		  and an instantiation cursor over a potential's domain
//		• Potential algebra: fill, normalize (plain and per-parent CPT),
//		  extract (slice on fixed values), reorganize axes
//		• Networks: a directed acyclic BayesNet with per-node CPTs,
//		  deep cloning, and deterministic topological ordering
//		• Inference helpers: point-mass & uniform distributions, KL
//		  divergence, inverse-CDF sampling, argmax, compact rendering
//		• Network transforms: conditioning on evidence, full mutilation,
//		  and unsharpening of near-deterministic tables
//		• Builders: chain, naive-Bayes and random-DAG fixtures with
//		  Dirichlet-sampled tables for reproducible experiments
//
// ✨ Why choose lvlbayes?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – seedable RNG streams, sorted iteration everywhere
//   - Copy-on-write – transforms never mutate your input network
//   - Explicit – sentinel errors for every failure class, no panics
//
// Under the hood, everything is organized under four subpackages:
//
//	core/     — Variable, Potential, Instantiation & the table algebra
//	bayesnet/ — the BayesNet DAG: nodes, arcs, CPTs, clone, topology
//	approx/   — distributions, divergence, sampling & network transforms
//	builder/  — deterministic network fixtures for tests and benchmarks
//
// Quick ASCII example:
//
//	    A ──▶ B ──▶ C
//
//	conditioning on A=0 slices B's table, drops the arc A→B, and absorbs
//	the now-parentless A; mutilation additionally removes every remaining
//	evidence node.
//
// Dive into each package's doc.go for contracts, error classes and
// worked examples.
//
//	go get github.com/katalvlaran/lvlbayes
package lvlbayes
