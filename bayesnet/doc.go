// Package bayesnet defines the BayesNet type: a directed acyclic graph of
// finite-domain variables where every node carries a conditional probability
// table (CPT) over itself and its parents.
//
// What
//
//   - Add variables, insert and erase arcs, erase nodes, query parents and
//     children, look nodes up by name, and read or replace per-node CPTs.
//   - Clone produces a deep copy; transforms elsewhere in lvlbayes always
//     mutate a clone they own, never a caller's network.
//   - TopologicalOrder returns a deterministic ancestor-first ordering.
//
// Invariant
//
//	For every node n, the variable tuple of its CPT is exactly
//	(n, parents(n)...) in the network's current parent order. Every
//	structural mutation (AddArc, EraseArc, Erase) that changes a node's
//	parent set rebuilds that node's CPT to a uniform table of the new
//	shape; callers then install concrete entries via SetCPT.
//
// Determinism
//
//	Node handles are small integers assigned in insertion order. Nodes()
//	and Children() return sorted slices, and TopologicalOrder breaks ties
//	by smallest handle, so iteration is fully reproducible.
//
// Errors
//
//   - ErrNodeNotFound, ErrNameNotFound — unknown node handle or name.
//   - ErrDuplicateName                 — Add with an already-used name.
//   - ErrDuplicateArc, ErrArcNotFound  — arc bookkeeping violations.
//   - ErrCycleDetected                 — AddArc would close a directed cycle
//     (self-loops included).
//   - ErrNilPotential, ErrCPTMismatch  — SetCPT with a nil table or a table
//     whose variable sequence differs from (node, parents...).
//
// Complexity (V = nodes, E = arcs)
//
//   - AddArc: O(V + E) for the cycle check.
//   - Clone:  O(V + E + total CPT entries).
//   - TopologicalOrder: O(V log V + E).
package bayesnet
