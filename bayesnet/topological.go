// File: topological.go
// Role: Deterministic ancestor-first ordering of network nodes.

package bayesnet

import "sort"

// TopologicalOrder returns every node handle in an ancestor-first order:
// for every arc u→v, u appears before v. Ties are broken by smallest
// handle, so the result is fully deterministic. The network is acyclic by
// construction (AddArc rejects cycles), so an ordering always exists.
//
// Complexity: O(V log V + E).
func (bn *BayesNet) TopologicalOrder() []NodeID {
	// Kahn's algorithm over a sorted ready set.
	indegree := make(map[NodeID]int, len(bn.nodes))
	for id, n := range bn.nodes {
		indegree[id] = len(n.parents)
	}

	ready := make([]NodeID, 0, len(bn.nodes))
	for id, deg := range indegree {
		if deg == 0 {
			ready = append(ready, id)
		}
	}
	sort.Slice(ready, func(i, j int) bool { return ready[i] < ready[j] })

	order := make([]NodeID, 0, len(bn.nodes))
	for len(ready) > 0 {
		// Pop the smallest ready handle.
		cur := ready[0]
		ready = ready[1:]
		order = append(order, cur)

		released := make([]NodeID, 0, len(bn.nodes[cur].children))
		for child := range bn.nodes[cur].children {
			indegree[child]--
			if indegree[child] == 0 {
				released = append(released, child)
			}
		}
		sort.Slice(released, func(i, j int) bool { return released[i] < released[j] })
		// Merge released handles while keeping the ready set sorted.
		ready = mergeSorted(ready, released)
	}

	return order
}

// mergeSorted merges two ascending NodeID slices into one ascending slice.
func mergeSorted(a, b []NodeID) []NodeID {
	if len(b) == 0 {
		return a
	}
	out := make([]NodeID, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] <= b[j] {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out
}
