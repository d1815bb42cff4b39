// File: methods_clone.go
// Role: Deep copying of network instances.
// Determinism:
//   - Clone carries over nextID so handles stay stable between a network
//     and its clones; IDFromName yields identical handles on both.

package bayesnet

// Clone returns a deep copy of the network: structure and CPT storage are
// copied, variables are shared (they are immutable).
//
// Complexity: O(V + E + total CPT entries).
func (bn *BayesNet) Clone() *BayesNet {
	clone := &BayesNet{
		nodes:  make(map[NodeID]*node, len(bn.nodes)),
		byName: make(map[string]NodeID, len(bn.byName)),
		nextID: bn.nextID,
	}
	for id, n := range bn.nodes {
		children := make(map[NodeID]struct{}, len(n.children))
		for child := range n.children {
			children[child] = struct{}{}
		}
		clone.nodes[id] = &node{
			v:        n.v,
			parents:  append([]NodeID(nil), n.parents...),
			children: children,
			cpt:      n.cpt.Clone(),
		}
	}
	for name, id := range bn.byName {
		clone.byName[name] = id
	}

	return clone
}

// CloneEmpty returns a new network with the same variables (and handles)
// but no arcs; every node gets a fresh uniform CPT over itself.
func (bn *BayesNet) CloneEmpty() *BayesNet {
	clone := &BayesNet{
		nodes:  make(map[NodeID]*node, len(bn.nodes)),
		byName: make(map[string]NodeID, len(bn.byName)),
		nextID: bn.nextID,
	}
	for id, n := range bn.nodes {
		clone.nodes[id] = &node{
			v:        n.v,
			children: make(map[NodeID]struct{}),
		}
		clone.byName[n.v.Name()] = id
		clone.rebuildCPT(id)
	}

	return clone
}
