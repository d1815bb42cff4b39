// File: methods.go
// Role: Structural mutation (Add, AddArc, EraseArc, Erase) and queries.
// Invariant: every mutation leaves each node's CPT defined over exactly
// (node, parents...) in the network's current parent order.

package bayesnet

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlbayes/core"
)

// Add inserts a new variable into the network and returns its handle.
// The fresh node starts parentless with a uniform CPT over the variable.
// Returns core.ErrNilVariable for nil input, ErrDuplicateName when the
// variable name is already taken.
func (bn *BayesNet) Add(v *core.Variable) (NodeID, error) {
	if v == nil {
		return 0, core.ErrNilVariable
	}
	if _, taken := bn.byName[v.Name()]; taken {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateName, v.Name())
	}

	id := bn.nextID
	bn.nextID++
	bn.nodes[id] = &node{
		v:        v,
		children: make(map[NodeID]struct{}),
	}
	bn.byName[v.Name()] = id
	bn.rebuildCPT(id)

	return id, nil
}

// AddArc inserts the arc parent→child and rebuilds the child's CPT to a
// uniform table over (child, parents...). Previously installed child CPT
// entries are discarded; install new ones with SetCPT afterwards.
// Returns ErrNodeNotFound, ErrDuplicateArc, or ErrCycleDetected.
func (bn *BayesNet) AddArc(parent, child NodeID) error {
	p, ok := bn.nodes[parent]
	if !ok {
		return fmt.Errorf("%w: parent %d", ErrNodeNotFound, parent)
	}
	c, ok := bn.nodes[child]
	if !ok {
		return fmt.Errorf("%w: child %d", ErrNodeNotFound, child)
	}
	if _, dup := p.children[child]; dup {
		return fmt.Errorf("%w: %q→%q", ErrDuplicateArc, p.v.Name(), c.v.Name())
	}
	// A self-loop or any path child⇝parent would close a cycle.
	if parent == child || bn.reachable(child, parent) {
		return fmt.Errorf("%w: %q→%q", ErrCycleDetected, p.v.Name(), c.v.Name())
	}

	p.children[child] = struct{}{}
	c.parents = append(c.parents, parent)
	bn.rebuildCPT(child)

	return nil
}

// EraseArc removes the arc parent→child and rebuilds the child's CPT to a
// uniform table over the remaining (child, parents...) shape.
// Returns ErrNodeNotFound or ErrArcNotFound.
func (bn *BayesNet) EraseArc(parent, child NodeID) error {
	p, ok := bn.nodes[parent]
	if !ok {
		return fmt.Errorf("%w: parent %d", ErrNodeNotFound, parent)
	}
	c, ok := bn.nodes[child]
	if !ok {
		return fmt.Errorf("%w: child %d", ErrNodeNotFound, child)
	}
	if _, exists := p.children[child]; !exists {
		return fmt.Errorf("%w: %q→%q", ErrArcNotFound, p.v.Name(), c.v.Name())
	}

	delete(p.children, child)
	for i, pid := range c.parents {
		if pid == parent {
			c.parents = append(c.parents[:i], c.parents[i+1:]...)
			break
		}
	}
	bn.rebuildCPT(child)

	return nil
}

// Erase removes a node together with all its incident arcs. Former children
// lose the node as a parent and get their CPT shape rebuilt.
// Returns ErrNodeNotFound.
func (bn *BayesNet) Erase(id NodeID) error {
	n, ok := bn.nodes[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	for child := range n.children {
		c := bn.nodes[child]
		for i, pid := range c.parents {
			if pid == id {
				c.parents = append(c.parents[:i], c.parents[i+1:]...)
				break
			}
		}
	}
	// Rebuild child CPTs after the parent lists settled; sorted for
	// deterministic rebuild order.
	for _, child := range sortedIDs(n.children) {
		bn.rebuildCPT(child)
	}
	for _, pid := range n.parents {
		delete(bn.nodes[pid].children, id)
	}
	delete(bn.byName, n.v.Name())
	delete(bn.nodes, id)

	return nil
}

// Parents returns the node's parent handles in CPT axis order.
func (bn *BayesNet) Parents(id NodeID) ([]NodeID, error) {
	n, ok := bn.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return append([]NodeID(nil), n.parents...), nil
}

// Children returns the node's child handles, sorted ascending.
func (bn *BayesNet) Children(id NodeID) ([]NodeID, error) {
	n, ok := bn.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return sortedIDs(n.children), nil
}

// HasArc reports whether the arc parent→child exists.
func (bn *BayesNet) HasArc(parent, child NodeID) bool {
	p, ok := bn.nodes[parent]
	if !ok {
		return false
	}
	_, exists := p.children[child]

	return exists
}

// IDFromName returns the handle of the node carrying the named variable.
// Returns ErrNameNotFound when no such node exists.
func (bn *BayesNet) IDFromName(name string) (NodeID, error) {
	id, ok := bn.byName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNameNotFound, name)
	}

	return id, nil
}

// Name returns the variable name of the node.
func (bn *BayesNet) Name(id NodeID) (string, error) {
	n, ok := bn.nodes[id]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return n.v.Name(), nil
}

// Variable returns the variable object of the node.
func (bn *BayesNet) Variable(id NodeID) (*core.Variable, error) {
	n, ok := bn.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return n.v, nil
}

// CPT returns a copy of the node's conditional probability table.
// Mutating the returned potential never affects the network; install
// changes with SetCPT.
func (bn *BayesNet) CPT(id NodeID) (*core.Potential, error) {
	n, ok := bn.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return n.cpt.Clone(), nil
}

// SetCPT replaces the node's CPT with a copy of p. The variable sequence of
// p must be exactly (node, parents...) in the network's current parent
// order; use core.Potential.Reorganize to adjust axes first if needed.
// Returns ErrNodeNotFound, ErrNilPotential, or ErrCPTMismatch.
func (bn *BayesNet) SetCPT(id NodeID, p *core.Potential) error {
	n, ok := bn.nodes[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	if p == nil {
		return ErrNilPotential
	}

	want := make([]string, 0, len(n.parents)+1)
	want = append(want, n.v.Name())
	for _, pid := range n.parents {
		want = append(want, bn.nodes[pid].v.Name())
	}
	got := p.Names()
	if len(got) != len(want) {
		return fmt.Errorf("%w: got %v, want %v", ErrCPTMismatch, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			return fmt.Errorf("%w: got %v, want %v", ErrCPTMismatch, got, want)
		}
	}
	n.cpt = p.Clone()

	return nil
}

// Nodes returns all node handles, sorted ascending.
func (bn *BayesNet) Nodes() []NodeID {
	ids := make([]NodeID, 0, len(bn.nodes))
	for id := range bn.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// Size returns the number of nodes in the network.
func (bn *BayesNet) Size() int { return len(bn.nodes) }

// MinNonZeroParam returns the smallest strictly positive entry across all
// CPTs of the network. ok is false for an empty network or all-zero tables.
func (bn *BayesNet) MinNonZeroParam() (min float64, ok bool) {
	for _, n := range bn.nodes {
		m, has := n.cpt.MinNonZero()
		if !has {
			continue
		}
		if !ok || m < min {
			min, ok = m, true
		}
	}

	return min, ok
}

// rebuildCPT resets the node's CPT to a uniform table over (node, parents...).
func (bn *BayesNet) rebuildCPT(id NodeID) {
	n := bn.nodes[id]
	vars := make([]*core.Variable, 0, len(n.parents)+1)
	vars = append(vars, n.v)
	for _, pid := range n.parents {
		vars = append(vars, bn.nodes[pid].v)
	}
	// Construction cannot fail: variables are non-nil and names are unique
	// within one network by ErrDuplicateName.
	cpt, err := core.NewPotential(vars...)
	if err != nil {
		panic(fmt.Sprintf("bayesnet: internal CPT rebuild: %v", err))
	}
	cpt.Fill(1)
	if err = cpt.NormalizeAsCPT(); err != nil {
		panic(fmt.Sprintf("bayesnet: internal CPT rebuild: %v", err))
	}
	n.cpt = cpt
}

// reachable reports whether to can be reached from from by following arcs.
func (bn *BayesNet) reachable(from, to NodeID) bool {
	stack := []NodeID{from}
	seen := map[NodeID]struct{}{from: {}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == to {
			return true
		}
		for next := range bn.nodes[cur].children {
			if _, visited := seen[next]; visited {
				continue
			}
			seen[next] = struct{}{}
			stack = append(stack, next)
		}
	}

	return false
}

// sortedIDs returns the keys of set in ascending order.
func sortedIDs(set map[NodeID]struct{}) []NodeID {
	ids := make([]NodeID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}
