// File: types.go
// Role: BayesNet and node types, sentinel errors, constructor.

package bayesnet

import (
	"errors"

	"github.com/katalvlaran/lvlbayes/core"
)

// Sentinel errors for network operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node handle.
	ErrNodeNotFound = errors.New("bayesnet: node not found")

	// ErrNameNotFound indicates no node carries the requested variable name.
	ErrNameNotFound = errors.New("bayesnet: name not found")

	// ErrDuplicateName indicates Add was called with a variable name already
	// present in the network.
	ErrDuplicateName = errors.New("bayesnet: duplicate variable name")

	// ErrDuplicateArc indicates the arc to insert already exists.
	ErrDuplicateArc = errors.New("bayesnet: arc already exists")

	// ErrArcNotFound indicates the arc to erase does not exist.
	ErrArcNotFound = errors.New("bayesnet: arc not found")

	// ErrCycleDetected indicates an AddArc call would close a directed cycle.
	ErrCycleDetected = errors.New("bayesnet: arc would create a cycle")

	// ErrNilPotential indicates SetCPT received a nil table.
	ErrNilPotential = errors.New("bayesnet: potential is nil")

	// ErrCPTMismatch indicates SetCPT received a table whose variable
	// sequence is not (node, parents...) in the network's parent order.
	ErrCPTMismatch = errors.New("bayesnet: CPT variables do not match node and parents")
)

// NodeID identifies a node within a BayesNet. Handles are assigned in
// insertion order and are never reused, including across Clone.
type NodeID int

// node bundles a variable with its structural links and CPT.
// parents keeps insertion order: the CPT axes are (self, parents...).
type node struct {
	v        *core.Variable
	parents  []NodeID
	children map[NodeID]struct{}
	cpt      *core.Potential
}

// BayesNet is a directed acyclic graph of variables with per-node CPTs.
//
// A BayesNet is not safe for concurrent mutation; transforms in lvlbayes
// operate on clones they own, so independent goroutines may each work on
// their own instance without synchronization.
type BayesNet struct {
	nodes  map[NodeID]*node
	byName map[string]NodeID
	nextID NodeID
}

// NewBayesNet creates an empty network.
func NewBayesNet() *BayesNet {
	return &BayesNet{
		nodes:  make(map[NodeID]*node),
		byName: make(map[string]NodeID),
	}
}
