package core

import (
	"errors"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeNode indicates that an edge endpoint or node count is negative.
	ErrNegativeNode = errors.New("core: node ID must be non-negative")

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be a finite non-negative number")
)

// Weight is the set of numeric types an edge weight may take.
//
// Signed integers are excluded: the search kernel relies on relaxation
// only ever tightening costs, which negative weights would break.
type Weight interface {
	~float32 | ~float64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Edge is one outgoing arc stored in a node's adjacency slice.
type Edge[W Weight] struct {
	// To is the destination node ID.
	To int

	// Weight is the traversal cost of the arc.
	Weight W
}

// Graph is an index-addressed, directed adjacency store.
//
// adj[u] lists the arcs leaving u in insertion order; edges counts all
// arcs across all nodes; width is the optional grid width (0 = unset).
type Graph[W Weight] struct {
	adj   [][]Edge[W]
	edges int
	width int
}
