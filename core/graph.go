package core

import (
	"fmt"
	"math"
)

// NewGraph creates an empty Graph with n nodes and no edges.
// A negative n is treated as zero.
//
// Complexity: O(n)
func NewGraph[W Weight](n int) *Graph[W] {
	if n < 0 {
		n = 0
	}

	return &Graph[W]{adj: make([][]Edge[W], n)}
}

// AddEdge appends the directed arc u→v with weight w.
//
// If u or v is at or beyond NodeCount(), the node set grows to
// max(u, v)+1 first; the edge is never dropped. Parallel arcs and
// self-loops are stored as given.
//
// Returns ErrNegativeNode for negative endpoints and ErrBadWeight for a
// negative, NaN or infinite weight.
//
// Complexity: amortised O(1), plus O(growth) when the node set expands.
func (g *Graph[W]) AddEdge(u, v int, w W) error {
	if u < 0 || v < 0 {
		return fmt.Errorf("%w: edge %d→%d", ErrNegativeNode, u, v)
	}
	if f := float64(w); f < 0 || math.IsNaN(f) || math.IsInf(f, 1) {
		return fmt.Errorf("%w: edge %d→%d weight=%v", ErrBadWeight, u, v, w)
	}

	g.Grow(max(u, v) + 1)
	g.adj[u] = append(g.adj[u], Edge[W]{To: v, Weight: w})
	g.edges++

	return nil
}

// Grow extends the node set to at least n nodes. Existing edges are kept.
//
// Complexity: O(n - NodeCount()) when growing, O(1) otherwise.
func (g *Graph[W]) Grow(n int) {
	if n <= len(g.adj) {
		return
	}
	if n <= cap(g.adj) {
		g.adj = g.adj[:n]
		return
	}
	grown := make([][]Edge[W], n, max(n, 2*len(g.adj)))
	copy(grown, g.adj)
	g.adj = grown
}

// SetGridWidth marks node IDs as row-major grid cells of the given width.
// A width ≤ 0 disables grid mode.
func (g *Graph[W]) SetGridWidth(width int) {
	if width < 0 {
		width = 0
	}
	g.width = width
}

// GridWidth returns the grid width, or 0 when grid mode is unset.
func (g *Graph[W]) GridWidth() int { return g.width }

// NodeCount returns the current number of nodes.
func (g *Graph[W]) NodeCount() int { return len(g.adj) }

// EdgeCount returns the total number of stored arcs, parallel arcs included.
func (g *Graph[W]) EdgeCount() int { return g.edges }

// HasNode reports whether id is a valid node of g.
func (g *Graph[W]) HasNode(id int) bool { return id >= 0 && id < len(g.adj) }

// Neighbors returns the outgoing arcs of u in insertion order, or nil if u
// is not a node of g. The returned slice aliases internal storage and must
// not be modified.
func (g *Graph[W]) Neighbors(u int) []Edge[W] {
	if !g.HasNode(u) {
		return nil
	}

	return g.adj[u]
}

// EdgeWeight returns the cheapest weight among the arcs u→v.
// The boolean is false when no such arc exists.
//
// Complexity: O(deg(u))
func (g *Graph[W]) EdgeWeight(u, v int) (W, bool) {
	var (
		best  W
		found bool
	)
	for _, e := range g.Neighbors(u) {
		if e.To != v {
			continue
		}
		if !found || e.Weight < best {
			best = e.Weight
			found = true
		}
	}

	return best, found
}

// Coordinate decomposes id into grid coordinates (x, y) = (id % width, id / width).
// ok is false when grid mode is unset or id is negative.
func (g *Graph[W]) Coordinate(id int) (x, y int, ok bool) {
	if g.width <= 0 || id < 0 {
		return 0, 0, false
	}

	return id % g.width, id / g.width, true
}
