// Package core provides the adjacency store that every search in astart reads from.
//
// A Graph G = (V,E) is a directed multigraph over dense integer node IDs
// in [0, N). Each node owns an ordered slice of outgoing edges:
//
//   - Directed edges only; model an undirected link as two arcs.
//   - Self-loops and parallel edges are kept as added (alternative routes
//     with different weights are legitimate).
//   - AddEdge grows the node set when u or v lies beyond the current
//     capacity, so callers do not need exact node counts up front.
//   - No edge removal and no duplicate suppression.
//
// Weight domain:
//
//	Graph is generic over W, constrained by Weight to the float kinds
//	(float32, float64) and the unsigned integer kinds. Pick one per
//	instantiation; searches report costs in the same domain.
//	Negative, NaN and +Inf weights are rejected by AddEdge with ErrBadWeight,
//	because relaxation assumes monotonically growing path costs.
//
// Grid mode:
//
//	SetGridWidth(w) records that node IDs are row-major grid cells
//	(id = row*w + col). The store itself never interprets this value;
//	heuristic.Estimate does, via GridWidth().
//
// Concurrency:
//
//	Graph holds no locks. Any number of searches may read the same Graph
//	concurrently, but the caller must not call AddEdge, Grow or
//	SetGridWidth while a search is in flight.
//
// Core Methods:
//
//	NewGraph[W](n int) *Graph[W]               // O(n)
//	AddEdge(u, v int, w W) error               // amortised O(1)
//	Grow(n int)                                // O(n - N)
//	SetGridWidth(w int) / GridWidth() int      // O(1)
//	NodeCount() int / EdgeCount() int          // O(1)
//	Neighbors(u int) []Edge[W]                 // O(1), shared backing slice
//	EdgeWeight(u, v int) (W, bool)             // O(deg(u))
//	Coordinate(id int) (x, y int, ok bool)     // O(1)
package core
