// Package gridgraph treats a 2D grid of cells as a graph: it produces
// search-ready adjacency stores and analyses which cells reach which.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid; cells with value ≥
//     PassableThreshold are passable, the rest are blocked.
//   - ToStore converts the grid into a *core.Graph[float64] with row-major
//     node IDs and grid width set (unit cardinal steps, √2 diagonals).
//   - ConnectedComponents / SameComponent identify mutually reachable cells,
//     so callers can pick queries that have an answer.
//   - Bridge computes the fewest blocked cells to open (0-1 BFS) to join
//     two components; Connect repeats it until one component remains.
//
// Movement rules:
//
//   - Conn4: N, E, S, W. Conn8 adds the four diagonals.
//   - Without CornerCutting a diagonal step requires both orthogonal
//     neighbors to be passable (the MovingAI convention).
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H), computed once per grid.
//   - Bridge:              O(W×H),   Memory: O(W×H).
//   - ToStore:             O(W×H×d), Memory: O(W×H + E).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrCellIndex: a cell index outside the grid.
//   - ErrNoBridge: no corridor joins the two components.
package gridgraph
