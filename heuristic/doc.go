// Package heuristic estimates the remaining cost from a node to the goal
// for the searches in package search.
//
// Modes (a closed set, dispatched once per search):
//
//   - Zero:      always 0. Degrades A* to Dijkstra; always admissible.
//   - Manhattan: |dx| + |dy| over grid coordinates. Admissible for
//     4-directional movement with unit-or-greater step cost.
//   - Octile:    (|dx|+|dy|) + (√2−2)·min(|dx|,|dy|). Admissible for
//     8-directional movement with diagonal cost √2.
//   - External:  table[node] from a caller-supplied slice, trusted as-is.
//
// Grid coordinates come from row-major IDs: (x, y) = (id % width, id / width).
// When the grid width is unset (≤ 0) the grid modes return 0 instead of failing.
//
// Admissibility:
//
//	Neither search strategy checks admissibility at runtime. A heuristic that
//	overstates the true remaining cost voids the optimality guarantee of both
//	search.Classic and search.Batched; the returned path is still valid.
//
// Estimate is pure and holds no state, so it is safe for concurrent use.
// An Evaluator is immutable after New and may also be shared.
package heuristic
