// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order.
//
// Arc weights are ignored: BFS answers reachability and fewest-hop
// questions, which the benchmark harness uses to pick only solvable
// queries on random graphs and which tests use as an independent check
// that a search's ErrNoPath is genuine.
//
// Options:
//
//	WithContext(ctx)          cancellation, checked once per dequeue
//	WithOnVisit(fn)           callback per visited vertex; an error aborts
//	WithMaxDepth(d)           stop expanding past depth d (0 = unlimited)
//	WithFilterNeighbor(fn)    skip arcs curr→neighbor when fn returns false
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
