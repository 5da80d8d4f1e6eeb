// Package search implements the two shortest-path strategies of astart over
// a core.Graph: Classic best-first search and the Batched frontier search.
//
// Overview:
//
//   - Classic pops one node at a time from a lazy-deletion min-heap ordered
//     by f = g + h and pushes every improved neighbour. With heuristic.Zero
//     it is Dijkstra; with an admissible, consistent heuristic it is A*.
//   - Batched pops one pivot, relaxes locally for up to k rounds over an
//     expanding frontier using plain array updates, and pushes back only the
//     resulting pivot set. Final costs stay equal to Classic. Whether it
//     saves queue insertions depends on the graph: a chain needs fewer
//     pushes for every larger k, but on branching graphs a larger k can
//     push more (the frontier of a longer batch is wider), so compare
//     push counts over a workload, not per query.
//
// Search state:
//
//	Each call owns its g-scores, predecessor links, settled flags, frontier
//	buffers and queue. Pass WithWorkspace to reuse that storage across calls;
//	a Workspace serves one call at a time. The graph is only read, so many
//	searches may share one graph as long as nobody mutates it meanwhile.
//
// Early exit (Batched only):
//
//	By default a goal improved during a local round joins the pivot set and
//	is returned only after a global pop certifies its cost (exact mode).
//	WithEarlyExit(true) returns from the round instead: lower latency, but
//	the cost is not proven optimal and Result.Exact is false.
//
// Optimality:
//
//	Both strategies return optimal costs for non-negative weights and an
//	admissible, consistent heuristic. An inadmissible heuristic (including
//	a bad heuristic.External table) voids that guarantee; paths stay valid.
//	Neither negative weights nor admissibility are checked at runtime.
//
// Results and errors:
//
//	Result.Path is truncated to WithMaxPathLen nodes; Result.Length always
//	holds the full node count. "No path" comes back as ErrNoPath
//	(unreachable goal) or ErrInvalidNode (start/goal out of range), both
//	matched by IsNoPath. ErrReconstructionOverflow means a corrupted
//	predecessor chain and is never a normal outcome.
//
// Example usage:
//
//	g := core.NewGraph[float64](9)
//	g.SetGridWidth(3)
//	// ... add edges ...
//	res, err := search.Batched(g, 0, 8,
//	    search.WithBatchSize(2),
//	    search.WithHeuristic(heuristic.Manhattan),
//	)
package search
