// Package bench measures the classical and batched-frontier searches on
// grid and sparse-graph workloads.
//
// A run is described by a YAML Config: a random grid (size, obstacle
// density, connectivity, seed), a MovingAI map with its scenarios, or a
// random sparse graph (nodes, link probability, weight range) whose queries
// are drawn from BFS trees so each one is solvable. The config also names
// the heuristic and a list of modes (strategy, k, adaptive, early exit).
//
// Run builds the graph once and computes an exact baseline cost per query
// with the classical search. With Verify set, the baseline is checked against
// gonum's Dijkstra and against recorded scenario optima. Each mode then runs
// all queries on a bounded errgroup; every returned path is checked with
// search.ValidatePath and its cost compared with the baseline. Timing and
// queue statistics are aggregated with gonum/stat.
package bench
