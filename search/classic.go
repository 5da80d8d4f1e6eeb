package search

import (
	"time"

	"github.com/katalvlaran/astart/core"
)

// Classic runs best-first search (A*, or Dijkstra with heuristic.Zero) from
// start to goal on g.
//
// The queue is ordered by f = g + h and uses lazy deletion: an improved
// node gets a fresh entry, and entries for already settled nodes are
// discarded when popped. The first pop of the goal returns; with an
// admissible, consistent heuristic its cost is optimal.
//
// Options honoured: WithHeuristic, WithHeuristicTable, WithMaxPathLen,
// WithWorkspace, WithObserver, WithLogger. Batch options are ignored.
//
// Errors: ErrNilGraph, ErrOptionViolation, ErrInvalidNode, heuristic
// configuration errors, ErrNoPath, ErrReconstructionOverflow.
//
// Complexity:
//   - Time:  O((V + E) log E)
//   - Space: O(V + E) for per-node arrays and the lazy queue.
func Classic[W core.Weight](g *core.Graph[W], start, goal int, opts ...Option) (Result[W], error) {
	began := time.Now()
	cfg := buildOptions(opts)

	res, err := runClassic(g, start, goal, cfg)
	report(cfg, StrategyClassic, start, goal, res, began, err)

	return res, err
}

func runClassic[W core.Weight](g *core.Graph[W], start, goal int, cfg Options) (Result[W], error) {
	r, err := newRunner(g, start, goal, cfg)
	if err != nil {
		return Result[W]{}, err
	}
	r.seed()

	for {
		// 1) Pop the best unsettled node; an empty queue means no path.
		u, ok := r.popUnsettled()
		if !ok {
			return r.notFound()
		}

		// 2) First pop of the goal is final.
		if u == r.goal {
			return r.found(true)
		}

		// 3) Relax every outgoing arc and enqueue each improved neighbour.
		for _, e := range r.g.Neighbors(u) {
			if r.relax(u, e.To, e.Weight) {
				r.push(e.To)
			}
		}
	}
}
