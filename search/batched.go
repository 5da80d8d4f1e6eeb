package search

import (
	"time"

	"github.com/katalvlaran/astart/core"
)

// Batched runs the batched-frontier search from start to goal on g.
//
// Each outer iteration pops one pivot from the global queue (lazy deletion,
// ordered by f = g + h) and then relaxes locally for up to k rounds
// (WithBatchSize) without touching the queue:
//
//  1. Pop the best unsettled node and settle it; the goal returns here.
//  2. Frontier = {pivot}. Each round relaxes every arc of every frontier
//     node against the shared g-scores (Bellman-Ford style, unordered);
//     improved nodes form the next frontier. With WithAdaptive, a node
//     whose estimate exceeds that of the node it came from is diverted
//     straight into the pivot set instead.
//  3. A round that improves nothing ends the batch; the frontier just
//     expanded becomes the pivot set. After k rounds the surviving frontier
//     becomes the pivot set.
//  4. Every unsettled pivot is pushed once with priority g + h.
//
// Every improved node is either expanded in a later round or pushed, so no
// improvement is dropped and final costs match Classic. When a round
// improves the goal, the goal joins the pivot set and is only returned
// after a global pop certifies it. WithEarlyExit instead returns at once
// from the round (Result.Exact = false); that path may be costlier than
// optimal when a cheaper route runs through a pivot still in the queue.
// A goal diverted by WithAdaptive is only a pivot and never triggers the
// early return.
//
// k = 1 behaves like Classic apart from dead-end bookkeeping. Larger k
// trades exact priority order for unordered local relaxation; the push count is not
// monotone in k on branching graphs. A heuristic that overestimates voids
// the optimality guarantee in every mode.
//
// Errors: as Classic.
//
// Complexity:
//   - Time:  O((V + E)·k·log E) worst case.
//   - Space: O(V + E).
func Batched[W core.Weight](g *core.Graph[W], start, goal int, opts ...Option) (Result[W], error) {
	began := time.Now()
	cfg := buildOptions(opts)

	res, err := runBatched(g, start, goal, cfg)
	report(cfg, StrategyBatched, start, goal, res, began, err)

	return res, err
}

func runBatched[W core.Weight](g *core.Graph[W], start, goal int, cfg Options) (Result[W], error) {
	r, err := newRunner(g, start, goal, cfg)
	if err != nil {
		return Result[W]{}, err
	}
	ws := r.ws
	ws.prepareMarks(g.NodeCount())
	r.seed()

	k := cfg.BatchSize
	for {
		// 1) Global step: best unsettled pivot.
		u, ok := r.popUnsettled()
		if !ok {
			return r.notFound()
		}
		if u == r.goal {
			return r.found(true)
		}

		// 2) Local step: up to k rounds of relaxation from u.
		pivotEpoch := ws.nextPivotPop()
		ws.nextPivots = ws.nextPivots[:0]
		ws.frontier = append(ws.frontier[:0], u)

		for step := 0; step < k; step++ {
			r.stats.Rounds++
			round := ws.nextRound()
			ws.nextFrontier = ws.nextFrontier[:0]

			for _, x := range ws.frontier {
				var hx float64
				if cfg.Adaptive {
					hx = r.h.H(x)
				}
				for _, e := range r.g.Neighbors(x) {
					v := e.To
					if !r.relax(x, v, e.Weight) {
						continue
					}
					if cfg.Adaptive && r.h.H(v) > hx {
						r.addPivot(v, pivotEpoch)
						continue
					}
					if v == r.goal {
						if cfg.EarlyExit {
							return r.found(false)
						}
						r.addPivot(v, pivotEpoch)
					}
					if ws.roundMark[v] != round {
						ws.roundMark[v] = round
						ws.nextFrontier = append(ws.nextFrontier, v)
					}
				}
			}

			// 3) Dead end: nothing improved, the current frontier is the boundary.
			if len(ws.nextFrontier) == 0 {
				for _, x := range ws.frontier {
					r.addPivot(x, pivotEpoch)
				}
				break
			}
			ws.frontier, ws.nextFrontier = ws.nextFrontier, ws.frontier
			if step == k-1 {
				for _, x := range ws.frontier {
					r.addPivot(x, pivotEpoch)
				}
			}
		}

		// 4) Re-enter the global queue with the pivots only.
		for _, p := range ws.nextPivots {
			r.push(p)
			r.stats.Pivots++
		}
	}
}

// addPivot records node for re-queueing at the end of the current pivot
// pop. Settled nodes and nodes already recorded in this pop are skipped.
func (r *runner[W]) addPivot(node int, epoch uint32) {
	if r.ws.settled[node] || r.ws.pivotMark[node] == epoch {
		return
	}
	r.ws.pivotMark[node] = epoch
	r.ws.nextPivots = append(r.ws.nextPivots, node)
}
