package search

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/astart/core"
	"github.com/katalvlaran/astart/heuristic"
)

// runner holds the mutable state of a single search call.
type runner[W core.Weight] struct {
	g     *core.Graph[W]      // read-only during the search
	start int                 // source node
	goal  int                 // target node
	cfg   Options             // resolved options
	h     heuristic.Evaluator // bound to goal once per call
	ws    *Workspace          // exclusively owned for the duration of the call
	dist  []W                 // g-scores, valid where ws.reached is true
	stats Stats               // work counters
}

// buildOptions applies opts over DefaultOptions.
func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// newRunner validates inputs in order and prepares a fresh search state:
//  1. g must be non-nil (ErrNilGraph).
//  2. options must be valid (ErrOptionViolation).
//  3. start and goal must be nodes of g (ErrInvalidNode).
//  4. the heuristic must accept the graph (heuristic.Err*).
func newRunner[W core.Weight](g *core.Graph[W], start, goal int, cfg Options) (*runner[W], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	n := g.NodeCount()
	if !g.HasNode(start) || !g.HasNode(goal) {
		return nil, fmt.Errorf("%w: start=%d goal=%d nodes=%d", ErrInvalidNode, start, goal, n)
	}
	h, err := heuristic.New(cfg.Heuristic, goal, g.GridWidth(), n, cfg.Table)
	if err != nil {
		return nil, err
	}

	ws := cfg.Workspace
	if ws == nil {
		ws = NewWorkspace()
	}
	ws.prepare(n)

	return &runner[W]{
		g:     g,
		start: start,
		goal:  goal,
		cfg:   cfg,
		h:     h,
		ws:    ws,
		dist:  distances[W](ws, n),
	}, nil
}

// seed marks start as reached at cost 0 and pushes it with priority h(start).
func (r *runner[W]) seed() {
	var zero W
	r.dist[r.start] = zero
	r.ws.reached[r.start] = true
	r.push(r.start)
}

// push enqueues node with priority g(node) + h(node).
func (r *runner[W]) push(node int) {
	r.ws.queue.push(entry{f: float64(r.dist[node]) + r.h.H(node), node: node})
	r.stats.Pushes++
}

// popUnsettled pops entries until one names an unsettled node, settles it
// and returns it. ok is false once the queue is empty.
func (r *runner[W]) popUnsettled() (node int, ok bool) {
	for r.ws.queue.Len() > 0 {
		e := r.ws.queue.pop()
		r.stats.Pops++
		if r.ws.settled[e.node] {
			r.stats.StalePops++
			continue
		}
		r.ws.settled[e.node] = true
		r.stats.Expansions++

		return e.node, true
	}

	return 0, false
}

// relax tries to improve v through u along an arc of weight w.
// It reports whether g(v) was tightened.
func (r *runner[W]) relax(u, v int, w W) bool {
	r.stats.EdgeScans++
	gu := r.dist[u]
	tentative := gu + w
	if tentative < gu {
		// unsigned overflow: treat the route as unusable
		return false
	}
	if r.ws.reached[v] && tentative >= r.dist[v] {
		return false
	}
	r.dist[v] = tentative
	r.ws.reached[v] = true
	r.ws.cameFrom[v] = u
	r.stats.Relaxations++

	return true
}

// found builds the Result for a reached goal.
func (r *runner[W]) found(exact bool) (Result[W], error) {
	path, length, err := Reconstruct(r.ws.cameFrom, r.start, r.goal, r.cfg.MaxPathLen)
	if err != nil {
		return Result[W]{Stats: r.stats}, err
	}

	return Result[W]{
		Path:   path,
		Length: length,
		Cost:   r.dist[r.goal],
		Found:  true,
		Exact:  exact,
		Stats:  r.stats,
	}, nil
}

// notFound builds the Result for an exhausted queue.
func (r *runner[W]) notFound() (Result[W], error) {
	return Result[W]{Stats: r.stats}, fmt.Errorf("%w: %d→%d", ErrNoPath, r.start, r.goal)
}

// report notifies the observer and logger configured in cfg.
func report[W core.Weight](cfg Options, strategy Strategy, start, goal int, res Result[W], began time.Time, err error) {
	if cfg.Observer == nil && cfg.Logger == nil {
		return
	}
	elapsed := time.Since(began)
	if cfg.Observer != nil {
		cfg.Observer.ObserveSearch(strategy, res.Stats, elapsed, err)
	}
	if cfg.Logger != nil && cfg.Logger.Enabled(context.Background(), slog.LevelDebug) {
		cfg.Logger.Debug("search finished",
			"strategy", string(strategy),
			"start", start,
			"goal", goal,
			"found", res.Found,
			"exact", res.Exact,
			"length", res.Length,
			"pushes", res.Stats.Pushes,
			"expansions", res.Stats.Expansions,
			"elapsed", elapsed,
			"error", err,
		)
	}
}
