package bench

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/astart/bfs"
	"github.com/katalvlaran/astart/builder"
	"github.com/katalvlaran/astart/core"
	"github.com/katalvlaran/astart/gridgraph"
	"github.com/katalvlaran/astart/movingai"
)

// Query is one start/goal pair. Optimal is the reference cost shipped with
// a MovingAI scenario, or NaN for generated queries.
type Query struct {
	Start, Goal int
	Optimal     float64
}

// Workload is the graph and queries a run measures.
type Workload struct {
	Graph   *core.Graph[float64]
	Grid    *gridgraph.GridGraph // nil for sparse workloads
	Queries []Query
	Opened  int // cells opened by Connect
}

// BuildWorkload loads or generates the graph described by cfg and picks its queries.
func BuildWorkload(cfg Config) (*Workload, error) {
	var (
		w   *Workload
		err error
	)
	switch {
	case cfg.Kind == KindSparse:
		return sparseWorkload(cfg)
	case cfg.Map != "":
		w, err = loadWorkload(cfg)
	default:
		w, err = randomWorkload(cfg)
	}
	if err != nil {
		return nil, err
	}
	w.Graph = w.Grid.ToStore()

	return w, nil
}

// sparseWorkload builds a G(n,p) graph and draws queries whose goal is
// reachable, using one BFS tree per start.
func sparseWorkload(cfg Config) (*Workload, error) {
	g, err := builder.BuildGraph[float64](
		[]builder.BuilderOption{
			builder.WithSeed(cfg.Seed),
			builder.WithIntUniformWeight(1, cfg.MaxWeight),
		},
		builder.RandomSparse[float64](cfg.Nodes, cfg.Probability),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	w := &Workload{Graph: g, Queries: make([]Query, 0, cfg.Queries)}
	for tries := 0; len(w.Queries) < cfg.Queries && tries < 100*cfg.Queries; tries++ {
		start := rng.Intn(cfg.Nodes)
		tree, err := bfs.BFS(g, start)
		if err != nil {
			return nil, err
		}
		if len(tree.Order) < 2 {
			continue
		}
		goal := tree.Order[1+rng.Intn(len(tree.Order)-1)]
		w.Queries = append(w.Queries, Query{Start: start, Goal: goal, Optimal: math.NaN()})
	}

	return w, nil
}

func loadWorkload(cfg Config) (*Workload, error) {
	m, err := movingai.LoadMap(cfg.Map)
	if err != nil {
		return nil, err
	}
	gg, err := m.Grid()
	if err != nil {
		return nil, err
	}
	w := &Workload{Grid: gg}
	if cfg.Scenarios == "" {
		w.Queries = pickQueries(gg, cfg.Queries, rand.New(rand.NewSource(cfg.Seed)))
		return w, nil
	}

	scen, err := movingai.LoadScenarios(cfg.Scenarios)
	if err != nil {
		return nil, err
	}
	for i, s := range scen {
		if cfg.Queries > 0 && len(w.Queries) == cfg.Queries {
			break
		}
		if !m.Passable(s.StartX, s.StartY) || !m.Passable(s.GoalX, s.GoalY) {
			return nil, fmt.Errorf("%w: scenario %d uses a blocked or outside cell", ErrConfig, i)
		}
		w.Queries = append(w.Queries, Query{
			Start:   gg.Index(s.StartX, s.StartY),
			Goal:    gg.Index(s.GoalX, s.GoalY),
			Optimal: s.Optimal,
		})
	}

	return w, nil
}

func randomWorkload(cfg Config) (*Workload, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	values := make([][]int, cfg.Height)
	for y := range values {
		values[y] = make([]int, cfg.Width)
		for x := range values[y] {
			if rng.Float64() >= cfg.Density {
				values[y][x] = 1
			}
		}
	}
	opts := gridgraph.DefaultGridOptions()
	opts.CornerCutting = cfg.CornerCutting
	if cfg.Connectivity == 8 {
		opts.Conn = gridgraph.Conn8
	}
	gg, err := gridgraph.NewGridGraph(values, opts)
	if err != nil {
		return nil, err
	}

	w := &Workload{Grid: gg}
	if cfg.Connect {
		if w.Grid, w.Opened, err = gg.Connect(); err != nil {
			return nil, err
		}
	}
	w.Queries = pickQueries(w.Grid, cfg.Queries, rng)

	return w, nil
}

// pickQueries draws up to n start/goal pairs that share a component, so
// every generated query has an answer. It gives up after 100·n draws.
func pickQueries(gg *gridgraph.GridGraph, n int, rng *rand.Rand) []Query {
	cells := gg.CellCount()
	out := make([]Query, 0, n)
	for tries := 0; len(out) < n && tries < 100*n; tries++ {
		s, g := rng.Intn(cells), rng.Intn(cells)
		if !gg.SameComponent(s, g) {
			continue
		}
		out = append(out, Query{Start: s, Goal: g, Optimal: math.NaN()})
	}

	return out
}
