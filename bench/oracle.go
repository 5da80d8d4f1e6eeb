package bench

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/astart/core"
)

// toGonum copies g into a gonum weighted digraph, keeping the cheapest of
// any parallel arcs and dropping self-loops, which never shorten a path.
func toGonum[W core.Weight](g *core.Graph[W]) *simple.WeightedDirectedGraph {
	og := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for i := 0; i < g.NodeCount(); i++ {
		og.AddNode(simple.Node(i))
	}
	for u := 0; u < g.NodeCount(); u++ {
		for _, e := range g.Neighbors(u) {
			if e.To == u {
				continue
			}
			w, _ := g.EdgeWeight(u, e.To)
			og.SetWeightedEdge(og.NewWeightedEdge(simple.Node(u), simple.Node(e.To), float64(w)))
		}
	}

	return og
}

// verify checks every baseline cost against gonum's Dijkstra, and against
// the scenario optimum where one is recorded. Shortest-path trees are
// shared between queries with the same start. Returns the number of
// queries checked.
func verify(g *core.Graph[float64], queries []Query, baseline []float64) (int, error) {
	og := toGonum(g)
	trees := make(map[int]path.Shortest)
	for i, q := range queries {
		tree, ok := trees[q.Start]
		if !ok {
			tree = path.DijkstraFrom(simple.Node(q.Start), og)
			trees[q.Start] = tree
		}
		want := tree.WeightTo(int64(q.Goal))
		if !sameCost(baseline[i], want, costTolerance) {
			return i, fmt.Errorf("%w: query %d (%d→%d) cost %v, dijkstra %v", ErrVerify, i, q.Start, q.Goal, baseline[i], want)
		}
		if !math.IsNaN(q.Optimal) && !sameCost(baseline[i], q.Optimal, scenarioTolerance) {
			return i, fmt.Errorf("%w: query %d (%d→%d) cost %v, scenario optimum %v", ErrVerify, i, q.Start, q.Goal, baseline[i], q.Optimal)
		}
	}

	return len(queries), nil
}
