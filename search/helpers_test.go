package search_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/astart/core"
)

// gridGraph builds a w×h 4-connected grid with unit arcs in both directions.
// Cells listed in walls get no arcs at all.
func gridGraph(t testing.TB, w, h int, walls ...int) *core.Graph[float64] {
	t.Helper()
	blocked := make(map[int]bool, len(walls))
	for _, c := range walls {
		blocked[c] = true
	}
	g := core.NewGraph[float64](w * h)
	g.SetGridWidth(w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			u := y*w + x
			if blocked[u] {
				continue
			}
			for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
				nx, ny := x+d[0], y+d[1]
				if nx < 0 || ny < 0 || nx >= w || ny >= h || blocked[ny*w+nx] {
					continue
				}
				require.NoError(t, g.AddEdge(u, ny*w+nx, 1))
			}
		}
	}

	return g
}

// octileGrid builds an open w×h 8-connected grid with √2 diagonals.
func octileGrid(t testing.TB, w, h int) *core.Graph[float64] {
	t.Helper()
	g := core.NewGraph[float64](w * h)
	g.SetGridWidth(w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx, ny := x+dx, y+dy
					if (dx == 0 && dy == 0) || nx < 0 || ny < 0 || nx >= w || ny >= h {
						continue
					}
					cost := 1.0
					if dx != 0 && dy != 0 {
						cost = math.Sqrt2
					}
					require.NoError(t, g.AddEdge(y*w+x, ny*w+nx, cost))
				}
			}
		}
	}

	return g
}

// chainGraph builds 0→1→…→n-1 with unit weights.
func chainGraph(t testing.TB, n int) *core.Graph[float64] {
	t.Helper()
	g := core.NewGraph[float64](n)
	for i := 0; i+1 < n; i++ {
		require.NoError(t, g.AddEdge(i, i+1, 1))
	}

	return g
}

// arc is one random edge, kept so the same graph can be built in several weight domains.
type arc struct {
	u, v int
	w    uint32
}

// randomArcs draws m arcs over n nodes with integer weights in [0, maxW],
// including parallel arcs, self-loops and zero weights.
func randomArcs(seed int64, n, m int, maxW uint32) []arc {
	rng := rand.New(rand.NewSource(seed))
	arcs := make([]arc, 0, m)
	for i := 0; i < m; i++ {
		arcs = append(arcs, arc{u: rng.Intn(n), v: rng.Intn(n), w: uint32(rng.Intn(int(maxW) + 1))})
	}

	return arcs
}

func buildFloat(t testing.TB, n int, arcs []arc) *core.Graph[float64] {
	t.Helper()
	g := core.NewGraph[float64](n)
	for _, a := range arcs {
		require.NoError(t, g.AddEdge(a.u, a.v, float64(a.w)))
	}

	return g
}

func buildUint(t testing.TB, n int, arcs []arc) *core.Graph[uint32] {
	t.Helper()
	g := core.NewGraph[uint32](n)
	for _, a := range arcs {
		require.NoError(t, g.AddEdge(a.u, a.v, a.w))
	}

	return g
}

// oracle computes single-source distances with gonum's Dijkstra, keeping
// the cheapest of any parallel arcs and dropping self-loops.
func oracle[W core.Weight](g *core.Graph[W], src int) func(dst int) float64 {
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
	sh := path.DijkstraFrom(simple.Node(src), og)

	return func(dst int) float64 { return sh.WeightTo(int64(dst)) }
}
