package core_test

import (
	"testing"

	"github.com/katalvlaran/astart/core"
)

// BenchmarkAddEdge_Growing measures appends that keep extending the node set.
func BenchmarkAddEdge_Growing(b *testing.B) {
	g := core.NewGraph[float64](0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge(i, i+1, 1)
	}
}

// BenchmarkNeighbors measures adjacency lookup on a 1000-leaf star.
func BenchmarkNeighbors(b *testing.B) {
	g := core.NewGraph[float32](1001)
	for i := 1; i <= 1000; i++ {
		_ = g.AddEdge(0, i, 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Neighbors(0)
	}
}
