package builder_test

import (
	"fmt"

	"github.com/katalvlaran/astart/builder"
	"github.com/katalvlaran/astart/heuristic"
	"github.com/katalvlaran/astart/search"
)

// ExampleGrid builds a unit-weight lattice and searches it with Manhattan guidance.
func ExampleGrid() {
	g, err := builder.BuildGraph[uint32](nil, builder.Grid[uint32](4, 6))
	if err != nil {
		fmt.Println(err)
		return
	}

	res, err := search.Batched(g, 0, 23, search.WithHeuristic(heuristic.Manhattan))
	fmt.Println(g.NodeCount(), g.EdgeCount(), res.Cost, err)
	// Output: 24 76 8 <nil>
}

// ExampleRandomSparse overlays a random graph on a path backbone, so every
// pair of nodes is connected.
func ExampleRandomSparse() {
	g, err := builder.BuildGraph[float64](
		[]builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(1, 5)},
		builder.Path[float64](200),
		builder.RandomSparse[float64](200, 0.02),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	res, err := search.Classic(g, 0, 199)
	fmt.Println(res.Found, err)
	// Output: true <nil>
}
