package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/astart/bfs"
	"github.com/katalvlaran/astart/builder"
)

// ExampleBFS demonstrates BFS layering on a 3×3 lattice: visit order
// follows non-decreasing Manhattan distance from the corner.
func ExampleBFS() {
	g, err := builder.BuildGraph[float64](nil, builder.Grid[float64](3, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	fmt.Println(res.Depth)
	// Output:
	// [0 1 3 2 4 6 5 7 8]
	// [0 1 2 1 2 3 2 3 4]
}

// ExampleBFSResult_PathTo finds the fewest-hop route around a cycle.
func ExampleBFSResult_PathTo() {
	g, _ := builder.BuildGraph[float64](nil, builder.Cycle[float64](6))

	res, _ := bfs.BFS(g, 0)
	path, _ := res.PathTo(4)
	fmt.Println(path)
	// Output: [0 5 4]
}
