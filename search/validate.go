package search

import (
	"fmt"

	"github.com/katalvlaran/astart/core"
)

// PathCost sums the cheapest arc weight between each consecutive pair of
// path. A single-node path costs zero. Returns ErrInvalidPath when a pair
// has no connecting arc.
func PathCost[W core.Weight](g *core.Graph[W], path []int) (W, error) {
	var total W
	if g == nil {
		return total, ErrNilGraph
	}
	for i := 1; i < len(path); i++ {
		w, ok := g.EdgeWeight(path[i-1], path[i])
		if !ok {
			return total, fmt.Errorf("%w: no arc %d→%d at step %d", ErrInvalidPath, path[i-1], path[i], i)
		}
		total += w
	}

	return total, nil
}

// ValidatePath checks that path starts at start, ends at goal and follows
// existing arcs, and returns its cost.
func ValidatePath[W core.Weight](g *core.Graph[W], path []int, start, goal int) (W, error) {
	var zero W
	if len(path) == 0 {
		return zero, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if path[0] != start || path[len(path)-1] != goal {
		return zero, fmt.Errorf("%w: path runs %d→%d, want %d→%d",
			ErrInvalidPath, path[0], path[len(path)-1], start, goal)
	}

	return PathCost(g, path)
}
