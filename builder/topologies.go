package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/astart/core"
)

// Minimum sizes accepted by the constructors.
const (
	minPathNodes     = 2
	minCycleNodes    = 3
	minCompleteNodes = 1
	minGridDim       = 1
	minSparseNodes   = 1
)

// Path links 0-1-…-(n-1).
func Path[W core.Weight](n int) Constructor[W] {
	return func(g *core.Graph[W], cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("Path: n=%d < %d: %w", n, minPathNodes, ErrTooFewVertices)
		}
		g.Grow(n)
		for i := 0; i+1 < n; i++ {
			if err := link(g, cfg, i, i+1); err != nil {
				return fmt.Errorf("Path: %w", err)
			}
		}

		return nil
	}
}

// Cycle is Path(n) closed by the link (n-1)-0.
func Cycle[W core.Weight](n int) Constructor[W] {
	return func(g *core.Graph[W], cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("Cycle: n=%d < %d: %w", n, minCycleNodes, ErrTooFewVertices)
		}
		if err := Path[W](n)(g, cfg); err != nil {
			return fmt.Errorf("Cycle: %w", err)
		}
		if err := link(g, cfg, n-1, 0); err != nil {
			return fmt.Errorf("Cycle: %w", err)
		}

		return nil
	}
}

// Complete links every pair i<j.
func Complete[W core.Weight](n int) Constructor[W] {
	return func(g *core.Graph[W], cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("Complete: n=%d < %d: %w", n, minCompleteNodes, ErrTooFewVertices)
		}
		g.Grow(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := link(g, cfg, i, j); err != nil {
					return fmt.Errorf("Complete: %w", err)
				}
			}
		}

		return nil
	}
}

// Grid builds a 4-connected rows×cols lattice with row-major IDs
// (id = r*cols + c) and sets the graph's grid width to cols, so grid
// heuristics apply to the result.
func Grid[W core.Weight](rows, cols int) Constructor[W] {
	return func(g *core.Graph[W], cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("Grid: %dx%d: %w", rows, cols, ErrTooFewVertices)
		}
		g.Grow(rows * cols)
		g.SetGridWidth(cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := r*cols + c
				if c+1 < cols {
					if err := link(g, cfg, id, id+1); err != nil {
						return fmt.Errorf("Grid: %w", err)
					}
				}
				if r+1 < rows {
					if err := link(g, cfg, id, id+cols); err != nil {
						return fmt.Errorf("Grid: %w", err)
					}
				}
			}
		}

		return nil
	}
}

// RandomSparse is an Erdős–Rényi G(n,p) graph: each unordered pair (or
// ordered pair when directed) is linked independently with probability p.
// Requires an RNG (WithSeed or WithRand).
//
// Complexity: O(n²) draws.
func RandomSparse[W core.Weight](n int, p float64) Constructor[W] {
	return func(g *core.Graph[W], cfg builderConfig) error {
		if n < minSparseNodes {
			return fmt.Errorf("RandomSparse: n=%d < %d: %w", n, minSparseNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 || math.IsNaN(p) {
			return fmt.Errorf("RandomSparse: p=%g: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}
		g.Grow(n)
		for i := 0; i < n; i++ {
			j0 := i + 1
			if cfg.directed {
				j0 = 0
			}
			for j := j0; j < n; j++ {
				if i == j || cfg.rng.Float64() >= p {
					continue
				}
				if err := link(g, cfg, i, j); err != nil {
					return fmt.Errorf("RandomSparse: %w", err)
				}
			}
		}

		return nil
	}
}
