package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/astart/core"
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		opts:            opts,
		neighborOffsets: offsets,
	}, nil
}

// Options returns the options the grid was built with.
func (gg *GridGraph) Options() GridOptions { return gg.opts }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Passable reports whether (x,y) is inside the grid and its value reaches
// the passable threshold.
func (gg *GridGraph) Passable(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.opts.PassableThreshold
}

// NeighborOffsets returns the precomputed (dx, dy) neighbor offsets.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// CellCount returns Width×Height.
func (gg *GridGraph) CellCount() int { return gg.Width * gg.Height }

// canStep reports whether a move from passable (x,y) by (dx,dy) is allowed.
// Without corner cutting a diagonal needs both orthogonal neighbors passable.
func (gg *GridGraph) canStep(x, y, dx, dy int) bool {
	if !gg.Passable(x+dx, y+dy) {
		return false
	}
	if dx != 0 && dy != 0 && !gg.opts.CornerCutting {
		return gg.Passable(x+dx, y) && gg.Passable(x, y+dy)
	}

	return true
}

// ToStore converts the grid into a directed *core.Graph[float64] with one
// node per cell (row-major IDs) and grid width set, so the Manhattan and
// Octile heuristics apply directly.
//
// Every allowed move between passable cells becomes an arc: cardinal moves
// weigh 1, diagonal moves weigh √2. Blocked cells are nodes without arcs.
// Complexity: O(W×H×d) time, Memory: O(W×H + E).
func (gg *GridGraph) ToStore() *core.Graph[float64] {
	g := core.NewGraph[float64](gg.CellCount())
	g.SetGridWidth(gg.Width)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Passable(x, y) {
				continue
			}
			u := gg.Index(x, y)
			for _, d := range gg.neighborOffsets {
				if !gg.canStep(x, y, d[0], d[1]) {
					continue
				}
				w := 1.0
				if d[0] != 0 && d[1] != 0 {
					w = math.Sqrt2
				}
				// Both endpoints are in range and w is finite, so AddEdge cannot fail.
				_ = g.AddEdge(u, gg.Index(x+d[0], y+d[1]), w)
			}
		}
	}

	return g
}
