package gridgraph

import (
	"errors"
	"sync"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoBridge indicates no corridor of cells joins the two components.
	ErrNoBridge = errors.New("gridgraph: no bridge between specified components")
	// ErrCellIndex indicates a cell index outside the grid.
	ErrCellIndex = errors.New("gridgraph: cell index out of range")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String renders the connectivity as "4" or "8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "8"
	}

	return "4"
}

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// PassableThreshold is the minimum cell value a path may enter.
	PassableThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// CornerCutting lets a diagonal step pass a blocked orthogonal
	// neighbor. Ignored under Conn4.
	CornerCutting bool
}

// DefaultGridOptions returns a GridOptions with default settings:
// PassableThreshold=1 (values ≥1 are passable), Conn=Conn4, no corner cutting.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		PassableThreshold: 1,
		Conn:              Conn4,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the original input value.
// neighborOffsets is precomputed from opts.Conn; component labels are
// computed on first use.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	opts            GridOptions
	neighborOffsets [][2]int

	labelOnce sync.Once
	comps     [][]int
	labels    []int
}
