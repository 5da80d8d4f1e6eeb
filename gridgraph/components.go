package gridgraph

// ConnectedComponents finds all contiguous regions of passable cells,
// according to the grid's connectivity and corner-cutting rule, so two cells
// share a component exactly when ToStore links them by some path.
// Returns a slice of components; each component is a slice of cell indices
// (row-major) in BFS discovery order, components ordered by their first cell.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for labels and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	comps, _ := gg.components()

	return comps
}

// ComponentLabels returns, for every cell index, the index of its component
// in ConnectedComponents(), or -1 for a blocked cell.
func (gg *GridGraph) ComponentLabels() []int {
	_, labels := gg.components()
	out := make([]int, len(labels))
	copy(out, labels)

	return out
}

// SameComponent reports whether cells a and b are both passable and
// mutually reachable. Out-of-range indices report false.
// The labelling is computed once and cached; the grid is immutable.
func (gg *GridGraph) SameComponent(a, b int) bool {
	n := gg.CellCount()
	if a < 0 || b < 0 || a >= n || b >= n {
		return false
	}
	_, labels := gg.components()

	return labels[a] >= 0 && labels[a] == labels[b]
}

func (gg *GridGraph) components() ([][]int, []int) {
	gg.labelOnce.Do(func() {
		gg.comps, gg.labels = gg.label()
	})

	return gg.comps, gg.labels
}

func (gg *GridGraph) label() ([][]int, []int) {
	labels := make([]int, gg.CellCount())
	for i := range labels {
		labels[i] = -1
	}
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			i0 := gg.Index(x, y)
			if !gg.Passable(x, y) || labels[i0] >= 0 {
				continue
			}
			id := len(comps)
			// BFS to collect component
			queue := []int{i0}
			labels[i0] = id
			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gg.Coordinate(queue[qi])
				for _, d := range gg.neighborOffsets {
					if !gg.canStep(ux, uy, d[0], d[1]) {
						continue
					}
					vi := gg.Index(ux+d[0], uy+d[1])
					if labels[vi] < 0 {
						labels[vi] = id
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps, labels
}

// Largest returns the index of the biggest component, or -1 when the grid
// has no passable cell. Ties go to the lower index.
func (gg *GridGraph) Largest() int {
	comps := gg.ConnectedComponents()
	best := -1
	for i, c := range comps {
		if best < 0 || len(c) > len(comps[best]) {
			best = i
		}
	}

	return best
}
