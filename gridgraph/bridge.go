package gridgraph

import (
	"container/list"
	"fmt"
)

// Bridge finds the fewest blocked cells that must be opened to join
// component srcComp to component dstComp, as identified by
// ConnectedComponents(). Each blocked cell on the corridor costs 1.
// Returns the corridor as row-major cell indices (from a srcComp cell to a
// dstComp cell, both ends included) and the number of blocked cells on it.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source 0-1 BFS from all srcComp cells over orthogonal moves:
//     • Moving into a passable cell → cost 0
//     • Moving into a blocked cell  → cost 1
//  3. Stop when any dstComp cell is popped.
//  4. Reconstruct the corridor via predecessors.
//
// Orthogonal moves keep the corridor usable under both Conn4 and Conn8,
// whatever the corner-cutting rule.
//
// Complexity: O(W·H), Memory: O(W·H).
func (gg *GridGraph) Bridge(srcComp, dstComp int) (path []int, cost int, err error) {
	comps, labels := gg.components()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, fmt.Errorf("%w: %d→%d of %d", ErrComponentIndex, srcComp, dstComp, len(comps))
	}

	n := gg.CellCount()
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0-1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	for _, i := range comps[srcComp] {
		dist[i] = 0
		dq.PushFront(i)
	}

	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if labels[u] == dstComp {
			target = u
			break
		}
		ux, uy := gg.Coordinate(u)
		for _, d := range offsets4 {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) {
				continue
			}
			v := gg.Index(vx, vy)
			step := 0
			if !gg.Passable(vx, vy) {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoBridge
	}
	for at := target; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[target], nil
}

// Opened returns a copy of the grid in which every listed cell holds at
// least PassableThreshold. The receiver is not modified.
func (gg *GridGraph) Opened(cells []int) (*GridGraph, error) {
	values := make([][]int, gg.Height)
	for y := range values {
		values[y] = append([]int(nil), gg.CellValues[y]...)
	}
	for _, c := range cells {
		if c < 0 || c >= gg.CellCount() {
			return nil, fmt.Errorf("%w: %d", ErrCellIndex, c)
		}
		x, y := gg.Coordinate(c)
		values[y][x] = max(values[y][x], gg.opts.PassableThreshold)
	}

	return NewGridGraph(values, gg.opts)
}

// Connect opens the cheapest corridor from every other component into the
// largest one, in component order, and returns the resulting grid together
// with the number of cells opened. A grid with at most one component is
// returned unchanged.
func (gg *GridGraph) Connect() (*GridGraph, int, error) {
	cur, opened := gg, 0
	for {
		comps := cur.ConnectedComponents()
		if len(comps) <= 1 {
			return cur, opened, nil
		}
		main := cur.Largest()
		other := 0
		if other == main {
			other = 1
		}
		path, cost, err := cur.Bridge(other, main)
		if err != nil {
			return nil, opened, err
		}
		if cur, err = cur.Opened(path); err != nil {
			return nil, opened, err
		}
		opened += cost
	}
}
