package heuristic

import (
	"fmt"
	"math"
)

// octileDiag is √2 − 2, the saving of one diagonal step over two cardinal steps.
const octileDiag = math.Sqrt2 - 2

// Estimate returns a non-negative estimate of the cost from node to goal.
//
// width is the grid width used by Manhattan and Octile; when width ≤ 0 those
// modes return 0. External returns table[node], or 0 when node falls outside
// the table. Unknown modes return 0.
//
// Complexity: O(1). Pure; safe for concurrent use.
func Estimate(node, goal, width int, mode Mode, table []float64) float64 {
	switch mode {
	case Manhattan:
		if width <= 0 {
			return 0
		}
		dx, dy := gridDelta(node, goal, width)
		return dx + dy
	case Octile:
		if width <= 0 {
			return 0
		}
		dx, dy := gridDelta(node, goal, width)
		return octile(dx, dy)
	case External:
		if node < 0 || node >= len(table) {
			return 0
		}
		return table[node]
	default:
		return 0
	}
}

// gridDelta returns |dx| and |dy| between two row-major cell IDs.
func gridDelta(a, b, width int) (dx, dy float64) {
	ax, ay := a%width, a/width
	bx, by := b%width, b/width

	return math.Abs(float64(ax - bx)), math.Abs(float64(ay - by))
}

func octile(dx, dy float64) float64 {
	return (dx + dy) + octileDiag*math.Min(dx, dy)
}

// Evaluator is an Estimate bound to one goal, grid width, mode and table.
// The mode switch is resolved once in New; H is then a direct call.
type Evaluator struct {
	mode Mode
	goal int
	h    func(node int) float64
}

// New validates the configuration for a graph of nodeCount nodes and returns
// an Evaluator for goal.
//
// Errors:
//   - ErrUnknownMode   if mode is outside the closed set.
//   - ErrTableRequired if mode is External and table is nil.
//   - ErrTableTooSmall if mode is External and len(table) < nodeCount.
func New(mode Mode, goal, width, nodeCount int, table []float64) (Evaluator, error) {
	ev := Evaluator{mode: mode, goal: goal}

	switch mode {
	case Zero:
		ev.h = func(int) float64 { return 0 }
	case Manhattan, Octile:
		if width <= 0 {
			ev.h = func(int) float64 { return 0 }
			break
		}
		gx, gy := goal%width, goal/width
		diag := mode == Octile
		ev.h = func(node int) float64 {
			dx := math.Abs(float64(node%width - gx))
			dy := math.Abs(float64(node/width - gy))
			if diag {
				return octile(dx, dy)
			}
			return dx + dy
		}
	case External:
		if table == nil {
			return Evaluator{}, ErrTableRequired
		}
		if len(table) < nodeCount {
			return Evaluator{}, fmt.Errorf("%w: len=%d nodes=%d", ErrTableTooSmall, len(table), nodeCount)
		}
		ev.h = func(node int) float64 { return table[node] }
	default:
		return Evaluator{}, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}

	return ev, nil
}

// H returns the estimate for node. The zero Evaluator returns 0.
func (e Evaluator) H(node int) float64 {
	if e.h == nil {
		return 0
	}

	return e.h(node)
}

// Mode returns the mode the Evaluator was built with.
func (e Evaluator) Mode() Mode { return e.mode }

// Goal returns the goal node the Evaluator estimates towards.
func (e Evaluator) Goal() int { return e.goal }
