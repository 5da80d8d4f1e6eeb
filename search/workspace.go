package search

import (
	"github.com/katalvlaran/astart/core"
)

// noPred marks a node without predecessor in cameFrom.
const noPred = -1

// Workspace holds the per-search arrays so repeated searches can reuse their
// backing storage. Every search re-initialises the state it reads: g-scores
// unreached, no predecessors, nothing settled, empty frontier buffers and an
// empty queue.
//
// A Workspace belongs to one search at a time; give each goroutine its own.
type Workspace struct {
	dist     any // []W of the last weight domain used
	reached  []bool
	settled  []bool
	cameFrom []int

	frontier     []int
	nextFrontier []int
	nextPivots   []int

	// epoch stamps dedupe nodes within one round (roundMark) and within one
	// pivot pop (pivotMark) without clearing the arrays every time.
	roundMark  []uint32
	pivotMark  []uint32
	roundEpoch uint32
	pivotEpoch uint32

	queue entryPQ
}

// NewWorkspace returns an empty Workspace; buffers grow on first use.
func NewWorkspace() *Workspace { return &Workspace{} }

// prepare sizes every buffer to n nodes and resets the search state.
func (ws *Workspace) prepare(n int) {
	ws.reached = resize(ws.reached, n)
	ws.settled = resize(ws.settled, n)
	ws.cameFrom = resize(ws.cameFrom, n)
	clear(ws.reached)
	clear(ws.settled)
	for i := range ws.cameFrom {
		ws.cameFrom[i] = noPred
	}

	ws.frontier = ws.frontier[:0]
	ws.nextFrontier = ws.nextFrontier[:0]
	ws.nextPivots = ws.nextPivots[:0]
	ws.queue = ws.queue[:0]
}

// prepareMarks sizes and clears the epoch arrays used by Batched.
func (ws *Workspace) prepareMarks(n int) {
	ws.roundMark = resize(ws.roundMark, n)
	ws.pivotMark = resize(ws.pivotMark, n)
	clear(ws.roundMark)
	clear(ws.pivotMark)
	ws.roundEpoch, ws.pivotEpoch = 0, 0
}

func (ws *Workspace) nextRound() uint32 {
	ws.roundEpoch++
	if ws.roundEpoch == 0 {
		clear(ws.roundMark)
		ws.roundEpoch = 1
	}

	return ws.roundEpoch
}

func (ws *Workspace) nextPivotPop() uint32 {
	ws.pivotEpoch++
	if ws.pivotEpoch == 0 {
		clear(ws.pivotMark)
		ws.pivotEpoch = 1
	}

	return ws.pivotEpoch
}

// distances returns the g-score array for weight domain W, sized to n.
// Values are meaningful only where reached is true.
func distances[W core.Weight](ws *Workspace, n int) []W {
	d, _ := ws.dist.([]W)
	d = resize(d, n)
	ws.dist = d

	return d
}

func resize[T any](s []T, n int) []T {
	if cap(s) < n {
		return make([]T, n)
	}

	return s[:n]
}
