package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/astart/core"
)

// walker encapsulates mutable BFS state. The queue is a slice of node IDs
// consumed from head; Depth doubles as the visited set.
type walker[W core.Weight] struct {
	graph *core.Graph[W]
	opts  BFSOptions
	ctx   context.Context
	queue []int
	head  int
	res   *BFSResult
}

// BFS runs breadth-first search on g from start, ignoring arc weights,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any OnVisit error. On error the partial result is still returned.
//
// Complexity: O(V + E).
func BFS[W core.Weight](g *core.Graph[W], start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := g.NodeCount()
	w := &walker[W]{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, n),
		res: &BFSResult{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := range w.res.Depth {
		w.res.Depth[i] = -1
		w.res.Parent[i] = -1
	}

	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

// enqueue records depth and parent of id and appends it to the queue.
func (w *walker[W]) enqueue(id, d, parent int) {
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.queue = append(w.queue, id)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[W]) loop() error {
	for w.head < len(w.queue) {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		id := w.queue[w.head]
		w.head++
		if err := w.visit(id); err != nil {
			return err
		}
		w.enqueueNeighbors(id)
	}

	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker[W]) visit(id int) error {
	w.res.Order = append(w.res.Order, id)
	if err := w.opts.OnVisit(id, w.res.Depth[id]); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", id, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues each
// unseen neighbor in arc order.
func (w *walker[W]) enqueueNeighbors(id int) {
	next := w.res.Depth[id] + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, e := range w.graph.Neighbors(id) {
		if w.res.Depth[e.To] >= 0 || !w.opts.FilterNeighbor(id, e.To) {
			continue
		}
		w.enqueue(e.To, next, id)
	}
}
