package handle

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/tidwall/btree"

	"github.com/katalvlaran/astart/core"
	"github.com/katalvlaran/astart/heuristic"
	"github.com/katalvlaran/astart/search"
)

// ErrUnknownHandle indicates a handle that was never created or was deleted.
var ErrUnknownHandle = errors.New("handle: unknown graph handle")

// Handle identifies one graph inside a Registry.
type Handle uuid.UUID

// String returns the canonical UUID text form.
func (h Handle) String() string { return uuid.UUID(h).String() }

// Parse reads a Handle from its text form.
func Parse(s string) (Handle, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return Handle{}, fmt.Errorf("handle: %w", err)
	}

	return Handle(id), nil
}

type entry[W core.Weight] struct {
	seq uint64
	h   Handle
	g   *core.Graph[W]
}

// Registry owns graphs keyed by Handle. The zero value is not usable; call New.
type Registry[W core.Weight] struct {
	mu    sync.RWMutex
	byID  map[Handle]*entry[W]
	order *btree.BTreeG[*entry[W]] // creation order
	seq   uint64

	observer search.Observer
	logger   *slog.Logger
}

// Option configures a Registry.
type Option func(*config)

type config struct {
	observer search.Observer
	logger   *slog.Logger
}

// WithObserver attaches obs to every search run through the Registry.
func WithObserver(obs search.Observer) Option {
	return func(c *config) { c.observer = obs }
}

// WithLogger sets the logger for lifecycle events and per-search debug records.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// New returns an empty Registry with weight domain W.
func New[W core.Weight](opts ...Option) *Registry[W] {
	var c config
	for _, o := range opts {
		o(&c)
	}

	// The registry mutex guards the tree.
	order := btree.NewBTreeGOptions(func(a, b *entry[W]) bool { return a.seq < b.seq },
		btree.Options{NoLocks: true})

	return &Registry[W]{
		byID:     make(map[Handle]*entry[W]),
		order:    order,
		observer: c.observer,
		logger:   c.logger,
	}
}

// Create allocates a graph with nodeCount nodes and returns its handle.
// A negative nodeCount is treated as zero.
func (r *Registry[W]) Create(nodeCount int) Handle {
	e := &entry[W]{h: Handle(uuid.New()), g: core.NewGraph[W](nodeCount)}

	r.mu.Lock()
	r.seq++
	e.seq = r.seq
	r.byID[e.h] = e
	r.order.Set(e)
	r.mu.Unlock()

	if r.logger != nil {
		r.logger.Debug("graph created", slog.String("handle", e.h.String()), slog.Int("nodes", nodeCount))
	}

	return e.h
}

func (r *Registry[W]) lookup(h Handle) (*core.Graph[W], error) {
	r.mu.RLock()
	e, ok := r.byID[h]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownHandle, h)
	}

	return e.g, nil
}

// Graph returns the store behind h for direct read access.
func (r *Registry[W]) Graph(h Handle) (*core.Graph[W], error) { return r.lookup(h) }

// SetGridWidth marks the graph behind h as a row-major grid of the given width.
func (r *Registry[W]) SetGridWidth(h Handle, width int) error {
	g, err := r.lookup(h)
	if err != nil {
		return err
	}
	g.SetGridWidth(width)

	return nil
}

// AddEdge adds the arc u→v to the graph behind h, growing it as needed.
func (r *Registry[W]) AddEdge(h Handle, u, v int, w W) error {
	g, err := r.lookup(h)
	if err != nil {
		return err
	}

	return g.AddEdge(u, v, w)
}

// SearchClassic runs the classical best-first search on the graph behind h.
// maxLen caps the returned path; search.Unlimited disables the cap.
func (r *Registry[W]) SearchClassic(h Handle, start, goal int, mode heuristic.Mode, table []float64, maxLen int) ([]int, int, error) {
	g, err := r.lookup(h)
	if err != nil {
		return nil, 0, err
	}
	res, err := search.Classic(g, start, goal, r.searchOptions(mode, table, maxLen)...)

	return r.finish(res, err)
}

// SearchBatched runs the batched-frontier search with k local rounds per
// pivot pop on the graph behind h. With earlyExit false the search is exact:
// a goal reached during a local round is certified by the global queue
// before returning. With earlyExit true it returns on local discovery and
// the path may be costlier than optimal.
func (r *Registry[W]) SearchBatched(h Handle, start, goal, k int, adaptive, earlyExit bool, mode heuristic.Mode, table []float64, maxLen int) ([]int, int, error) {
	g, err := r.lookup(h)
	if err != nil {
		return nil, 0, err
	}
	opts := append(r.searchOptions(mode, table, maxLen),
		search.WithBatchSize(k),
		search.WithAdaptive(adaptive),
		search.WithEarlyExit(earlyExit),
	)
	res, err := search.Batched(g, start, goal, opts...)

	return r.finish(res, err)
}

func (r *Registry[W]) searchOptions(mode heuristic.Mode, table []float64, maxLen int) []search.Option {
	opts := []search.Option{
		search.WithHeuristic(mode),
		search.WithHeuristicTable(table),
		search.WithMaxPathLen(maxLen),
	}
	if r.observer != nil {
		opts = append(opts, search.WithObserver(r.observer))
	}
	if r.logger != nil {
		opts = append(opts, search.WithLogger(r.logger))
	}

	return opts
}

func (r *Registry[W]) finish(res search.Result[W], err error) ([]int, int, error) {
	if err != nil {
		return []int{}, 0, err
	}

	return res.Path, res.Length, nil
}

// Delete releases the graph behind h. Deleting twice returns ErrUnknownHandle.
func (r *Registry[W]) Delete(h Handle) error {
	r.mu.Lock()
	e, ok := r.byID[h]
	if ok {
		delete(r.byID, h)
		r.order.Delete(e)
	}
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownHandle, h)
	}
	if r.logger != nil {
		r.logger.Debug("graph deleted", slog.String("handle", h.String()))
	}

	return nil
}

// Handles lists live handles in creation order.
func (r *Registry[W]) Handles() []Handle {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Handle, 0, r.order.Len())
	r.order.Scan(func(e *entry[W]) bool {
		out = append(out, e.h)
		return true
	})

	return out
}

// Len returns the number of live handles.
func (r *Registry[W]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byID)
}
