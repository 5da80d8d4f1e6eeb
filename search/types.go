package search

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/astart/core"
	"github.com/katalvlaran/astart/heuristic"
)

// Sentinel errors returned by Classic, Batched and Reconstruct.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrInvalidNode indicates that start or goal is outside [0, NodeCount()).
	ErrInvalidNode = errors.New("search: start or goal is not a node of the graph")

	// ErrNoPath indicates the queue drained without reaching the goal.
	ErrNoPath = errors.New("search: no path between start and goal")

	// ErrReconstructionOverflow indicates a cyclic or broken predecessor chain.
	// It signals a violated invariant, never an expected "no path" outcome.
	ErrReconstructionOverflow = errors.New("search: predecessor chain is corrupted")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrInvalidPath indicates a path that does not follow existing edges
	// from start to goal.
	ErrInvalidPath = errors.New("search: path is not a valid start→goal walk")
)

// IsNoPath reports whether err means "no path" to the caller: the goal is
// unreachable or start/goal is not a node at all.
func IsNoPath(err error) bool {
	return errors.Is(err, ErrNoPath) || errors.Is(err, ErrInvalidNode)
}

// DefaultBatchSize is the number of local relaxation rounds per pivot pop
// used by Batched when WithBatchSize is not given.
const DefaultBatchSize = 5

// Unlimited disables path truncation. It is the default MaxPathLen.
const Unlimited = -1

// Strategy names a search strategy in observer callbacks and metrics labels.
type Strategy string

const (
	// StrategyClassic is the one-node-at-a-time best-first search.
	StrategyClassic Strategy = "classic"
	// StrategyBatched is the batched-frontier search.
	StrategyBatched Strategy = "batched"
)

// Observer receives one callback per finished search.
// It is called synchronously on the searching goroutine.
type Observer interface {
	ObserveSearch(strategy Strategy, stats Stats, elapsed time.Duration, err error)
}

// Stats counts the work done by one search call.
type Stats struct {
	Pops        int // global queue pops, stale ones included
	StalePops   int // pops discarded because the node was already settled
	Pushes      int // global queue insertions, the start entry included
	Expansions  int // nodes settled by a global pop
	EdgeScans   int // outgoing edges examined
	Relaxations int // edge scans that improved a g-score
	Rounds      int // local relaxation rounds (Batched only)
	Pivots      int // nodes re-queued after local rounds (Batched only)
}

// Result is the outcome of one search.
//
// Path holds at most MaxPathLen node IDs from start towards goal; Length is
// the untruncated node count of the found path, so len(Path) < Length means
// the output was cut. Cost is the goal's g-score at return. For an exact
// search with a consistent heuristic it equals the weight sum of the full
// path; after an early exit or with an inadmissible heuristic the path may
// be cheaper than Cost, never dearer.
// Exact is false only when Batched returned through WithEarlyExit before the
// goal was certified by a global pop.
type Result[W core.Weight] struct {
	Path   []int
	Length int
	Cost   W
	Found  bool
	Exact  bool
	Stats  Stats
}

// Options configures Classic and Batched.
//
// Heuristic  – estimate mode; default heuristic.Zero (Dijkstra).
// Table      – per-node estimates for heuristic.External; read-only.
// MaxPathLen – output truncation; Unlimited (default) or ≥ 0.
// BatchSize  – k, local rounds per pivot pop (Batched only); ≥ 1.
// Adaptive   – divert nodes whose estimate grows into pivots (Batched only).
// EarlyExit  – return as soon as a local round reaches the goal (Batched only).
type Options struct {
	Heuristic  heuristic.Mode
	Table      []float64
	MaxPathLen int
	BatchSize  int
	Adaptive   bool
	EarlyExit  bool

	// Workspace, when set, supplies reusable buffers. Not safe for concurrent use.
	Workspace *Workspace

	// Observer, when set, is notified after every search.
	Observer Observer

	// Logger, when set, receives one debug record per search.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// Option configures a search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// DefaultOptions returns the defaults: Zero heuristic, no truncation,
// BatchSize = DefaultBatchSize, exact non-adaptive batching, fresh buffers.
func DefaultOptions() Options {
	return Options{
		Heuristic:  heuristic.Zero,
		MaxPathLen: Unlimited,
		BatchSize:  DefaultBatchSize,
	}
}

// WithHeuristic selects the heuristic mode.
func WithHeuristic(mode heuristic.Mode) Option {
	return func(o *Options) {
		if !mode.Valid() {
			o.err = fmt.Errorf("%w: %w: %d", ErrOptionViolation, heuristic.ErrUnknownMode, int(mode))
			return
		}
		o.Heuristic = mode
	}
}

// WithHeuristicTable supplies per-node estimates for heuristic.External.
// The slice is read, never written, and must outlive the call.
func WithHeuristicTable(table []float64) Option {
	return func(o *Options) { o.Table = table }
}

// WithMaxPathLen truncates Result.Path to at most n nodes.
//
//	n ≥ 0:     truncate silently (Result.Length keeps the true length)
//	Unlimited: no truncation
//	n < -1:    invalid option → ErrOptionViolation
func WithMaxPathLen(n int) Option {
	return func(o *Options) {
		if n < Unlimited {
			o.err = fmt.Errorf("%w: MaxPathLen cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPathLen = n
	}
}

// WithBatchSize sets k, the number of local rounds per pivot pop.
// k = 1 pushes every improved neighbour, like Classic. k < 1 is invalid.
func WithBatchSize(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: BatchSize must be ≥ 1 (%d)", ErrOptionViolation, k)
			return
		}
		o.BatchSize = k
	}
}

// WithAdaptive enables adaptive pivot selection: a relaxed node whose
// estimate exceeds that of the node it was reached from is re-queued at once
// instead of being expanded further in the current batch.
func WithAdaptive(on bool) Option {
	return func(o *Options) { o.Adaptive = on }
}

// WithEarlyExit lets Batched return as soon as a local round relaxes the
// goal, before a global pop certifies its cost. Faster, but the path may be
// costlier than optimal and Result.Exact is false. Off by default.
func WithEarlyExit(on bool) Option {
	return func(o *Options) { o.EarlyExit = on }
}

// WithWorkspace reuses the buffers of ws instead of allocating per call.
func WithWorkspace(ws *Workspace) Option {
	return func(o *Options) { o.Workspace = ws }
}

// WithObserver registers an Observer notified after the search.
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.Observer = obs }
}

// WithLogger attaches a structured logger for per-search debug records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
