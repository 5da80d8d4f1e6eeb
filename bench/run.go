package bench

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"slices"
	"time"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/astart/core"
	"github.com/katalvlaran/astart/heuristic"
	"github.com/katalvlaran/astart/search"
)

// ErrVerify indicates that the classical baseline disagrees with the
// reference Dijkstra or with a scenario's recorded optimum.
var ErrVerify = errors.New("bench: baseline cost disagrees with reference")

// Costs closer than this (relative to max(1, |want|)) count as equal.
const (
	costTolerance     = 1e-9
	scenarioTolerance = 1e-5
)

// Option configures Run.
type Option func(*runConfig)

type runConfig struct {
	logger   *slog.Logger
	observer search.Observer
}

// WithLogger sets the logger for progress records. Default: discard.
func WithLogger(l *slog.Logger) Option {
	return func(rc *runConfig) { rc.logger = l }
}

// WithObserver attaches obs to every measured search.
func WithObserver(obs search.Observer) Option {
	return func(rc *runConfig) { rc.observer = obs }
}

// ModeReport aggregates one mode over all queries.
type ModeReport struct {
	Name           string
	Queries        int
	Found          int
	Optimal        int     // paths whose cost equals the baseline
	Invalid        int     // paths rejected by search.ValidatePath
	Inexact        int     // results with Exact == false
	MaxExcess      float64 // worst path cost above the baseline
	MeanMicros     float64
	StdMicros      float64
	P50Micros      float64
	MeanPushes     float64
	StdPushes      float64
	MeanExpansions float64
	Speedup        float64 // reference mode mean time / this mean time
}

// OptimalRate is Optimal/Queries, or 0 with no queries.
func (m ModeReport) OptimalRate() float64 {
	if m.Queries == 0 {
		return 0
	}

	return float64(m.Optimal) / float64(m.Queries)
}

// Report is the outcome of Run.
type Report struct {
	CPU       string
	Cores     int
	Procs     int
	Nodes     int
	Edges     int
	Opened    int
	Queries   int
	Verified  int
	Heuristic heuristic.Mode
	Modes     []ModeReport
}

type sample struct {
	micros     float64
	pushes     float64
	expansions float64
	cost       float64
	found      bool
	exact      bool
	invalid    bool
}

// Run builds the workload once, computes an exact classical baseline for
// every query, optionally verifies it, then measures every configured mode.
// Queries are spread over cfg.Workers goroutines; each owns a
// search.Workspace. Cancelling ctx stops the run between queries.
func Run(ctx context.Context, cfg Config, opts ...Option) (*Report, error) {
	rc := runConfig{logger: slog.New(slog.DiscardHandler)}
	for _, o := range opts {
		o(&rc)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Kind == KindGrid && cfg.Heuristic == heuristic.Manhattan && (cfg.Map != "" || cfg.Connectivity == 8) {
		rc.logger.Warn("manhattan overestimates diagonal moves; costs may exceed the optimum")
	}

	wl, err := BuildWorkload(cfg)
	if err != nil {
		return nil, err
	}
	g := wl.Graph
	rep := &Report{
		CPU:       cpuid.CPU.BrandName,
		Cores:     cpuid.CPU.PhysicalCores,
		Procs:     runtime.GOMAXPROCS(0),
		Nodes:     g.NodeCount(),
		Edges:     g.EdgeCount(),
		Opened:    wl.Opened,
		Queries:   len(wl.Queries),
		Heuristic: cfg.Heuristic,
	}
	rc.logger.Info("workload ready",
		slog.Int("nodes", rep.Nodes),
		slog.Int("edges", rep.Edges),
		slog.Int("queries", rep.Queries),
		slog.Int("opened", rep.Opened),
	)

	baseline, err := baselineCosts(ctx, g, wl.Queries, cfg.Workers)
	if err != nil {
		return nil, err
	}
	if cfg.Verify {
		if rep.Verified, err = verify(g, wl.Queries, baseline); err != nil {
			return nil, err
		}
		rc.logger.Info("baseline verified", slog.Int("queries", rep.Verified))
	}

	for _, m := range cfg.Modes {
		samples, err := measureMode(ctx, g, wl.Queries, cfg, m, rc)
		if err != nil {
			return nil, fmt.Errorf("bench: mode %s: %w", m.Name, err)
		}
		mr := summarize(m.Name, samples, baseline)
		rc.logger.Info("mode finished",
			slog.String("mode", mr.Name),
			slog.Float64("mean_us", mr.MeanMicros),
			slog.Float64("mean_pushes", mr.MeanPushes),
			slog.Int("optimal", mr.Optimal),
		)
		rep.Modes = append(rep.Modes, mr)
	}
	setSpeedup(rep.Modes, cfg.Modes)

	return rep, nil
}

// forEachChunk runs fn over [0, n) in chunks on at most workers goroutines.
// Each chunk gets its own Workspace.
func forEachChunk(ctx context.Context, n, workers int, fn func(ws *search.Workspace, i int) error) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	chunk := max(1, n/(4*workers))
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		eg.Go(func() error {
			ws := search.NewWorkspace()
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := fn(ws, i); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return eg.Wait()
}

// baselineCosts runs the classical search without heuristic, which is exact
// for any non-negative weights. Unreachable goals cost +Inf.
func baselineCosts(ctx context.Context, g *core.Graph[float64], queries []Query, workers int) ([]float64, error) {
	costs := make([]float64, len(queries))
	err := forEachChunk(ctx, len(queries), workers, func(ws *search.Workspace, i int) error {
		q := queries[i]
		res, err := search.Classic(g, q.Start, q.Goal, search.WithWorkspace(ws))
		switch {
		case err == nil:
			costs[i] = res.Cost
		case search.IsNoPath(err):
			costs[i] = math.Inf(1)
		default:
			return err
		}
		return nil
	})

	return costs, err
}

func measureMode(ctx context.Context, g *core.Graph[float64], queries []Query, cfg Config, m ModeConfig, rc runConfig) ([]sample, error) {
	samples := make([]sample, len(queries))
	err := forEachChunk(ctx, len(queries), cfg.Workers, func(ws *search.Workspace, i int) error {
		q := queries[i]
		opts := []search.Option{
			search.WithHeuristic(cfg.Heuristic),
			search.WithWorkspace(ws),
		}
		if rc.observer != nil {
			opts = append(opts, search.WithObserver(rc.observer))
		}

		var (
			res search.Result[float64]
			err error
		)
		began := time.Now()
		if m.Strategy == search.StrategyClassic {
			res, err = search.Classic(g, q.Start, q.Goal, opts...)
		} else {
			opts = append(opts,
				search.WithBatchSize(m.K),
				search.WithAdaptive(m.Adaptive),
				search.WithEarlyExit(m.EarlyExit),
			)
			res, err = search.Batched(g, q.Start, q.Goal, opts...)
		}
		s := sample{
			micros:     float64(time.Since(began).Nanoseconds()) / 1e3,
			pushes:     float64(res.Stats.Pushes),
			expansions: float64(res.Stats.Expansions),
			cost:       math.Inf(1),
		}
		switch {
		case err == nil:
			s.found, s.exact = true, res.Exact
			if s.cost, err = search.ValidatePath(g, res.Path, q.Start, q.Goal); err != nil {
				s.invalid = true
				rc.logger.Warn("invalid path", slog.Int("query", i), slog.Any("error", err))
			}
		case !search.IsNoPath(err):
			return err
		}
		samples[i] = s
		return nil
	})

	return samples, err
}

func summarize(name string, samples []sample, baseline []float64) ModeReport {
	mr := ModeReport{Name: name, Queries: len(samples)}
	if len(samples) == 0 {
		return mr
	}
	micros := make([]float64, len(samples))
	pushes := make([]float64, len(samples))
	expansions := make([]float64, len(samples))
	for i, s := range samples {
		micros[i], pushes[i], expansions[i] = s.micros, s.pushes, s.expansions
		if !s.found {
			continue
		}
		mr.Found++
		if !s.exact {
			mr.Inexact++
		}
		if s.invalid {
			mr.Invalid++
			continue
		}
		if sameCost(s.cost, baseline[i], costTolerance) {
			mr.Optimal++
		} else if d := s.cost - baseline[i]; d > mr.MaxExcess {
			mr.MaxExcess = d
		}
	}
	mr.MeanMicros, mr.StdMicros = stat.MeanStdDev(micros, nil)
	mr.MeanPushes, mr.StdPushes = stat.MeanStdDev(pushes, nil)
	mr.MeanExpansions = stat.Mean(expansions, nil)
	slices.Sort(micros)
	mr.P50Micros = stat.Quantile(0.5, stat.Empirical, micros, nil)

	return mr
}

// setSpeedup measures every mode against the first classic mode, or the
// first mode when none is classic.
func setSpeedup(reports []ModeReport, modes []ModeConfig) {
	if len(reports) == 0 {
		return
	}
	ref := 0
	for i, m := range modes {
		if m.Strategy == search.StrategyClassic {
			ref = i
			break
		}
	}
	for i := range reports {
		if reports[i].MeanMicros > 0 {
			reports[i].Speedup = reports[ref].MeanMicros / reports[i].MeanMicros
		}
	}
}

func sameCost(got, want, tol float64) bool {
	if math.IsInf(want, 1) || math.IsInf(got, 1) {
		return math.IsInf(want, 1) && math.IsInf(got, 1)
	}

	return math.Abs(got-want) <= tol*math.Max(1, math.Abs(want))
}
