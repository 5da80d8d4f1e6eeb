package bench_test

import (
	"bytes"
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/astart/bench"
	"github.com/katalvlaran/astart/heuristic"
	"github.com/katalvlaran/astart/search"
)

func smallConfig() bench.Config {
	cfg := bench.DefaultConfig()
	cfg.Width, cfg.Height = 24, 24
	cfg.Density = 0.2
	cfg.Seed = 3
	cfg.Queries = 40
	cfg.Workers = 4
	cfg.Modes = []bench.ModeConfig{
		{Strategy: search.StrategyClassic},
		{Strategy: search.StrategyBatched, K: 3},
		{Strategy: search.StrategyBatched, K: 3, Adaptive: true},
		{Strategy: search.StrategyBatched, K: 3, EarlyExit: true},
	}

	return cfg
}

func TestRun_RandomGrid(t *testing.T) {
	rep, err := bench.Run(context.Background(), smallConfig())
	require.NoError(t, err)

	assert.Equal(t, 24*24, rep.Nodes)
	assert.Equal(t, 40, rep.Queries)
	assert.Equal(t, 40, rep.Verified)
	assert.Equal(t, heuristic.Octile, rep.Heuristic)
	require.Len(t, rep.Modes, 4)

	// Exact strategies with a consistent heuristic always hit the optimum.
	for _, m := range rep.Modes[:3] {
		assert.Equal(t, 40, m.Found, m.Name)
		assert.Equal(t, 40, m.Optimal, m.Name)
		assert.Zero(t, m.Invalid, m.Name)
		assert.Zero(t, m.Inexact, m.Name)
		assert.Zero(t, m.MaxExcess, m.Name)
		assert.Positive(t, m.MeanPushes, m.Name)
	}

	greedy := rep.Modes[3]
	assert.Equal(t, "batched-k3-early", greedy.Name)
	assert.Equal(t, 40, greedy.Found)
	assert.Zero(t, greedy.Invalid, "early exit still returns valid paths")
	assert.GreaterOrEqual(t, greedy.MaxExcess, 0.0)

	assert.InDelta(t, 1.0, rep.Modes[0].Speedup, 1e-12)
}

func TestRun_Sparse(t *testing.T) {
	cfg := smallConfig()
	cfg.Kind = bench.KindSparse
	cfg.Nodes = 150
	cfg.Probability = 0.02
	cfg.MaxWeight = 6
	cfg.Heuristic = heuristic.Zero

	rep, err := bench.Run(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, 150, rep.Nodes)
	assert.Equal(t, 40, rep.Queries)
	assert.Equal(t, 40, rep.Verified)
	assert.Zero(t, rep.Opened)
	for _, m := range rep.Modes[:3] {
		assert.Equal(t, 40, m.Found, "bfs-picked queries are reachable: %s", m.Name)
		assert.Equal(t, 40, m.Optimal, m.Name)
	}
	assert.Zero(t, rep.Modes[3].Invalid)
}

func TestBuildWorkload_SparseQueriesAreDistinctReachable(t *testing.T) {
	cfg := smallConfig()
	cfg.Kind = bench.KindSparse
	cfg.Nodes = 100
	cfg.Probability = 0.03
	cfg.Heuristic = heuristic.Zero
	require.NoError(t, cfg.Validate())

	wl, err := bench.BuildWorkload(cfg)
	require.NoError(t, err)
	assert.Nil(t, wl.Grid)
	assert.Zero(t, wl.Graph.GridWidth())
	for _, q := range wl.Queries {
		assert.NotEqual(t, q.Start, q.Goal)
		_, err := search.Classic(wl.Graph, q.Start, q.Goal)
		assert.NoError(t, err)
	}
}

func TestRun_Deterministic(t *testing.T) {
	a, err := bench.Run(context.Background(), smallConfig())
	require.NoError(t, err)
	b, err := bench.Run(context.Background(), smallConfig())
	require.NoError(t, err)

	assert.Equal(t, a.Edges, b.Edges)
	assert.Equal(t, a.Opened, b.Opened)
	for i := range a.Modes {
		assert.Equal(t, a.Modes[i].MeanPushes, b.Modes[i].MeanPushes)
		assert.Equal(t, a.Modes[i].Optimal, b.Modes[i].Optimal)
	}
}

func TestRun_ConnectJoinsGrid(t *testing.T) {
	cfg := smallConfig()
	cfg.Density = 0.45
	cfg.Connectivity = 4
	cfg.Heuristic = heuristic.Manhattan
	rep, err := bench.Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Positive(t, rep.Opened)
	assert.Equal(t, 40, rep.Modes[0].Optimal)
}

const tinyMap = `type octile
height 3
width 4
map
..@.
.T..
....
`

func TestRun_MovingAI(t *testing.T) {
	cfg := bench.DefaultConfig()
	cfg.Map = writeFile(t, "tiny.map", tinyMap)
	cfg.Scenarios = writeFile(t, "tiny.map.scen",
		"version 1\n0\ttiny.map\t4\t3\t0\t0\t3\t0\t4.41421356\n1\ttiny.map\t4\t3\t0\t2\t3\t2\t3\n")

	rep, err := bench.Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Queries)
	assert.Equal(t, 2, rep.Verified)
	for _, m := range rep.Modes {
		assert.Equal(t, 2, m.Optimal, m.Name)
	}
}

func TestRun_VerifyCatchesWrongOptimum(t *testing.T) {
	cfg := bench.DefaultConfig()
	cfg.Map = writeFile(t, "tiny.map", tinyMap)
	cfg.Scenarios = writeFile(t, "tiny.map.scen", "version 1\n0\ttiny.map\t4\t3\t0\t0\t3\t0\t9\n")

	_, err := bench.Run(context.Background(), cfg)
	require.ErrorIs(t, err, bench.ErrVerify)

	cfg.Verify = false
	_, err = bench.Run(context.Background(), cfg)
	require.NoError(t, err)
}

func TestRun_BlockedScenarioCell(t *testing.T) {
	cfg := bench.DefaultConfig()
	cfg.Map = writeFile(t, "tiny.map", tinyMap)
	cfg.Scenarios = writeFile(t, "tiny.map.scen", "version 1\n0\ttiny.map\t4\t3\t2\t0\t3\t0\t1\n")

	_, err := bench.Run(context.Background(), cfg)
	require.ErrorIs(t, err, bench.ErrConfig)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bench.Run(ctx, smallConfig())
	require.ErrorIs(t, err, context.Canceled)
}

type countingObserver struct{ n atomic.Int64 }

func (o *countingObserver) ObserveSearch(search.Strategy, search.Stats, time.Duration, error) {
	o.n.Add(1)
}

func TestRun_Observer(t *testing.T) {
	obs := &countingObserver{}
	cfg := smallConfig()
	_, err := bench.Run(context.Background(), cfg, bench.WithObserver(obs))
	require.NoError(t, err)
	assert.Equal(t, int64(cfg.Queries*len(cfg.Modes)), obs.n.Load())
}

func TestReport_WriteText(t *testing.T) {
	rep, err := bench.Run(context.Background(), smallConfig())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, rep.WriteText(&buf))
	out := buf.String()
	assert.Contains(t, out, "cpu:")
	assert.Contains(t, out, "heuristic octile")
	for _, m := range rep.Modes {
		assert.Contains(t, out, m.Name)
	}
}
