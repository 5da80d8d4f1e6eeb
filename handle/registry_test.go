package handle_test

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/astart/core"
	"github.com/katalvlaran/astart/handle"
	"github.com/katalvlaran/astart/heuristic"
	"github.com/katalvlaran/astart/search"
)

// grid3 loads the 3×3 unit grid into a new handle of r.
func grid3(t *testing.T, r *handle.Registry[float64]) handle.Handle {
	t.Helper()
	h := r.Create(9)
	require.NoError(t, r.SetGridWidth(h, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			u := y*3 + x
			if x < 2 {
				require.NoError(t, r.AddEdge(h, u, u+1, 1))
				require.NoError(t, r.AddEdge(h, u+1, u, 1))
			}
			if y < 2 {
				require.NoError(t, r.AddEdge(h, u, u+3, 1))
				require.NoError(t, r.AddEdge(h, u+3, u, 1))
			}
		}
	}

	return h
}

func TestRegistry_Lifecycle(t *testing.T) {
	r := handle.New[float64]()
	assert.Zero(t, r.Len())

	a, b, c := r.Create(1), r.Create(2), r.Create(3)
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []handle.Handle{a, b, c}, r.Handles())
	assert.NotEqual(t, a, b)

	require.NoError(t, r.Delete(b))
	assert.Equal(t, []handle.Handle{a, c}, r.Handles())
	require.ErrorIs(t, r.Delete(b), handle.ErrUnknownHandle)

	require.ErrorIs(t, r.AddEdge(b, 0, 1, 1), handle.ErrUnknownHandle)
	require.ErrorIs(t, r.SetGridWidth(b, 2), handle.ErrUnknownHandle)
	_, _, err := r.SearchClassic(b, 0, 0, heuristic.Zero, nil, search.Unlimited)
	require.ErrorIs(t, err, handle.ErrUnknownHandle)
	_, _, err = r.SearchBatched(b, 0, 0, 2, false, false, heuristic.Zero, nil, search.Unlimited)
	require.ErrorIs(t, err, handle.ErrUnknownHandle)

	d := r.Create(0)
	assert.Equal(t, []handle.Handle{a, c, d}, r.Handles())
}

func TestRegistry_HandlesAreIndependent(t *testing.T) {
	r := handle.New[float64]()
	a, b := r.Create(2), r.Create(2)
	require.NoError(t, r.AddEdge(a, 0, 1, 1))

	path, n, err := r.SearchClassic(a, 0, 1, heuristic.Zero, nil, search.Unlimited)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, path)
	assert.Equal(t, 2, n)

	path, n, err = r.SearchClassic(b, 0, 1, heuristic.Zero, nil, search.Unlimited)
	require.ErrorIs(t, err, search.ErrNoPath)
	assert.Empty(t, path)
	assert.Zero(t, n)
}

func TestRegistry_GridScenario(t *testing.T) {
	r := handle.New[float64]()
	h := grid3(t, r)

	path, n, err := r.SearchClassic(h, 0, 8, heuristic.Manhattan, nil, search.Unlimited)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	g, err := r.Graph(h)
	require.NoError(t, err)
	cost, err := search.ValidatePath(g, path, 0, 8)
	require.NoError(t, err)
	assert.Equal(t, 4.0, cost)

	for _, adaptive := range []bool{false, true} {
		path, n, err := r.SearchBatched(h, 0, 8, 2, adaptive, false, heuristic.Manhattan, nil, search.Unlimited)
		require.NoError(t, err)
		assert.Equal(t, 5, n)
		cost, err := search.ValidatePath(g, path, 0, 8)
		require.NoError(t, err)
		assert.Equal(t, 4.0, cost, "adaptive=%v", adaptive)
	}
}

func TestRegistry_BatchedEarlyExit(t *testing.T) {
	r := handle.New[float64]()
	h := r.Create(4)
	// 0→1→3 costs 11 and is relaxed first; 0→2→3 costs 3.
	require.NoError(t, r.AddEdge(h, 0, 1, 1))
	require.NoError(t, r.AddEdge(h, 0, 2, 2))
	require.NoError(t, r.AddEdge(h, 1, 3, 10))
	require.NoError(t, r.AddEdge(h, 2, 3, 1))

	exact, n, err := r.SearchBatched(h, 0, 3, 2, false, false, heuristic.Zero, nil, search.Unlimited)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3}, exact)
	assert.Equal(t, 3, n)

	greedy, n, err := r.SearchBatched(h, 0, 3, 2, false, true, heuristic.Zero, nil, search.Unlimited)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3}, greedy)
	assert.Equal(t, 3, n)
}

func TestRegistry_TruncationReportsTrueLength(t *testing.T) {
	r := handle.New[float64]()
	h := grid3(t, r)

	path, n, err := r.SearchBatched(h, 0, 8, 3, false, false, heuristic.Zero, nil, 2)
	require.NoError(t, err)
	assert.Len(t, path, 2)
	assert.Equal(t, 0, path[0])
	assert.Equal(t, 5, n)
}

func TestRegistry_ArgumentErrors(t *testing.T) {
	r := handle.New[float64]()
	h := grid3(t, r)

	_, _, err := r.SearchBatched(h, 0, 8, 0, false, false, heuristic.Zero, nil, search.Unlimited)
	require.ErrorIs(t, err, search.ErrOptionViolation)

	_, _, err = r.SearchClassic(h, 0, 9, heuristic.Zero, nil, search.Unlimited)
	require.ErrorIs(t, err, search.ErrInvalidNode)
	assert.True(t, search.IsNoPath(err))

	_, _, err = r.SearchClassic(h, 0, 8, heuristic.External, nil, search.Unlimited)
	require.ErrorIs(t, err, heuristic.ErrTableRequired)

	_, _, err = r.SearchClassic(h, 0, 8, heuristic.External, make([]float64, 4), search.Unlimited)
	require.ErrorIs(t, err, heuristic.ErrTableTooSmall)

	require.ErrorIs(t, r.AddEdge(h, -1, 0, 1), core.ErrNegativeNode)
}

func TestRegistry_AddEdgeGrows(t *testing.T) {
	r := handle.New[uint32]()
	h := r.Create(0)
	require.NoError(t, r.AddEdge(h, 0, 4, 7))
	g, err := r.Graph(h)
	require.NoError(t, err)
	assert.Equal(t, 5, g.NodeCount())

	path, n, err := r.SearchBatched(h, 0, 4, 1, false, false, heuristic.Zero, nil, search.Unlimited)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4}, path)
	assert.Equal(t, 2, n)
}

func TestParse(t *testing.T) {
	r := handle.New[float64]()
	h := r.Create(1)
	back, err := handle.Parse(h.String())
	require.NoError(t, err)
	assert.Equal(t, h, back)

	_, err = handle.Parse("not-a-uuid")
	require.Error(t, err)
}

type countingObserver struct {
	mu    sync.Mutex
	calls map[search.Strategy]int
}

func (o *countingObserver) ObserveSearch(s search.Strategy, _ search.Stats, _ time.Duration, _ error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls[s]++
}

func TestRegistry_ObserverAndLogger(t *testing.T) {
	obs := &countingObserver{calls: map[search.Strategy]int{}}
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := handle.New[float64](handle.WithObserver(obs), handle.WithLogger(logger))
	h := grid3(t, r)

	_, _, err := r.SearchClassic(h, 0, 8, heuristic.Zero, nil, search.Unlimited)
	require.NoError(t, err)
	_, _, err = r.SearchBatched(h, 0, 8, 2, true, false, heuristic.Zero, nil, search.Unlimited)
	require.NoError(t, err)
	require.NoError(t, r.Delete(h))

	assert.Equal(t, 1, obs.calls[search.StrategyClassic])
	assert.Equal(t, 1, obs.calls[search.StrategyBatched])
	assert.Contains(t, buf.String(), "graph created")
	assert.Contains(t, buf.String(), "graph deleted")
	assert.Contains(t, buf.String(), h.String())
}

func TestRegistry_ConcurrentUse(t *testing.T) {
	r := handle.New[float64]()
	shared := grid3(t, r)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			own := r.Create(2)
			_ = r.AddEdge(own, 0, 1, 1)
			for goal := 0; goal < 9; goal++ {
				_, n, err := r.SearchBatched(shared, 0, goal, 2, false, false, heuristic.Manhattan, nil, search.Unlimited)
				assert.NoError(t, err)
				assert.Positive(t, n)
			}
			assert.NoError(t, r.Delete(own))
		}()
	}
	wg.Wait()
	assert.Equal(t, []handle.Handle{shared}, r.Handles())
}
