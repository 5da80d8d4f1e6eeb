package heuristic_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/astart/heuristic"
)

// TestEstimate_Modes checks each mode on a 5-wide grid from node 0 to node 13 (3,2).
func TestEstimate_Modes(t *testing.T) {
	table := make([]float64, 25)
	table[0] = 7.5

	cases := []struct {
		name string
		mode heuristic.Mode
		want float64
	}{
		{"Zero", heuristic.Zero, 0},
		{"Manhattan", heuristic.Manhattan, 5},
		{"Octile", heuristic.Octile, 5 + (math.Sqrt2-2)*2},
		{"External", heuristic.External, 7.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := heuristic.Estimate(0, 13, 5, tc.mode, table)
			assert.InDelta(t, tc.want, got, 1e-12)
		})
	}
}

// TestEstimate_NoGridWidth returns 0 for grid modes when the width is unset.
func TestEstimate_NoGridWidth(t *testing.T) {
	for _, m := range []heuristic.Mode{heuristic.Manhattan, heuristic.Octile} {
		assert.Zero(t, heuristic.Estimate(0, 13, 0, m, nil), m.String())
		assert.Zero(t, heuristic.Estimate(0, 13, -3, m, nil), m.String())
	}
}

// TestEstimate_ExternalOutOfRange returns 0 instead of panicking.
func TestEstimate_ExternalOutOfRange(t *testing.T) {
	assert.Zero(t, heuristic.Estimate(4, 0, 0, heuristic.External, []float64{1, 2}))
	assert.Zero(t, heuristic.Estimate(-1, 0, 0, heuristic.External, []float64{1, 2}))
	assert.Zero(t, heuristic.Estimate(0, 0, 0, heuristic.Mode(42), nil))
}

// TestOctile_NeverExceedsDiagonalPath confirms octile ≤ Manhattan and equals
// the true 8-connected cost on an open grid.
func TestOctile_NeverExceedsDiagonalPath(t *testing.T) {
	const w = 8
	for node := 0; node < w*w; node++ {
		o := heuristic.Estimate(node, w*w-1, w, heuristic.Octile, nil)
		m := heuristic.Estimate(node, w*w-1, w, heuristic.Manhattan, nil)
		require.LessOrEqual(t, o, m+1e-12)

		dx := float64(w - 1 - node%w)
		dy := float64(w - 1 - node/w)
		exact := math.Sqrt2*math.Min(dx, dy) + math.Abs(dx-dy)
		require.InDelta(t, exact, o, 1e-9)
	}
}

// TestNew_Validation covers the table and mode checks.
func TestNew_Validation(t *testing.T) {
	_, err := heuristic.New(heuristic.External, 0, 0, 4, nil)
	require.ErrorIs(t, err, heuristic.ErrTableRequired)

	_, err = heuristic.New(heuristic.External, 0, 0, 4, []float64{1, 2, 3})
	require.ErrorIs(t, err, heuristic.ErrTableTooSmall)

	_, err = heuristic.New(heuristic.Mode(9), 0, 0, 4, nil)
	require.ErrorIs(t, err, heuristic.ErrUnknownMode)

	ev, err := heuristic.New(heuristic.External, 2, 0, 3, []float64{3, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, 2.0, ev.H(1))
	assert.Equal(t, heuristic.External, ev.Mode())
	assert.Equal(t, 2, ev.Goal())
}

// TestEvaluator_MatchesEstimate ensures the bound evaluator agrees with Estimate.
func TestEvaluator_MatchesEstimate(t *testing.T) {
	const w, goal = 7, 30
	for _, m := range []heuristic.Mode{heuristic.Zero, heuristic.Manhattan, heuristic.Octile} {
		ev, err := heuristic.New(m, goal, w, w*w, nil)
		require.NoError(t, err)
		for node := 0; node < w*w; node++ {
			require.InDelta(t, heuristic.Estimate(node, goal, w, m, nil), ev.H(node), 1e-12, "%s node=%d", m, node)
		}
	}
	assert.Zero(t, heuristic.Evaluator{}.H(3))
}

// TestEvaluator_ConcurrentUse shares one Evaluator across goroutines.
func TestEvaluator_ConcurrentUse(t *testing.T) {
	ev, err := heuristic.New(heuristic.Manhattan, 99, 10, 100, nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			assert.Equal(t, float64(18-(n%10)-(n/10)), ev.H(n))
		}(i)
	}
	wg.Wait()
}

// TestParseMode_RoundTrip checks names, aliases and text marshalling.
func TestParseMode_RoundTrip(t *testing.T) {
	cases := map[string]heuristic.Mode{
		"zero":      heuristic.Zero,
		"Dijkstra":  heuristic.Zero,
		"MANHATTAN": heuristic.Manhattan,
		" octile ":  heuristic.Octile,
		"external":  heuristic.External,
	}
	for in, want := range cases {
		got, err := heuristic.ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := heuristic.ParseMode("euclid")
	require.ErrorIs(t, err, heuristic.ErrUnknownMode)

	var m heuristic.Mode
	require.NoError(t, m.UnmarshalText([]byte("octile")))
	text, err := m.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "octile", string(text))

	_, err = heuristic.Mode(-1).MarshalText()
	require.ErrorIs(t, err, heuristic.ErrUnknownMode)
	assert.Equal(t, "mode(-1)", heuristic.Mode(-1).String())
}
