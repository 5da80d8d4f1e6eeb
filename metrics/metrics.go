// Package metrics exports search statistics as Prometheus collectors.
//
// A Recorder registers its collectors against the Registerer it is given,
// never the global default, and implements search.Observer so it can be
// passed straight to search.WithObserver or handle.WithObserver.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/astart/search"
)

// Outcome label values.
const (
	OutcomeFound       = "found"
	OutcomeNoPath      = "no_path"
	OutcomeInvalidNode = "invalid_node"
	OutcomeError       = "error"
)

// Recorder aggregates search.Stats per strategy.
type Recorder struct {
	Searches    *prometheus.CounterVec   // strategy, outcome
	Pushes      *prometheus.CounterVec   // strategy
	Expansions  *prometheus.CounterVec   // strategy
	Relaxations *prometheus.CounterVec   // strategy
	Pivots      *prometheus.CounterVec   // strategy
	Duration    *prometheus.HistogramVec // strategy
}

// NewRecorder creates the collectors under namespace and registers them
// with reg. It panics if reg already holds collectors of the same names,
// like promauto.
func NewRecorder(reg prometheus.Registerer, namespace string) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		Searches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Searches finished, by strategy and outcome.",
		}, []string{"strategy", "outcome"}),
		Pushes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queue_pushes_total",
			Help:      "Global priority-queue insertions.",
		}, []string{"strategy"}),
		Expansions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "expansions_total",
			Help:      "Nodes settled by a global pop.",
		}, []string{"strategy"}),
		Relaxations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "relaxations_total",
			Help:      "Edge scans that improved a g-score.",
		}, []string{"strategy"}),
		Pivots: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pivots_total",
			Help:      "Nodes re-queued after local rounds.",
		}, []string{"strategy"}),
		Duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Wall time of one search call.",
			// Grid queries run from microseconds to a few hundred milliseconds.
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"strategy"}),
	}
}

// ObserveSearch implements search.Observer.
func (r *Recorder) ObserveSearch(strategy search.Strategy, st search.Stats, elapsed time.Duration, err error) {
	s := string(strategy)
	r.Searches.WithLabelValues(s, Outcome(err)).Inc()
	r.Pushes.WithLabelValues(s).Add(float64(st.Pushes))
	r.Expansions.WithLabelValues(s).Add(float64(st.Expansions))
	r.Relaxations.WithLabelValues(s).Add(float64(st.Relaxations))
	r.Pivots.WithLabelValues(s).Add(float64(st.Pivots))
	r.Duration.WithLabelValues(s).Observe(elapsed.Seconds())
}

// Outcome maps a search error to its label value.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeFound
	case errors.Is(err, search.ErrNoPath):
		return OutcomeNoPath
	case errors.Is(err, search.ErrInvalidNode):
		return OutcomeInvalidNode
	default:
		return OutcomeError
	}
}

var _ search.Observer = (*Recorder)(nil)
