package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator, called once per link.
	weightFn WeightFn
	// directed adds a single arc per link.
	directed bool
}

// newBuilderConfig returns deterministic defaults (no RNG, constant weight
// DefaultEdgeWeight, undirected links) with opts applied in order.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{weightFn: DefaultWeightFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
