package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/astart/core"
)

// Constructor applies one topology to g using the resolved configuration.
// Constructors address nodes 0..n-1 and grow g as needed.
type Constructor[W core.Weight] func(g *core.Graph[W], cfg builderConfig) error

// BuildGraph creates an empty graph, resolves bopts once and applies every
// constructor in order. The first failing constructor aborts the build.
//
// Complexity: the sum of the constructors' costs.
func BuildGraph[W core.Weight](bopts []BuilderOption, cons ...Constructor[W]) (*core.Graph[W], error) {
	cfg := newBuilderConfig(bopts...)
	g := core.NewGraph[W](0)
	for i, c := range cons {
		if c == nil {
			return nil, fmt.Errorf("BuildGraph: constructor #%d is nil: %w", i, ErrConstructFailed)
		}
		if err := c(g, cfg); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// link adds u→v, and v→u unless cfg.directed, with one drawn weight.
func link[W core.Weight](g *core.Graph[W], cfg builderConfig, u, v int) error {
	w := toWeight[W](cfg.weightFn(cfg.rng))
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%w: %w", ErrConstructFailed, err)
	}
	if cfg.directed {
		return nil
	}
	if err := g.AddEdge(v, u, w); err != nil {
		return fmt.Errorf("%w: %w", ErrConstructFailed, err)
	}

	return nil
}

// toWeight converts a drawn weight into W, rounding to the nearest integer
// when W is an unsigned kind instead of truncating.
func toWeight[W core.Weight](x float64) W {
	half := 0.5
	if W(half) == 0 {
		return W(math.Round(x))
	}

	return W(x)
}
