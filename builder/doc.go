// Package builder generates deterministic graph fixtures for tests and
// benchmarks, in the functional-options style used across astart.
//
// A Constructor mutates a *core.Graph[W] using a resolved builderConfig:
//
//	g, err := builder.BuildGraph[float64](
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 10)},
//	    builder.Path[float64](1000),
//	    builder.RandomSparse[float64](1000, 0.004),
//	)
//
// Constructors address nodes 0..n-1 of the shared graph, so composing them
// overlays topologies on the same node set (above: a random graph with a
// path backbone, hence connected).
//
// Configuration:
//
//	WithSeed / WithRand   RNG for stochastic constructors and weights.
//	WithWeightFn          per-link weight distribution (default constant 1).
//	WithDirected          one arc per link instead of a symmetric pair.
//
// Topologies: Path(n), Cycle(n), Complete(n), Grid(rows, cols),
// RandomSparse(n, p).
//
// Guarantees:
//
//   - Same options, seed and constructor order give identical graphs.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     constructor name. Option constructors panic on meaningless input.
//   - Links are undirected by default: u→v and v→u with the same weight.
package builder
