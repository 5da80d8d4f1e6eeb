// Package astart is a shortest-path kernel for large sparse graphs that
// compares the classical A*/Dijkstra loop with a batched-frontier variant.
//
// The batched strategy pops one pivot from the global priority queue and
// then relaxes outward for up to k local rounds before touching the queue
// again, trading a few redundant relaxations for far fewer heap operations.
//
// Everything lives in subpackages:
//
//	core/       index-addressed adjacency store, generic over the weight type
//	heuristic/  zero, Manhattan, octile and external per-node estimates
//	search/     Classic and Batched strategies, Workspace, path reconstruction
//	gridgraph/  2D cell grids: components, bridging, export to core.Graph
//	movingai/   MovingAI .map / .scen benchmark formats
//	builder/    deterministic graph fixtures (paths, lattices, G(n,p))
//	bfs/        unweighted reachability and fewest-hop trees
//	handle/     registry of independent graphs addressed by opaque handles
//	metrics/    Prometheus recorder implementing search.Observer
//	bench/      YAML-driven benchmark harness with a gonum Dijkstra oracle
//
// Quick example:
//
//	g := core.NewGraph[float64](4)
//	_ = g.AddEdge(0, 1, 1)
//	_ = g.AddEdge(1, 3, 1)
//	res, err := search.Batched(g, 0, 3, search.WithBatchSize(5))
//
// The cmd/astart-bench binary runs a benchmark configuration and serves
// its metrics:
//
//	go run ./cmd/astart-bench -config bench/example.yaml -metrics-addr :9100
package astart
