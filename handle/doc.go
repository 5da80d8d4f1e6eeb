// Package handle is the host-facing binding of astart: a Registry owns any
// number of independent graphs, each addressed by an opaque Handle.
//
// The operations mirror a foreign-function surface:
//
//	Create(nodeCount) Handle
//	SetGridWidth(h, width)
//	AddEdge(h, u, v, weight)
//	SearchClassic(h, start, goal, mode, table, maxLen)
//	    -> path, length
//	SearchBatched(h, start, goal, k, adaptive, earlyExit, mode, table, maxLen)
//	    -> path, length
//	Delete(h)
//
// Searches return the path truncated to maxLen together with its true node
// count, and never mutate the graph. An unreachable goal yields an empty
// path and an error for which search.IsNoPath reports true.
//
// Concurrency: Registry methods are safe for concurrent use, and any number
// of searches may run on one handle at once. Like core.Graph, a handle's
// graph carries no lock of its own: callers must not mutate a handle
// (AddEdge, SetGridWidth) while searches on it are in flight.
//
// There is no process-wide state; every Registry is an independent instance
// and every Handle an independently lifetimed graph.
package handle
