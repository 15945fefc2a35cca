// Package core provides a thread-safe, generic in-memory graph
// implementation with a minimal, composable API surface.
//
// Two types cover the whole model:
//
//   - DiGraph[T] — a directed, optionally weighted graph stored as a nested
//     adjacency map adj[v1][v2] = weight.
//   - Graph[T]   — an undirected graph built by composition over DiGraph,
//     with every mutation mirrored in both directions inside one critical
//     section so the adjacency relation is symmetric at all times.
//
// T may be any cmp.Ordered type (ints, strings, floats, …); the order fixes
// the deterministic ascending iteration used by Vertices(), Neighbors(),
// and NeighborsIn().
//
// Why use core?
//
//   - Deterministic iteration — every enumeration is sorted, so algorithm
//     output and golden tests are reproducible.
//   - Total mutations — AddEdge/UpdateEdge/RemoveEdge/RemoveVertex accept
//     any vertex values, creating endpoints on demand and treating absent
//     targets as no-ops; there is no invalid-input error class.
//   - Side-effect-free reads — HasVertex/HasEdge/Weight/Neighbors never
//     create the vertices they ask about (no accidental map-indexing
//     insertions).
//   - Clone support — CloneEmpty (vertices only) and Clone (deep copy), so
//     destructive algorithms can work on a private copy.
//
// Weights:
//
//	AddEdge defaults to DefaultWeight (1); pass WithWeight(w) to override,
//	or call UpdateEdge to set a weight unconditionally. Weight() returns 0
//	as the "no edge" sentinel — real weights are assumed ≥ 1, and a stored
//	weight of exactly 0 cannot be told apart from an absent edge.
//
// Error handling:
//
//	The taxonomy is deliberately narrow. The only faulting query is
//	DiGraph.DegreeOut / Graph.Degree on an unknown vertex, which returns
//	ErrVertexNotFound instead of fabricating the vertex. Everything else
//	reports through return values.
//
// Concurrency:
//
//	A single sync.RWMutex per DiGraph guards the adjacency map. Graph's
//	mutators hold it across both mirrored writes, so partial application
//	(one direction updated, not the other) is never externally observable.
//
// Quick example:
//
//	g := core.NewGraph[int]()
//	g.AddEdge(1, 2)                  // weight 1
//	g.AddEdge(2, 3, core.WithWeight(7))
//	g.HasEdge(3, 2)                  // true — mirrored
//	deg, _ := g.Degree(2)            // 2
package core
