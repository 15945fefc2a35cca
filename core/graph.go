// File: graph.go
// Role: Undirected Graph built by composition over DiGraph.
//
// Invariant:
//   - The underlying adjacency relation is symmetric at all times: every
//     mutation mirrors the edge in both directions inside one critical
//     section, so no caller can observe (v1,v2) present without (v2,v1).
package core

// Graph is an undirected, optionally weighted graph over vertex type T.
//
// It wraps a DiGraph and keeps every edge mirrored: adding, updating, or
// removing (v1,v2) always affects both the v1→v2 and v2→v1 entries
// identically. Queries forward to the directed structure; the degree of a
// vertex equals its outgoing edge count, which by symmetry is its full
// undirected degree.
type Graph[T Vertex] struct {
	dg *DiGraph[T]
}

// NewGraph creates an empty undirected graph over vertex type T.
// Complexity: O(1)
func NewGraph[T Vertex]() *Graph[T] {
	return &Graph[T]{dg: NewDiGraph[T]()}
}

// AddVertex ensures v exists with no edges (idempotent).
func (g *Graph[T]) AddVertex(v T) { g.dg.AddVertex(v) }

// AddEdge creates the undirected edge {v1,v2} if absent, creating the
// endpoints on demand; an existing edge keeps its weight (see
// DiGraph.AddEdge). Both directions are written under one lock, so the
// symmetry invariant holds even mid-call.
//
// Complexity: O(1) amortized.
func (g *Graph[T]) AddEdge(v1, v2 T, opts ...EdgeOption) {
	cfg := edgeConfig{weight: DefaultWeight}
	for _, opt := range opts {
		opt(&cfg)
	}

	g.dg.mu.Lock()
	defer g.dg.mu.Unlock()

	g.dg.addEdge(v1, v2, cfg.weight)
	g.dg.addEdge(v2, v1, cfg.weight)
}

// UpdateEdge unconditionally sets the weight of {v1,v2} in both directions,
// creating the edge and endpoints if absent.
//
// Complexity: O(1) amortized.
func (g *Graph[T]) UpdateEdge(v1, v2 T, w int64) {
	g.dg.mu.Lock()
	defer g.dg.mu.Unlock()

	g.dg.updateEdge(v1, v2, w)
	g.dg.updateEdge(v2, v1, w)
}

// RemoveEdge deletes {v1,v2} in both directions; no-op when absent.
//
// Complexity: O(1).
func (g *Graph[T]) RemoveEdge(v1, v2 T) {
	g.dg.mu.Lock()
	defer g.dg.mu.Unlock()

	g.dg.removeEdge(v1, v2)
	g.dg.removeEdge(v2, v1)
}

// RemoveVertex deletes v and every edge incident to v; no-op if unknown.
// Incident removal in the directed structure already covers both mirror
// entries, so symmetry is preserved.
func (g *Graph[T]) RemoveVertex(v T) { g.dg.RemoveVertex(v) }

// HasVertex reports whether v exists in the graph.
func (g *Graph[T]) HasVertex(v T) bool { return g.dg.HasVertex(v) }

// HasEdge reports whether the undirected edge {v1,v2} exists.
func (g *Graph[T]) HasEdge(v1, v2 T) bool { return g.dg.HasEdge(v1, v2) }

// Weight returns the weight of {v1,v2}, or 0 when absent.
func (g *Graph[T]) Weight(v1, v2 T) int64 { return g.dg.Weight(v1, v2) }

// Degree returns the number of edges incident to v.
//
// Errors:
//   - ErrVertexNotFound: if v does not exist.
func (g *Graph[T]) Degree(v T) (int, error) { return g.dg.DegreeOut(v) }

// Neighbors returns the vertices adjacent to v in ascending order;
// empty when v is unknown.
func (g *Graph[T]) Neighbors(v T) []T { return g.dg.Neighbors(v) }

// Vertices returns all vertices in ascending order.
func (g *Graph[T]) Vertices() []T { return g.dg.Vertices() }

// VertexCount returns the current number of vertices.
func (g *Graph[T]) VertexCount() int { return g.dg.VertexCount() }

// EdgeCount returns the number of undirected edges: mirrored pairs count
// once, self-loops count once.
//
// Complexity: O(V), Space O(1).
func (g *Graph[T]) EdgeCount() int {
	g.dg.mu.RLock()
	defer g.dg.mu.RUnlock()

	var entries, loops int
	for v, bucket := range g.dg.adj {
		entries += len(bucket)
		if _, ok := bucket[v]; ok {
			loops++
		}
	}

	return (entries + loops) / 2
}

// Clone returns a deep copy of the graph; the copy shares no structure
// with the receiver.
//
// Complexity: O(V + E).
func (g *Graph[T]) Clone() *Graph[T] {
	return &Graph[T]{dg: g.dg.Clone()}
}

// Equal reports whether g and other hold the same vertices, edges, and
// weights.
func (g *Graph[T]) Equal(other *Graph[T]) bool {
	if other == nil {
		return false
	}

	return g.dg.Equal(other.dg)
}

// String renders the graph in the shared text convention; see
// DiGraph.String.
func (g *Graph[T]) String() string { return g.dg.String() }
