// File: methods_vertices.go
// Role: Vertex lifecycle, membership, and degree queries.
//
// Determinism:
//   - Vertices() returns values sorted ascending by the vertex order.
//
// Concurrency:
//   - All operations lock mu; unexported helpers assume the caller holds it.
package core

import "slices"

// AddVertex ensures v exists in the graph with no edges (idempotent).
// Adding an existing vertex is a no-op.
//
// Complexity: O(1) amortized.
func (g *DiGraph[T]) AddVertex(v T) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(v)
}

// ensureVertex bootstraps the adjacency bucket for v if missing.
// Caller must hold mu for writing.
func (g *DiGraph[T]) ensureVertex(v T) {
	if _, ok := g.adj[v]; !ok {
		g.adj[v] = make(map[T]int64)
	}
}

// HasVertex reports whether v exists in the graph.
// Pure query: never creates the vertex it asks about.
//
// Complexity: O(1).
func (g *DiGraph[T]) HasVertex(v T) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[v]

	return ok
}

// RemoveVertex deletes v and every edge incident to v in either direction:
// the outgoing entries under v and any entry pointing to v from other
// vertices' adjacency buckets. No-op if v is unknown.
//
// Complexity: O(V) over the outer map (inner deletes are O(1) each).
func (g *DiGraph[T]) RemoveVertex(v T) {
	g.mu.Lock()
	defer g.mu.Unlock()

	// Drop incoming references first, then the vertex record itself.
	for _, bucket := range g.adj {
		delete(bucket, v)
	}
	delete(g.adj, v)
}

// Vertices returns all vertices in ascending order.
//
// The sorted result is the stable enumeration surface higher-level
// algorithms rely on for reproducible output.
//
// Complexity: O(V log V), Space O(V).
func (g *DiGraph[T]) Vertices() []T {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]T, 0, len(g.adj))
	for v := range g.adj {
		out = append(out, v)
	}
	slices.Sort(out)

	return out
}

// VertexCount returns the current number of vertices in the graph.
// Prefer it over len(Vertices()) to avoid the sorting cost.
//
// Complexity: O(1).
func (g *DiGraph[T]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// DegreeOut returns the number of outgoing edges of v.
//
// The query indexes an existing vertex record; asking about an unknown
// vertex is reported explicitly rather than silently fabricating one.
//
// Errors:
//   - ErrVertexNotFound: if v does not exist.
//
// Complexity: O(1).
func (g *DiGraph[T]) DegreeOut(v T) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adj[v]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(bucket), nil
}

// DegreeIn returns the number of vertices with an edge pointing to v,
// computed by scanning all vertices' outgoing buckets. Defined even for
// unknown v (returns 0).
//
// Complexity: O(V), Space O(1).
func (g *DiGraph[T]) DegreeIn(v T) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var in int
	for _, bucket := range g.adj {
		if _, ok := bucket[v]; ok {
			in++
		}
	}

	return in
}
