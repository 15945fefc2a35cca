// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/UpdateEdge/RemoveEdge/HasEdge/
//       Weight/EdgeCount, plus the unlocked primitives shared with Graph.
//
// Concurrency:
//   - Exported methods take mu; the unexported primitives assume the caller
//     holds it for writing, so Graph can mirror an edge in one critical section.
package core

// AddEdge creates the edge v1→v2 if absent, creating v1 and v2 on demand.
// If the edge already exists, AddEdge leaves its weight unchanged — add is
// idempotent on existing edges, distinct from UpdateEdge.
//
// The weight defaults to DefaultWeight; pass WithWeight to override:
//
//	g.AddEdge("A", "B")                   // weight 1
//	g.AddEdge("A", "C", WithWeight(42))   // weight 42
//
// Complexity: O(1) amortized.
func (g *DiGraph[T]) AddEdge(v1, v2 T, opts ...EdgeOption) {
	cfg := edgeConfig{weight: DefaultWeight}
	for _, opt := range opts {
		opt(&cfg)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addEdge(v1, v2, cfg.weight)
}

// addEdge is the unlocked AddEdge primitive. Caller must hold mu for writing.
func (g *DiGraph[T]) addEdge(v1, v2 T, w int64) {
	if g.hasEdge(v1, v2) {
		return
	}
	g.updateEdge(v1, v2, w)
}

// UpdateEdge unconditionally sets the weight of edge v1→v2 to w, creating
// the edge and its endpoints if absent.
//
// Complexity: O(1) amortized.
func (g *DiGraph[T]) UpdateEdge(v1, v2 T, w int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.updateEdge(v1, v2, w)
}

// updateEdge is the unlocked UpdateEdge primitive. Caller must hold mu for writing.
func (g *DiGraph[T]) updateEdge(v1, v2 T, w int64) {
	g.ensureVertex(v1)
	g.ensureVertex(v2)
	g.adj[v1][v2] = w
}

// RemoveEdge deletes the edge v1→v2 if present; no-op otherwise.
// Never errors, even when v1 or v2 is unknown, and never creates a vertex.
//
// Complexity: O(1).
func (g *DiGraph[T]) RemoveEdge(v1, v2 T) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.removeEdge(v1, v2)
}

// removeEdge is the unlocked RemoveEdge primitive. Caller must hold mu for writing.
func (g *DiGraph[T]) removeEdge(v1, v2 T) {
	if bucket, ok := g.adj[v1]; ok {
		delete(bucket, v2)
	}
}

// HasEdge reports whether the edge v1→v2 exists.
// Pure query: never creates vertices as a side effect.
//
// Complexity: O(1).
func (g *DiGraph[T]) HasEdge(v1, v2 T) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasEdge(v1, v2)
}

// hasEdge is the unlocked HasEdge primitive. Caller must hold mu.
func (g *DiGraph[T]) hasEdge(v1, v2 T) bool {
	bucket, ok := g.adj[v1]
	if !ok {
		return false
	}
	_, ok = bucket[v2]

	return ok
}

// Weight returns the weight of edge v1→v2, or 0 when the edge or either
// endpoint is absent. Since real weights are assumed ≥ 1, zero doubles as
// the "no edge" sentinel; an edge explicitly stored with weight 0 is
// indistinguishable from absence.
//
// Complexity: O(1).
func (g *DiGraph[T]) Weight(v1, v2 T) int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adj[v1]
	if !ok {
		return 0
	}

	return bucket[v2]
}

// EdgeCount returns the number of directed edges in the graph.
//
// Complexity: O(V), Space O(1).
func (g *DiGraph[T]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var n int
	for _, bucket := range g.adj {
		n += len(bucket)
	}

	return n
}
