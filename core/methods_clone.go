// File: methods_clone.go
// Role: Cloning and clearing graph instances.
//
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.
package core

// CloneEmpty returns a new DiGraph with the same vertices but no edges.
//
// Complexity: O(V).
func (g *DiGraph[T]) CloneEmpty() *DiGraph[T] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewDiGraph[T]()
	for v := range g.adj {
		clone.adj[v] = make(map[T]int64)
	}

	return clone
}

// Clone returns a deep copy of the graph: vertices, edges, and weights.
// The clone shares no structure with the receiver, so destructive
// algorithms can consume it freely.
//
// Complexity: O(V + E).
func (g *DiGraph[T]) Clone() *DiGraph[T] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewDiGraph[T]()
	for v, bucket := range g.adj {
		inner := make(map[T]int64, len(bucket))
		for n, w := range bucket {
			inner[n] = w
		}
		clone.adj[v] = inner
	}

	return clone
}

// Clear resets the graph to an empty state.
//
// Complexity: O(1) for map reallocation.
func (g *DiGraph[T]) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.adj = make(map[T]map[T]int64)
}

// Equal reports whether g and other hold exactly the same vertices, edges,
// and weights. Useful for asserting that an algorithm left its input
// untouched.
//
// Complexity: O(V + E).
func (g *DiGraph[T]) Equal(other *DiGraph[T]) bool {
	if other == nil {
		return false
	}

	// Read-lock both sides for a consistent snapshot.
	g.mu.RLock()
	defer g.mu.RUnlock()
	if other != g {
		other.mu.RLock()
		defer other.mu.RUnlock()
	}

	if len(g.adj) != len(other.adj) {
		return false
	}
	for v, bucket := range g.adj {
		obucket, ok := other.adj[v]
		if !ok || len(bucket) != len(obucket) {
			return false
		}
		for n, w := range bucket {
			if ow, ok := obucket[n]; !ok || ow != w {
				return false
			}
		}
	}

	return true
}
