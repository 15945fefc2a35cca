// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborsIn).
//
// Determinism:
//   - Both queries return vertices sorted ascending, so traversal algorithms
//     built on them produce reproducible output.
package core

import "slices"

// Neighbors returns the vertices reachable from v along a single outgoing
// edge, in ascending order. Returns an empty slice when v is unknown; the
// query never creates v.
//
// Complexity: O(d log d) for d outgoing edges, Space O(d).
func (g *DiGraph[T]) Neighbors(v T) []T {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adj[v]
	if !ok {
		return nil
	}

	out := make([]T, 0, len(bucket))
	for n := range bucket {
		out = append(out, n)
	}
	slices.Sort(out)

	return out
}

// NeighborsIn returns the vertices that can reach v along a single edge,
// in ascending order of the scanned source vertices. Defined for unknown v
// (returns empty).
//
// Complexity: O(V log V), Space O(d).
func (g *DiGraph[T]) NeighborsIn(v T) []T {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []T
	for src, bucket := range g.adj {
		if _, ok := bucket[v]; ok {
			out = append(out, src)
		}
	}
	slices.Sort(out)

	return out
}
