package euler

import "github.com/katalvlaran/eulertrail/core"

// FindTrail returns an Euler trail of the undirected graph g: a vertex
// sequence in which consecutive pairs are the traversed edges and every
// edge of g appears exactly once. The result is an Euler circuit
// (start == end) when all degrees are even, an open trail between the two
// odd-degree vertices otherwise, and empty when no trail exists (or g has
// no vertices). A graph with vertices but no edges yields a single-vertex
// trail.
//
// g is never mutated: the greedy extension is destructive and runs on a
// private deep clone.
//
// Precondition: the edge-bearing vertices of g must be connected. FindTrail
// checks only the degree-parity rule; on a disconnected Eulerian-by-parity
// graph the greedy walk exhausts one component and returns a trail shorter
// than EdgeCount()+1. See the package documentation.
//
// Complexity: O(V + E·d log d) where d bounds the neighbor-list size —
// one parity scan plus one sorted-neighborhood lookup per consumed edge.
func FindTrail[T core.Vertex](g *core.Graph[T]) []T {
	if g == nil {
		return nil
	}

	verts := g.Vertices()
	if len(verts) == 0 {
		return nil
	}

	// Scan degrees once: count odd vertices and remember the first one in
	// ascending order. A boolean marker stands in for "no odd vertex yet"
	// so no vertex value is reserved as a sentinel.
	oddCount, firstOdd, haveOdd := oddDegrees(g, verts)

	// Handshake lemma makes oddCount even; only 0 (circuit) and 2 (open
	// trail) admit an Euler trail.
	if oddCount != 0 && oddCount != 2 {
		return nil
	}

	// Start at the first odd-degree vertex if one exists, else at the
	// first vertex in ascending order.
	start := verts[0]
	if haveOdd {
		start = firstOdd
	}

	return extendTrail(g.Clone(), start)
}

// HasTrail reports whether g passes the degree-parity feasibility rule for
// an Euler trail: zero or exactly two vertices of odd degree. Like
// FindTrail it does not check connectivity, so a true result guarantees a
// full trail only when the edge-bearing vertices are connected.
//
// Complexity: O(V).
func HasTrail[T core.Vertex](g *core.Graph[T]) bool {
	if g == nil {
		return false
	}

	oddCount, _, _ := oddDegrees(g, g.Vertices())

	return oddCount == 0 || oddCount == 2
}

// oddDegrees counts odd-degree vertices and records the first one
// encountered in the given order.
func oddDegrees[T core.Vertex](g *core.Graph[T], verts []T) (oddCount int, firstOdd T, haveOdd bool) {
	for _, v := range verts {
		deg, err := g.Degree(v)
		if err != nil {
			// verts came from g itself; unreachable for a live graph.
			continue
		}
		if deg%2 == 1 {
			oddCount++
			if !haveOdd {
				firstOdd = v
				haveOdd = true
			}
		}
	}

	return oddCount, firstOdd, haveOdd
}

// extendTrail grows the trail greedily on the working copy until the last
// vertex has no remaining edges, consuming one edge per step.
//
// Bias, load-bearing for output determinism: among the last vertex's
// neighbors in ascending order, take the first one that is not the trail's
// start; close back to the start only when it is the sole remaining
// neighbor. An iterative loop replaces the naive recursive formulation so
// depth is not bounded by edge count.
func extendTrail[T core.Vertex](work *core.Graph[T], start T) []T {
	trail := []T{start}
	last := start

	for {
		deg, err := work.Degree(last)
		if err != nil || deg == 0 {
			break
		}

		// Prefer any neighbor other than the start vertex.
		next, found := start, false
		for _, n := range work.Neighbors(last) {
			if n != start {
				next, found = n, true
				break
			}
		}
		if !found {
			next = start // closing the trail is the only move left
		}

		// Consume the edge (both directions — work is undirected) and
		// advance.
		work.RemoveEdge(last, next)
		trail = append(trail, next)
		last = next
	}

	return trail
}
