// Package euler finds Euler trails — walks that traverse every edge of an
// undirected graph exactly once — covering both Euler circuits (all
// degrees even) and open Euler trails (exactly two odd-degree vertices)
// uniformly.
//
// Overview:
//
//   - FindTrail(g) returns the trail as a vertex sequence, or an empty
//     result when the degree-parity rule rules a trail out. Infeasibility
//     is not an error: the empty sequence is the documented "no trail"
//     signal.
//   - HasTrail(g) exposes the feasibility rule on its own.
//   - FormatTrail renders a trail as "v1 v2 v3 …", or the literal "none".
//
// Algorithm:
//
//  1. Scan all vertices in ascending order, counting odd degrees and
//     recording the first odd vertex.
//  2. Feasibility: a trail exists iff the odd count is 0 (circuit, any
//     start works) or exactly 2 (open trail, must start at an odd vertex).
//  3. Start at the first odd-degree vertex, else the first vertex.
//  4. Deep-clone the graph; the extension below destroys its copy's edges
//     and must never touch the caller's graph.
//  5. Repeat until the trail's last vertex has degree 0 in the copy: among
//     its neighbors in ascending order take the first one that is not the
//     start vertex, falling back to the start when it is the only option;
//     remove the consumed edge (both directions) and append the vertex.
//
// The non-start-first bias, with ascending-order tie-breaking, is a known
// sufficient strategy for Eulerian graphs under the step-2 precondition —
// it postpones closing the walk until no other edge remains, so no
// backtracking (and no Fleury-style bridge test) is needed. It also pins
// down which of several valid trails is produced, keeping output
// deterministic.
//
// Precondition (deliberately unchecked):
//
//	The edge-bearing vertices of g must be connected. On a disconnected
//	graph that still passes the parity rule, the greedy walk exhausts the
//	start component and returns an incomplete trail — shorter than
//	EdgeCount()+1. Callers needing a guarantee should verify connectivity
//	themselves or compare the trail length against EdgeCount()+1.
//
// Complexity:
//
//   - Time:  O(V + E·d log d) — parity scan plus one sorted neighborhood
//     per consumed edge (d = max degree).
//   - Space: O(V + E) for the private working clone and the trail.
//
// Example:
//
//	g := core.NewGraph[int]()
//	g.AddEdge(1, 2)
//	g.AddEdge(2, 3)
//	g.AddEdge(3, 1)
//	trail := euler.FindTrail(g)      // [1 2 3 1]
//	fmt.Println(euler.FormatTrail(trail))
package euler
