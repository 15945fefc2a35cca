// File: format.go
// Role: Human-readable rendering of graphs.
//
// Determinism:
//   - Output follows the ascending vertex order of Vertices()/Neighbors(),
//     so renderings are stable across runs and usable in golden tests.
package core

import (
	"fmt"
	"strings"
)

// String renders the graph as text: one summary line with the vertex count,
// then one line per vertex listing its outgoing neighbors with weights, in
// ascending vertex order.
//
//	Vertex count: 3
//	1: 2(1) 3(4)
//	2: 1(1)
//	3:
//
// Complexity: O(V·d log d + V log V) for the sorted enumerations.
func (g *DiGraph[T]) String() string {
	verts := g.Vertices()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Vertex count: %d\n", len(verts))
	for _, v := range verts {
		fmt.Fprintf(&sb, "%v:", v)
		for _, n := range g.Neighbors(v) {
			fmt.Fprintf(&sb, " %v(%d)", n, g.Weight(v, n))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
