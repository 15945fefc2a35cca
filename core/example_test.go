// Package core_test provides runnable examples for the core graph types.
// Each example doubles as documentation and as a golden test via its
// Output block — possible because all enumerations are sorted.
package core_test

import (
	"fmt"

	"github.com/katalvlaran/eulertrail/core"
)

// ExampleNewGraph builds a small undirected graph and shows the mirrored
// adjacency.
func ExampleNewGraph() {
	// 1) Create an undirected graph over int vertices.
	g := core.NewGraph[int]()
	// 2) Add edges; endpoints are created on demand, default weight is 1.
	g.AddEdge(1, 2)
	g.AddEdge(2, 3, core.WithWeight(7))

	// 3) Undirected edges are visible from both sides.
	fmt.Println(g.HasEdge(3, 2))
	fmt.Println(g.Weight(3, 2))
	// 4) Enumerations are deterministic (ascending).
	fmt.Println(g.Vertices())
	fmt.Println(g.Neighbors(2))
	// Output:
	// true
	// 7
	// [1 2 3]
	// [1 3]
}

// ExampleDiGraph_String renders a directed graph in the text convention:
// a vertex-count line, then one line per vertex with neighbors and weights.
func ExampleDiGraph_String() {
	g := core.NewDiGraph[string]()
	g.AddEdge("A", "B")
	g.AddEdge("A", "C", core.WithWeight(4))
	g.AddEdge("C", "A")

	fmt.Print(g)
	// Output:
	// Vertex count: 3
	// A: B(1) C(4)
	// B:
	// C: A(1)
}

// ExampleDiGraph_Clone shows that a clone is fully independent.
func ExampleDiGraph_Clone() {
	g := core.NewDiGraph[int]()
	g.AddEdge(1, 2)

	clone := g.Clone()
	clone.RemoveEdge(1, 2)

	fmt.Println(g.HasEdge(1, 2), clone.HasEdge(1, 2))
	// Output:
	// true false
}
