// Package euler_test provides runnable examples mirroring the classic
// Euler-trail demonstration: a circuit graph, an open-trail graph, and a
// non-Eulerian graph, each rendered alongside its trail.
package euler_test

import (
	"fmt"

	"github.com/katalvlaran/eulertrail/core"
	"github.com/katalvlaran/eulertrail/euler"
)

// ExampleFindTrail_circuit: every vertex has even degree, so the trail is a
// circuit — it starts and ends at the first vertex in ascending order.
func ExampleFindTrail_circuit() {
	g := core.NewGraph[int]()
	for _, e := range [][2]int{
		{1, 2}, {1, 3}, {1, 4}, {1, 5}, {2, 3}, {2, 5},
		{2, 6}, {3, 6}, {3, 7}, {4, 5}, {5, 6}, {6, 7},
	} {
		g.AddEdge(e[0], e[1])
	}

	fmt.Print(g)
	fmt.Println("Euler trail:", euler.FormatTrail(euler.FindTrail(g)))
	// Output:
	// Vertex count: 7
	// 1: 2(1) 3(1) 4(1) 5(1)
	// 2: 1(1) 3(1) 5(1) 6(1)
	// 3: 1(1) 2(1) 6(1) 7(1)
	// 4: 1(1) 5(1)
	// 5: 1(1) 2(1) 4(1) 6(1)
	// 6: 2(1) 3(1) 5(1) 7(1)
	// 7: 3(1) 6(1)
	// Euler trail: 1 2 3 6 2 5 4 1 3 7 6 5 1
}

// ExampleFindTrail_openTrail: exactly two odd-degree vertices (2 and 4),
// so the trail runs between them.
func ExampleFindTrail_openTrail() {
	g := core.NewGraph[int]()
	for _, e := range [][2]int{
		{1, 2}, {1, 4}, {2, 3}, {2, 4}, {3, 5}, {4, 5},
	} {
		g.AddEdge(e[0], e[1])
	}

	fmt.Print(g)
	fmt.Println("Euler trail:", euler.FormatTrail(euler.FindTrail(g)))
	// Output:
	// Vertex count: 5
	// 1: 2(1) 4(1)
	// 2: 1(1) 3(1) 4(1)
	// 3: 2(1) 5(1)
	// 4: 1(1) 2(1) 5(1)
	// 5: 3(1) 4(1)
	// Euler trail: 2 1 4 5 3 2 4
}

// ExampleFindTrail_none: four odd-degree vertices rule any trail out;
// the empty result renders as "none".
func ExampleFindTrail_none() {
	g := core.NewGraph[int]()
	for _, e := range [][2]int{
		{1, 2}, {1, 3}, {1, 4}, {1, 5}, {2, 3},
		{2, 5}, {3, 6}, {4, 5}, {4, 6}, {5, 6},
	} {
		g.AddEdge(e[0], e[1])
	}

	fmt.Println("Euler trail:", euler.FormatTrail(euler.FindTrail(g)))
	// Output:
	// Euler trail: none
}
