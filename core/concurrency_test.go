// Package core_test verifies thread-safety of DiGraph and Graph under
// concurrent operations. Run with -race.
package core_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/eulertrail/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddEdge ensures concurrent AddEdge calls are safe and all
// neighbors appear.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewDiGraph[int]()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			g.AddEdge(0, id+1)
		}(i)
	}
	wg.Wait()

	require.Len(t, g.Neighbors(0), num, "expected %d unique neighbors", num)
}

// TestConcurrentMixedMutations mixes mutators and readers on an undirected
// Graph; after the dust settles the adjacency must be symmetric.
func TestConcurrentMixedMutations(t *testing.T) {
	g := core.NewGraph[int]()
	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(3 * rounds)

	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			g.AddEdge(id%10, (id+1)%10)
		}(i)

		go func(id int) {
			defer wg.Done()
			g.RemoveEdge(id%10, (id+3)%10)
		}(i)

		go func(id int) {
			defer wg.Done()
			_ = g.HasEdge(id%10, (id+1)%10)
			_ = g.Neighbors(id % 10)
		}(i)
	}
	wg.Wait()

	// Symmetry must hold for whatever final state the race produced.
	for _, a := range g.Vertices() {
		for _, b := range g.Vertices() {
			require.Equal(t, g.HasEdge(a, b), g.HasEdge(b, a),
				"asymmetric adjacency between %d and %d", a, b)
		}
	}
}

// TestConcurrentCloneAndMutate validates that cloning while mutating does
// not race and yields structurally sound snapshots.
func TestConcurrentCloneAndMutate(t *testing.T) {
	g := core.NewGraph[int]()
	for i := 0; i < 10; i++ {
		g.AddEdge(i, i+1)
	}

	const workers = 8
	var wg sync.WaitGroup
	wg.Add(2 * workers)

	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			g.AddEdge(id, id+20)
		}(w)

		go func() {
			defer wg.Done()
			clone := g.Clone()
			// Each snapshot must be internally symmetric.
			for _, a := range clone.Vertices() {
				for _, b := range clone.Neighbors(a) {
					require.True(t, clone.HasEdge(b, a))
				}
			}
		}()
	}
	wg.Wait()
}
