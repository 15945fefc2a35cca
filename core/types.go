// Package core defines the central DiGraph and Graph types and provides
// thread-safe primitives for building, querying, and cloning graphs.
//
// All core APIs use a single sync.RWMutex internally, so you can safely
// mutate your graphs across goroutines; the undirected Graph applies its
// mirrored updates inside one critical section.
//
// This file declares the Vertex constraint, the DiGraph type, EdgeOption,
// sentinel errors, and the NewDiGraph constructor.
//
// Errors:
//
//	ErrVertexNotFound - requested vertex does not exist.
package core

import (
	"cmp"
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Vertex is the constraint satisfied by any vertex type: a comparable value
// with a total order. The order fixes the "natural" iteration order used by
// Vertices, Neighbors, and NeighborsIn (ascending).
//
// A vertex has no identity beyond its value; equal values denote the same
// vertex.
type Vertex = cmp.Ordered

// DefaultWeight is the weight assigned to edges added without WithWeight.
// Real weights are assumed to be ≥ 1; Weight returns 0 as the "no edge"
// sentinel, so a stored weight of exactly 0 is indistinguishable from an
// absent edge (a known limitation of the zero sentinel).
const DefaultWeight int64 = 1

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*edgeConfig)

// edgeConfig carries per-AddEdge settings before they reach the adjacency map.
type edgeConfig struct {
	weight int64
}

// WithWeight sets the weight of the edge being added.
// Omit it for unweighted semantics (weight = DefaultWeight).
func WithWeight(w int64) EdgeOption {
	return func(c *edgeConfig) { c.weight = w }
}

// DiGraph is a directed, optionally weighted graph over vertex type T.
//
// Storage is a nested adjacency map: adj[v1][v2] = weight means an edge
// v1→v2 with the given weight; absence of the inner entry means no edge.
// A vertex present as an outer key exists even with zero outgoing edges.
// Endpoints of any added edge always become first-class vertices.
//
// Self-loops are representable if explicitly added; nothing in the model
// forbids them.
//
// mu guards adj. All exported methods are safe for concurrent use.
type DiGraph[T Vertex] struct {
	mu  sync.RWMutex
	adj map[T]map[T]int64
}

// NewDiGraph creates an empty directed graph over vertex type T.
// Complexity: O(1)
func NewDiGraph[T Vertex]() *DiGraph[T] {
	return &DiGraph[T]{adj: make(map[T]map[T]int64)}
}
