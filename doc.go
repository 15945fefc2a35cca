// Package eulertrail is an in-memory playground for generic graphs and
// Euler trails — build directed or undirected, optionally weighted graphs
// over any ordered vertex type, then walk every edge exactly once.
//
// 🚀 What is eulertrail?
//
//	A small, thread-safe, zero-dependency library that brings together:
//		• Core primitives: generic DiGraph[T] and undirected Graph[T] over
//		  any cmp.Ordered vertex type, mutated safely under a lock
//		• Degree, neighborhood and membership queries with deterministic,
//		  ascending iteration order
//		• Deep cloning so algorithms can consume a graph destructively
//		  without touching the caller's copy
//		• Euler trails: feasibility by degree parity, greedy trail
//		  extraction for both circuits and open trails
//
// ✨ Why choose eulertrail?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – Vertices(), Neighbors() always return sorted results
//   - Pure Go – no cgo, no hidden deps
//   - Generic – string cities, int junctions, any ordered vertex domain
//
// Everything is organized under two subpackages:
//
//	core/  — fundamental DiGraph and Graph types & thread-safe primitives
//	euler/ — Euler-trail feasibility and extraction
//
// Quick ASCII example:
//
//	    1───2
//	    │ ╲ │
//	    4───3
//
//	g := core.NewGraph[int]()
//	g.AddEdge(1, 2)
//	g.AddEdge(2, 3)
//	g.AddEdge(3, 4)
//	g.AddEdge(4, 1)
//	g.AddEdge(1, 3)
//	trail := euler.FindTrail(g)
//
// See the core and euler package docs for the full contracts.
package eulertrail
