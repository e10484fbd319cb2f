// Package graph provides the read-only adjacency view consumed by the
// deltastep solver, together with the collaborators that produce it:
// a validating edge-list builder, a weighted random-graph generator,
// and plain-text edge-list I/O.
//
// View is a compressed-sparse-row (CSR) adjacency: one contiguous
// []Edge per vertex carved out of two flat arrays. It never changes
// after Builder.Finalize returns, so any number of goroutines may call
// View.Neighbors concurrently without locking.
//
// Builder accumulates edges with validation (no negative weights, no
// out-of-range endpoints) and is the only mutable type in the package.
// Vertex count is fixed at construction; edges are appended until
// Finalize compacts them into a View in a single O(V+E) pass.
//
// Typical use:
//
//	b, err := graph.NewBuilder(6)
//	b.AddEdge(0, 1, 2)
//	b.AddEdge(1, 2, 3)
//	g, err := b.Finalize()
package graph
