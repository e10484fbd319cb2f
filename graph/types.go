package graph

// Edge is a single out-edge: destination vertex and non-negative weight.
type Edge struct {
	To     int32
	Weight int64
}

// View is an immutable compressed-sparse-row adjacency. It is built
// once by Builder.Finalize and is safe for concurrent read by any
// number of goroutines thereafter — it never mutates.
type View struct {
	offsets []int32 // len n+1; offsets[u]..offsets[u+1] indexes edges
	edges   []Edge  // len = NumEdges(), grouped by source vertex
}

// NumVertices returns |V|.
func (v *View) NumVertices() int {
	return len(v.offsets) - 1
}

// NumEdges returns the total number of directed edges.
func (v *View) NumEdges() int {
	return len(v.edges)
}

// Neighbors returns u's out-edges as (neighbor, weight) pairs. The
// returned slice aliases the View's backing array and must not be
// mutated by the caller; iteration order is unspecified.
func (v *View) Neighbors(u int) []Edge {
	return v.edges[v.offsets[u]:v.offsets[u+1]]
}
