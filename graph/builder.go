package graph

import "fmt"

// Builder accumulates directed, non-negatively weighted edges over a
// fixed vertex set and compacts them into a View. It is the mutable
// collaborator the solver itself never touches: the solver only ever
// sees the View that Finalize produces.
//
// A Builder is not safe for concurrent use; build the graph on one
// goroutine, then hand the resulting View to any number of readers.
type Builder struct {
	n         int
	from      []int32
	to        []int32
	weight    []int64
	finalized bool
}

// NewBuilder returns a Builder over n vertices (IDs 0..n-1) with no
// edges yet.
func NewBuilder(n int) (*Builder, error) {
	if n < 0 {
		return nil, ErrInvalidVertexCount
	}
	return &Builder{n: n}, nil
}

// AddEdge records a directed edge u->v with the given weight.
// Weight must be non-negative; endpoints must lie in [0, n).
func (b *Builder) AddEdge(u, v int, weight int64) error {
	if b.finalized {
		return ErrAlreadyFinalized
	}
	if u < 0 || u >= b.n || v < 0 || v >= b.n {
		return fmt.Errorf("graph: edge %d->%d: %w", u, v, ErrInvalidVertex)
	}
	if weight < 0 {
		return fmt.Errorf("graph: edge %d->%d weight=%d: %w", u, v, weight, ErrNegativeWeight)
	}
	b.from = append(b.from, int32(u))
	b.to = append(b.to, int32(v))
	b.weight = append(b.weight, weight)
	return nil
}

// NumVertices returns the vertex count fixed at construction.
func (b *Builder) NumVertices() int {
	return b.n
}

// NumEdges returns the number of edges added so far.
func (b *Builder) NumEdges() int {
	return len(b.from)
}

// Finalize compacts the accumulated edges into an immutable CSR View
// in O(V+E) time via a counting-sort-style bucket pass: a degree
// count, a prefix sum into offsets, then a single pass that drops
// each edge into its slot. The Builder must not be used again
// afterward.
func (b *Builder) Finalize() (*View, error) {
	if b.finalized {
		return nil, ErrAlreadyFinalized
	}
	b.finalized = true

	degree := make([]int32, b.n+1)
	for _, u := range b.from {
		degree[u]++
	}
	offsets := make([]int32, b.n+1)
	for u := 0; u < b.n; u++ {
		offsets[u+1] = offsets[u] + degree[u]
	}

	cursor := make([]int32, b.n)
	copy(cursor, offsets[:b.n])

	edges := make([]Edge, len(b.from))
	for i, u := range b.from {
		slot := cursor[u]
		cursor[u]++
		edges[slot] = Edge{To: b.to[i], Weight: b.weight[i]}
	}

	return &View{offsets: offsets, edges: edges}, nil
}
