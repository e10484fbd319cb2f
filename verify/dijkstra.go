package verify

import (
	"container/heap"
	"math"

	"github.com/gostep/deltastep/graph"
)

// Dijkstra computes exact shortest-path distances from source over g
// using a sequential min-heap priority queue with lazy decrease-key:
// a vertex may be pushed onto the heap more than once as shorter
// paths to it are discovered, and stale entries are skipped on pop
// once a vertex is finalized. It exists to check DeltaStep's output,
// not to compete with it: no bands, no workers, no CAS.
//
// Unreached vertices hold deltastep.INF-equivalent math.MaxInt64/2 in
// the result, matching DeltaStep's convention so the two outputs can
// be compared directly.
func Dijkstra(g *graph.View, source int) ([]int64, error) {
	n := g.NumVertices()
	if source < 0 || source >= n {
		return nil, ErrInvalidSource
	}

	const inf int64 = math.MaxInt64 / 2

	dist := make([]int64, n)
	visited := make([]bool, n)
	for i := range dist {
		dist[i] = inf
	}
	dist[source] = 0

	pq := make(nodePQ, 0, n)
	heap.Push(&pq, nodeItem{id: int32(source), dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(nodeItem)
		u := item.id
		if visited[u] {
			continue
		}
		visited[u] = true

		du := dist[u]
		for _, e := range g.Neighbors(int(u)) {
			newDist := du + e.Weight
			if newDist < dist[e.To] {
				dist[e.To] = newDist
				heap.Push(&pq, nodeItem{id: e.To, dist: newDist})
			}
		}
	}

	return dist, nil
}

type nodeItem struct {
	id   int32
	dist int64
}

type nodePQ []nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
