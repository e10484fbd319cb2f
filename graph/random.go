package graph

import "math/rand"

// maxOutDegreeFactor bounds the per-vertex out-degree sample to twice
// the requested average: a bounded out-degree sampler per vertex,
// avoiding an O(n^2) all-pairs Bernoulli scan over every vertex pair,
// which keeps RandomSparse's edge count close to avgDegree*n even on
// large sparse graphs.
const maxOutDegreeFactor = 2

// RandomSparse returns a Builder for a weighted, directed,
// Erdős–Rényi-style sparse graph over n vertices: for every vertex u,
// a uniformly sampled out-degree in [0, 2*avgDegree] targets are
// drawn uniformly from all n vertices, each with a weight drawn
// uniformly from [1, maxWeight]. A draw that lands on u itself is
// skipped rather than redrawn, so no self-loops are produced. The
// same (n, avgDegree, maxWeight, rng-seed) always yields the same
// edge set.
func RandomSparse(n int, avgDegree float64, maxWeight int64, rng *rand.Rand) (*Builder, error) {
	if n < 0 {
		return nil, ErrInvalidVertexCount
	}
	if avgDegree <= 0 {
		return nil, ErrInvalidDegree
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	b, err := NewBuilder(n)
	if err != nil {
		return nil, err
	}
	if n < 2 {
		return b, nil
	}
	if maxWeight < 1 {
		maxWeight = 1
	}

	maxOut := int(avgDegree * maxOutDegreeFactor)
	for u := 0; u < n; u++ {
		k := rng.Intn(maxOut + 1)
		for i := 0; i < k; i++ {
			v := rng.Intn(n)
			if v == u {
				continue
			}
			w := int64(1)
			if maxWeight > 1 {
				w = 1 + rng.Int63n(maxWeight)
			}
			if err := b.AddEdge(u, v, w); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}
