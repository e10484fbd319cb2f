package bench

import (
	"math/rand"

	"github.com/gostep/deltastep/graph"
)

// PickSource chooses a benchmark source vertex. With rng nil, it
// returns fixed after validating it against g. With rng non-nil, it
// ignores fixed and samples uniformly among vertices that have at
// least one out-edge — an isolated vertex makes for a degenerate,
// single-node SSSP tree that tells a benchmark nothing. If every
// vertex is isolated, it falls back to vertex 0.
func PickSource(g *graph.View, fixed int, rng *rand.Rand) (int, error) {
	n := g.NumVertices()
	if n == 0 {
		return 0, ErrEmptyGraph
	}

	if rng == nil {
		if fixed < 0 || fixed >= n {
			return 0, ErrInvalidSource
		}

		return fixed, nil
	}

	candidates := make([]int, 0, n)
	for u := 0; u < n; u++ {
		if len(g.Neighbors(u)) > 0 {
			candidates = append(candidates, u)
		}
	}
	if len(candidates) == 0 {
		return 0, nil
	}

	return candidates[rng.Intn(len(candidates))], nil
}
