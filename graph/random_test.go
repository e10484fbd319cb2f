package graph_test

import (
	"math/rand"
	"testing"

	"github.com/gostep/deltastep/graph"
	"github.com/stretchr/testify/require"
)

func TestRandomSparse_Deterministic(t *testing.T) {
	t.Parallel()

	b1, err := graph.RandomSparse(200, 4, 10, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b2, err := graph.RandomSparse(200, 4, 10, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	g1, err := b1.Finalize()
	require.NoError(t, err)
	g2, err := b2.Finalize()
	require.NoError(t, err)

	require.Equal(t, g1.NumEdges(), g2.NumEdges())
	for u := 0; u < g1.NumVertices(); u++ {
		require.ElementsMatch(t, g1.Neighbors(u), g2.Neighbors(u))
	}
}

func TestRandomSparse_RejectsBadInput(t *testing.T) {
	t.Parallel()

	_, err := graph.RandomSparse(10, 0, 10, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, graph.ErrInvalidDegree)

	_, err = graph.RandomSparse(10, 4, 10, nil)
	require.ErrorIs(t, err, graph.ErrNilRand)
}

func TestRandomSparse_NoSelfLoops(t *testing.T) {
	t.Parallel()

	b, err := graph.RandomSparse(50, 6, 5, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	g, err := b.Finalize()
	require.NoError(t, err)

	for u := 0; u < g.NumVertices(); u++ {
		for _, e := range g.Neighbors(u) {
			require.NotEqual(t, int32(u), e.To)
			require.GreaterOrEqual(t, e.Weight, int64(1))
		}
	}
}

func TestRandomSparse_SingleVertexHasNoEdges(t *testing.T) {
	t.Parallel()

	b, err := graph.RandomSparse(1, 4, 10, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	g, err := b.Finalize()
	require.NoError(t, err)
	require.Equal(t, 0, g.NumEdges())
}
