package verify_test

import (
	"math"
	"testing"

	"github.com/gostep/deltastep/graph"
	"github.com/gostep/deltastep/verify"
	"github.com/stretchr/testify/require"
)

func buildLine(t *testing.T) *graph.View {
	t.Helper()
	b, err := graph.NewBuilder(4)
	require.NoError(t, err)
	require.NoError(t, b.AddEdge(0, 1, 1))
	require.NoError(t, b.AddEdge(1, 2, 2))
	require.NoError(t, b.AddEdge(2, 3, 3))
	g, err := b.Finalize()
	require.NoError(t, err)

	return g
}

func TestDijkstra_LinearChain(t *testing.T) {
	t.Parallel()

	g := buildLine(t)
	dist, err := verify.Dijkstra(g, 0)
	require.NoError(t, err)
	require.Equal(t, []int64{0, 1, 3, 6}, dist)
}

func TestDijkstra_UnreachableVertexIsInf(t *testing.T) {
	t.Parallel()

	b, err := graph.NewBuilder(3)
	require.NoError(t, err)
	require.NoError(t, b.AddEdge(0, 1, 5))
	g, err := b.Finalize()
	require.NoError(t, err)

	dist, err := verify.Dijkstra(g, 0)
	require.NoError(t, err)
	require.Equal(t, int64(0), dist[0])
	require.Equal(t, int64(5), dist[1])
	require.Equal(t, int64(math.MaxInt64/2), dist[2])
}

func TestDijkstra_RejectsInvalidSource(t *testing.T) {
	t.Parallel()

	g := buildLine(t)
	_, err := verify.Dijkstra(g, 99)
	require.ErrorIs(t, err, verify.ErrInvalidSource)
}

func TestCompare_ReportsEveryMismatch(t *testing.T) {
	t.Parallel()

	got := []int64{0, 1, 9, 6}
	want := []int64{0, 1, 3, 6}

	ok, mismatches := verify.Compare(got, want)
	require.False(t, ok)
	require.Equal(t, []verify.Mismatch{{Vertex: 2, Got: 9, Want: 3}}, mismatches)
}

func TestCompare_NoMismatches(t *testing.T) {
	t.Parallel()

	dist := []int64{0, 1, 3, 6}
	ok, mismatches := verify.Compare(dist, dist)
	require.True(t, ok)
	require.Empty(t, mismatches)
}
