package graph_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gostep/deltastep/graph"
	"github.com/stretchr/testify/require"
)

func TestReadEdgeList_ParsesValidInput(t *testing.T) {
	t.Parallel()

	const input = `# comment line
3 2
0 1 2
1 2 3
`
	b, err := graph.ReadEdgeList(strings.NewReader(input))
	require.NoError(t, err)

	g, err := b.Finalize()
	require.NoError(t, err)
	require.Equal(t, 3, g.NumVertices())
	require.Equal(t, 2, g.NumEdges())
	require.Equal(t, []graph.Edge{{To: 1, Weight: 2}}, g.Neighbors(0))
}

func TestReadEdgeList_RejectsMalformedInput(t *testing.T) {
	t.Parallel()

	_, err := graph.ReadEdgeList(strings.NewReader(""))
	require.ErrorIs(t, err, graph.ErrMalformedEdgeList)

	_, err = graph.ReadEdgeList(strings.NewReader("3\n"))
	require.ErrorIs(t, err, graph.ErrMalformedEdgeList)

	_, err = graph.ReadEdgeList(strings.NewReader("3 1\n0 1\n"))
	require.ErrorIs(t, err, graph.ErrMalformedEdgeList)
}

func TestWriteEdgeList_RoundTrips(t *testing.T) {
	t.Parallel()

	b, err := graph.NewBuilder(3)
	require.NoError(t, err)
	require.NoError(t, b.AddEdge(0, 1, 2))
	require.NoError(t, b.AddEdge(1, 2, 5))
	g, err := b.Finalize()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graph.WriteEdgeList(&buf, g))

	b2, err := graph.ReadEdgeList(&buf)
	require.NoError(t, err)
	g2, err := b2.Finalize()
	require.NoError(t, err)

	require.Equal(t, g.NumVertices(), g2.NumVertices())
	require.Equal(t, g.NumEdges(), g2.NumEdges())
	for u := 0; u < g.NumVertices(); u++ {
		require.ElementsMatch(t, g.Neighbors(u), g2.Neighbors(u))
	}
}
