package graph_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gostep/deltastep/graph"
	"github.com/stretchr/testify/require"
)

func TestCache_LoadFileCachesByModTime(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "g.txt")
	require.NoError(t, os.WriteFile(path, []byte("2 1\n0 1 3\n"), 0o644))

	c, err := graph.NewCache(4)
	require.NoError(t, err)

	g1, err := c.LoadFile(path)
	require.NoError(t, err)
	g2, err := c.LoadFile(path)
	require.NoError(t, err)
	require.Same(t, g1, g2)

	require.NoError(t, os.WriteFile(path, []byte("2 2\n0 1 3\n1 0 4\n"), 0o644))
	// Ensure the modification time visibly advances on filesystems with
	// coarse mtime resolution.
	future := time.Now().Add(time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	g3, err := c.LoadFile(path)
	require.NoError(t, err)
	require.NotSame(t, g1, g3)
	require.Equal(t, 2, g3.NumEdges())
}
