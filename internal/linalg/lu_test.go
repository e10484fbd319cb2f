package linalg_test

import (
	"testing"

	"github.com/gostep/deltastep/internal/linalg"
	"github.com/stretchr/testify/require"
)

func TestSolve_TwoByTwoSystem(t *testing.T) {
	t.Parallel()

	m, err := linalg.NewDense(2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 2))
	require.NoError(t, m.Set(0, 1, 1))
	require.NoError(t, m.Set(1, 0, 1))
	require.NoError(t, m.Set(1, 1, 3))

	x, err := linalg.Solve(m, []float64{5, 10})
	require.NoError(t, err)
	require.InDelta(t, 1.0, x[0], 1e-9)
	require.InDelta(t, 3.0, x[1], 1e-9)
}

func TestLU_RejectsSingularMatrix(t *testing.T) {
	t.Parallel()

	m, err := linalg.NewDense(2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 0))
	require.NoError(t, m.Set(0, 1, 1))
	require.NoError(t, m.Set(1, 0, 0))
	require.NoError(t, m.Set(1, 1, 1))

	_, _, err = linalg.LU(m)
	require.ErrorIs(t, err, linalg.ErrSingularMatrix)
}

func TestNewDense_RejectsNonPositiveSize(t *testing.T) {
	t.Parallel()

	_, err := linalg.NewDense(0)
	require.ErrorIs(t, err, linalg.ErrInvalidDimensions)
}
