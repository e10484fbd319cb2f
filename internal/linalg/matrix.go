// Package linalg provides the small dense-matrix and linear-solve
// primitives bench.Analyze needs to fit its trend line: a square
// Dense matrix, LU decomposition, and forward/back substitution.
// It is not a general linear-algebra library — it keeps exactly the
// surface one least-squares normal-equations solve exercises.
package linalg

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions indicates non-positive requested dimensions.
var ErrInvalidDimensions = errors.New("linalg: dimensions must be > 0")

// ErrIndexOutOfBounds indicates an out-of-range row or column index.
var ErrIndexOutOfBounds = errors.New("linalg: index out of bounds")

// ErrSingularMatrix indicates LU decomposition hit a zero pivot.
var ErrSingularMatrix = errors.New("linalg: matrix is singular")

// Dense is a row-major square matrix of float64 values.
type Dense struct {
	n    int
	data []float64
}

// NewDense allocates an n×n matrix of zeros.
func NewDense(n int) (*Dense, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{n: n, data: make([]float64, n*n)}, nil
}

func (m *Dense) index(i, j int) (int, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, fmt.Errorf("Dense.At(%d,%d): %w", i, j, ErrIndexOutOfBounds)
	}

	return i*m.n + j, nil
}

// At retrieves the element at (i, j).
func (m *Dense) At(i, j int) (float64, error) {
	idx, err := m.index(i, j)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (i, j).
func (m *Dense) Set(i, j int, v float64) error {
	idx, err := m.index(i, j)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// N returns the matrix's dimension.
func (m *Dense) N() int {
	return m.n
}
