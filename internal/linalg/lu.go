package linalg

import "fmt"

// LU performs Doolittle LU decomposition of a square matrix m,
// returning unit-lower-triangular L and upper-triangular U such that
// L*U = m. It reports ErrSingularMatrix if a zero pivot is hit.
func LU(m *Dense) (l, u *Dense, err error) {
	n := m.N()
	l, err = NewDense(n)
	if err != nil {
		return nil, nil, err
	}
	u, err = NewDense(n)
	if err != nil {
		return nil, nil, err
	}
	for i := 0; i < n; i++ {
		_ = l.Set(i, i, 1)
	}

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sum := 0.0
			for k := 0; k < i; k++ {
				lv, _ := l.At(i, k)
				uv, _ := u.At(k, j)
				sum += lv * uv
			}
			aij, _ := m.At(i, j)
			_ = u.Set(i, j, aij-sum)
		}

		uii, _ := u.At(i, i)
		if uii == 0 {
			return nil, nil, fmt.Errorf("linalg: pivot %d: %w", i, ErrSingularMatrix)
		}

		for j := i + 1; j < n; j++ {
			sum := 0.0
			for k := 0; k < i; k++ {
				lv, _ := l.At(j, k)
				uv, _ := u.At(k, i)
				sum += lv * uv
			}
			aji, _ := m.At(j, i)
			_ = l.Set(j, i, (aji-sum)/uii)
		}
	}

	return l, u, nil
}

// Solve returns x satisfying m*x = b via LU decomposition followed
// by forward and back substitution.
func Solve(m *Dense, b []float64) ([]float64, error) {
	n := m.N()
	if len(b) != n {
		return nil, fmt.Errorf("linalg: Solve: b has length %d, want %d", len(b), n)
	}

	l, u, err := LU(m)
	if err != nil {
		return nil, err
	}

	// Forward substitution: L*y = b.
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := b[i]
		for k := 0; k < i; k++ {
			lv, _ := l.At(i, k)
			sum -= lv * y[k]
		}
		y[i] = sum
	}

	// Back substitution: U*x = y.
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := y[i]
		for k := i + 1; k < n; k++ {
			uv, _ := u.At(i, k)
			sum -= uv * x[k]
		}
		uii, _ := u.At(i, i)
		x[i] = sum / uii
	}

	return x, nil
}
