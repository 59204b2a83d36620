// Package naive implements the reference compute backend with plain nested loops.
package naive

import "github.com/born-ml/perceptron/internal/backend"

// Backend computes every operation cell by cell in index order.
type Backend struct{}

// Compile-time check that Backend implements backend.Backend.
var _ backend.Backend = Backend{}

// New creates a naive backend.
func New() Backend {
	return Backend{}
}

// Name returns the backend name.
func (Backend) Name() string {
	return "naive"
}

// Add performs element-wise addition.
func (Backend) Add(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// Mul performs element-wise multiplication.
func (Backend) Mul(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// Scale multiplies every element by s.
func (Backend) Scale(dst, a []float64, s float64) {
	for i := range dst {
		dst[i] = a[i] * s
	}
}

// MatMul computes dst[i][j] = dot(row i of a, column j of b).
// Uses the gather-column form of the product: O(m*n*k), no packing.
func (Backend) MatMul(dst, a, b []float64, m, k, n int) {
	for i := 0; i < m; i++ {
		row := a[i*k : (i+1)*k]
		for j := 0; j < n; j++ {
			dst[i*n+j] = backend.Dot(row, backend.Col(b, k, n, j))
		}
	}
}

// Transpose writes dst[j][i] = a[i][j].
func (Backend) Transpose(dst, a []float64, rows, cols int) {
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			dst[j*rows+i] = a[i*cols+j]
		}
	}
}
