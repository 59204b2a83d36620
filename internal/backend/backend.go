// Package backend defines the compute boundary under the matrix type.
//
// A Backend performs the bulk arithmetic of a matrix operation over flat,
// row-major float64 buffers. Implementations:
//   - naive: nested loops, the reference semantics
//   - accel: vector kernels and row-parallel products
//
// Callers allocate every destination buffer and validate shapes before the
// call; a backend never retains a buffer past the call and never reads dst
// before writing it.
package backend

// Backend is the interface that all compute backends must implement.
//
// MatMul must accumulate each output cell from 0 over k = 0..K-1 in index
// order, so that all backends agree bit-for-bit on the same inputs.
type Backend interface {
	// Element-wise operations. len(dst) == len(a) == len(b).
	Add(dst, a, b []float64)           // dst[i] = a[i] + b[i]
	Mul(dst, a, b []float64)           // dst[i] = a[i] * b[i]
	Scale(dst, a []float64, s float64) // dst[i] = a[i] * s

	// MatMul computes dst = a @ b for a [m, k] and b [k, n].
	MatMul(dst, a, b []float64, m, k, n int)

	// Transpose writes the [cols, rows] transpose of the [rows, cols] a.
	Transpose(dst, a []float64, rows, cols int)

	// Name returns a short identifier, e.g. "naive".
	Name() string
}

// Row returns a copy of row i of the [rows, cols] buffer data.
func Row(data []float64, cols, i int) []float64 {
	out := make([]float64, cols)
	copy(out, data[i*cols:(i+1)*cols])
	return out
}

// Col returns a copy of column j of the [rows, cols] buffer data.
func Col(data []float64, rows, cols, j int) []float64 {
	out := make([]float64, rows)
	for i := 0; i < rows; i++ {
		out[i] = data[i*cols+j]
	}
	return out
}

// Dot returns the sum of pairwise products of a and b, accumulated from 0
// left to right over len(a) terms. b must be at least as long as a.
//
// The explicit float64 conversion rounds each product before the add and so
// forbids the compiler from fusing the multiply-add.
func Dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i] * b[i])
	}
	return sum
}
