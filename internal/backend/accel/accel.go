// Package accel implements an accelerated CPU backend over flat buffers.
//
// Element-wise operations delegate to the gonum/floats vector kernels. The
// matrix product packs the right operand column-major once and then computes
// output rows in parallel; each cell is still accumulated from 0 in index
// order, so results match the naive backend bit-for-bit. Transpose works in
// square tiles for cache locality.
//
// The backend holds only immutable configuration and is safe for concurrent use.
package accel

import (
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/perceptron/internal/backend"
	"github.com/born-ml/perceptron/internal/parallel"
)

// tileSize is the edge of the square blocks used by Transpose.
const tileSize = 32

// Backend is the accelerated compute backend.
type Backend struct {
	cfg parallel.Config
}

// Compile-time check that Backend implements backend.Backend.
var _ backend.Backend = (*Backend)(nil)

// New creates an accelerated backend using parallel.DefaultConfig.
func New() *Backend {
	return &Backend{cfg: parallel.DefaultConfig()}
}

// NewWithConfig creates an accelerated backend with an explicit parallel config.
func NewWithConfig(cfg parallel.Config) *Backend {
	return &Backend{cfg: cfg}
}

// Name returns the backend name.
func (b *Backend) Name() string {
	return "accel"
}

// Add performs element-wise addition.
func (b *Backend) Add(dst, x, y []float64) {
	floats.AddTo(dst, x, y)
}

// Mul performs element-wise multiplication.
func (b *Backend) Mul(dst, x, y []float64) {
	floats.MulTo(dst, x, y)
}

// Scale multiplies every element by s.
func (b *Backend) Scale(dst, x []float64, s float64) {
	floats.ScaleTo(dst, s, x)
}

// MatMul computes dst = x @ y for x [m, k] and y [k, n].
func (b *Backend) MatMul(dst, x, y []float64, m, k, n int) {
	if m == 0 || n == 0 {
		return
	}
	if k == 0 {
		for i := range dst {
			dst[i] = 0
		}
		return
	}

	// Pack y column-major so every dot product walks two contiguous slices.
	packed := make([]float64, k*n)
	b.Transpose(packed, y, k, n)

	parallel.ForRange(m, func(start, end int) {
		for i := start; i < end; i++ {
			row := x[i*k : (i+1)*k]
			out := dst[i*n : (i+1)*n]
			for j := range out {
				out[j] = backend.Dot(row, packed[j*k:(j+1)*k])
			}
		}
	}, b.cfg)
}

// Transpose writes dst[j][i] = x[i][j], tile by tile.
func (b *Backend) Transpose(dst, x []float64, rows, cols int) {
	tiles := (rows + tileSize - 1) / tileSize
	parallel.For(tiles, func(ti int) {
		i0 := ti * tileSize
		i1 := min(i0+tileSize, rows)
		for j0 := 0; j0 < cols; j0 += tileSize {
			j1 := min(j0+tileSize, cols)
			for i := i0; i < i1; i++ {
				for j := j0; j < j1; j++ {
					dst[j*rows+i] = x[i*cols+j]
				}
			}
		}
	}, b.cfg)
}
