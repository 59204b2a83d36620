package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/perceptron/internal/backend"
	"github.com/born-ml/perceptron/internal/matrix"
)

// initBound is the half-width of the uniform weight initialization range.
const initBound = 0.5

// Uniform returns a rows×cols matrix with every value drawn from
// U(-bound, bound) using rng, filled in row-major order.
func Uniform(rows, cols int, bound float64, rng *rand.Rand, b backend.Backend) (*matrix.Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("uniform: %dx%d: %w", rows, cols, matrix.ErrInvalidDimension)
	}
	data := make([]float64, rows*cols)
	for i := range data {
		//nolint:gosec // Using math/rand for weight initialization (not security-critical)
		data[i] = (rng.Float64()*2 - 1) * bound
	}
	return matrix.FromSlice(rows, cols, data, matrix.WithBackend(b))
}

// Zeros returns a rows×cols zero matrix bound to b.
//
// This is used for bias initialization.
func Zeros(rows, cols int, b backend.Backend) (*matrix.Matrix, error) {
	return matrix.Zeros(rows, cols, matrix.WithBackend(b))
}
