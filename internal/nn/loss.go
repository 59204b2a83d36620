package nn

import (
	"fmt"
	"math"
	"strings"

	"github.com/born-ml/perceptron/internal/matrix"
)

// Loss scores a prediction against its label.
//
// Both arguments are single-column matrices of equal length: expected is the
// label, observed the network output.
type Loss interface {
	// Name returns a short identifier, e.g. "sse".
	Name() string

	// Value reduces the pair to a scalar loss.
	Value(expected, observed *matrix.Matrix) (float64, error)

	// Derivative returns the gradient of the loss with respect to observed.
	Derivative(expected, observed *matrix.Matrix) (*matrix.Matrix, error)
}

// bceEpsilon keeps binary cross-entropy logarithms away from 0.
const bceEpsilon = 1e-10

// checkColumns validates that both operands are equal-length column vectors.
func checkColumns(op string, expected, observed *matrix.Matrix) error {
	if expected.Cols() != 1 || observed.Cols() != 1 || expected.Rows() != observed.Rows() {
		return fmt.Errorf("%s: expected [%d,%d], observed [%d,%d]: %w",
			op, expected.Rows(), expected.Cols(), observed.Rows(), observed.Cols(), matrix.ErrShapeMismatch)
	}
	return nil
}

// SSE is the sum of squared errors.
//
//	Loss  = Σ (y - ŷ)²
//	dL/dŷ = -2 * (y - ŷ)
type SSE struct{}

// Name returns "sse".
func (SSE) Name() string { return "sse" }

// Value computes Σ (expected - observed)².
func (SSE) Value(expected, observed *matrix.Matrix) (float64, error) {
	if err := checkColumns("sse", expected, observed); err != nil {
		return 0, err
	}
	diff, err := expected.Subtract(observed)
	if err != nil {
		return 0, err
	}
	col := diff.Col(0)
	return matrix.Dot(col, col)
}

// Derivative computes -2 * (expected - observed).
func (SSE) Derivative(expected, observed *matrix.Matrix) (*matrix.Matrix, error) {
	if err := checkColumns("sse derivative", expected, observed); err != nil {
		return nil, err
	}
	diff, err := expected.Subtract(observed)
	if err != nil {
		return nil, err
	}
	return diff.Scale(-2), nil
}

// BinaryCrossEntropy is the mean binary cross-entropy.
//
// Every component of both vectors is shifted by 1e-10 before use, and the
// complementary terms use |1 - z| + 1e-10, so no logarithm sees 0.
//
//	Loss     = (1/n) Σ [ -y*log(ŷ) - (1-y)*log(1-ŷ) ]
//	dL/dŷ_i  = -y_i/ŷ_i + (1-y_i)/(1-ŷ_i)
type BinaryCrossEntropy struct{}

// Name returns "bce".
func (BinaryCrossEntropy) Name() string { return "bce" }

// Value computes the mean binary cross-entropy.
func (BinaryCrossEntropy) Value(expected, observed *matrix.Matrix) (float64, error) {
	if err := checkColumns("bce", expected, observed); err != nil {
		return 0, err
	}
	y := shifted(expected.Col(0))
	yHat := shifted(observed.Col(0))

	var hit, miss float64
	for i := range y {
		hit += float64(y[i] * math.Log(yHat[i]))
	}
	for i := range y {
		miss += float64(complement(y[i]) * math.Log(complement(yHat[i])))
	}
	return (-hit - miss) / float64(len(y)), nil
}

// Derivative computes -y/ŷ + (1-y)/(1-ŷ) per component. This is the
// gradient of the summed loss; it is not divided by n.
func (BinaryCrossEntropy) Derivative(expected, observed *matrix.Matrix) (*matrix.Matrix, error) {
	if err := checkColumns("bce derivative", expected, observed); err != nil {
		return nil, err
	}
	y := shifted(expected.Col(0))
	yHat := shifted(observed.Col(0))

	grad := make([]float64, len(y))
	for i := range y {
		grad[i] = -y[i]/yHat[i] + (1-y[i])/(1-yHat[i])
	}
	return matrix.Column(grad, matrix.WithBackend(observed.Backend())), nil
}

func shifted(z []float64) []float64 {
	for i := range z {
		z[i] += bceEpsilon
	}
	return z
}

func complement(z float64) float64 {
	return math.Abs(1-z) + bceEpsilon
}

// LossByName resolves "sse" or "bce" (case-insensitive).
func LossByName(name string) (Loss, error) {
	switch strings.ToLower(name) {
	case "sse":
		return SSE{}, nil
	case "bce", "binary_cross_entropy":
		return BinaryCrossEntropy{}, nil
	default:
		return nil, fmt.Errorf("loss %q: %w", name, ErrUnknownFunction)
	}
}
