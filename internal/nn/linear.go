package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/perceptron/internal/backend"
	"github.com/born-ml/perceptron/internal/matrix"
)

// Linear is one fully connected layer of a Network.
//
// Computes the response z = W @ x + b
// where:
//   - x is the input column with shape [in, 1]
//   - W is the weight matrix with shape [out, in]
//   - b is the bias column with shape [out, 1]
//
// Weights are drawn from U(-0.5, 0.5); biases start at zero.
type Linear struct {
	inFeatures  int
	outFeatures int
	weight      *matrix.Matrix // [out, in]
	bias        *matrix.Matrix // [out, 1]
}

// NewLinear creates a layer mapping in features to out features.
func NewLinear(in, out int, rng *rand.Rand, b backend.Backend) (*Linear, error) {
	weight, err := Uniform(out, in, initBound, rng, b)
	if err != nil {
		return nil, fmt.Errorf("linear %d->%d: weight: %w", in, out, err)
	}
	bias, err := Zeros(out, 1, b)
	if err != nil {
		return nil, fmt.Errorf("linear %d->%d: bias: %w", in, out, err)
	}
	return &Linear{
		inFeatures:  in,
		outFeatures: out,
		weight:      weight,
		bias:        bias,
	}, nil
}

// Forward returns the pre-activation response W @ x + b for the column x.
func (l *Linear) Forward(x *matrix.Matrix) (*matrix.Matrix, error) {
	wx, err := l.weight.MatMul(x)
	if err != nil {
		return nil, err
	}
	return wx.Add(l.bias)
}

// Weight returns the weight parameter. It is updated in place by training.
func (l *Linear) Weight() *matrix.Matrix {
	return l.weight
}

// Bias returns the bias parameter. It is updated in place by training.
func (l *Linear) Bias() *matrix.Matrix {
	return l.bias
}

// InFeatures returns the number of input features.
func (l *Linear) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of output features.
func (l *Linear) OutFeatures() int {
	return l.outFeatures
}
