package optim

import (
	"fmt"

	"github.com/born-ml/perceptron/internal/matrix"
)

// DefaultLR is the learning rate used when SGDConfig.LR is zero.
const DefaultLR = 0.01

// SGD implements Stochastic Gradient Descent without momentum.
//
// Update rule:
//
//	param = param - lr * gradient
type SGD struct {
	lr float64
}

// Compile-time check that SGD implements Optimizer.
var _ Optimizer = (*SGD)(nil)

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR float64 // Learning rate (default: 0.01)
}

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = DefaultLR
	}
	return &SGD{lr: config.LR}
}

// Step performs param -= lr * grad in place.
// The parameter keeps its buffer and shape; only its values change.
func (s *SGD) Step(param, grad *matrix.Matrix) error {
	updated, err := param.Subtract(grad.Scale(s.lr))
	if err != nil {
		return fmt.Errorf("sgd: %w", err)
	}
	return param.CopyFrom(updated)
}

// LR returns the current learning rate.
func (s *SGD) LR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
