// Package optim implements the parameter update rule used by training.
//
// This package provides:
//   - Optimizer interface: applies one gradient to one parameter in place
//   - SGD: plain stochastic gradient descent
//
// Example usage:
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.05})
//	for i, g := range grads {
//	    if err := sgd.Step(weights[i], g.Weight); err != nil {
//	        return err
//	    }
//	}
package optim

import "github.com/born-ml/perceptron/internal/matrix"

// Optimizer updates a parameter from its gradient.
type Optimizer interface {
	// Step writes the updated value of param back into its own buffer.
	// Shapes of param and grad must match; on error param is untouched.
	Step(param, grad *matrix.Matrix) error

	// LR returns the current learning rate.
	LR() float64
}
