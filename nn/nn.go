// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/perceptron/backend"
	"github.com/born-ml/perceptron/internal/nn"
)

// Network is a feedforward network of Linear layers.
type Network = nn.Network

// Config describes a network's topology and training hyperparameters.
type Config = nn.Config

// Trace holds per-layer activations and responses of one forward pass.
type Trace = nn.Trace

// Gradient is the loss gradient of one layer's weight and bias.
type Gradient = nn.Gradient

// Parameter is a named trainable matrix.
type Parameter = nn.Parameter

// ErrUnknownFunction is returned by the name selectors.
var ErrUnknownFunction = nn.ErrUnknownFunction

// ErrInvalidLearnRate is returned by New for a negative or non-finite rate.
var ErrInvalidLearnRate = nn.ErrInvalidLearnRate

// New builds a network.
//
// Example:
//
//	net, err := nn.New(nn.Config{Inputs: 784, Outputs: 10, Hidden: []int{128, 64, 32}})
func New(cfg Config) (*Network, error) {
	return nn.New(cfg)
}

// Layers

// Linear is one fully connected layer computing W @ x + b.
type Linear = nn.Linear

// NewLinear creates a layer with U(-0.5, 0.5) weights and zero bias.
func NewLinear(in, out int, rng *rand.Rand, b backend.Backend) (*Linear, error) {
	return nn.NewLinear(in, out, rng, b)
}

// Activations

// Activation is an element-wise function evaluated in Value or Derivative mode.
type Activation = nn.Activation

// Mode selects value or derivative evaluation.
type Mode = nn.Mode

// Activation modes.
const (
	Value      = nn.Value
	Derivative = nn.Derivative
)

// Sigmoid is the logistic activation. It saturates instead of overflowing.
func Sigmoid(x float64, mode Mode) float64 {
	return nn.Sigmoid(x, mode)
}

// ReLU is the rectified linear activation.
func ReLU(x float64, mode Mode) float64 {
	return nn.ReLU(x, mode)
}

// ActivationByName resolves "sigmoid" or "relu".
func ActivationByName(name string) (Activation, error) {
	return nn.ActivationByName(name)
}

// Loss functions

// Loss scores a prediction column against its label column.
type Loss = nn.Loss

// SSE is the sum of squared errors.
type SSE = nn.SSE

// BinaryCrossEntropy is the epsilon-guarded mean binary cross-entropy.
type BinaryCrossEntropy = nn.BinaryCrossEntropy

// LossByName resolves "sse" or "bce".
func LossByName(name string) (Loss, error) {
	return nn.LossByName(name)
}
