// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import "github.com/born-ml/perceptron/internal/optim"

// Optimizer updates a parameter from its gradient in place.
type Optimizer = optim.Optimizer

// SGD (Stochastic Gradient Descent)

// SGD is stochastic gradient descent without momentum.
type SGD = optim.SGD

// SGDConfig contains configuration for the SGD optimizer.
type SGDConfig = optim.SGDConfig

// DefaultLR is used when SGDConfig.LR is zero.
const DefaultLR = optim.DefaultLR

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.01})
func NewSGD(config SGDConfig) *SGD {
	return optim.NewSGD(config)
}
