// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the parameter update rule used by training.
//
// # Overview
//
// This package contains:
//   - SGD: plain stochastic gradient descent without momentum
//   - Optimizer interface for custom update rules
//
// # Basic Usage
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.05})
//	for i, g := range grads {
//	    if err := sgd.Step(weights[i], g.Weight); err != nil {
//	        return err
//	    }
//	}
//
// Step writes the update back into the parameter's own buffer; the
// parameter's shape never changes.
package optim
