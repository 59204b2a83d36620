// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a fully connected feedforward network trained by
// online stochastic gradient descent.
//
// # Overview
//
// This package contains:
//   - Network: layer sizes [inputs, hidden..., outputs], one shared activation
//   - Activations: Sigmoid, ReLU (value and derivative behind one function)
//   - Loss functions: SSE, BinaryCrossEntropy
//   - Training: Forward, Backward, Train, Test
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/perceptron/matrix"
//	    "github.com/born-ml/perceptron/nn"
//	)
//
//	func main() {
//	    net, err := nn.New(nn.Config{
//	        Inputs:    2,
//	        Outputs:   1,
//	        Hidden:    []int{3, 2},
//	        LearnRate: 0.1,
//	        Seed:      0,
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // One sample per step, in order
//	    if err := net.Train(data, labels, 10); err != nil {
//	        log.Fatal(err)
//	    }
//	    acc, outputs, err := net.Test(testData, testLabels, 0.25)
//	}
//
// # Training
//
// Each Backward computes every layer gradient from the pre-update weights
// and then applies W -= lr * dL/dW, b -= lr * dL/db. There is no momentum,
// batching or regularization. Initialization is fully determined by Seed.
package nn
