// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package backend exposes the compute backends that execute matrix kernels.
//
// # Overview
//
// Every matrix is bound to a Backend. Two implementations ship:
//   - naive: nested loops, the reference behavior
//   - accel: gonum/floats element-wise kernels and a row-parallel,
//     cache-friendly matrix product
//
// Both backends produce bit-identical results for every operation. Matrix
// products accumulate each cell from 0 in ascending inner-index order, so
// swapping the backend never changes a model's outputs.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/perceptron/backend/accel"
//	    "github.com/born-ml/perceptron/matrix"
//	)
//
//	func main() {
//	    a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}}, matrix.WithBackend(accel.New()))
//	    b, _ := matrix.FromRows([][]float64{{5, 6}, {7, 8}})
//	    c, _ := a.MatMul(b) // computed by accel
//	}
package backend

import internalbackend "github.com/born-ml/perceptron/internal/backend"

// Backend computes matrix kernels over flat row-major buffers.
type Backend = internalbackend.Backend
