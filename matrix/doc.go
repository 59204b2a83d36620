// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides a dense float64 matrix with pluggable compute backends.
//
// # Overview
//
// A Matrix stores rows*cols values in a contiguous row-major buffer. Every
// operation returns a new matrix and never aliases its inputs. Shape errors
// are returned, never panicked:
//   - ErrInvalidDimension: non-positive sizes
//   - ErrIrregularShape: ragged row data
//   - ErrInvalidValueType: non-numeric entries
//   - ErrShapeMismatch: incompatible operand shapes
//
// # Basic Usage
//
//	a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
//	b, _ := matrix.FromRows([][]float64{{5, 6}, {7, 8}})
//
//	c, _ := a.MatMul(b)                   // [[19 22] [43 50]]
//	d, _ := a.Multiply(matrix.Scalar(2))  // [[2 4] [6 8]]
//	fmt.Print(a.Transpose())              // 1.00  3.00 / 2.00  4.00
//
// # Backends
//
// A matrix computes with the backend it was built with, and results inherit
// the left operand's backend:
//
//	m, _ := matrix.Zeros(128, 128, matrix.WithBackend(accel.New()))
package matrix
