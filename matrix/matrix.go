// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"github.com/born-ml/perceptron/backend"
	"github.com/born-ml/perceptron/internal/matrix"
)

// Matrix is a dense row-major float64 matrix.
type Matrix = matrix.Matrix

// Option configures a newly built matrix.
type Option = matrix.Option

// Operand is the right-hand side of Multiply: a scalar or a matrix.
type Operand = matrix.Operand

// Errors

var (
	// ErrInvalidDimension reports a non-positive size argument.
	ErrInvalidDimension = matrix.ErrInvalidDimension
	// ErrIrregularShape reports non-rectangular row data.
	ErrIrregularShape = matrix.ErrIrregularShape
	// ErrInvalidValueType reports a non-numeric entry.
	ErrInvalidValueType = matrix.ErrInvalidValueType
	// ErrShapeMismatch reports operands whose shapes are incompatible.
	ErrShapeMismatch = matrix.ErrShapeMismatch
)

// Options

// WithBackend binds the matrix to b.
func WithBackend(b backend.Backend) Option {
	return matrix.WithBackend(b)
}

// WithPrecision sets the number of decimals used by String.
func WithPrecision(p int) Option {
	return matrix.WithPrecision(p)
}

// DefaultBackend returns the backend used when none is given.
func DefaultBackend() backend.Backend {
	return matrix.DefaultBackend()
}

// Constructors

// Empty returns the 0x0 matrix.
func Empty(opts ...Option) *Matrix {
	return matrix.Empty(opts...)
}

// Zeros returns a rows×cols matrix of zeros.
//
// Example:
//
//	m, err := matrix.Zeros(3, 2)
func Zeros(rows, cols int, opts ...Option) (*Matrix, error) {
	return matrix.Zeros(rows, cols, opts...)
}

// FromRows builds a matrix from rectangular row data.
func FromRows(rows [][]float64, opts ...Option) (*Matrix, error) {
	return matrix.FromRows(rows, opts...)
}

// FromAny builds a matrix from rectangular data of Go numeric values.
func FromAny(rows [][]any, opts ...Option) (*Matrix, error) {
	return matrix.FromAny(rows, opts...)
}

// FromStrings builds a matrix by parsing rectangular decimal text.
func FromStrings(rows [][]string, opts ...Option) (*Matrix, error) {
	return matrix.FromStrings(rows, opts...)
}

// FromSlice builds a rows×cols matrix from a copied row-major buffer.
func FromSlice(rows, cols int, data []float64, opts ...Option) (*Matrix, error) {
	return matrix.FromSlice(rows, cols, data, opts...)
}

// Column builds a single-column matrix from values.
func Column(values []float64, opts ...Option) *Matrix {
	return matrix.Column(values, opts...)
}

// Operands

// Scalar wraps s as a Multiply operand.
func Scalar(s float64) Operand {
	return matrix.Scalar(s)
}

// Of wraps m as a Multiply operand.
func Of(m *Matrix) Operand {
	return matrix.Of(m)
}

// Dot returns the left-to-right sum of pairwise products of a and b.
func Dot(a, b []float64) (float64, error) {
	return matrix.Dot(a, b)
}
