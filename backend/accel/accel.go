// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package accel provides the accelerated flat-buffer backend.
//
// Element-wise kernels run on gonum/floats. Matrix products pack the right
// operand column-major and split output rows across workers; transposes
// are tiled. Results are bit-identical to the naive backend.
package accel

import (
	"github.com/born-ml/perceptron/backend"
	internalaccel "github.com/born-ml/perceptron/internal/backend/accel"
	"github.com/born-ml/perceptron/internal/parallel"
)

// Backend is the accelerated implementation.
type Backend = internalaccel.Backend

// Config controls worker fan-out of the accelerated kernels.
type Config = parallel.Config

// Compile-time check that Backend implements backend.Backend.
var _ backend.Backend = (*Backend)(nil)

// New creates an accelerated backend using one worker per CPU.
//
// Example:
//
//	net, err := nn.New(nn.Config{Inputs: 784, Outputs: 10, Hidden: []int{128}, Backend: accel.New()})
func New() *Backend {
	return internalaccel.New()
}

// NewWithConfig creates an accelerated backend with explicit parallelism.
// Sequential() disables fan-out entirely.
func NewWithConfig(cfg Config) *Backend {
	return internalaccel.NewWithConfig(cfg)
}

// DefaultConfig returns one worker per CPU.
func DefaultConfig() Config {
	return parallel.DefaultConfig()
}

// Sequential returns a configuration that runs every kernel on the caller's goroutine.
func Sequential() Config {
	return parallel.Sequential()
}
