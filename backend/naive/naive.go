// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package naive provides the reference nested-loop backend.
package naive

import (
	"github.com/born-ml/perceptron/backend"
	internalnaive "github.com/born-ml/perceptron/internal/backend/naive"
)

// Backend is the nested-loop reference implementation.
type Backend = internalnaive.Backend

// Compile-time check that Backend implements backend.Backend.
var _ backend.Backend = Backend{}

// New creates a naive backend. It is the default for new matrices.
func New() Backend {
	return internalnaive.New()
}
