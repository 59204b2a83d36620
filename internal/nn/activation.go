package nn

import (
	"fmt"
	"math"
	"strings"
)

// Mode selects whether an activation returns its value or its derivative.
type Mode int

const (
	// Value evaluates f(x).
	Value Mode = iota
	// Derivative evaluates f'(x).
	Derivative
)

// Activation is an element-wise activation function. One function serves
// both modes, so a network holds a single reference per activation.
type Activation func(x float64, mode Mode) float64

// expOverflow is the largest argument for which math.Exp is finite.
const expOverflow = 709.782712893384

// sigmoid computes 1 / (1 + exp(-x)). When exp(-x) overflows the result
// saturates to its limit 0 instead of going through Inf.
func sigmoid(x float64) float64 {
	// math.Exp alone would give 1/(1+Inf) = 0 here; the explicit branch
	// pins the limit 0 rather than the 1 some implementations return.
	if -x > expOverflow {
		return 0
	}
	return 1 / (1 + math.Exp(-x))
}

// Sigmoid is the logistic activation σ(x) = 1 / (1 + exp(-x)).
// Its derivative is σ(x) * (1 - σ(x)).
func Sigmoid(x float64, mode Mode) float64 {
	s := sigmoid(x)
	if mode == Derivative {
		return s * (1 - s)
	}
	return s
}

// ReLU is the rectified linear activation max(0, x).
// Its derivative is 0 for x <= 0 and 1 otherwise.
func ReLU(x float64, mode Mode) float64 {
	if mode == Derivative {
		if x <= 0 {
			return 0
		}
		return 1
	}
	if x > 0 {
		return x
	}
	return 0
}

// ActivationByName resolves "sigmoid" or "relu" (case-insensitive).
func ActivationByName(name string) (Activation, error) {
	switch strings.ToLower(name) {
	case "sigmoid":
		return Sigmoid, nil
	case "relu":
		return ReLU, nil
	default:
		return nil, fmt.Errorf("activation %q: %w", name, ErrUnknownFunction)
	}
}
