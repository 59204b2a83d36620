package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigmoid(t *testing.T) {
	tests := []struct {
		x, value, deriv float64
	}{
		{0, 0.5, 0.25},
		{2, 0.8807970779778823, 0.10499358540350662},
		{-2, 0.11920292202211755, 0.10499358540350652},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.value, Sigmoid(tt.x, Value), 1e-12, "σ(%v)", tt.x)
		assert.InDelta(t, tt.deriv, Sigmoid(tt.x, Derivative), 1e-12, "σ'(%v)", tt.x)
	}
}

func TestSigmoidSaturates(t *testing.T) {
	for _, x := range []float64{-710, -1000, -math.MaxFloat64} {
		v := Sigmoid(x, Value)
		assert.Equal(t, 0.0, v, "σ(%v)", x)
		assert.Equal(t, 0.0, Sigmoid(x, Derivative), "σ'(%v)", x)
	}
	assert.Equal(t, 1.0, Sigmoid(1000, Value))
	assert.False(t, math.IsNaN(Sigmoid(-709, Value)))
	assert.Greater(t, Sigmoid(-709, Value), 0.0)
}

func TestReLU(t *testing.T) {
	tests := []struct {
		x, value, deriv float64
	}{
		{-3, 0, 0},
		{0, 0, 0},
		{0.5, 0.5, 1},
		{7, 7, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.value, ReLU(tt.x, Value), "relu(%v)", tt.x)
		assert.Equal(t, tt.deriv, ReLU(tt.x, Derivative), "relu'(%v)", tt.x)
	}
}

func TestActivationByName(t *testing.T) {
	f, err := ActivationByName("Sigmoid")
	require.NoError(t, err)
	assert.Equal(t, 0.5, f(0, Value))

	f, err = ActivationByName("relu")
	require.NoError(t, err)
	assert.Equal(t, 3.0, f(3, Value))

	_, err = ActivationByName("tanh")
	require.ErrorIs(t, err, ErrUnknownFunction)
}
