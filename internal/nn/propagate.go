package nn

import (
	"fmt"

	"github.com/born-ml/perceptron/internal/matrix"
)

// Trace holds the per-layer values of one forward pass.
//
// Activations[0] and Responses[0] are both the input column. For i >= 1,
// Responses[i] = W[i-1] @ Activations[i-1] + b[i-1] and
// Activations[i] = f(Responses[i]) element-wise.
type Trace struct {
	Activations []*matrix.Matrix
	Responses   []*matrix.Matrix
}

// Output returns the final-layer activation.
func (t *Trace) Output() *matrix.Matrix {
	return t.Activations[len(t.Activations)-1]
}

// Gradient is the loss gradient for one layer's parameters.
type Gradient struct {
	Weight *matrix.Matrix // dL/dW, shape of the layer weight
	Bias   *matrix.Matrix // dL/db, shape of the layer bias
}

// Forward propagates input through the network and returns the full trace.
//
// The input's values are read in row-major order as a single column, so a
// row vector and a column vector of the same values are equivalent. The
// input length must equal the network's input size, otherwise
// ErrShapeMismatch. Forward does not modify the network.
func (n *Network) Forward(input *matrix.Matrix) (*Trace, error) {
	if input == nil {
		return nil, fmt.Errorf("nn: forward: nil input: %w", matrix.ErrInvalidValueType)
	}
	x := matrix.Column(input.Values(), matrix.WithBackend(n.backend))
	if x.Rows() != n.sizes[0] {
		return nil, fmt.Errorf("nn: forward: input has %d values, network expects %d: %w",
			x.Rows(), n.sizes[0], matrix.ErrShapeMismatch)
	}

	value := func(v float64) float64 { return n.activation(v, Value) }

	trace := &Trace{
		Activations: make([]*matrix.Matrix, 1, len(n.layers)+1),
		Responses:   make([]*matrix.Matrix, 1, len(n.layers)+1),
	}
	trace.Activations[0] = x
	trace.Responses[0] = x

	for i, l := range n.layers {
		z, err := l.Forward(trace.Activations[i])
		if err != nil {
			return nil, fmt.Errorf("nn: forward: layer %d: %w", i, err)
		}
		trace.Responses = append(trace.Responses, z)
		trace.Activations = append(trace.Activations, z.Apply(value))
	}
	return trace, nil
}

// Predict returns the final-layer activation for input.
func (n *Network) Predict(input *matrix.Matrix) (*matrix.Matrix, error) {
	trace, err := n.Forward(input)
	if err != nil {
		return nil, err
	}
	return trace.Output(), nil
}

// Gradients applies the chain rule from the output back to the first layer
// and returns dL/dW and dL/db for every layer, in layer order. The network
// is not modified.
//
// For layer i from last to first:
//
//	dL/dz = dL/da ⊙ f'(z_i)
//	dL/dW = dL/dz @ a_{i-1}^T
//	dL/db = dL/dz
//	dL/da = W^T @ dL/dz   (for the layer below)
func (n *Network) Gradients(trace *Trace, label *matrix.Matrix) ([]Gradient, error) {
	if err := n.checkTrace(trace); err != nil {
		return nil, err
	}
	if label == nil {
		return nil, fmt.Errorf("nn: backward: nil label: %w", matrix.ErrInvalidValueType)
	}

	dLda, err := n.loss.Derivative(label.CloneOn(n.backend), trace.Output())
	if err != nil {
		return nil, fmt.Errorf("nn: backward: %w", err)
	}

	derivative := func(v float64) float64 { return n.activation(v, Derivative) }
	grads := make([]Gradient, len(n.layers))

	for i := len(n.layers); i >= 1; i-- {
		dadz := trace.Responses[i].Apply(derivative)
		dLdz, err := dLda.Hadamard(dadz)
		if err != nil {
			return nil, fmt.Errorf("nn: backward: layer %d: %w", i-1, err)
		}
		dLdw, err := dLdz.MatMul(trace.Activations[i-1].Transpose())
		if err != nil {
			return nil, fmt.Errorf("nn: backward: layer %d: %w", i-1, err)
		}
		grads[i-1] = Gradient{Weight: dLdw, Bias: dLdz}

		if i > 1 {
			dLda, err = n.layers[i-1].Weight().Transpose().MatMul(dLdz)
			if err != nil {
				return nil, fmt.Errorf("nn: backward: layer %d: %w", i-1, err)
			}
		}
	}
	return grads, nil
}

// Backward performs one SGD step from a trace produced by Forward:
// W -= lr * dL/dW and b -= lr * dL/db for every layer.
//
// All gradients are computed from the pre-update weights before any
// parameter is written; on error the network is unchanged.
func (n *Network) Backward(trace *Trace, label *matrix.Matrix) error {
	grads, err := n.Gradients(trace, label)
	if err != nil {
		return err
	}
	// Every gradient is checked before the first parameter write.
	for i, g := range grads {
		l := n.layers[i]
		if g.Weight.Rows() != l.outFeatures || g.Weight.Cols() != l.inFeatures ||
			g.Bias.Rows() != l.outFeatures || g.Bias.Cols() != 1 {
			return fmt.Errorf("nn: backward: layer %d gradient shape: %w", i, matrix.ErrShapeMismatch)
		}
	}
	for i, g := range grads {
		l := n.layers[i]
		if err := n.optimizer.Step(l.Weight(), g.Weight); err != nil {
			return fmt.Errorf("nn: backward: layer %d weight: %w", i, err)
		}
		if err := n.optimizer.Step(l.Bias(), g.Bias); err != nil {
			return fmt.Errorf("nn: backward: layer %d bias: %w", i, err)
		}
	}
	return nil
}

// checkTrace validates that trace was produced for this network's topology:
// both sequences hold one [sizes[i], 1] column per layer boundary.
func (n *Network) checkTrace(trace *Trace) error {
	want := len(n.layers) + 1
	if trace == nil {
		return fmt.Errorf("nn: backward: nil trace: %w", matrix.ErrInvalidValueType)
	}
	if len(trace.Activations) != want || len(trace.Responses) != want {
		return fmt.Errorf("nn: backward: trace has %d activations and %d responses, network has %d: %w",
			len(trace.Activations), len(trace.Responses), want, matrix.ErrShapeMismatch)
	}
	for i := 0; i < want; i++ {
		if err := n.checkColumn("activation", i, trace.Activations[i]); err != nil {
			return err
		}
		if err := n.checkColumn("response", i, trace.Responses[i]); err != nil {
			return err
		}
	}
	return nil
}

func (n *Network) checkColumn(kind string, i int, m *matrix.Matrix) error {
	if m == nil {
		return fmt.Errorf("nn: backward: %s %d is nil: %w", kind, i, matrix.ErrInvalidValueType)
	}
	if r, c := m.Shape(); r != n.sizes[i] || c != 1 {
		return fmt.Errorf("nn: backward: %s %d is [%d,%d], want [%d,1]: %w",
			kind, i, r, c, n.sizes[i], matrix.ErrShapeMismatch)
	}
	return nil
}
