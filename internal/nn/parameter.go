package nn

import (
	"fmt"

	"github.com/born-ml/perceptron/internal/matrix"
)

// Parameter is a named trainable matrix of a network.
//
// Example:
//
//	for _, p := range net.Parameters() {
//	    fmt.Println(p.Name(), p.Value().Rows(), p.Value().Cols())
//	}
type Parameter struct {
	name  string         // e.g. "layer0.weight"
	value *matrix.Matrix // Live parameter, updated in place by Backward
}

// NewParameter wraps value under name.
func NewParameter(name string, value *matrix.Matrix) *Parameter {
	return &Parameter{name: name, value: value}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Value returns the live parameter matrix.
func (p *Parameter) Value() *matrix.Matrix {
	return p.value
}

// Size returns the number of scalar values in the parameter.
func (p *Parameter) Size() int {
	r, c := p.value.Shape()
	return r * c
}

// parameters names the layer's weight and bias by its index i.
func (l *Linear) parameters(i int) []*Parameter {
	return []*Parameter{
		NewParameter(fmt.Sprintf("layer%d.weight", i), l.weight),
		NewParameter(fmt.Sprintf("layer%d.bias", i), l.bias),
	}
}

// Parameters returns every trainable parameter of the network, weight then
// bias for each layer in order. The matrices are live, not copies.
func (n *Network) Parameters() []*Parameter {
	params := make([]*Parameter, 0, 2*len(n.layers))
	for i, l := range n.layers {
		params = append(params, l.parameters(i)...)
	}
	return params
}

// NumParameters returns the total number of scalar parameters.
func (n *Network) NumParameters() int {
	total := 0
	for _, p := range n.Parameters() {
		total += p.Size()
	}
	return total
}
