package nn

import (
	"fmt"

	"github.com/born-ml/perceptron/internal/matrix"
)

// Train runs epochs passes of online SGD over the samples, in the given
// order with no shuffling: one Forward and one Backward per sample.
//
// Every sample must hold Inputs values and every label must be an
// [Outputs, 1] column; this is checked for the whole set before any
// parameter changes. If Config.OnEpoch is set it receives the mean loss of
// the epoch, measured on each sample before its update.
func (n *Network) Train(data, labels []*matrix.Matrix, epochs int) error {
	if err := n.checkSamples("train", data, labels); err != nil {
		return err
	}

	for epoch := 1; epoch <= epochs; epoch++ {
		var total float64
		for i := range data {
			trace, err := n.Forward(data[i])
			if err != nil {
				return fmt.Errorf("nn: train: epoch %d sample %d: %w", epoch, i, err)
			}
			if n.onEpoch != nil {
				l, err := n.loss.Value(labels[i].CloneOn(n.backend), trace.Output())
				if err != nil {
					return fmt.Errorf("nn: train: epoch %d sample %d: %w", epoch, i, err)
				}
				total += l
			}
			if err := n.Backward(trace, labels[i]); err != nil {
				return fmt.Errorf("nn: train: epoch %d sample %d: %w", epoch, i, err)
			}
		}
		if n.onEpoch != nil && len(data) > 0 {
			n.onEpoch(epoch, total/float64(len(data)))
		}
	}
	return nil
}

// Test forward-propagates every sample and counts it correct when
// loss(label, output) < threshold. It returns the fraction correct and the
// outputs in sample order. An empty set scores 0. The network is not
// modified.
func (n *Network) Test(data, labels []*matrix.Matrix, threshold float64) (float64, []*matrix.Matrix, error) {
	if err := n.checkSamples("test", data, labels); err != nil {
		return 0, nil, err
	}

	outputs := make([]*matrix.Matrix, len(data))
	correct := 0
	for i := range data {
		out, err := n.Predict(data[i])
		if err != nil {
			return 0, nil, fmt.Errorf("nn: test: sample %d: %w", i, err)
		}
		l, err := n.loss.Value(labels[i].CloneOn(n.backend), out)
		if err != nil {
			return 0, nil, fmt.Errorf("nn: test: sample %d: %w", i, err)
		}
		if l < threshold {
			correct++
		}
		outputs[i] = out
	}

	if len(data) == 0 {
		return 0, outputs, nil
	}
	return float64(correct) / float64(len(data)), outputs, nil
}

func (n *Network) checkSamples(op string, data, labels []*matrix.Matrix) error {
	if len(data) != len(labels) {
		return fmt.Errorf("nn: %s: %d samples, %d labels: %w", op, len(data), len(labels), matrix.ErrShapeMismatch)
	}
	inputs, outputs := n.sizes[0], n.sizes[len(n.sizes)-1]
	for i := range data {
		if data[i] == nil || labels[i] == nil {
			return fmt.Errorf("nn: %s: sample %d is nil: %w", op, i, matrix.ErrInvalidValueType)
		}
		if r, c := data[i].Shape(); r*c != inputs {
			return fmt.Errorf("nn: %s: sample %d has %d values, want %d: %w", op, i, r*c, inputs, matrix.ErrShapeMismatch)
		}
		if r, c := labels[i].Shape(); r != outputs || c != 1 {
			return fmt.Errorf("nn: %s: label %d is [%d,%d], want [%d,1]: %w", op, i, r, c, outputs, matrix.ErrShapeMismatch)
		}
	}
	return nil
}
