// Package nn implements a fully connected feedforward network trained by
// online stochastic gradient descent on top of the matrix package.
package nn

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/born-ml/perceptron/internal/backend"
	"github.com/born-ml/perceptron/internal/matrix"
	"github.com/born-ml/perceptron/internal/optim"
)

// Config describes a network's topology and training hyperparameters.
type Config struct {
	Inputs  int   // Input vector length
	Outputs int   // Output vector length
	Hidden  []int // Hidden layer sizes, in order

	Loss       Loss       // Default: SSE
	Activation Activation // Default: Sigmoid
	Seed       int64      // Seed of the initialization generator; 0 is a valid seed

	// LearnRate is the SGD step size. Zero is the unset value and selects
	// optim.DefaultLR (0.01), so a zero-rate frozen model cannot be built.
	// Negative, NaN and infinite rates yield ErrInvalidLearnRate.
	LearnRate float64

	// Backend computes every matrix operation of the network.
	// Default: matrix.DefaultBackend().
	Backend backend.Backend

	// OnEpoch, if set, is called after every training epoch with the
	// 1-based epoch number and the mean training loss of that epoch.
	OnEpoch func(epoch int, meanLoss float64)
}

// Network is a feedforward network of Linear layers sharing one activation.
//
// Parameters are allocated once by New and mutated in place by Backward;
// they are never resized. A Network is not safe for concurrent training.
type Network struct {
	sizes      []int
	layers     []*Linear
	loss       Loss
	activation Activation
	optimizer  optim.Optimizer
	backend    backend.Backend
	rng        *rand.Rand // seeded from Config.Seed; drives initialization
	onEpoch    func(epoch int, meanLoss float64)
}

// New builds a network with layer sizes [Inputs, Hidden..., Outputs].
// Every weight is drawn from U(-0.5, 0.5) in layer order, row-major;
// every bias starts at zero. Non-positive sizes yield ErrInvalidDimension.
func New(cfg Config) (*Network, error) {
	sizes := make([]int, 0, len(cfg.Hidden)+2)
	sizes = append(sizes, cfg.Inputs)
	sizes = append(sizes, cfg.Hidden...)
	sizes = append(sizes, cfg.Outputs)
	if cfg.LearnRate < 0 || math.IsNaN(cfg.LearnRate) || math.IsInf(cfg.LearnRate, 0) {
		return nil, fmt.Errorf("nn: learning rate %v: %w", cfg.LearnRate, ErrInvalidLearnRate)
	}
	for i, s := range sizes {
		if s <= 0 {
			return nil, fmt.Errorf("nn: layer %d size %d: %w", i, s, matrix.ErrInvalidDimension)
		}
	}

	if cfg.Loss == nil {
		cfg.Loss = SSE{}
	}
	if cfg.Activation == nil {
		cfg.Activation = Sigmoid
	}
	if cfg.Backend == nil {
		cfg.Backend = matrix.DefaultBackend()
	}

	//nolint:gosec // Intentional deterministic seed for reproducibility
	rng := rand.New(rand.NewSource(cfg.Seed))

	layers := make([]*Linear, len(sizes)-1)
	for i := range layers {
		l, err := NewLinear(sizes[i], sizes[i+1], rng, cfg.Backend)
		if err != nil {
			return nil, fmt.Errorf("nn: layer %d: %w", i, err)
		}
		layers[i] = l
	}

	return &Network{
		sizes:      sizes,
		layers:     layers,
		loss:       cfg.Loss,
		activation: cfg.Activation,
		optimizer:  optim.NewSGD(optim.SGDConfig{LR: cfg.LearnRate}),
		backend:    cfg.Backend,
		rng:        rng,
		onEpoch:    cfg.OnEpoch,
	}, nil
}

// Sizes returns the layer size sequence [inputs, hidden..., outputs].
func (n *Network) Sizes() []int {
	out := make([]int, len(n.sizes))
	copy(out, n.sizes)
	return out
}

// NumLayers returns the number of weight/bias pairs.
func (n *Network) NumLayers() int {
	return len(n.layers)
}

// Layers returns the network's layers in order.
func (n *Network) Layers() []*Linear {
	out := make([]*Linear, len(n.layers))
	copy(out, n.layers)
	return out
}

// Weights returns copies of every weight matrix, in layer order.
func (n *Network) Weights() []*matrix.Matrix {
	out := make([]*matrix.Matrix, len(n.layers))
	for i, l := range n.layers {
		out[i] = l.Weight().Clone()
	}
	return out
}

// Biases returns copies of every bias column, in layer order.
func (n *Network) Biases() []*matrix.Matrix {
	out := make([]*matrix.Matrix, len(n.layers))
	for i, l := range n.layers {
		out[i] = l.Bias().Clone()
	}
	return out
}

// Loss returns the network's loss function.
func (n *Network) Loss() Loss {
	return n.loss
}

// LearnRate returns the SGD learning rate.
func (n *Network) LearnRate() float64 {
	return n.optimizer.LR()
}

// Backend returns the compute backend of the network's matrices.
func (n *Network) Backend() backend.Backend {
	return n.backend
}
