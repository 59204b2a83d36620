package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/born-ml/perceptron/internal/backend"
	"github.com/born-ml/perceptron/internal/backend/accel"
	"github.com/born-ml/perceptron/internal/backend/naive"
	"github.com/born-ml/perceptron/internal/dataset"
	"github.com/born-ml/perceptron/internal/matrix"
	"github.com/born-ml/perceptron/internal/nn"
)

// options are the flags shared by every training command.
type options struct {
	backend    string
	hidden     string
	loss       string
	activation string
	lr         float64
	seed       int64
	epochs     int
	rounds     int
	threshold  float64
}

func (o *options) register(fs *flag.FlagSet, hidden string, lr, threshold float64) {
	fs.StringVar(&o.backend, "backend", "naive", "Compute backend: naive or accel")
	fs.StringVar(&o.hidden, "hidden", hidden, "Comma-separated hidden layer sizes")
	fs.StringVar(&o.loss, "loss", "sse", "Loss function: sse or bce")
	fs.StringVar(&o.activation, "activation", "sigmoid", "Activation function: sigmoid or relu")
	fs.Float64Var(&o.lr, "lr", lr, "SGD learning rate")
	fs.Int64Var(&o.seed, "seed", 0, "Initialization seed")
	fs.IntVar(&o.epochs, "epochs", 10, "Epochs per round")
	fs.IntVar(&o.rounds, "rounds", 1, "Train/evaluate rounds")
	fs.Float64Var(&o.threshold, "threshold", threshold, "A sample is correct when its loss is below this")
}

// parseHidden parses "3,2" into []int{3, 2}. The empty string means no hidden layers.
func parseHidden(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	sizes := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("hidden size %q: %w", p, matrix.ErrInvalidDimension)
		}
		sizes[i] = v
	}
	return sizes, nil
}

func backendByName(name string) (backend.Backend, error) {
	switch strings.ToLower(name) {
	case "naive":
		return naive.New(), nil
	case "accel":
		return accel.New(), nil
	default:
		return nil, fmt.Errorf("backend %q: %w", name, nn.ErrUnknownFunction)
	}
}

// build assembles a network from the shared flags.
func (o *options) build(inputs, outputs int) (*nn.Network, error) {
	hidden, err := parseHidden(o.hidden)
	if err != nil {
		return nil, err
	}
	b, err := backendByName(o.backend)
	if err != nil {
		return nil, err
	}
	loss, err := nn.LossByName(o.loss)
	if err != nil {
		return nil, err
	}
	act, err := nn.ActivationByName(o.activation)
	if err != nil {
		return nil, err
	}
	return nn.New(nn.Config{
		Inputs:     inputs,
		Outputs:    outputs,
		Hidden:     hidden,
		Loss:       loss,
		Activation: act,
		LearnRate:  o.lr,
		Seed:       o.seed,
		Backend:    b,
		OnEpoch: func(epoch int, meanLoss float64) {
			log.Printf("epoch %d: mean loss %.6f", epoch, meanLoss)
		},
	})
}

// fit runs the configured rounds of training followed by evaluation.
func (o *options) fit(net *nn.Network, train, trainLabels, test, testLabels []*matrix.Matrix) error {
	log.Printf("network %v, %d parameters, backend %s", net.Sizes(), net.NumParameters(), net.Backend().Name())
	for round := 1; round <= o.rounds; round++ {
		start := time.Now()
		if err := net.Train(train, trainLabels, o.epochs); err != nil {
			return err
		}
		elapsed := time.Since(start)

		acc, outputs, err := net.Test(test, testLabels, o.threshold)
		if err != nil {
			return err
		}
		log.Printf("completed %d epochs: accuracy %.2f%%, argmax accuracy %.2f%%, %s/epoch",
			round*o.epochs, acc*100, argmaxAccuracy(outputs, testLabels)*100,
			(elapsed / time.Duration(max(o.epochs, 1))).Round(time.Millisecond))
	}
	return nil
}

// argmaxAccuracy is the fraction of outputs whose largest component matches
// the label's. Single-output networks compare against a 0.5 cut instead.
func argmaxAccuracy(outputs, labels []*matrix.Matrix) float64 {
	if len(outputs) == 0 {
		return 0
	}
	hits := 0
	for i, out := range outputs {
		if out.Rows() == 1 {
			if (out.At(0, 0) > 0.5) == (labels[i].At(0, 0) > 0.5) {
				hits++
			}
			continue
		}
		if dataset.ArgMax(out) == dataset.ArgMax(labels[i]) {
			hits++
		}
	}
	return float64(hits) / float64(len(outputs))
}

func runSynthetic(args []string) error {
	fs := flag.NewFlagSet("synthetic", flag.ExitOnError)
	var o options
	o.register(fs, "3,2", 0.025, 0.05)
	trainN := fs.Int("train", 3240, "Training points")
	testN := fs.Int("test", 65, "Held-out points")
	dataSeed := fs.Int64("data-seed", 0, "Seed of the point generator")
	if err := fs.Parse(args); err != nil {
		return err
	}

	net, err := o.build(2, 1)
	if err != nil {
		return err
	}
	//nolint:gosec // Deterministic data for reproducible runs
	rng := rand.New(rand.NewSource(*dataSeed))
	train, trainLabels := dataset.Synthetic(*trainN, rng)
	test, testLabels := dataset.Synthetic(*testN, rng)
	log.Printf("generated %d training and %d test points", len(train), len(test))

	return o.fit(net, train, trainLabels, test, testLabels)
}

func runCSV(args []string) error {
	fs := flag.NewFlagSet("csv", flag.ExitOnError)
	var o options
	o.register(fs, "128,64,32", 0.01, 0.5)
	trainPath := fs.String("train-file", "mnist_train.csv", "Training CSV")
	testPath := fs.String("test-file", "mnist_test.csv", "Test CSV")
	classes := fs.Int("classes", 10, "Number of label classes")
	scale := fs.Float64("scale", 1.0/255, "Pixel scale factor")
	if err := fs.Parse(args); err != nil {
		return err
	}

	load := func(path string) ([]*matrix.Matrix, []*matrix.Matrix, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		return dataset.LoadCSV(f, *classes, *scale)
	}
	train, trainLabels, err := load(*trainPath)
	if err != nil {
		return err
	}
	test, testLabels, err := load(*testPath)
	if err != nil {
		return err
	}
	if len(train) == 0 {
		return fmt.Errorf("%s: no samples", *trainPath)
	}
	log.Printf("loaded %d training and %d test samples", len(train), len(test))

	net, err := o.build(train[0].Rows(), *classes)
	if err != nil {
		return err
	}
	return o.fit(net, train, trainLabels, test, testLabels)
}

func runIDX(args []string) error {
	fs := flag.NewFlagSet("idx", flag.ExitOnError)
	var o options
	o.register(fs, "128,64,32", 0.01, 0.5)
	dir := fs.String("data", "./data", "Directory containing the MNIST IDX files")
	limit := fs.Int("samples", 0, "Max samples per split (0 = all)")
	scale := fs.Float64("scale", 1.0/255, "Pixel scale factor")
	if err := fs.Parse(args); err != nil {
		return err
	}

	load := func(prefix string) ([]*matrix.Matrix, []*matrix.Matrix, error) {
		images, err := os.Open(fmt.Sprintf("%s/%s-images-idx3-ubyte", *dir, prefix))
		if err != nil {
			return nil, nil, err
		}
		defer images.Close()
		labels, err := os.Open(fmt.Sprintf("%s/%s-labels-idx1-ubyte", *dir, prefix))
		if err != nil {
			return nil, nil, err
		}
		defer labels.Close()
		return dataset.LoadIDX(images, labels, 10, *scale, *limit)
	}
	train, trainLabels, err := load("train")
	if err != nil {
		return err
	}
	test, testLabels, err := load("t10k")
	if err != nil {
		return err
	}
	if len(train) == 0 {
		return fmt.Errorf("%s: no training samples", *dir)
	}
	log.Printf("loaded %d training and %d test samples", len(train), len(test))

	net, err := o.build(train[0].Rows(), 10)
	if err != nil {
		return err
	}
	return o.fit(net, train, trainLabels, test, testLabels)
}
