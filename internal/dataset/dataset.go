// Package dataset produces training samples in the shape the network
// consumes: one input column per sample and one label column per sample.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"

	"github.com/born-ml/perceptron/internal/matrix"
)

// ErrMalformedRecord is returned by LoadCSV for rows it cannot interpret.
var ErrMalformedRecord = errors.New("dataset: malformed record")

// Synthetic generates n points (x1, x2) drawn uniformly from [0, 2) and
// labels each 1 when x1 + x2 > 2, else 0. Samples are [2,1] columns and
// labels [1,1] columns. x1 is drawn before x2 for every point.
func Synthetic(n int, rng *rand.Rand, opts ...matrix.Option) (data, labels []*matrix.Matrix) {
	data = make([]*matrix.Matrix, 0, n)
	labels = make([]*matrix.Matrix, 0, n)
	for j := 0; j < n; j++ {
		x1 := rng.Float64() * 2
		x2 := rng.Float64() * 2
		label := 0.0
		if x1+x2 > 2 {
			label = 1
		}
		data = append(data, matrix.Column([]float64{x1, x2}, opts...))
		labels = append(labels, matrix.Column([]float64{label}, opts...))
	}
	return data, labels
}

// OneHot returns an [n,1] column with a 1 at class and 0 elsewhere.
func OneHot(class, n int, opts ...matrix.Option) (*matrix.Matrix, error) {
	if class < 0 || class >= n {
		return nil, fmt.Errorf("dataset: class %d outside [0,%d): %w", class, n, matrix.ErrInvalidDimension)
	}
	m, err := matrix.Zeros(n, 1, opts...)
	if err != nil {
		return nil, err
	}
	m.Set(class, 0, 1)
	return m, nil
}

// ArgMax returns the row-major index of the first maximum value of m,
// or -1 for an empty matrix.
func ArgMax(m *matrix.Matrix) int {
	values := m.Values()
	if len(values) == 0 {
		return -1
	}
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best
}

// LoadCSV reads labeled samples in the "label,p0,p1,..." layout used by
// MNIST CSV exports. The first row is a header and is skipped. Every sample
// becomes a column of its values multiplied by scale; every label becomes
// a one-hot column of length classes.
func LoadCSV(r io.Reader, classes int, scale float64, opts ...matrix.Option) (data, labels []*matrix.Matrix, err error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("dataset: header: %w", err)
	}

	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("dataset: line %d: %w", line, err)
		}
		if len(record) < 2 {
			return nil, nil, fmt.Errorf("dataset: line %d: %d fields: %w", line, len(record), ErrMalformedRecord)
		}

		class, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, nil, fmt.Errorf("dataset: line %d: label %q: %w", line, record[0], ErrMalformedRecord)
		}
		label, err := OneHot(class, classes, opts...)
		if err != nil {
			return nil, nil, fmt.Errorf("dataset: line %d: %w", line, err)
		}

		pixels, err := matrix.FromStrings([][]string{record[1:]}, opts...)
		if err != nil {
			return nil, nil, fmt.Errorf("dataset: line %d: %w", line, err)
		}
		data = append(data, pixels.Transpose().Scale(scale))
		labels = append(labels, label)
	}
	return data, labels, nil
}
