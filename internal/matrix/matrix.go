// Package matrix implements a dense, row-major float64 matrix whose bulk
// arithmetic is delegated to a pluggable compute backend.
//
// Every operation that produces a matrix allocates a fresh buffer; no result
// aliases an operand. Results are bound to the backend of the left operand.
package matrix

import (
	"fmt"
	"strconv"

	"github.com/born-ml/perceptron/internal/backend"
	"github.com/born-ml/perceptron/internal/backend/naive"
)

// DefaultPrecision is the number of decimal places shown by String.
const DefaultPrecision = 2

// Matrix is a rows×cols matrix stored in a flat row-major buffer.
// A matrix with zero rows or zero columns is empty.
type Matrix struct {
	rows, cols int
	data       []float64 // len(data) == rows*cols
	precision  int
	backend    backend.Backend
}

// Option configures a matrix at construction.
type Option func(*Matrix)

// WithBackend binds the matrix to a compute backend. Nil keeps the default.
func WithBackend(b backend.Backend) Option {
	return func(m *Matrix) {
		if b != nil {
			m.backend = b
		}
	}
}

// WithPrecision sets the display precision used by String.
func WithPrecision(p int) Option {
	return func(m *Matrix) {
		m.SetPrecision(p)
	}
}

// DefaultBackend returns the backend used when none is given.
func DefaultBackend() backend.Backend {
	return naive.New()
}

func build(rows, cols int, data []float64, opts []Option) *Matrix {
	m := &Matrix{
		rows:      rows,
		cols:      cols,
		data:      data,
		precision: DefaultPrecision,
		backend:   DefaultBackend(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// like allocates a zeroed result of the given shape bound to m's backend.
func (m *Matrix) like(rows, cols int) *Matrix {
	return &Matrix{
		rows:      rows,
		cols:      cols,
		data:      make([]float64, rows*cols),
		precision: DefaultPrecision,
		backend:   m.backend,
	}
}

// Empty returns the empty matrix: zero rows, zero columns, no values.
func Empty(opts ...Option) *Matrix {
	return build(0, 0, nil, opts)
}

// Zeros returns a rows×cols matrix of zeros.
// Both dimensions must be positive, otherwise ErrInvalidDimension.
func Zeros(rows, cols int, opts ...Option) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("zeros: %dx%d: %w", rows, cols, ErrInvalidDimension)
	}
	return build(rows, cols, make([]float64, rows*cols), opts), nil
}

// FromRows builds a matrix from rectangular row data, copying every value.
// Rows of unequal length yield ErrIrregularShape. No rows, or rows with no
// columns, yield the empty matrix.
func FromRows(rows [][]float64, opts ...Option) (*Matrix, error) {
	r, c, err := rectangle(len(rows), func(i int) int { return len(rows[i]) })
	if err != nil {
		return nil, err
	}
	data := make([]float64, r*c)
	for i, row := range rows {
		copy(data[i*c:], row)
	}
	return build(r, c, data, opts), nil
}

// FromAny builds a matrix from rectangular row data of dynamic type.
// Go integer and floating-point kinds are accepted; any other entry yields
// ErrInvalidValueType.
func FromAny(rows [][]any, opts ...Option) (*Matrix, error) {
	r, c, err := rectangle(len(rows), func(i int) int { return len(rows[i]) })
	if err != nil {
		return nil, err
	}
	data := make([]float64, r*c)
	for i, row := range rows {
		for j, v := range row {
			x, ok := toFloat(v)
			if !ok {
				return nil, fmt.Errorf("from any: entry (%d,%d) of type %T: %w", i, j, v, ErrInvalidValueType)
			}
			data[i*c+j] = x
		}
	}
	return build(r, c, data, opts), nil
}

// FromStrings builds a matrix by parsing rectangular decimal text.
// Unparsable entries yield ErrInvalidValueType.
func FromStrings(rows [][]string, opts ...Option) (*Matrix, error) {
	r, c, err := rectangle(len(rows), func(i int) int { return len(rows[i]) })
	if err != nil {
		return nil, err
	}
	data := make([]float64, r*c)
	for i, row := range rows {
		for j, s := range row {
			x, perr := strconv.ParseFloat(s, 64)
			if perr != nil {
				return nil, fmt.Errorf("from strings: entry (%d,%d) %q: %w", i, j, s, ErrInvalidValueType)
			}
			data[i*c+j] = x
		}
	}
	return build(r, c, data, opts), nil
}

// FromSlice builds a rows×cols matrix from a row-major buffer, which is copied.
// Negative dimensions yield ErrInvalidDimension; len(data) != rows*cols
// yields ErrShapeMismatch.
func FromSlice(rows, cols int, data []float64, opts ...Option) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("from slice: %dx%d: %w", rows, cols, ErrInvalidDimension)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("from slice: %dx%d needs %d values, got %d: %w",
			rows, cols, rows*cols, len(data), ErrShapeMismatch)
	}
	buf := make([]float64, len(data))
	copy(buf, data)
	return build(rows, cols, buf, opts), nil
}

// Column builds a single-column matrix holding a copy of values.
func Column(values []float64, opts ...Option) *Matrix {
	buf := make([]float64, len(values))
	copy(buf, values)
	cols := 1
	if len(values) == 0 {
		cols = 0
	}
	return build(len(values), cols, buf, opts)
}

// rectangle validates that n rows all have the length of row 0.
func rectangle(n int, length func(i int) int) (rows, cols int, err error) {
	if n == 0 {
		return 0, 0, nil
	}
	cols = length(0)
	for i := 1; i < n; i++ {
		if length(i) != cols {
			return 0, 0, fmt.Errorf("row %d has %d values, row 0 has %d: %w", i, length(i), cols, ErrIrregularShape)
		}
	}
	if cols == 0 {
		return 0, 0, nil
	}
	return n, cols, nil
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	default:
		return 0, false
	}
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Shape returns (rows, cols).
func (m *Matrix) Shape() (rows, cols int) { return m.rows, m.cols }

// IsEmpty reports whether the matrix has no values.
func (m *Matrix) IsEmpty() bool { return m.rows == 0 || m.cols == 0 }

// Backend returns the compute backend the matrix is bound to.
func (m *Matrix) Backend() backend.Backend { return m.backend }

// At returns the value at (i, j). Out-of-range indices panic.
func (m *Matrix) At(i, j int) float64 {
	return m.data[m.offset(i, j)]
}

// Set stores v at (i, j). Out-of-range indices panic.
func (m *Matrix) Set(i, j int, v float64) {
	m.data[m.offset(i, j)] = v
}

func (m *Matrix) offset(i, j int) int {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of range for [%d,%d]", i, j, m.rows, m.cols))
	}
	return i*m.cols + j
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	if i < 0 || i >= m.rows {
		panic(fmt.Sprintf("matrix: row %d out of range for [%d,%d]", i, m.rows, m.cols))
	}
	return backend.Row(m.data, m.cols, i)
}

// Col returns a copy of column j.
func (m *Matrix) Col(j int) []float64 {
	if j < 0 || j >= m.cols {
		panic(fmt.Sprintf("matrix: column %d out of range for [%d,%d]", j, m.rows, m.cols))
	}
	return backend.Col(m.data, m.rows, m.cols, j)
}

// Values returns a copy of the row-major buffer.
func (m *Matrix) Values() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)
	return out
}

// Clone returns a deep copy bound to the same backend.
func (m *Matrix) Clone() *Matrix {
	c := m.like(m.rows, m.cols)
	copy(c.data, m.data)
	c.precision = m.precision
	return c
}

// CloneOn returns a deep copy bound to b. A nil b keeps m's backend.
func (m *Matrix) CloneOn(b backend.Backend) *Matrix {
	c := m.Clone()
	if b != nil {
		c.backend = b
	}
	return c
}

// CopyFrom overwrites m's values with src's in place.
// The shapes must be equal, otherwise ErrShapeMismatch and m is untouched.
func (m *Matrix) CopyFrom(src *Matrix) error {
	if m.rows != src.rows || m.cols != src.cols {
		return shapeErrorf("copy", m, src)
	}
	copy(m.data, src.data)
	return nil
}

// Equal reports whether both matrices have the same shape and identical values.
func (m *Matrix) Equal(other *Matrix) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i, v := range m.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}

// Sum returns the sum of all values in row-major order.
func (m *Matrix) Sum() float64 {
	var s float64
	for _, v := range m.data {
		s += v
	}
	return s
}

// Dot returns the sum of pairwise products of a and b, accumulated left to
// right. Slices of different length yield ErrShapeMismatch.
func Dot(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("dot: lengths %d and %d: %w", len(a), len(b), ErrShapeMismatch)
	}
	return backend.Dot(a, b), nil
}
