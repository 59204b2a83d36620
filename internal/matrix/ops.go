package matrix

import "fmt"

type operandKind int

const (
	scalarOperand operandKind = iota
	matrixOperand
)

// Operand is the right-hand side of Multiply: either a scalar or a matrix.
type Operand struct {
	kind   operandKind
	scalar float64
	matrix *Matrix
}

// Scalar wraps s as a Multiply operand.
func Scalar(s float64) Operand {
	return Operand{kind: scalarOperand, scalar: s}
}

// Of wraps m as a Multiply operand.
func Of(m *Matrix) Operand {
	return Operand{kind: matrixOperand, matrix: m}
}

// Add returns m + other. Shapes must be equal, otherwise ErrShapeMismatch.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	if m.rows != other.rows || m.cols != other.cols {
		return nil, shapeErrorf("add", m, other)
	}
	out := m.like(m.rows, m.cols)
	m.backend.Add(out.data, m.data, other.data)
	return out, nil
}

// Subtract returns m - other, computed as m + (other * -1).
func (m *Matrix) Subtract(other *Matrix) (*Matrix, error) {
	if m.rows != other.rows || m.cols != other.cols {
		return nil, shapeErrorf("subtract", m, other)
	}
	return m.Add(other.Scale(-1))
}

// Scale returns m * s.
func (m *Matrix) Scale(s float64) *Matrix {
	out := m.like(m.rows, m.cols)
	m.backend.Scale(out.data, m.data, s)
	return out
}

// MatMul returns the matrix product m @ other.
// m.Cols() must equal other.Rows(), otherwise ErrShapeMismatch.
func (m *Matrix) MatMul(other *Matrix) (*Matrix, error) {
	if m.cols != other.rows {
		return nil, shapeErrorf("matmul", m, other)
	}
	out := m.like(m.rows, other.cols)
	m.backend.MatMul(out.data, m.data, other.data, m.rows, m.cols, other.cols)
	return out, nil
}

// Multiply dispatches on the operand: a scalar scales every value, a
// matrix computes the matrix product.
func (m *Matrix) Multiply(op Operand) (*Matrix, error) {
	switch op.kind {
	case scalarOperand:
		return m.Scale(op.scalar), nil
	case matrixOperand:
		if op.matrix == nil {
			return nil, fmt.Errorf("multiply: nil matrix operand: %w", ErrInvalidValueType)
		}
		return m.MatMul(op.matrix)
	default:
		return nil, fmt.Errorf("multiply: unknown operand kind %d: %w", op.kind, ErrInvalidValueType)
	}
}

// Hadamard returns the element-wise product of m and other.
// Shapes must be equal, otherwise ErrShapeMismatch.
func (m *Matrix) Hadamard(other *Matrix) (*Matrix, error) {
	if m.rows != other.rows || m.cols != other.cols {
		return nil, shapeErrorf("hadamard", m, other)
	}
	out := m.like(m.rows, m.cols)
	m.backend.Mul(out.data, m.data, other.data)
	return out, nil
}

// Transpose returns the [cols, rows] transpose of m.
func (m *Matrix) Transpose() *Matrix {
	out := m.like(m.cols, m.rows)
	m.backend.Transpose(out.data, m.data, m.rows, m.cols)
	return out
}

// Apply returns a matrix of the same shape with f applied to every value.
// f must be a pure function.
func (m *Matrix) Apply(f func(float64) float64) *Matrix {
	out := m.like(m.rows, m.cols)
	for i, v := range m.data {
		out.data[i] = f(v)
	}
	return out
}
