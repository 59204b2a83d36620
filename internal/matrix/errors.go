package matrix

import (
	"errors"
	"fmt"
)

// Sentinel errors. Operations wrap them with context via fmt.Errorf and %w;
// callers match with errors.Is. A failing operation returns no partial result
// and leaves its operands untouched.
var (
	// ErrInvalidDimension is returned when a requested size is not positive.
	ErrInvalidDimension = errors.New("matrix: invalid dimension")

	// ErrIrregularShape is returned when row data is not rectangular.
	ErrIrregularShape = errors.New("matrix: irregular shape")

	// ErrInvalidValueType is returned when an entry is not a real number.
	ErrInvalidValueType = errors.New("matrix: invalid value type")

	// ErrShapeMismatch is returned when operand shapes are incompatible.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")
)

// shapeErrorf wraps ErrShapeMismatch with the operation and both operand shapes.
func shapeErrorf(op string, a, b *Matrix) error {
	return fmt.Errorf("%s: [%d,%d] and [%d,%d]: %w", op, a.rows, a.cols, b.rows, b.cols, ErrShapeMismatch)
}
