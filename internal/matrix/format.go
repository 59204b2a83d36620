package matrix

import (
	"strconv"
	"strings"
)

// emptyString is what String renders for an empty matrix.
const emptyString = "<empty matrix>"

// Precision returns the number of decimal places shown by String.
func (m *Matrix) Precision() int { return m.precision }

// SetPrecision sets the number of decimal places shown by String.
// Negative values are treated as 0.
func (m *Matrix) SetPrecision(p int) {
	m.precision = max(p, 0)
}

// String renders one line per row, values separated by tabs and rounded to
// the display precision. The empty matrix renders as "<empty matrix>".
func (m *Matrix) String() string {
	if m.IsEmpty() {
		return emptyString
	}
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteByte('\t')
			}
			sb.WriteString(strconv.FormatFloat(m.data[i*m.cols+j], 'f', m.precision, 64))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
