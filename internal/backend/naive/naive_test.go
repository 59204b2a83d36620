package naive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNaiveOps(t *testing.T) {
	b := New()
	assert.Equal(t, "naive", b.Name())

	dst := make([]float64, 3)
	b.Add(dst, []float64{1, 2, 3}, []float64{10, 20, 30})
	assert.Equal(t, []float64{11, 22, 33}, dst)

	b.Mul(dst, []float64{1, 2, 3}, []float64{10, 20, 30})
	assert.Equal(t, []float64{10, 40, 90}, dst)

	b.Scale(dst, []float64{1, 2, 3}, -0.5)
	assert.Equal(t, []float64{-0.5, -1, -1.5}, dst)
}

func TestNaiveMatMul(t *testing.T) {
	// [[1 2 3] [4 5 6]] @ [[7 8] [9 10] [11 12]]
	dst := make([]float64, 4)
	New().MatMul(dst, []float64{1, 2, 3, 4, 5, 6}, []float64{7, 8, 9, 10, 11, 12}, 2, 3, 2)
	assert.Equal(t, []float64{58, 64, 139, 154}, dst)
}

func TestNaiveTranspose(t *testing.T) {
	dst := make([]float64, 6)
	New().Transpose(dst, []float64{1, 2, 3, 4, 5, 6}, 2, 3)
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, dst)
}
