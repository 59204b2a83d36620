package matrix

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/perceptron/internal/backend"
	"github.com/born-ml/perceptron/internal/backend/accel"
	"github.com/born-ml/perceptron/internal/backend/naive"
	"github.com/born-ml/perceptron/internal/parallel"
)

// backends lists every backend the operation tests run against.
func backends() map[string]backend.Backend {
	return map[string]backend.Backend{
		"naive": naive.New(),
		"accel": accel.NewWithConfig(parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1}),
	}
}

func mustRows(t *testing.T, rows [][]float64, opts ...Option) *Matrix {
	t.Helper()
	m, err := FromRows(rows, opts...)
	require.NoError(t, err)
	return m
}

// randomIntegers returns a rows×cols matrix of small integers, so sums and
// scaled sums stay exact in float64.
func randomIntegers(t *testing.T, rng *rand.Rand, rows, cols int, b backend.Backend) *Matrix {
	t.Helper()
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = float64(rng.Intn(41) - 20)
	}
	m, err := FromSlice(rows, cols, data, WithBackend(b))
	require.NoError(t, err)
	return m
}

func TestEmpty(t *testing.T) {
	m := Empty()
	assert.Equal(t, 0, m.Rows())
	assert.Equal(t, 0, m.Cols())
	assert.True(t, m.IsEmpty())
	assert.Empty(t, m.Values())
	assert.Equal(t, "<empty matrix>", m.String())
}

func TestZeros(t *testing.T) {
	m, err := Zeros(2, 3)
	require.NoError(t, err)
	r, c := m.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, make([]float64, 6), m.Values())

	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 2}, {0, 0}} {
		_, err := Zeros(dims[0], dims[1])
		assert.ErrorIs(t, err, ErrInvalidDimension, "dims %v", dims)
	}
}

func TestFromRows(t *testing.T) {
	src := [][]float64{{1, 2}, {3, 4}, {5, 6}}
	m := mustRows(t, src)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 2, m.Cols())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.Values())

	// The matrix owns a copy.
	src[0][0] = 100
	assert.Equal(t, 1.0, m.At(0, 0))

	_, err := FromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrIrregularShape)

	empty := mustRows(t, nil)
	assert.True(t, empty.IsEmpty())
	assert.True(t, mustRows(t, [][]float64{{}, {}}).IsEmpty())
}

func TestFromAny(t *testing.T) {
	m, err := FromAny([][]any{{1, int64(2), float32(0.5)}, {uint8(4), 5.25, int32(-6)}})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 0.5, 4, 5.25, -6}, m.Values())

	_, err = FromAny([][]any{{1, "2"}})
	assert.ErrorIs(t, err, ErrInvalidValueType)

	_, err = FromAny([][]any{{1, true}})
	assert.ErrorIs(t, err, ErrInvalidValueType)

	_, err = FromAny([][]any{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrIrregularShape)
}

func TestFromStrings(t *testing.T) {
	m, err := FromStrings([][]string{{"1", "2.5"}, {"-3", "4e1"}})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5, -3, 40}, m.Values())

	_, err = FromStrings([][]string{{"1", "x"}})
	assert.ErrorIs(t, err, ErrInvalidValueType)
}

func TestFromSlice(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	m, err := FromSlice(2, 3, data)
	require.NoError(t, err)
	assert.Equal(t, 6.0, m.At(1, 2))

	data[5] = 0
	assert.Equal(t, 6.0, m.At(1, 2))

	_, err = FromSlice(2, 2, data)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = FromSlice(-1, 2, nil)
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestColumn(t *testing.T) {
	c := Column([]float64{1, 2, 3})
	assert.Equal(t, 3, c.Rows())
	assert.Equal(t, 1, c.Cols())
	assert.True(t, Column(nil).IsEmpty())
}

func TestAtSetRowCol(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	m.Set(1, 0, 40)
	assert.Equal(t, 40.0, m.At(1, 0))
	assert.Equal(t, []float64{40, 5, 6}, m.Row(1))
	assert.Equal(t, []float64{3, 6}, m.Col(2))

	// Accessors return copies.
	row := m.Row(0)
	row[0] = -1
	assert.Equal(t, 1.0, m.At(0, 0))

	assert.Panics(t, func() { m.At(2, 0) })
	assert.Panics(t, func() { m.Set(0, 3, 1) })
}

func TestDot(t *testing.T) {
	d, err := Dot([]float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, 32.0, d)

	_, err = Dot([]float64{1}, []float64{1, 2})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestMatMulExample(t *testing.T) {
	for name, b := range backends() {
		t.Run(name, func(t *testing.T) {
			a := mustRows(t, [][]float64{{1, 2}, {3, 4}}, WithBackend(b))
			c := mustRows(t, [][]float64{{5, 6}, {7, 8}})
			got, err := a.Multiply(Of(c))
			require.NoError(t, err)
			assert.True(t, got.Equal(mustRows(t, [][]float64{{19, 22}, {43, 50}})), "got\n%v", got)
			assert.Equal(t, b.Name(), got.Backend().Name())
		})
	}
}

func TestTransposeExample(t *testing.T) {
	for name, b := range backends() {
		t.Run(name, func(t *testing.T) {
			a := mustRows(t, [][]float64{{1, 2}, {3, 4}}, WithBackend(b))
			assert.True(t, a.Transpose().Equal(mustRows(t, [][]float64{{1, 3}, {2, 4}})))

			wide := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, WithBackend(b))
			tr := wide.Transpose()
			assert.Equal(t, 3, tr.Rows())
			assert.Equal(t, 2, tr.Cols())
			assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, tr.Values())
		})
	}
}

func TestAddSubtractScale(t *testing.T) {
	for name, b := range backends() {
		t.Run(name, func(t *testing.T) {
			a := mustRows(t, [][]float64{{1, 2}, {3, 4}}, WithBackend(b))
			c := mustRows(t, [][]float64{{10, 20}, {30, 40}})

			sum, err := a.Add(c)
			require.NoError(t, err)
			assert.Equal(t, []float64{11, 22, 33, 44}, sum.Values())

			diff, err := c.Subtract(a)
			require.NoError(t, err)
			assert.Equal(t, []float64{9, 18, 27, 36}, diff.Values())

			scaled, err := a.Multiply(Scalar(-2))
			require.NoError(t, err)
			assert.Equal(t, []float64{-2, -4, -6, -8}, scaled.Values())

			prod, err := a.Hadamard(c)
			require.NoError(t, err)
			assert.Equal(t, []float64{10, 40, 90, 160}, prod.Values())

			// Operands are untouched.
			assert.Equal(t, []float64{1, 2, 3, 4}, a.Values())
			assert.Equal(t, []float64{10, 20, 30, 40}, c.Values())
		})
	}
}

func TestShapeMismatch(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustRows(t, [][]float64{{1, 2, 3}})
	before := a.Values()

	_, err := a.Add(b)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = a.Subtract(b)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = a.Hadamard(b)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = a.MatMul(b)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = a.Multiply(Of(b))
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.ErrorIs(t, a.CopyFrom(b), ErrShapeMismatch)

	assert.Equal(t, before, a.Values())
}

func TestMultiplyNilOperand(t *testing.T) {
	a := mustRows(t, [][]float64{{1}})
	_, err := a.Multiply(Of(nil))
	assert.ErrorIs(t, err, ErrInvalidValueType)
}

func TestAdditionProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for name, b := range backends() {
		t.Run(name, func(t *testing.T) {
			for trial := 0; trial < 20; trial++ {
				r, c := 1+rng.Intn(6), 1+rng.Intn(6)
				x := randomIntegers(t, rng, r, c, b)
				y := randomIntegers(t, rng, r, c, b)
				z := randomIntegers(t, rng, r, c, b)

				xy, err := x.Add(y)
				require.NoError(t, err)
				yx, err := y.Add(x)
				require.NoError(t, err)
				assert.True(t, xy.Equal(yx), "commutativity")

				left, err := xy.Add(z)
				require.NoError(t, err)
				yz, err := y.Add(z)
				require.NoError(t, err)
				right, err := x.Add(yz)
				require.NoError(t, err)
				assert.True(t, left.Equal(right), "associativity")

				assert.True(t, x.Transpose().Transpose().Equal(x), "transpose involution")

				s := 2.5
				lhs := xy.Scale(s)
				rhs, err := x.Scale(s).Add(y.Scale(s))
				require.NoError(t, err)
				assert.True(t, lhs.Equal(rhs), "scalar distributivity")
			}
		})
	}
}

func TestApply(t *testing.T) {
	a := mustRows(t, [][]float64{{1, -2}, {3, -4}})
	got := a.Apply(func(x float64) float64 { return x * x })
	assert.Equal(t, []float64{1, 4, 9, 16}, got.Values())
	assert.Equal(t, []float64{1, -2, 3, -4}, a.Values())
}

func TestCloneCopyFromEqual(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}}, WithPrecision(4))
	c := a.Clone()
	assert.True(t, a.Equal(c))
	assert.Equal(t, 4, c.Precision())

	c.Set(0, 0, 9)
	assert.False(t, a.Equal(c))

	require.NoError(t, a.CopyFrom(c))
	assert.Equal(t, 9.0, a.At(0, 0))
	assert.InDelta(t, 18.0, a.Sum(), 0)

	moved := a.CloneOn(accel.New())
	assert.Equal(t, "accel", moved.Backend().Name())
	assert.Equal(t, "naive", a.Backend().Name())
	assert.True(t, moved.Equal(a))
	assert.Equal(t, "naive", a.CloneOn(nil).Backend().Name())
}

// TestBackendsAgree checks that the accelerated backend reproduces the naive
// backend bit-for-bit on non-integer data, and that both agree with gonum.
func TestBackendsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	n := naive.New()
	x := accel.NewWithConfig(parallel.Config{Enabled: true, NumWorkers: 3, MinChunkSize: 1})

	for trial := 0; trial < 25; trial++ {
		m, k, p := 1+rng.Intn(70), 1+rng.Intn(70), 1+rng.Intn(70)
		aData := make([]float64, m*k)
		bData := make([]float64, k*p)
		for i := range aData {
			aData[i] = rng.NormFloat64()
		}
		for i := range bData {
			bData[i] = rng.NormFloat64()
		}

		an, err := FromSlice(m, k, aData, WithBackend(n))
		require.NoError(t, err)
		ax, err := FromSlice(m, k, aData, WithBackend(x))
		require.NoError(t, err)
		b, err := FromSlice(k, p, bData)
		require.NoError(t, err)

		pn, err := an.MatMul(b)
		require.NoError(t, err)
		px, err := ax.MatMul(b)
		require.NoError(t, err)
		assert.Equal(t, pn.Values(), px.Values(), "matmul %dx%d @ %dx%d", m, k, k, p)

		var ref mat.Dense
		ref.Mul(mat.NewDense(m, k, aData), mat.NewDense(k, p, bData))
		assert.True(t, floats.EqualApprox(ref.RawMatrix().Data, pn.Values(), 1e-9))

		assert.Equal(t, an.Transpose().Values(), ax.Transpose().Values())
		assert.Equal(t, an.Scale(0.3).Values(), ax.Scale(0.3).Values())

		sumN, err := an.Add(an.Scale(1.7))
		require.NoError(t, err)
		sumX, err := ax.Add(ax.Scale(1.7))
		require.NoError(t, err)
		assert.Equal(t, sumN.Values(), sumX.Values())

		hn, err := an.Hadamard(an)
		require.NoError(t, err)
		hx, err := ax.Hadamard(ax)
		require.NoError(t, err)
		assert.Equal(t, hn.Values(), hx.Values())
	}
}

func TestString(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2.346}, {-0.75, 10}})
	assert.Equal(t, "1.00\t2.35\n-0.75\t10.00\n", m.String())

	m.SetPrecision(0)
	assert.Equal(t, "1\t2\n-1\t10\n", m.String())

	m.SetPrecision(-3)
	assert.Equal(t, 0, m.Precision())

	assert.Equal(t, "3.142\n", Column([]float64{3.14159}, WithPrecision(3)).String())
}

func BenchmarkMatMul(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	data := make([]float64, 128*128)
	for i := range data {
		data[i] = rng.Float64()
	}
	for name, be := range backends() {
		x, _ := FromSlice(128, 128, data, WithBackend(be))
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = x.MatMul(x)
			}
		})
	}
}
