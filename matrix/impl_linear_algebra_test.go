// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fdt/matrix"
)

func mustValues[T matrix.Number](t *testing.T, rows, cols int, v ...T) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.NewFromValues(rows, cols, v)
	require.NoError(t, err)
	return m
}

func TestDeterminant_Known(t *testing.T) {
	tests := []struct {
		name string
		n    int
		vals []float64
		want float64
	}{
		{"diag 2x2", 2, []float64{2, 0, 0, 3}, 6},
		{"ones 2x2", 2, []float64{1, 1, 1, 1}, 0},
		{"1x1", 1, []float64{-4}, -4},
		{"needs pivot swap", 2, []float64{0, 1, 1, 0}, -1},
		{"3x3", 3, []float64{2, -3, 1, 2, 0, -1, 1, 4, 5}, 49},
		{"upper triangular", 3, []float64{1, 2, 3, 0, 4, 5, 0, 0, 6}, 24},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := mustValues(t, tc.n, tc.n, tc.vals...)
			got, err := m.Determinant()
			require.NoError(t, err)
			require.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestDeterminant_UniformIsSingular(t *testing.T) {
	m, err := matrix.NewFilled(3, 3, 7)
	require.NoError(t, err)
	got, err := m.Determinant()
	require.NoError(t, err)
	require.Equal(t, 0.0, got)
}

func TestDeterminant_IntegerComputedInFloat(t *testing.T) {
	m := mustValues(t, 2, 2, 1, 2, 3, 4)
	got, err := m.Determinant()
	require.NoError(t, err)
	require.InDelta(t, -2.0, got, 1e-12)
	require.Equal(t, []int{1, 2, 3, 4}, m.Data(), "receiver untouched")
}

func TestDeterminant_EmptyAndNonSquare(t *testing.T) {
	empty, err := matrix.New[int](0, 0)
	require.NoError(t, err)
	got, err := empty.Determinant()
	require.NoError(t, err)
	require.Equal(t, 1.0, got)

	rect, err := matrix.New[int](2, 3)
	require.NoError(t, err)
	_, err = rect.Determinant()
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	var nilM *matrix.Matrix[int]
	_, err = nilM.Determinant()
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDeterminant_Epsilon(t *testing.T) {
	m := mustValues(t, 2, 2, 1e-20, 0, 0, 1e-20)
	got, err := m.Determinant()
	require.NoError(t, err)
	require.InDelta(t, 1e-40, got, 1e-50)

	got, err = m.Determinant(matrix.WithEpsilon(1e-12))
	require.NoError(t, err)
	require.Equal(t, 0.0, got)
}

func TestTranspose_Involution(t *testing.T) {
	m := mustValues(t, 2, 3, 1, 2, 3, 4, 5, 6)
	tr, err := m.Transpose()
	require.NoError(t, err)
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, tr.Cols())
	require.Equal(t, []int{1, 4, 2, 5, 3, 6}, tr.Data())

	back, err := tr.Transpose()
	require.NoError(t, err)
	require.True(t, matrix.Equal(m, back))
}

func TestAdd_Example(t *testing.T) {
	a, err := matrix.NewFilled(2, 2, 1)
	require.NoError(t, err)
	b, err := a.Clone()
	require.NoError(t, err)

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	want, err := matrix.NewFilled(2, 2, 2)
	require.NoError(t, err)
	require.True(t, matrix.Equal(want, sum))

	diff, err := matrix.Sub(sum, a)
	require.NoError(t, err)
	require.True(t, matrix.Equal(a, diff))
}

func TestInPlace(t *testing.T) {
	a := mustValues(t, 1, 3, 1.0, 2, 3)
	b := mustValues(t, 1, 3, 0.5, 0.5, 0.5)

	require.NoError(t, a.AddInPlace(b))
	require.Equal(t, []float64{1.5, 2.5, 3.5}, a.Data())
	require.NoError(t, a.SubInPlace(b))
	require.NoError(t, a.SubInPlace(b))
	require.Equal(t, []float64{0.5, 1.5, 2.5}, a.Data())
}

func TestDimensionMismatch(t *testing.T) {
	a, _ := matrix.New[int](2, 2)
	b, _ := matrix.New[int](2, 3)

	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.ErrorIs(t, a.AddInPlace(b), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, a.SubInPlace(b), matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(b, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Add(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.EqualError(t, err, "Add: matrix: nil receiver")
}

func TestMul(t *testing.T) {
	a := mustValues(t, 2, 3, 1, 2, 3, 4, 5, 6)
	b := mustValues(t, 3, 2, 7, 8, 9, 10, 11, 12)

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, []int{58, 64, 139, 154}, c.Data())

	id, err := matrix.Identity[int](3)
	require.NoError(t, err)
	same, err := matrix.Mul(a, id)
	require.NoError(t, err)
	require.True(t, matrix.Equal(a, same))
}

func TestEqual_Shapes(t *testing.T) {
	a := mustValues(t, 1, 4, 1, 2, 3, 4)
	b := mustValues(t, 2, 2, 1, 2, 3, 4)
	require.False(t, matrix.Equal(a, b))
	require.True(t, matrix.Equal[int](nil, nil))
	require.False(t, matrix.Equal(a, nil))
}
