// SPDX-License-Identifier: MIT
package matrix_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fdt/alloc"
	"github.com/katalvlaran/fdt/matrix"
)

func TestNew_ZeroFilled(t *testing.T) {
	m, err := matrix.New[int](2, 3)
	require.NoError(t, err)
	r, c := m.Size()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, []int{0, 0, 0, 0, 0, 0}, m.Data())
	require.False(t, m.Empty())
}

func TestNew_BadShape(t *testing.T) {
	_, err := matrix.New[float64](-1, 2)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewFilled[float64](2, -1, 1)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	m, err := matrix.New[float64](0, 4)
	require.NoError(t, err)
	require.True(t, m.Empty())
}

func TestNew_ElementCountOverflow(t *testing.T) {
	_, err := matrix.New[int](1<<32, 1<<32)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewFilled[int8](1<<62, 4, 1)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewFromValues[int](1<<40, 1<<40, nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestZeroValueMatrix(t *testing.T) {
	var m matrix.Matrix[int]
	require.True(t, m.Empty())

	c, err := m.Clone()
	require.NoError(t, err)
	require.True(t, c.Empty())

	tr, err := m.Transpose()
	require.NoError(t, err)
	require.True(t, tr.Empty())

	sum, err := matrix.Add(&m, c)
	require.NoError(t, err)
	require.True(t, sum.Empty())

	prod, err := matrix.Mul(&m, c)
	require.NoError(t, err)
	require.True(t, prod.Empty())

	det, err := m.Determinant()
	require.NoError(t, err)
	require.Equal(t, 1.0, det)

	m.Release()
}

func TestNewFromValues_CountMustMatch(t *testing.T) {
	m, err := matrix.NewFromValues(2, 2, []int{1, 2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, 3, m.Get(1, 0))

	_, err = matrix.NewFromValues(2, 2, []int{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.NewFromValues(2, 2, []int{1, 2, 3, 4, 5})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestRowMajorLayout(t *testing.T) {
	m, err := matrix.New[int](3, 4)
	require.NoError(t, err)
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			require.NoError(t, m.Set(r, c, 10*r+c))
		}
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			require.Equal(t, 10*r+c, m.Data()[4*r+c])
		}
	}
}

func TestAt_OutOfRange(t *testing.T) {
	m, err := matrix.NewFilled[float32](2, 3, 1.5)
	require.NoError(t, err)

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, float32(1.5), v)

	for _, rc := range [][2]int{{2, 0}, {0, 3}, {-1, 0}, {0, -1}} {
		_, err = m.At(rc[0], rc[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "At(%d,%d)", rc[0], rc[1])
		require.ErrorIs(t, m.Set(rc[0], rc[1], 0), matrix.ErrOutOfRange)
	}
	_, err = m.At(2, 0)
	require.EqualError(t, err, "Matrix.At(2,0): matrix: index out of range")
}

func TestAt_MatchesGet(t *testing.T) {
	m, err := matrix.NewFromValues(2, 2, []int{5, 6, 7, 8})
	require.NoError(t, err)
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			v, err := m.At(r, c)
			require.NoError(t, err)
			require.Equal(t, m.Get(r, c), v)
		}
	}
	*m.Ref(0, 1) = 60
	require.Equal(t, 60, m.Get(0, 1))
}

func TestIdentityAndFill(t *testing.T) {
	id, err := matrix.Identity[int](3)
	require.NoError(t, err)
	require.Equal(t, []int{1, 0, 0, 0, 1, 0, 0, 0, 1}, id.Data())

	id.Fill(7)
	require.Equal(t, slices.Repeat([]int{7}, 9), id.Data())

	_, err = matrix.Identity[int](-2)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestClone_Independent(t *testing.T) {
	a, err := matrix.NewFromValues(1, 2, []int{1, 2})
	require.NoError(t, err)
	b, err := a.Clone()
	require.NoError(t, err)

	require.NoError(t, b.Set(0, 0, 100))
	require.Equal(t, 1, a.Get(0, 0))
	require.True(t, matrix.Equal(a, a))
	require.False(t, matrix.Equal(a, b))
}

func TestSwapAndRelease(t *testing.T) {
	lim := alloc.NewLimited[int](alloc.NewHeap[int](), 100)
	a, err := matrix.NewFilled(2, 2, 1, matrix.WithAllocator[int](lim))
	require.NoError(t, err)
	b, err := matrix.NewFilled(1, 3, 2, matrix.WithAllocator[int](lim))
	require.NoError(t, err)
	require.Equal(t, 7, lim.InUse())

	a.Swap(b)
	require.Equal(t, 1, a.Rows())
	require.Equal(t, 3, a.Cols())
	require.Equal(t, []int{1, 1, 1, 1}, b.Data())

	a.Release()
	a.Release()
	b.Release()
	require.Zero(t, lim.InUse())
	require.True(t, a.Empty())
}

func TestNew_OutOfMemory(t *testing.T) {
	lim := alloc.NewLimited[float64](alloc.NewHeap[float64](), 8)
	_, err := matrix.New(3, 3, matrix.WithAllocator[float64](lim))
	require.ErrorIs(t, err, alloc.ErrOutOfMemory)
}

func TestIteration(t *testing.T) {
	m, err := matrix.NewFromValues(2, 2, []int{1, 2, 3, 4})
	require.NoError(t, err)

	sum := 0
	for it := m.Begin(); !it.Equal(m.End()); it = it.Next() {
		sum += it.Value()
	}
	require.Equal(t, 10, sum)

	var offs []int
	for i := range m.All() {
		offs = append(offs, i)
	}
	require.Equal(t, []int{0, 1, 2, 3}, offs)
}

func TestString(t *testing.T) {
	m, err := matrix.NewFromValues(2, 2, []float64{1, 2.5, -3, 0})
	require.NoError(t, err)
	require.Equal(t, "[1, 2.5]\n[-3, 0]\n", m.String())
}

func TestWithAllocator_PanicsOnNil(t *testing.T) {
	require.PanicsWithValue(t, "matrix: WithAllocator: allocator must not be nil", func() {
		matrix.WithAllocator[int](nil)
	})
}
