package vector_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fdt/vector"
)

func TestAddSub(t *testing.T) {
	a := vector.MustOf(1.5, 2, 3)
	b := vector.MustOf(0.5, 1, 1)

	sum, err := vector.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 3, 4}, sum.Data())

	diff, err := vector.Sub(a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 1, 2}, diff.Data())
	require.Equal(t, []float64{1.5, 2, 3}, a.Data())
}

func TestAddSizeMismatch(t *testing.T) {
	_, err := vector.Add(vector.MustOf(1, 2, 3), vector.MustOf(1, 2, 3, 4))
	require.ErrorIs(t, err, vector.ErrSizeMismatch)

	_, err = vector.Sub(vector.MustOf[uint8](1), vector.MustOf[uint8]())
	require.ErrorIs(t, err, vector.ErrSizeMismatch)
}

func TestEqualAndCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		eq   bool
		cmp  int
	}{
		{"both empty", nil, nil, true, 0},
		{"same", []int{1, 2}, []int{1, 2}, true, 0},
		{"prefix sorts first", []int{1}, []int{1, 2}, false, -1},
		{"element decides", []int{1, 3}, []int{1, 2, 9}, false, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, b := vector.MustOf(tc.a...), vector.MustOf(tc.b...)
			require.Equal(t, tc.eq, vector.Equal(a, b))
			require.Equal(t, tc.cmp, vector.Compare(a, b))
			require.Equal(t, -tc.cmp, vector.Compare(b, a))
		})
	}
}

func TestEqualIgnoresCapacity(t *testing.T) {
	a := vector.MustOf(1, 2)
	b := vector.MustOf(1, 2)
	require.NoError(t, b.Reserve(100))
	require.True(t, vector.Equal(a, b))
}

func TestEqualFunc(t *testing.T) {
	a := vector.MustOf("Go", "VEC")
	b := vector.MustOf("go", "vec")
	require.False(t, vector.Equal(a, b))
	require.True(t, vector.EqualFunc(a, b, strings.EqualFold))
}
