package iterator_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fdt/iterator"
)

func TestRandomAccessWalk(t *testing.T) {
	buf := []int{10, 20, 30, 40}
	first, last := iterator.New(buf, 0), iterator.New(buf, len(buf))

	var got []int
	for it := first; !it.Equal(last); it = it.Next() {
		got = append(got, it.Value())
	}
	require.Equal(t, buf, got)
	require.Equal(t, 4, iterator.Distance(first, last))
	require.Equal(t, -4, last.Distance(first))

	it := first.Advance(2)
	require.Equal(t, 2, it.Index())
	require.Equal(t, 30, it.Value())
	require.Equal(t, 40, it.At(1))
	require.Equal(t, 20, it.Prev().Value())
}

func TestRandomAccessWrites(t *testing.T) {
	buf := []string{"a", "b"}
	it := iterator.New(buf, 1)
	it.Set("z")
	*it.Prev().Ref() = "y"
	require.Equal(t, []string{"y", "z"}, buf)
}

func TestRandomAccessOrdering(t *testing.T) {
	buf := make([]int, 5)
	a, b := iterator.New(buf, 1), iterator.New(buf, 3)

	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.True(t, b.Greater(a))
	assert.False(t, a.Greater(a))
	assert.True(t, a.LessEqual(a))
	assert.True(t, a.GreaterEqual(a))
	assert.True(t, b.GreaterEqual(a))
	assert.False(t, a.GreaterEqual(b))
}

func TestRandomAccessDistinctBuffers(t *testing.T) {
	x, y := make([]int, 3), make([]int, 3)
	a, b := iterator.New(x, 1), iterator.New(y, 1)

	require.False(t, a.Equal(b))
	require.NotEqual(t, a.Less(b), b.Less(a))
}

func TestValuesAndAll(t *testing.T) {
	buf := []int{1, 2, 3, 4, 5}
	first, last := iterator.New(buf, 1), iterator.New(buf, 4)

	require.Equal(t, []int{2, 3, 4}, slices.Collect(iterator.Values(first, last)))

	var idx []int
	for i, v := range iterator.All(first, last) {
		idx = append(idx, i)
		if v == 3 {
			break
		}
	}
	require.Equal(t, []int{0, 1}, idx)
}

func TestCopy(t *testing.T) {
	buf := []int{1, 2, 3, 4}
	dst := make([]int, 2)

	n := iterator.Copy(dst, iterator.New(buf, 1), iterator.New(buf, 4))
	require.Equal(t, 2, n)
	require.Equal(t, []int{2, 3}, dst)
	require.Zero(t, iterator.Copy(dst, iterator.New(buf, 3), iterator.New(buf, 1)))
}

func TestReverse(t *testing.T) {
	buf := []int{1, 2, 3}
	rb := iterator.MakeReverse(iterator.New(buf, len(buf)))
	re := iterator.MakeReverse(iterator.New(buf, 0))

	var got []int
	for it := rb; !it.Equal(re); it = it.Next() {
		got = append(got, it.Value())
	}
	require.Equal(t, []int{3, 2, 1}, got)
	require.Equal(t, 3, rb.Distance(re))
	require.True(t, rb.Less(re))
	require.True(t, re.Greater(rb))
	require.Equal(t, 3, rb.Base().Index())

	second := rb.Next()
	require.Equal(t, 2, second.Value())
	require.Equal(t, 3, second.Prev().Value())
	second.Set(20)
	*rb.Ref() = 30
	require.Equal(t, []int{1, 20, 30}, buf)

	require.Equal(t, []int{30, 20, 1}, slices.Collect(iterator.ReverseValues(rb, re)))
}

func TestInvalidatedCursorKeepsOldBuffer(t *testing.T) {
	buf := []int{1, 2}
	it := iterator.New(buf, 0)

	grown := make([]int, 4)
	copy(grown, buf)
	grown[0] = 9

	require.Equal(t, 1, it.Value())
	require.False(t, it.Equal(iterator.New(grown, 0)))
}
