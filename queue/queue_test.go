package queue_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fdt/alloc"
	"github.com/katalvlaran/fdt/forwardlist"
	"github.com/katalvlaran/fdt/list"
	"github.com/katalvlaran/fdt/queue"
)

func TestFIFO(t *testing.T) {
	q := queue.New[int]()
	require.True(t, q.Empty())
	for i := 1; i <= 3; i++ {
		require.NoError(t, q.Push(i))
	}
	b, _ := q.Back()
	require.Equal(t, 3, b)

	for want := 1; want <= 3; want++ {
		f, err := q.Front()
		require.NoError(t, err)
		require.Equal(t, want, f)
		require.NoError(t, q.Pop())
	}
	require.ErrorIs(t, q.Pop(), queue.ErrEmpty)
	_, err := q.Front()
	require.ErrorIs(t, err, queue.ErrEmpty)
	_, err = q.Back()
	require.ErrorIs(t, err, queue.ErrEmpty)
}

func TestOverForwardList(t *testing.T) {
	fl, err := forwardlist.FromSlice([]string{"x"})
	require.NoError(t, err)
	q := queue.NewWith[string](fl)

	p, err := q.Emplace(func(s *string) { *s = "y" })
	require.NoError(t, err)
	require.Equal(t, "y", *p)
	require.Equal(t, 2, q.Size())

	require.NoError(t, q.Pop())
	f, _ := q.Front()
	require.Equal(t, "y", f)
}

func TestSwap(t *testing.T) {
	a, b := queue.New[int](), queue.New[int]()
	require.NoError(t, a.Push(1))
	a.Swap(b)
	require.True(t, a.Empty())
	require.Equal(t, 1, b.Size())
}

func TestNodeBudget(t *testing.T) {
	lim := alloc.NewLimited[list.Node[int]](alloc.NewHeap[list.Node[int]](), 1)
	q := queue.New[int](list.WithAllocator[int](lim))
	require.NoError(t, q.Push(1))
	require.ErrorIs(t, q.Push(2), alloc.ErrOutOfMemory)
	require.NoError(t, q.Pop())
	require.NoError(t, q.Push(3))
}
