package vector_test

import (
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fdt/alloc"
	"github.com/katalvlaran/fdt/alloc/mock"
	"github.com/katalvlaran/fdt/vector"
)

// capIs matches a buffer by capacity.
type capIs int

func (c capIs) Matches(x interface{}) bool {
	buf, ok := x.([]int)
	return ok && cap(buf) == int(c)
}

func (c capIs) String() string { return fmt.Sprintf("buffer with cap %d", int(c)) }

func heapBacked(t *testing.T) *mock.MockAllocator[int] {
	ctrl := gomock.NewController(t)
	m := mock.NewMockAllocator[int](ctrl)
	heap := alloc.NewHeap[int]()
	m.EXPECT().Construct(gomock.Any(), gomock.Any(), gomock.Any()).Do(heap.Construct).AnyTimes()
	m.EXPECT().Destroy(gomock.Any(), gomock.Any()).Do(heap.Destroy).AnyTimes()
	return m
}

func TestEveryBufferDeallocatedOnce(t *testing.T) {
	heap := alloc.NewHeap[int]()
	m := heapBacked(t)
	gomock.InOrder(
		m.EXPECT().Allocate(8).DoAndReturn(heap.Allocate),
		m.EXPECT().Allocate(16).DoAndReturn(heap.Allocate),
		m.EXPECT().Deallocate(capIs(8)),
		m.EXPECT().Deallocate(capIs(16)),
	)

	v, err := vector.New[int](vector.WithAllocator[int](m))
	require.NoError(t, err)
	for i := 0; i < 8; i++ {
		require.NoError(t, v.PushBack(i))
	}
	require.Equal(t, 16, v.Capacity())

	v.Release()
	v.Release()
}

func TestFailedGrowthKeepsBuffer(t *testing.T) {
	heap := alloc.NewHeap[int]()
	m := heapBacked(t)
	gomock.InOrder(
		m.EXPECT().Allocate(8).DoAndReturn(heap.Allocate),
		m.EXPECT().Allocate(64).Return(nil, alloc.ErrOutOfMemory),
		m.EXPECT().Deallocate(capIs(8)),
	)

	v, err := vector.New[int](vector.WithAllocator[int](m))
	require.NoError(t, err)
	require.NoError(t, v.PushBack(1))

	require.ErrorIs(t, v.Reserve(64), alloc.ErrOutOfMemory)
	require.Equal(t, []int{1}, v.Data())
	v.Release()
}

func TestArithmeticUsesLeftAllocator(t *testing.T) {
	lim := alloc.NewLimited[int](alloc.NewHeap[int](), 64)
	a, err := vector.NewFrom([]int{1, 2}, vector.WithAllocator[int](lim))
	require.NoError(t, err)

	sum, err := vector.Add(a, vector.MustOf(3, 4))
	require.NoError(t, err)
	require.Equal(t, []int{4, 6}, sum.Data())
	require.Equal(t, 2*(vector.DefaultCapacity+2), lim.InUse())

	sum.Release()
	a.Release()
	require.Zero(t, lim.InUse())
}
