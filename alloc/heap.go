// SPDX-License-Identifier: MIT

package alloc

// Heap allocates from the Go heap. The zero value is ready to use.
type Heap[T any] struct{}

var _ Allocator[int] = Heap[int]{}

// NewHeap returns the stateless heap allocator.
func NewHeap[T any]() Heap[T] { return Heap[T]{} }

func (Heap[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	return make([]T, n), nil
}

// Deallocate clears the buffer so stale references do not outlive it.
func (Heap[T]) Deallocate(buf []T) {
	clear(buf[:cap(buf)])
}

func (Heap[T]) Construct(buf []T, i int, v T) { buf[i] = v }

func (Heap[T]) Destroy(buf []T, i int) { DestroyValue(&buf[i]) }
