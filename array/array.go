// SPDX-License-Identifier: MIT

package array

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/fdt/alloc"
	"github.com/katalvlaran/fdt/iterator"
)

// Array is a fixed-size array. Every slot is constructed for its lifetime.
type Array[T any] struct {
	data  []T
	alloc alloc.Allocator[T]
}

// Option configures an Array at construction.
type Option[T any] func(*Array[T])

// WithAllocator sets the allocator backing the array. Panics on nil.
func WithAllocator[T any](a alloc.Allocator[T]) Option[T] {
	if a == nil {
		panic("array: WithAllocator: allocator must not be nil")
	}
	return func(arr *Array[T]) { arr.alloc = a }
}

// New returns an array of n zero values. Negative n yields ErrOutOfRange.
func New[T any](n int, opts ...Option[T]) (*Array[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("Array.New(%d): %w", n, ErrOutOfRange)
	}
	a := &Array[T]{alloc: alloc.NewHeap[T]()}
	for _, set := range opts {
		set(a)
	}
	buf, err := a.alloc.Allocate(n)
	if err != nil {
		return nil, err
	}
	var zero T
	for i := range buf {
		a.alloc.Construct(buf, i, zero)
	}
	a.data = buf

	return a, nil
}

// Of returns a heap-backed array holding a copy of values.
func Of[T any](values ...T) *Array[T] {
	return &Array[T]{data: slices.Clone(values), alloc: alloc.NewHeap[T]()}
}

func (a *Array[T]) Size() int { return len(a.data) }

func (a *Array[T]) Empty() bool { return len(a.data) == 0 }

func (a *Array[T]) At(i int) (T, error) {
	if i < 0 || i >= len(a.data) {
		var zero T
		return zero, fmt.Errorf("Array.At(%d): %w", i, ErrOutOfRange)
	}
	return a.data[i], nil
}

func (a *Array[T]) Set(i int, v T) error {
	if i < 0 || i >= len(a.data) {
		return fmt.Errorf("Array.Set(%d): %w", i, ErrOutOfRange)
	}
	a.data[i] = v
	return nil
}

// Get is the unchecked accessor.
func (a *Array[T]) Get(i int) T { return a.data[i] }

// Ref returns a pointer to slot i. Unchecked.
func (a *Array[T]) Ref(i int) *T { return &a.data[i] }

func (a *Array[T]) Front() (T, error) {
	if len(a.data) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return a.data[0], nil
}

func (a *Array[T]) Back() (T, error) {
	if len(a.data) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return a.data[len(a.data)-1], nil
}

// Data returns the backing slice.
func (a *Array[T]) Data() []T { return a.data }

func (a *Array[T]) Fill(v T) {
	for i := range a.data {
		a.data[i] = v
	}
}

// Swap exchanges the elements of two arrays of equal size.
func (a *Array[T]) Swap(other *Array[T]) error {
	if len(a.data) != len(other.data) {
		return fmt.Errorf("Array.Swap(%d<->%d): %w", len(a.data), len(other.data), ErrSizeMismatch)
	}
	a.data, other.data = other.data, a.data
	a.alloc, other.alloc = other.alloc, a.alloc
	return nil
}

// Release destroys every element and returns the storage. The array is
// empty afterwards.
func (a *Array[T]) Release() {
	if a.data == nil {
		return
	}
	for i := range a.data {
		a.alloc.Destroy(a.data, i)
	}
	a.alloc.Deallocate(a.data)
	a.data = nil
}

func (a *Array[T]) Begin() iterator.RandomAccess[T] { return iterator.New(a.data, 0) }

func (a *Array[T]) End() iterator.RandomAccess[T] { return iterator.New(a.data, len(a.data)) }

func (a *Array[T]) All() iter.Seq2[int, T] { return slices.All(a.data) }

// Equal reports whether both arrays hold equal elements in the same order.
func Equal[T comparable](a, b *Array[T]) bool {
	return slices.Equal(a.data, b.data)
}
