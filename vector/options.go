// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/fdt/alloc"

// DefaultCapacity is the slot floor of every fresh buffer.
const DefaultCapacity = 8

const (
	panicNilAllocator   = "vector: WithAllocator: allocator must not be nil"
	panicDefaultCapZero = "vector: WithDefaultCapacity: capacity must be > 0"
)

// defaultCapacity is read at construction; tests stub it.
var defaultCapacity = DefaultCapacity

// Option configures a Vector at construction.
type Option[T any] func(*options[T])

type options[T any] struct {
	alloc  alloc.Allocator[T]
	defCap int
}

// WithAllocator sets the allocator backing the vector. A nil allocator is a
// programmer error and panics.
func WithAllocator[T any](a alloc.Allocator[T]) Option[T] {
	if a == nil {
		panic(panicNilAllocator)
	}
	return func(o *options[T]) { o.alloc = a }
}

// WithDefaultCapacity overrides the initial slot floor. Panics for n <= 0.
func WithDefaultCapacity[T any](n int) Option[T] {
	if n <= 0 {
		panic(panicDefaultCapZero)
	}
	return func(o *options[T]) { o.defCap = n }
}

func gatherOptions[T any](user ...Option[T]) options[T] {
	o := options[T]{
		alloc:  alloc.NewHeap[T](),
		defCap: defaultCapacity,
	}
	for _, set := range user {
		set(&o)
	}
	return o
}
