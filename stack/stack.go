// SPDX-License-Identifier: MIT

// Package stack provides a LIFO adaptor over any back-insertable container.
// The default container is a vector.Vector; a list.List works as well.
package stack

import (
	"cmp"
	"errors"
	"iter"
	"slices"

	"github.com/katalvlaran/fdt/vector"
)

// ErrEmpty is returned by Pop and Top on an empty stack.
var ErrEmpty = errors.New("stack: empty stack")

// Container is what a Stack needs from its underlying sequence.
type Container[T any] interface {
	PushBack(v T) error
	EmplaceBack(init func(*T)) (*T, error)
	PopBack() error
	Back() (T, error)
	Size() int
	Empty() bool
	Values() iter.Seq[T]
}

var _ Container[int] = (*vector.Vector[int])(nil)

// Stack is a LIFO adaptor. The top is the back of the container.
type Stack[T any] struct {
	c Container[T]
}

// New returns an empty stack over a heap-backed vector.
func New[T any](opts ...vector.Option[T]) (*Stack[T], error) {
	v, err := vector.New[T](opts...)
	if err != nil {
		return nil, err
	}
	return &Stack[T]{c: v}, nil
}

// NewWith adapts an existing container; its current elements become the
// stack, last one on top.
func NewWith[T any](c Container[T]) *Stack[T] {
	return &Stack[T]{c: c}
}

func (s *Stack[T]) Push(v T) error { return s.c.PushBack(v) }

// Emplace pushes a zero element, lets init fill it and returns it.
func (s *Stack[T]) Emplace(init func(*T)) (*T, error) { return s.c.EmplaceBack(init) }

// Pop removes the top element.
func (s *Stack[T]) Pop() error {
	if s.c.Empty() {
		return ErrEmpty
	}
	return s.c.PopBack()
}

// Top returns the top element.
func (s *Stack[T]) Top() (T, error) {
	if s.c.Empty() {
		var zero T
		return zero, ErrEmpty
	}
	return s.c.Back()
}

func (s *Stack[T]) Size() int { return s.c.Size() }

func (s *Stack[T]) Empty() bool { return s.c.Empty() }

// Swap exchanges the underlying containers.
func (s *Stack[T]) Swap(other *Stack[T]) { s.c, other.c = other.c, s.c }

// Equal compares two stacks bottom to top.
func Equal[T comparable](a, b *Stack[T]) bool {
	return a.Size() == b.Size() && slices.Equal(slices.Collect(a.c.Values()), slices.Collect(b.c.Values()))
}

// Compare orders two stacks lexicographically from the bottom.
func Compare[T cmp.Ordered](a, b *Stack[T]) int {
	return slices.Compare(slices.Collect(a.c.Values()), slices.Collect(b.c.Values()))
}
