// SPDX-License-Identifier: MIT

// Package queue provides a FIFO adaptor over any container that can append
// at the back and remove at the front. The default container is a
// list.List; a forwardlist.List works as well.
package queue

import (
	"errors"

	"github.com/katalvlaran/fdt/list"
)

// ErrEmpty is returned by Pop, Front and Back on an empty queue.
var ErrEmpty = errors.New("queue: empty queue")

// Container is what a Queue needs from its underlying sequence.
type Container[T any] interface {
	PushBack(v T) error
	EmplaceBack(init func(*T)) (*T, error)
	PopFront() error
	Front() (T, error)
	Back() (T, error)
	Size() int
	Empty() bool
}

var _ Container[int] = (*list.List[int])(nil)

// Queue is a FIFO adaptor: Push appends at the back, Pop removes the front.
type Queue[T any] struct {
	c Container[T]
}

// New returns an empty queue over a linked list.
func New[T any](opts ...list.Option[T]) *Queue[T] {
	return &Queue[T]{c: list.New[T](opts...)}
}

// NewWith adapts an existing container; its front is the queue front.
func NewWith[T any](c Container[T]) *Queue[T] {
	return &Queue[T]{c: c}
}

func (q *Queue[T]) Push(v T) error { return q.c.PushBack(v) }

func (q *Queue[T]) Emplace(init func(*T)) (*T, error) { return q.c.EmplaceBack(init) }

func (q *Queue[T]) Pop() error {
	if q.c.Empty() {
		return ErrEmpty
	}
	return q.c.PopFront()
}

func (q *Queue[T]) Front() (T, error) {
	if q.c.Empty() {
		var zero T
		return zero, ErrEmpty
	}
	return q.c.Front()
}

func (q *Queue[T]) Back() (T, error) {
	if q.c.Empty() {
		var zero T
		return zero, ErrEmpty
	}
	return q.c.Back()
}

func (q *Queue[T]) Size() int { return q.c.Size() }

func (q *Queue[T]) Empty() bool { return q.c.Empty() }

func (q *Queue[T]) Swap(other *Queue[T]) { q.c, other.c = other.c, q.c }
