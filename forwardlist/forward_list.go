// SPDX-License-Identifier: MIT

package forwardlist

import (
	"fmt"
	"iter"
	"unsafe"

	"github.com/katalvlaran/fdt/alloc"
)

// Node is a list cell, exported so callers can supply an allocator for it.
type Node[T any] struct {
	value T
	next  *Node[T]
}

// Destroy retires the payload.
func (n *Node[T]) Destroy() { alloc.DestroyValue(&n.value) }

// List is a singly linked list. The zero value is an empty heap-backed list.
type List[T any] struct {
	head, tail *Node[T]
	size       int
	alloc      alloc.Allocator[Node[T]]
}

// Option configures a List at construction.
type Option[T any] func(*List[T])

// WithAllocator sets the node allocator. Panics on nil.
func WithAllocator[T any](a alloc.Allocator[Node[T]]) Option[T] {
	if a == nil {
		panic("forwardlist: WithAllocator: allocator must not be nil")
	}
	return func(l *List[T]) { l.alloc = a }
}

func New[T any](opts ...Option[T]) *List[T] {
	l := &List[T]{}
	for _, set := range opts {
		set(l)
	}
	return l
}

// NewSized returns a list of n zero values.
func NewSized[T any](n int, opts ...Option[T]) (*List[T], error) {
	var zero T
	return NewFilled(n, zero, opts...)
}

// NewFilled returns a list of n copies of v.
func NewFilled[T any](n int, v T, opts ...Option[T]) (*List[T], error) {
	l := New(opts...)
	for i := 0; i < n; i++ {
		if err := l.PushBack(v); err != nil {
			l.Clear()
			return nil, err
		}
	}
	return l, nil
}

// FromSlice returns a list holding values in order.
func FromSlice[T any](values []T, opts ...Option[T]) (*List[T], error) {
	l := New(opts...)
	for _, v := range values {
		if err := l.PushBack(v); err != nil {
			l.Clear()
			return nil, err
		}
	}
	return l, nil
}

func (l *List[T]) allocator() alloc.Allocator[Node[T]] {
	if l.alloc == nil {
		l.alloc = alloc.NewHeap[Node[T]]()
	}
	return l.alloc
}

func (l *List[T]) newNode(v T, next *Node[T]) (*Node[T], error) {
	a := l.allocator()
	buf, err := a.Allocate(1)
	if err != nil {
		return nil, fmt.Errorf("forwardlist: allocate node: %w", err)
	}
	a.Construct(buf, 0, Node[T]{value: v, next: next})
	return &buf[0], nil
}

func (l *List[T]) freeNode(n *Node[T]) {
	buf := unsafe.Slice(n, 1)
	l.alloc.Destroy(buf, 0)
	l.alloc.Deallocate(buf)
}

// Clone returns a deep copy sharing the allocator.
func (l *List[T]) Clone() (*List[T], error) {
	out := &List[T]{alloc: l.allocator()}
	for n := l.head; n != nil; n = n.next {
		if err := out.PushBack(n.value); err != nil {
			out.Clear()
			return nil, err
		}
	}
	return out, nil
}

// Move transfers all nodes to a new List and leaves l empty.
func (l *List[T]) Move() *List[T] {
	out := &List[T]{head: l.head, tail: l.tail, size: l.size, alloc: l.allocator()}
	l.head, l.tail, l.size = nil, nil, 0
	return out
}

// Assign replaces the contents of l with a copy of other. On error l is
// unchanged.
func (l *List[T]) Assign(other *List[T]) error {
	if l == other {
		return nil
	}
	c, err := other.Clone()
	if err != nil {
		return err
	}
	*l, *c = *c, *l
	c.Clear()
	return nil
}

func (l *List[T]) Empty() bool { return l.head == nil }

func (l *List[T]) Size() int { return l.size }

// Clear destroys every element and returns all nodes.
func (l *List[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		l.freeNode(n)
		n = next
	}
	l.head, l.tail, l.size = nil, nil, 0
}

func (l *List[T]) Front() (T, error) {
	if l.head == nil {
		var zero T
		return zero, fmt.Errorf("List.Front: %w", ErrEmpty)
	}
	return l.head.value, nil
}

func (l *List[T]) Back() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, fmt.Errorf("List.Back: %w", ErrEmpty)
	}
	return l.tail.value, nil
}

// linkAfter inserts n after prev; a nil prev means the front.
func (l *List[T]) linkAfter(prev, n *Node[T]) {
	if prev == nil {
		n.next = l.head
		l.head = n
	} else {
		n.next = prev.next
		prev.next = n
	}
	if n.next == nil {
		l.tail = n
	}
	l.size++
}

func (l *List[T]) PushFront(v T) error {
	n, err := l.newNode(v, nil)
	if err != nil {
		return err
	}
	l.linkAfter(nil, n)
	return nil
}

// EmplaceFront inserts a zero element at the front, lets init fill it and
// returns a pointer to it.
func (l *List[T]) EmplaceFront(init func(*T)) (*T, error) {
	return l.emplaceAfter(nil, init)
}

// PushBack appends v in O(1).
func (l *List[T]) PushBack(v T) error {
	n, err := l.newNode(v, nil)
	if err != nil {
		return err
	}
	l.linkAfter(l.tail, n)
	return nil
}

func (l *List[T]) EmplaceBack(init func(*T)) (*T, error) {
	return l.emplaceAfter(l.tail, init)
}

func (l *List[T]) emplaceAfter(prev *Node[T], init func(*T)) (*T, error) {
	var zero T
	n, err := l.newNode(zero, nil)
	if err != nil {
		return nil, err
	}
	if init != nil {
		init(&n.value)
	}
	l.linkAfter(prev, n)
	return &n.value, nil
}

func (l *List[T]) PopFront() error {
	if l.head == nil {
		return fmt.Errorf("List.PopFront: %w", ErrEmpty)
	}
	n := l.head
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	}
	l.size--
	l.freeNode(n)
	return nil
}

// anchor resolves an iterator used as an insertion point: nil for
// BeforeBegin, the node otherwise.
func (l *List[T]) anchor(method string, it Iterator[T]) (*Node[T], error) {
	if it.before {
		return nil, nil
	}
	if it.node == nil {
		return nil, fmt.Errorf("List.%s: %w", method, ErrInvalidPosition)
	}
	return it.node, nil
}

// InsertAfter inserts v after it and returns an iterator to it.
// Anchoring on End yields ErrInvalidPosition.
func (l *List[T]) InsertAfter(it Iterator[T], v T) (Iterator[T], error) {
	prev, err := l.anchor("InsertAfter", it)
	if err != nil {
		return l.End(), err
	}
	n, err := l.newNode(v, nil)
	if err != nil {
		return l.End(), err
	}
	l.linkAfter(prev, n)
	return Iterator[T]{node: n, list: l}, nil
}

// EmplaceAfter is InsertAfter with in-place initialisation.
func (l *List[T]) EmplaceAfter(it Iterator[T], init func(*T)) (Iterator[T], error) {
	prev, err := l.anchor("EmplaceAfter", it)
	if err != nil {
		return l.End(), err
	}
	if _, err = l.emplaceAfter(prev, init); err != nil {
		return l.End(), err
	}
	if prev == nil {
		return l.Begin(), nil
	}
	return Iterator[T]{node: prev.next, list: l}, nil
}

// EraseAfter removes the element following it and returns an iterator to
// the element after the removed one. Nothing to erase yields End.
func (l *List[T]) EraseAfter(it Iterator[T]) (Iterator[T], error) {
	prev, err := l.anchor("EraseAfter", it)
	if err != nil {
		return l.End(), err
	}
	var target *Node[T]
	if prev == nil {
		target = l.head
	} else {
		target = prev.next
	}
	if target == nil {
		return l.End(), nil
	}
	if prev == nil {
		l.head = target.next
	} else {
		prev.next = target.next
	}
	if l.tail == target {
		l.tail = prev
	}
	next := target.next
	l.size--
	l.freeNode(target)

	return Iterator[T]{node: next, list: l}, nil
}

// Reverse reverses the list in place.
func (l *List[T]) Reverse() {
	var prev *Node[T]
	l.tail = l.head
	for n := l.head; n != nil; {
		next := n.next
		n.next = prev
		prev, n = n, next
	}
	l.head = prev
}

// All yields position/element pairs front to back.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for n := l.head; n != nil; n = n.next {
			if !yield(i, n.value) {
				return
			}
			i++
		}
	}
}

func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	if a.size != b.size {
		return false
	}
	for x, y := a.head, b.head; x != nil; x, y = x.next, y.next {
		if x.value != y.value {
			return false
		}
	}
	return true
}
