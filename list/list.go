// SPDX-License-Identifier: MIT

package list

import (
	"fmt"
	"iter"
	"unsafe"

	"github.com/katalvlaran/fdt/alloc"
)

// Node is a list cell. It is exported only so callers can supply an
// alloc.Allocator[Node[T]].
type Node[T any] struct {
	value      T
	prev, next *Node[T]
}

// Destroy retires the payload; allocators call it through alloc.DestroyValue.
func (n *Node[T]) Destroy() { alloc.DestroyValue(&n.value) }

// List is a doubly linked list. The zero value is an empty list on the heap.
type List[T any] struct {
	head, tail *Node[T]
	size       int
	alloc      alloc.Allocator[Node[T]]
	own        *anchor[T]
}

// Option configures a List at construction.
type Option[T any] func(*List[T])

// WithAllocator sets the node allocator. Panics on nil.
func WithAllocator[T any](a alloc.Allocator[Node[T]]) Option[T] {
	if a == nil {
		panic("list: WithAllocator: allocator must not be nil")
	}
	return func(l *List[T]) { l.alloc = a }
}

// New returns an empty list. No memory is taken until the first insert.
func New[T any](opts ...Option[T]) *List[T] {
	l := &List[T]{}
	for _, set := range opts {
		set(l)
	}
	return l
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

func (l *List[T]) newNode(v T) (*Node[T], error) {
	a := l.allocator()
	buf, err := a.Allocate(1)
	if err != nil {
		return nil, fmt.Errorf("list: allocate node: %w", err)
	}
	a.Construct(buf, 0, Node[T]{value: v})
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
	out := &List[T]{head: l.head, tail: l.tail, size: l.size, alloc: l.allocator(), own: l.own}
	if out.own != nil {
		out.own.list = out
	}
	l.head, l.tail, l.size, l.own = nil, nil, 0, nil
	return out
}

func (l *List[T]) Empty() bool { return l.size == 0 }

func (l *List[T]) Size() int { return l.size }

// Clear destroys every element and returns all nodes to the allocator.
func (l *List[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		l.freeNode(n)
		n = next
	}
	l.head, l.tail, l.size = nil, nil, 0
}

// linkBefore inserts n before at; a nil at appends.
func (l *List[T]) linkBefore(at, n *Node[T]) {
	if at == nil {
		n.prev = l.tail
		if l.tail != nil {
			l.tail.next = n
		} else {
			l.head = n
		}
		l.tail = n
	} else {
		n.next = at
		n.prev = at.prev
		if at.prev != nil {
			at.prev.next = n
		} else {
			l.head = n
		}
		at.prev = n
	}
	l.size++
}

func (l *List[T]) unlink(n *Node[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	l.size--
	l.freeNode(n)
}

func (l *List[T]) PushFront(v T) error {
	n, err := l.newNode(v)
	if err != nil {
		return err
	}
	l.linkBefore(l.head, n)
	return nil
}

func (l *List[T]) PushBack(v T) error {
	n, err := l.newNode(v)
	if err != nil {
		return err
	}
	l.linkBefore(nil, n)
	return nil
}

// EmplaceFront inserts a zero element at the front, lets init fill it and
// returns a pointer to it.
func (l *List[T]) EmplaceFront(init func(*T)) (*T, error) {
	var zero T
	n, err := l.newNode(zero)
	if err != nil {
		return nil, err
	}
	if init != nil {
		init(&n.value)
	}
	l.linkBefore(l.head, n)
	return &n.value, nil
}

// EmplaceBack is EmplaceFront at the tail.
func (l *List[T]) EmplaceBack(init func(*T)) (*T, error) {
	var zero T
	n, err := l.newNode(zero)
	if err != nil {
		return nil, err
	}
	if init != nil {
		init(&n.value)
	}
	l.linkBefore(nil, n)
	return &n.value, nil
}

func (l *List[T]) PopFront() error {
	if l.head == nil {
		return fmt.Errorf("List.PopFront: %w", ErrEmpty)
	}
	l.unlink(l.head)
	return nil
}

func (l *List[T]) PopBack() error {
	if l.tail == nil {
		return fmt.Errorf("List.PopBack: %w", ErrEmpty)
	}
	l.unlink(l.tail)
	return nil
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

// InsertBefore inserts v before it and returns an iterator to the new
// element. Inserting before End appends.
func (l *List[T]) InsertBefore(it Iterator[T], v T) (Iterator[T], error) {
	n, err := l.newNode(v)
	if err != nil {
		return l.End(), err
	}
	l.linkBefore(it.node, n)
	return Iterator[T]{node: n, owner: l.self()}, nil
}

// Erase removes the element at it and returns an iterator to the element
// that followed it. Erasing End is a no-op returning End.
func (l *List[T]) Erase(it Iterator[T]) Iterator[T] {
	if it.node == nil {
		return l.End()
	}
	next := it.node.next
	l.unlink(it.node)
	return Iterator[T]{node: next, owner: l.self()}
}

// Swap exchanges the complete state of l and other. Iterators, End
// included, move with the elements they came from.
func (l *List[T]) Swap(other *List[T]) {
	la, oa := l.self(), other.self()
	*l, *other = *other, *l
	la.list, oa.list = other, l
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

// Values yields the elements front to back.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward yields the elements back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.tail; n != nil; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

// String formats the list like a slice: [1 2 3].
func (l *List[T]) String() string {
	s := make([]T, 0, l.size)
	for v := range l.Values() {
		s = append(s, v)
	}
	return fmt.Sprint(s)
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
