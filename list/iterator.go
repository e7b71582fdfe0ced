// SPDX-License-Identifier: MIT

package list

// Iterator is a bidirectional cursor. The zero node is the End sentinel.
// Iterators follow their elements across Swap, End included.
type Iterator[T any] struct {
	node  *Node[T]
	owner *anchor[T]
}

// anchor identifies the node chain of a list. Swap hands it over together
// with the nodes, so an End taken before a swap still ends the same chain.
type anchor[T any] struct {
	list *List[T]
}

func (l *List[T]) self() *anchor[T] {
	if l.own == nil {
		l.own = &anchor[T]{list: l}
	}
	return l.own
}

// Begin returns an iterator to the first element, or End when empty.
func (l *List[T]) Begin() Iterator[T] { return Iterator[T]{node: l.head, owner: l.self()} }

// End returns the past-the-tail sentinel.
func (l *List[T]) End() Iterator[T] { return Iterator[T]{owner: l.self()} }

// Next advances toward the tail. Advancing End stays at End.
func (it Iterator[T]) Next() Iterator[T] {
	if it.node != nil {
		it.node = it.node.next
	}
	return it
}

// Prev moves toward the head. Prev of End is the last element.
func (it Iterator[T]) Prev() Iterator[T] {
	if it.node == nil {
		it.node = it.owner.list.tail
		return it
	}
	it.node = it.node.prev
	return it
}

// Value returns the element. Dereferencing End panics.
func (it Iterator[T]) Value() T { return it.node.value }

func (it Iterator[T]) Ref() *T { return &it.node.value }

func (it Iterator[T]) Set(v T) { it.node.value = v }

func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.node == other.node && it.owner == other.owner
}

func (it Iterator[T]) IsEnd() bool { return it.node == nil }
