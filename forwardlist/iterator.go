// SPDX-License-Identifier: MIT

package forwardlist

// Iterator is a forward cursor. A nil node is End; before marks the
// BeforeBegin anchor.
type Iterator[T any] struct {
	node   *Node[T]
	list   *List[T]
	before bool
}

// BeforeBegin returns the anchor preceding the first element. It may only
// be advanced or passed to the *After operations.
func (l *List[T]) BeforeBegin() Iterator[T] { return Iterator[T]{list: l, before: true} }

func (l *List[T]) Begin() Iterator[T] { return Iterator[T]{node: l.head, list: l} }

func (l *List[T]) End() Iterator[T] { return Iterator[T]{list: l} }

// Next advances the cursor. End stays End.
func (it Iterator[T]) Next() Iterator[T] {
	switch {
	case it.before:
		return Iterator[T]{node: it.list.head, list: it.list}
	case it.node != nil:
		it.node = it.node.next
	}
	return it
}

func (it Iterator[T]) Value() T { return it.node.value }

func (it Iterator[T]) Ref() *T { return &it.node.value }

func (it Iterator[T]) Set(v T) { it.node.value = v }

func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.node == other.node && it.list == other.list && it.before == other.before
}

func (it Iterator[T]) IsEnd() bool { return it.node == nil && !it.before }

// Distance counts the Next steps from first to last. last must be
// reachable from first.
func Distance[T any](first, last Iterator[T]) int {
	n := 0
	for ; !first.Equal(last); first = first.Next() {
		n++
	}
	return n
}
