// SPDX-License-Identifier: MIT

package iterator

import (
	"iter"
	"unsafe"
)

// RandomAccess is a non-owning cursor into buf at position pos.
// Positions in [0, len(buf)] are valid cursors; only [0, len(buf)) may be
// dereferenced.
type RandomAccess[T any] struct {
	buf []T
	pos int
}

// New returns a cursor at pos over buf.
func New[T any](buf []T, pos int) RandomAccess[T] {
	return RandomAccess[T]{buf: buf, pos: pos}
}

// Index returns the position of the cursor inside its buffer.
func (it RandomAccess[T]) Index() int { return it.pos }

// Value returns the element under the cursor. Unchecked.
func (it RandomAccess[T]) Value() T { return it.buf[it.pos] }

// Ref returns a pointer to the element under the cursor. Unchecked.
func (it RandomAccess[T]) Ref() *T { return &it.buf[it.pos] }

// Set overwrites the element under the cursor. Unchecked.
func (it RandomAccess[T]) Set(v T) { it.buf[it.pos] = v }

// At returns the element n positions away from the cursor, like it[n].
func (it RandomAccess[T]) At(n int) T { return it.buf[it.pos+n] }

func (it RandomAccess[T]) Next() RandomAccess[T] { return it.Advance(1) }

func (it RandomAccess[T]) Prev() RandomAccess[T] { return it.Advance(-1) }

// Advance moves the cursor by n positions; n may be negative.
func (it RandomAccess[T]) Advance(n int) RandomAccess[T] {
	it.pos += n
	return it
}

// Distance returns the number of steps from it to to (to - it).
func (it RandomAccess[T]) Distance(to RandomAccess[T]) int { return to.pos - it.pos }

// base identifies the backing array; cursors of different containers never
// compare equal even when their positions match.
func (it RandomAccess[T]) base() uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(it.buf)))
}

// Equal reports whether both cursors address the same slot of the same buffer.
func (it RandomAccess[T]) Equal(other RandomAccess[T]) bool {
	return it.base() == other.base() && it.pos == other.pos
}

// Less orders cursors by address. Cursors over one buffer are ordered by
// position.
func (it RandomAccess[T]) Less(other RandomAccess[T]) bool {
	if b, ob := it.base(), other.base(); b != ob {
		return b < ob
	}
	return it.pos < other.pos
}

func (it RandomAccess[T]) LessEqual(other RandomAccess[T]) bool { return !other.Less(it) }

func (it RandomAccess[T]) Greater(other RandomAccess[T]) bool { return other.Less(it) }

func (it RandomAccess[T]) GreaterEqual(other RandomAccess[T]) bool { return !it.Less(other) }

// Distance returns last - first.
func Distance[T any](first, last RandomAccess[T]) int { return first.Distance(last) }

// Values yields the elements of [first, last).
func Values[T any](first, last RandomAccess[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := first.pos; i < last.pos; i++ {
			if !yield(first.buf[i]) {
				return
			}
		}
	}
}

// All yields (offset from first, element) pairs of [first, last).
func All[T any](first, last RandomAccess[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := first.pos; i < last.pos; i++ {
			if !yield(i-first.pos, first.buf[i]) {
				return
			}
		}
	}
}

// Copy copies [first, last) into dst and returns the number of elements
// copied, which is the minimum of len(dst) and the range length.
func Copy[T any](dst []T, first, last RandomAccess[T]) int {
	if last.pos <= first.pos {
		return 0
	}
	return copy(dst, first.buf[first.pos:last.pos])
}
