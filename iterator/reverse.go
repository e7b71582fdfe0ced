// SPDX-License-Identifier: MIT

package iterator

import "iter"

// Reverse walks a buffer back to front. It holds a base cursor and
// dereferences the element just before it, so MakeReverse(end) addresses the
// last element and MakeReverse(begin) is the past-the-front sentinel.
type Reverse[T any] struct {
	base RandomAccess[T]
}

func MakeReverse[T any](base RandomAccess[T]) Reverse[T] {
	return Reverse[T]{base: base}
}

// Base returns the underlying cursor, one position after the element r
// refers to.
func (r Reverse[T]) Base() RandomAccess[T] { return r.base }

func (r Reverse[T]) Value() T { return r.base.At(-1) }

func (r Reverse[T]) Ref() *T { return r.base.Prev().Ref() }

func (r Reverse[T]) Set(v T) { r.base.Prev().Set(v) }

// Next moves toward the front of the buffer.
func (r Reverse[T]) Next() Reverse[T] { return r.Advance(1) }

func (r Reverse[T]) Prev() Reverse[T] { return r.Advance(-1) }

func (r Reverse[T]) Advance(n int) Reverse[T] {
	r.base = r.base.Advance(-n)
	return r
}

// Distance returns the number of Next steps from r to to.
func (r Reverse[T]) Distance(to Reverse[T]) int { return to.base.Distance(r.base) }

func (r Reverse[T]) Equal(other Reverse[T]) bool { return r.base.Equal(other.base) }

// Less is true when r is closer to the reverse beginning than other.
func (r Reverse[T]) Less(other Reverse[T]) bool { return other.base.Less(r.base) }

func (r Reverse[T]) Greater(other Reverse[T]) bool { return other.Less(r) }

// ReverseValues yields the elements of [first, last) in reverse order of
// the underlying buffer.
func ReverseValues[T any](first, last Reverse[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := first.base.pos; i > last.base.pos; i-- {
			if !yield(first.base.buf[i-1]) {
				return
			}
		}
	}
}
