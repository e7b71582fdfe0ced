// SPDX-License-Identifier: MIT

package vector

import (
	"cmp"
	"slices"

	"golang.org/x/exp/constraints"
)

// Number is the element constraint of the arithmetic helpers.
type Number interface {
	constraints.Integer | constraints.Float
}

// Equal reports whether a and b have the same size and pairwise equal
// elements in index order.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.Data(), b.Data())
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.Data(), b.Data(), eq)
}

// Compare orders a and b lexicographically; a shorter prefix sorts first.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return slices.Compare(a.Data(), b.Data())
}

// Add returns a new vector holding a[i] + b[i]. The result uses a's
// allocator. Different sizes yield ErrSizeMismatch.
func Add[T Number](a, b *Vector[T]) (*Vector[T], error) {
	return elementwise(ctxAdd, a, b, func(x, y T) T { return x + y })
}

// Sub returns a new vector holding a[i] - b[i].
func Sub[T Number](a, b *Vector[T]) (*Vector[T], error) {
	return elementwise(ctxSub, a, b, func(x, y T) T { return x - y })
}

func elementwise[T Number](method string, a, b *Vector[T], op func(T, T) T) (*Vector[T], error) {
	if a.size != b.size {
		return nil, vectorErrorf(method, b.size, ErrSizeMismatch)
	}
	out, err := NewSized(a.size, WithAllocator(a.allocator()), WithDefaultCapacity[T](a.floor()))
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.size; i++ {
		out.data[i] = op(a.data[i], b.data[i])
	}

	return out, nil
}
