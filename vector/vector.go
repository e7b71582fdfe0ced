// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"iter"
	"math"

	"github.com/katalvlaran/fdt/alloc"
	"github.com/katalvlaran/fdt/iterator"
)

// ---------- error context tags ----------

const (
	ctxAt          = "At"
	ctxSet         = "Set"
	ctxResize      = "Resize"
	ctxReserve     = "Reserve"
	ctxPopBack     = "PopBack"
	ctxFront       = "Front"
	ctxBack        = "Back"
	ctxNewSized    = "NewSized"
	ctxAdd         = "Add"
	ctxSub         = "Sub"
	ctxShrinkToFit = "ShrinkToFit"
)

// vectorErrorf wraps err with the method tag and the offending argument.
func vectorErrorf(method string, arg int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, arg, err)
}

// Vector is a growable array.
//   - data has len == capacity; slots past size hold the zero value.
//   - size counts live elements.
//   - alloc owns data; defCap is the capacity floor used on growth.
//
// The zero Vector is empty, has capacity 0 and uses the heap allocator.
type Vector[T any] struct {
	data   []T
	size   int
	alloc  alloc.Allocator[T]
	defCap int
}

var _ fmt.Stringer = (*Vector[int])(nil)

// New returns an empty vector holding a DefaultCapacity buffer.
func New[T any](opts ...Option[T]) (*Vector[T], error) {
	o := gatherOptions(opts...)
	v := &Vector[T]{alloc: o.alloc, defCap: o.defCap}
	if err := v.reallocate(o.defCap); err != nil {
		return nil, err
	}

	return v, nil
}

// NewSized returns a vector of n zero values in a buffer of
// defCap+n slots, so the first append after construction does not reallocate.
// Negative n yields ErrOutOfRange.
func NewSized[T any](n int, opts ...Option[T]) (*Vector[T], error) {
	if n < 0 {
		return nil, vectorErrorf(ctxNewSized, n, ErrOutOfRange)
	}
	o := gatherOptions(opts...)
	v := &Vector[T]{alloc: o.alloc, defCap: o.defCap}
	if err := v.reallocate(o.defCap + n); err != nil {
		return nil, err
	}
	var zero T
	for ; v.size < n; v.size++ {
		v.allocator().Construct(v.data, v.size, zero)
	}

	return v, nil
}

// NewFrom copies values, in order, into a buffer of defCap+len(values) slots.
func NewFrom[T any](values []T, opts ...Option[T]) (*Vector[T], error) {
	o := gatherOptions(opts...)
	v := &Vector[T]{alloc: o.alloc, defCap: o.defCap}
	if err := v.reallocate(o.defCap + len(values)); err != nil {
		return nil, err
	}
	for _, x := range values {
		v.allocator().Construct(v.data, v.size, x)
		v.size++
	}

	return v, nil
}

// MustOf is NewFrom on the heap allocator. It panics on error and is meant
// for tests and examples.
func MustOf[T any](values ...T) *Vector[T] {
	v, err := NewFrom(values)
	if err != nil {
		panic(err)
	}
	return v
}

func (v *Vector[T]) allocator() alloc.Allocator[T] {
	if v.alloc == nil {
		v.alloc = alloc.NewHeap[T]()
	}
	return v.alloc
}

func (v *Vector[T]) floor() int {
	if v.defCap <= 0 {
		return defaultCapacity
	}
	return v.defCap
}

// reallocate moves the live elements into a fresh buffer of exactly n slots
// (n >= size) and returns the old one to the allocator.
// Implementation:
//   - Stage 1: Allocate(n); on failure return the error with v untouched.
//   - Stage 2: Construct each live element into the new buffer.
//   - Stage 3: Deallocate the old buffer. The moved elements are not
//     destroyed: ownership travelled with them.
//
// Complexity:
//   - Time O(size), Space O(n).
func (v *Vector[T]) reallocate(n int) error {
	a := v.allocator()
	buf, err := a.Allocate(n)
	if err != nil {
		return err
	}
	for i := 0; i < v.size; i++ {
		a.Construct(buf, i, v.data[i])
	}
	if v.data != nil {
		a.Deallocate(v.data)
	}
	v.data = buf

	return nil
}

// growFor makes room for one more element.
func (v *Vector[T]) growFor() error {
	c := len(v.data)
	if v.size+1 < c {
		return nil
	}
	return v.reallocate(max(c*2, v.size+2, v.floor()))
}

// Clone returns a deep copy with the same capacity and allocator.
// Allocation failures are returned as is.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	a := v.allocator()
	buf, err := a.Allocate(len(v.data))
	if err != nil {
		return nil, err
	}
	for i := 0; i < v.size; i++ {
		a.Construct(buf, i, v.data[i])
	}

	return &Vector[T]{data: buf, size: v.size, alloc: a, defCap: v.defCap}, nil
}

// Move transfers the buffer to a new Vector. The receiver is left empty with
// capacity 0; it stays usable and its next append allocates a fresh buffer.
func (v *Vector[T]) Move() *Vector[T] {
	out := &Vector[T]{data: v.data, size: v.size, alloc: v.allocator(), defCap: v.defCap}
	v.data, v.size = nil, 0

	return out
}

// Assign replaces the contents of v with a deep copy of other. On error v is
// unchanged.
func (v *Vector[T]) Assign(other *Vector[T]) error {
	if v == other {
		return nil
	}
	c, err := other.Clone()
	if err != nil {
		return err
	}
	v.Swap(c)
	c.Release()

	return nil
}

// Release destroys the live elements and returns the buffer to the
// allocator. Calling it again is a no-op.
func (v *Vector[T]) Release() {
	if v.data == nil {
		return
	}
	v.destroyRange(0, v.size)
	v.allocator().Deallocate(v.data)
	v.data, v.size = nil, 0
}

func (v *Vector[T]) destroyRange(from, to int) {
	a := v.allocator()
	for i := from; i < to; i++ {
		a.Destroy(v.data, i)
	}
}

// ---------- element access ----------

// At returns the element at i or ErrOutOfRange.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, vectorErrorf(ctxAt, i, ErrOutOfRange)
	}
	return v.data[i], nil
}

// Set overwrites the element at i or returns ErrOutOfRange.
func (v *Vector[T]) Set(i int, x T) error {
	if i < 0 || i >= v.size {
		return vectorErrorf(ctxSet, i, ErrOutOfRange)
	}
	v.data[i] = x
	return nil
}

// Get returns the element at i without checking against Size.
func (v *Vector[T]) Get(i int) T { return v.data[i] }

// Ref returns a pointer to slot i without checking against Size. The pointer
// dangles after the next reallocation.
func (v *Vector[T]) Ref(i int) *T { return &v.data[i] }

func (v *Vector[T]) Front() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, vectorErrorf(ctxFront, 0, ErrEmpty)
	}
	return v.data[0], nil
}

func (v *Vector[T]) Back() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, vectorErrorf(ctxBack, 0, ErrEmpty)
	}
	return v.data[v.size-1], nil
}

// Data returns the live elements. The slice aliases the buffer and is
// invalidated by reallocation.
func (v *Vector[T]) Data() []T { return v.data[:v.size:v.size] }

func (v *Vector[T]) Size() int { return v.size }

func (v *Vector[T]) Capacity() int { return len(v.data) }

func (v *Vector[T]) Empty() bool { return v.size == 0 }

// ---------- modifiers ----------

// PushBack appends x, growing first when Size+1 >= Capacity.
// On allocation failure v is unchanged.
//
// Complexity:
//   - Amortized O(1); O(Size) when the buffer grows.
func (v *Vector[T]) PushBack(x T) error {
	if err := v.growFor(); err != nil {
		return err
	}
	v.allocator().Construct(v.data, v.size, x)
	v.size++

	return nil
}

// EmplaceBack constructs a zero element in place, lets init fill it, and
// returns a pointer to it. A nil init leaves the zero value.
func (v *Vector[T]) EmplaceBack(init func(*T)) (*T, error) {
	if err := v.growFor(); err != nil {
		return nil, err
	}
	var zero T
	v.allocator().Construct(v.data, v.size, zero)
	p := &v.data[v.size]
	if init != nil {
		init(p)
	}
	v.size++

	return p, nil
}

// PopBack destroys the last element. It returns ErrEmpty on an empty vector.
func (v *Vector[T]) PopBack() error {
	if v.size == 0 {
		return vectorErrorf(ctxPopBack, 0, ErrEmpty)
	}
	v.size--
	v.allocator().Destroy(v.data, v.size)

	return nil
}

// Reserve ensures Capacity() >= n, reallocating to exactly n slots if needed.
// Strong guarantee: on failure v is unchanged.
func (v *Vector[T]) Reserve(n int) error {
	if n < 0 {
		return vectorErrorf(ctxReserve, n, ErrOutOfRange)
	}
	if n <= len(v.data) {
		return nil
	}
	return v.reallocate(n)
}

// Resize sets Size to n.
// Implementation:
//   - n <= Size: destroy the tail [n, Size).
//   - n > Size: Reserve(2n), or Reserve(n) when 2n overflows, then construct
//     zero values in [Size, n).
//
// Errors:
//   - ErrOutOfRange for negative n; allocator errors from Reserve.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		return vectorErrorf(ctxResize, n, ErrOutOfRange)
	}
	if n <= v.size {
		v.destroyRange(n, v.size)
		v.size = n
		return nil
	}
	want := n
	if n <= math.MaxInt/2 {
		want = 2 * n
	}
	if err := v.Reserve(want); err != nil {
		return err
	}
	var zero T
	for ; v.size < n; v.size++ {
		v.allocator().Construct(v.data, v.size, zero)
	}

	return nil
}

// ShrinkToFit reallocates to exactly Size slots.
func (v *Vector[T]) ShrinkToFit() error {
	if len(v.data) == v.size {
		return nil
	}
	if err := v.reallocate(v.size); err != nil {
		return fmt.Errorf("Vector.%s: %w", ctxShrinkToFit, err)
	}
	return nil
}

// Clear destroys every element and keeps the buffer.
func (v *Vector[T]) Clear() {
	v.destroyRange(0, v.size)
	v.size = 0
}

// Swap exchanges the complete state of v and other, allocators included.
func (v *Vector[T]) Swap(other *Vector[T]) {
	*v, *other = *other, *v
}

// ---------- iteration ----------

// Begin returns a cursor at the first element.
func (v *Vector[T]) Begin() iterator.RandomAccess[T] { return iterator.New(v.data, 0) }

// End returns the past-the-last cursor.
func (v *Vector[T]) End() iterator.RandomAccess[T] { return iterator.New(v.data, v.size) }

// RBegin returns a reverse cursor at the last element.
func (v *Vector[T]) RBegin() iterator.Reverse[T] { return iterator.MakeReverse(v.End()) }

// REnd returns the reverse past-the-front cursor.
func (v *Vector[T]) REnd() iterator.Reverse[T] { return iterator.MakeReverse(v.Begin()) }

// All yields index/element pairs front to back.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// Values yields the elements front to back.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.data[i]) {
				return
			}
		}
	}
}

// Backward yields index/element pairs back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// String formats the live elements like a slice: [1 2 3].
func (v *Vector[T]) String() string {
	return fmt.Sprint(v.Data())
}
