// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a contiguous row-major buffer with the explicit index formula r*cols + c.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep storage behind an alloc.Allocator so callers choose heap, mmap or a budget.
//
// Complexity quicksheet:
//   - New: O(r*c) construction; At/Set/Get: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"iter"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/fdt/alloc"
	"github.com/katalvlaran/fdt/iterator"
)

// Number is the element constraint of Matrix.
type Number interface {
	constraints.Integer | constraints.Float
}

// ---------- error context tags ----------

const (
	ctxAt            = "At"
	ctxSet           = "Set"
	ctxNew           = "New"
	ctxNewFromValues = "NewFromValues"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Matrix context and callsite indices.
// Implementation:
//   - Stage 1: format "Matrix.<method>(row,col): %w".
//
// Notes:
//   - Wrap at the nearest detection site for precise coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a dense row-major matrix. The zero value is an empty 0×0 matrix
// on the heap allocator.
//   - rows, cols hold dimensions (>= 0).
//   - data has exactly rows*cols constructed elements (offset = r*cols + c).
//   - alloc owns data; data is released once by Release.
type Matrix[T Number] struct {
	rows, cols int
	data       []T
	alloc      alloc.Allocator[T]
}

var _ fmt.Stringer = (*Matrix[float64])(nil)

func (m *Matrix[T]) allocator() alloc.Allocator[T] {
	if m.alloc == nil {
		m.alloc = alloc.NewHeap[T]()
	}
	return m.alloc
}

// newMatrix allocates rows*cols slots and constructs every one with v.
func newMatrix[T Number](rows, cols int, v T, a alloc.Allocator[T]) (*Matrix[T], error) {
	buf, err := a.Allocate(rows * cols)
	if err != nil {
		return nil, err
	}
	for i := range buf {
		a.Construct(buf, i, v)
	}

	return &Matrix[T]{rows: rows, cols: cols, data: buf, alloc: a}, nil
}

// New creates a rows×cols zero matrix.
// Implementation:
//   - Stage 1: validate rows >= 0 && cols >= 0; else ErrBadShape.
//   - Stage 2: allocate rows*cols slots from the configured allocator.
//   - Stage 3: construct every slot with the zero value.
//
// Errors:
//   - ErrBadShape (negative dimension).
//   - Allocator errors, unchanged (alloc.ErrOutOfMemory).
//
// Notes:
//   - 0×n and n×0 are legal and Empty.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T Number](rows, cols int, opts ...Option[T]) (*Matrix[T], error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, denseErrorf(ctxNew, rows, cols, err)
	}
	o := gatherOptions(opts...)

	return newMatrix(rows, cols, 0, o.alloc)
}

// NewFilled creates a rows×cols matrix with every element set to v.
func NewFilled[T Number](rows, cols int, v T, opts ...Option[T]) (*Matrix[T], error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, denseErrorf(ctxNew, rows, cols, err)
	}
	o := gatherOptions(opts...)

	return newMatrix(rows, cols, v, o.alloc)
}

// NewFromValues creates a rows×cols matrix from row-major values.
// The literal must hold exactly rows*cols values; otherwise ErrOutOfRange.
func NewFromValues[T Number](rows, cols int, values []T, opts ...Option[T]) (*Matrix[T], error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, denseErrorf(ctxNewFromValues, rows, cols, err)
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("Matrix.%s(%d,%d): got %d values: %w", ctxNewFromValues, rows, cols, len(values), ErrOutOfRange)
	}
	o := gatherOptions(opts...)
	m, err := newMatrix(rows, cols, 0, o.alloc)
	if err != nil {
		return nil, err
	}
	for i, v := range values {
		m.alloc.Construct(m.data, i, v)
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
func Identity[T Number](n int, opts ...Option[T]) (*Matrix[T], error) {
	m, err := New(n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.cols }

// Size returns (rows, cols).
func (m *Matrix[T]) Size() (rows, cols int) { return m.rows, m.cols }

// Empty reports whether the matrix holds no elements.
func (m *Matrix[T]) Empty() bool { return m.rows*m.cols == 0 }

// Data returns the row-major backing slice. Writes go straight to the matrix.
func (m *Matrix[T]) Data() []T { return m.data }

// Fill sets every element to v.
func (m *Matrix[T]) Fill(v T) {
	for i := range m.data {
		m.data[i] = v
	}
}

// indexOf validates (row, col) and returns the flat offset.
func (m *Matrix[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	return row*m.cols + col, nil
}

// At returns the element at (row, col).
// Errors:
//   - ErrOutOfRange if row ∉ [0, rows) or col ∉ [0, cols).
func (m *Matrix[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set writes v at (row, col) or returns ErrOutOfRange.
func (m *Matrix[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

// Get returns the element at (row, col) with no bounds check on the pair;
// an offset outside the buffer panics, one inside it aliases another cell.
func (m *Matrix[T]) Get(row, col int) T { return m.data[m.cols*row+col] }

// Ref returns a pointer to the element at (row, col). Unchecked like Get.
func (m *Matrix[T]) Ref(row, col int) *T { return &m.data[m.cols*row+col] }

// Clone returns a deep copy using the same allocator.
func (m *Matrix[T]) Clone() (*Matrix[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, err
	}
	out, err := newMatrix(m.rows, m.cols, 0, m.allocator())
	if err != nil {
		return nil, err
	}
	copy(out.data, m.data)

	return out, nil
}

// Swap exchanges the complete state of m and other.
func (m *Matrix[T]) Swap(other *Matrix[T]) {
	*m, *other = *other, *m
}

// Release returns the storage to the allocator. The matrix becomes 0×0.
// Calling it again is a no-op.
func (m *Matrix[T]) Release() {
	if m.data == nil {
		return
	}
	m.allocator().Deallocate(m.data)
	m.data, m.rows, m.cols = nil, 0, 0
}

// Begin returns a cursor at the first element in row-major order.
func (m *Matrix[T]) Begin() iterator.RandomAccess[T] { return iterator.New(m.data, 0) }

// End returns the past-the-last cursor.
func (m *Matrix[T]) End() iterator.RandomAccess[T] { return iterator.New(m.data, len(m.data)) }

// All yields (flat offset, element) pairs in row-major order.
func (m *Matrix[T]) All() iter.Seq2[int, T] {
	return iterator.All(m.Begin(), m.End())
}

// String returns a multi-line representation, one bracketed row per line.
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.rows; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.cols
		for j = 0; j < m.cols; j++ {
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
