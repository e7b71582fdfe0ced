// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels over Matrix:
// determinant, transpose, element-wise addition and subtraction, in-place
// variants and multiplication. All functions perform strict fail-fast
// validation and return wrapped sentinels on mismatches.

package matrix

import (
	"fmt"
	"math"
	"slices"
)

// Operation name constants for unified error wrapping.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opAddInPlace  = "AddInPlace"
	opSubInPlace  = "SubInPlace"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opDeterminant = "Determinant"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Determinant computes det(m) by Gaussian elimination with partial pivoting.
// Implementation:
//   - Stage 1: copy m into a float64 working buffer (element-wise cast).
//   - Stage 2: for each pivot column i in [0, n-2]:
//     a) pick the row r >= i with the largest |w[r][i]|;
//     b) if r != i swap rows i and r and negate the running sign;
//     c) if |w[i][i]| < eps the matrix is singular: return 0;
//     d) eliminate column i from every row below i (columns >= i only);
//     e) multiply the running determinant by the pivot.
//   - Stage 3: multiply by the last diagonal element w[n-1][n-1].
//
// Behavior highlights:
//   - Integer matrices are computed in float64, never truncated mid-way.
//   - Singularity is a result (0), not an error.
//   - The receiver is not mutated.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (wrapped with "Determinant").
//
// Notes:
//   - A 0×0 matrix has determinant 1 (empty product).
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for the working copy.
func (m *Matrix[T]) Determinant(opts ...DetOption) (float64, error) {
	if err := validateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	n := m.rows
	if n == 0 {
		return 1, nil
	}
	o := gatherDetOptions(opts...)

	w := make([]float64, n*n)
	for i, v := range m.data {
		w[i] = float64(v)
	}

	det := 1.0
	var (
		i, r, s, c int
		best, a    float64
		pivot, f   float64
		rowI, rowS []float64
	)
	for i = 0; i < n-1; i++ {
		// partial pivoting
		r, best = i, math.Abs(w[i*n+i])
		for s = i + 1; s < n; s++ {
			if a = math.Abs(w[s*n+i]); a > best {
				r, best = s, a
			}
		}
		if r != i {
			for c = 0; c < n; c++ {
				w[i*n+c], w[r*n+c] = w[r*n+c], w[i*n+c]
			}
			det = -det
		}

		pivot = w[i*n+i]
		if math.Abs(pivot) < o.eps {
			return 0, nil
		}

		rowI = w[i*n : (i+1)*n]
		for s = i + 1; s < n; s++ {
			rowS = w[s*n : (s+1)*n]
			f = rowS[i] / pivot
			for c = i; c < n; c++ {
				rowS[c] -= f * rowI[c]
			}
		}
		det *= pivot
	}

	return det * w[n*n-1], nil
}

// Transpose returns a new cols×rows matrix with out(j, i) = m(i, j).
// The result uses m's allocator; m is not mutated.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Matrix[T]) Transpose() (*Matrix[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.rows, m.cols
	res, err := newMatrix(cols, rows, 0, m.allocator())
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return res, nil
}

// addSub computes out = a + sign*b element-wise into a fresh matrix
// allocated from a's allocator.
func addSub[T Number](a, b *Matrix[T], negate bool, opTag string) (*Matrix[T], error) {
	if err := validateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, err := newMatrix(a.rows, a.cols, 0, a.allocator())
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if negate {
		for i := range res.data {
			res.data[i] = a.data[i] - b.data[i]
		}
	} else {
		for i := range res.data {
			res.data[i] = a.data[i] + b.data[i]
		}
	}

	return res, nil
}

// Add computes the element-wise sum a + b.
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, allocator errors; all wrapped with "Add".
func Add[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return addSub(a, b, false, opAdd) }

// Sub computes the element-wise difference a - b.
func Sub[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return addSub(a, b, true, opSub) }

// AddInPlace performs m += b.
func (m *Matrix[T]) AddInPlace(b *Matrix[T]) error {
	if err := validateSameShape(m, b); err != nil {
		return matrixErrorf(opAddInPlace, err)
	}
	for i := range m.data {
		m.data[i] += b.data[i]
	}
	return nil
}

// SubInPlace performs m -= b.
func (m *Matrix[T]) SubInPlace(b *Matrix[T]) error {
	if err := validateSameShape(m, b); err != nil {
		return matrixErrorf(opSubInPlace, err)
	}
	for i := range m.data {
		m.data[i] -= b.data[i]
	}
	return nil
}

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: validate A, B non-nil and A.Cols == B.Rows.
//   - Stage 2: i→k→j loops over row-major strides, skipping zero A[i,k].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := validateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.rows, a.cols, b.cols
	res, err := newMatrix(aRows, bCols, 0, a.allocator())
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k                            int
		av                                 T
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Equal reports whether a and b have the same shape and equal elements.
// Two nil matrices are equal.
func Equal[T Number](a, b *Matrix[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.rows == b.rows && a.cols == b.cols && slices.Equal(a.data, b.data)
}
