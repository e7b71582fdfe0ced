// SPDX-License-Identifier: MIT
// Package matrix: shared validators.
// Every public operation validates through these helpers so that error
// priority (nil -> shape -> squareness) is identical everywhere.

package matrix

import "math"

// validateShape rejects negative dimensions and shapes whose element count
// does not fit in an int.
func validateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return ErrBadShape
	}
	if cols != 0 && rows > math.MaxInt/cols {
		return ErrBadShape
	}
	return nil
}

func validateNotNil[T Number](m *Matrix[T]) error {
	if m == nil {
		return ErrNilMatrix
	}
	return nil
}

// validateSameShape checks both operands are non-nil and have equal dims.
func validateSameShape[T Number](a, b *Matrix[T]) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.rows != b.rows || a.cols != b.cols {
		return ErrDimensionMismatch
	}
	return nil
}

func validateSquare[T Number](m *Matrix[T]) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.rows != m.cols {
		return ErrNonSquare
	}
	return nil
}

// validateMulCompatible checks a.Cols == b.Rows.
func validateMulCompatible[T Number](a, b *Matrix[T]) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.cols != b.rows {
		return ErrDimensionMismatch
	}
	return nil
}
