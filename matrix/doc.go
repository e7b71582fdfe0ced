// SPDX-License-Identifier: MIT

// Package matrix provides Matrix, a dense row-major matrix of numbers whose
// storage comes from an alloc.Allocator, together with the classic
// linear-algebra kernels over it.
//
// The package provides:
//
//   - Construction: New (zeros), NewFilled, NewFromValues, Identity.
//   - Safe accessors At/Set returning ErrOutOfRange, and unchecked Get/Ref.
//   - Determinant by Gaussian elimination with partial pivoting, computed in
//     float64 whatever the element type. A singular matrix yields 0, not an
//     error; a non-square one yields ErrNonSquare.
//   - Transpose, Add, Sub, Mul and in-place AddInPlace/SubInPlace.
//
// Dimensions are runtime values, so shape agreement between operands is
// checked at run time and reported as ErrDimensionMismatch.
//
// Element (r, c) lives at offset cols*r + c of Data().
package matrix
