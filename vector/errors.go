// SPDX-License-Identifier: MIT

package vector

import "errors"

var (
	// ErrOutOfRange is returned by checked accessors for an index outside [0, Size).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrEmpty is returned by PopBack, Front and Back on an empty vector.
	ErrEmpty = errors.New("vector: empty vector")

	// ErrSizeMismatch is returned by element-wise operations on vectors of
	// different sizes.
	ErrSizeMismatch = errors.New("vector: size mismatch")
)
