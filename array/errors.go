// SPDX-License-Identifier: MIT

package array

import "errors"

var (
	// ErrOutOfRange is returned by At and Set for an index outside [0, Size).
	ErrOutOfRange = errors.New("array: index out of range")

	// ErrEmpty is returned by Front and Back on a zero-size array.
	ErrEmpty = errors.New("array: empty array")

	// ErrSizeMismatch is returned by Swap for arrays of different sizes.
	ErrSizeMismatch = errors.New("array: size mismatch")
)
