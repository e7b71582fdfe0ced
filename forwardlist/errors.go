// SPDX-License-Identifier: MIT

package forwardlist

import "errors"

var (
	// ErrEmpty is returned by PopFront, Front and Back on an empty list.
	ErrEmpty = errors.New("forwardlist: empty list")

	// ErrInvalidPosition is returned when an *After operation is anchored on End.
	ErrInvalidPosition = errors.New("forwardlist: invalid position")
)
