// SPDX-License-Identifier: MIT

package list

import "errors"

// ErrEmpty is returned by PopFront, PopBack, Front and Back on an empty list.
var ErrEmpty = errors.New("list: empty list")
