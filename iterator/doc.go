// SPDX-License-Identifier: MIT

// Package iterator provides cursors over contiguous buffers owned by fdt
// containers.
//
// A RandomAccess cursor is a (buffer, position) pair. It does not own the
// buffer and is invalidated by any reallocation of the container it came
// from: after a vector grows, an old cursor keeps reading the abandoned
// buffer. Reverse adapts a RandomAccess cursor to walk toward the front,
// dereferencing the element just before its base.
//
// Cursors are values: Next, Prev and Advance return a moved copy.
//
//	for it := v.Begin(); !it.Equal(v.End()); it = it.Next() {
//		fmt.Println(it.Value())
//	}
//
// Values and All turn a [first, last) range into a range-over-func sequence.
package iterator
