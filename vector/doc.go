// SPDX-License-Identifier: MIT

// Package vector implements Vector, a growable contiguous array whose
// storage comes from an alloc.Allocator.
//
// Storage model:
//   - data holds capacity slots obtained from one Allocate call.
//   - slots [0, Size) are live; slots [Size, Capacity) are unconstructed and
//     always hold the zero value.
//   - the buffer is released exactly once, by Release or by the reallocation
//     that replaces it.
//
// Growth:
//   - appends grow the buffer when Size+1 >= Capacity; the new capacity is
//     max(2*Capacity, Size+2, default capacity), so N appends reallocate
//     O(log N) times.
//   - any growth invalidates cursors from Begin/End/RBegin/REnd.
//
// Errors:
//   - checked accessors return ErrOutOfRange, underflow returns ErrEmpty,
//     element-wise arithmetic on different sizes returns ErrSizeMismatch;
//     allocator failures (alloc.ErrOutOfMemory) are returned unchanged.
//   - Get and Ref are unchecked and panic outside [0, Size).
//
// A Vector is not safe for concurrent use.
package vector
