// SPDX-License-Identifier: MIT

// Package array provides Array, a fixed-size contiguous array. The size is
// chosen at construction and never changes; storage comes from an
// alloc.Allocator and is returned by Release.
package array
