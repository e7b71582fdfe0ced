// SPDX-License-Identifier: MIT

// Package list implements List, a doubly linked list whose nodes are
// obtained one at a time from an alloc.Allocator[Node[T]].
//
// Iterators stay valid across insertions and across erasure of other
// nodes; erasing a node invalidates only iterators to it. End() is a
// sentinel that compares equal to any iterator that walked past the tail.
package list
