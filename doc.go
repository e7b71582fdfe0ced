// SPDX-License-Identifier: MIT

// Package fdt is a collection of generic, allocator-aware containers.
//
// Every container obtains its storage through an alloc.Allocator, so the same
// code runs on the Go heap, on anonymous mmap regions, under a slot budget,
// or behind logging and Prometheus decorators chosen by a TOML profile.
//
// Packages:
//
//	alloc/        allocator capability, heap/mmap backends, decorators, profiles
//	iterator/     random-access and reverse cursors over contiguous buffers
//	vector/       growable array with doubling growth and element-wise arithmetic
//	matrix/       dense row-major matrix, determinant by partial-pivot elimination
//	array/        fixed-size array
//	list/         doubly linked list
//	forwardlist/  singly linked list
//	stack/, queue/ LIFO and FIFO adaptors over any fitting container
//	str/          byte string on top of vector
//	utility/      Pair and nil checks
//
// Quick example:
//
//	a, _ := alloc.Build[int](alloc.Config{Kind: alloc.KindHeap, MaxSlots: 1 << 16})
//	v, _ := vector.New[int](vector.WithAllocator(a))
//	_ = v.PushBack(42)
//
// The cmd/fdt-probe tool runs a profile end to end and prints its metrics.
package fdt
