// SPDX-License-Identifier: MIT

// Package alloc defines the allocator capability used by every fdt container.
//
// A container never calls make directly for its element storage. It asks an
// Allocator[T] for a buffer of n slots, writes live elements with Construct,
// retires them with Destroy and hands the buffer back exactly once with
// Deallocate, either on reallocation or on Release.
//
// Implementations:
//
//   - Heap:    stateless, backed by the Go heap (the default everywhere).
//   - Mmap:    anonymous memory mappings; only for pointer-free element types.
//
// Decorators (wrap any Allocator):
//
//   - Limited: slot budget; returns ErrOutOfMemory once exhausted.
//   - Logged:  zap debug/warn records for every call.
//   - Metered: Prometheus counters and gauges.
//
// Profiles can be described in TOML and assembled with Build:
//
//	cfg, _ := alloc.ParseConfig([]byte(`kind = "mmap"
//	max_slots = 1048576`))
//	a, _ := alloc.Build[int64](cfg)
//
// Allocators are not safe for concurrent use unless stated otherwise; a
// container and its allocator are owned by one goroutine at a time.
package alloc
