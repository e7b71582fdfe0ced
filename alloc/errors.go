// SPDX-License-Identifier: MIT

package alloc

import "errors"

var (
	// ErrOutOfMemory is returned when an allocation cannot be satisfied.
	// Containers propagate it unchanged; match with errors.Is.
	ErrOutOfMemory = errors.New("alloc: out of memory")

	// ErrNegativeSize is returned by Allocate for n < 0.
	ErrNegativeSize = errors.New("alloc: negative slot count")

	// ErrPointerType is returned by NewMmap when T holds Go pointers.
	ErrPointerType = errors.New("alloc: element type contains pointers")

	// ErrZeroSize is returned by NewMmap for zero-sized element types.
	ErrZeroSize = errors.New("alloc: zero-sized element type")

	// ErrUnknownKind is returned by Build for an unsupported Config.Kind.
	ErrUnknownKind = errors.New("alloc: unknown allocator kind")

	// ErrBadConfig is returned when a profile fails validation.
	ErrBadConfig = errors.New("alloc: invalid config")
)
