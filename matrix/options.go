// SPDX-License-Identifier: MIT

// Package matrix: functional configuration.
//   - Option[T] configures construction (storage allocator).
//   - DetOption configures Determinant (singularity threshold).
//
// Constructors panic only on nonsensical values (programmer error).

package matrix

import (
	"math"

	"github.com/katalvlaran/fdt/alloc"
)

// ---------- Defaults (single source of truth) ----------

// DefaultEpsilon is the pivot magnitude below which Determinant declares the
// matrix singular and returns 0.
const DefaultEpsilon = 1e-30

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicNilAllocator   = "matrix: WithAllocator: allocator must not be nil"
)

// Option configures a Matrix at construction.
type Option[T Number] func(*options[T])

type options[T Number] struct {
	alloc alloc.Allocator[T]
}

// WithAllocator sets the allocator backing the matrix storage.
// Panics on a nil allocator.
func WithAllocator[T Number](a alloc.Allocator[T]) Option[T] {
	if a == nil {
		panic(panicNilAllocator)
	}
	return func(o *options[T]) { o.alloc = a }
}

func gatherOptions[T Number](user ...Option[T]) options[T] {
	o := options[T]{alloc: alloc.NewHeap[T]()}
	for _, set := range user {
		set(&o) // last-writer-wins
	}
	return o
}

// DetOption tunes Determinant.
type DetOption func(*detOptions)

type detOptions struct {
	eps float64
}

// WithEpsilon sets the singularity threshold used by Determinant.
// Implementation:
//   - Stage 1: validate eps is finite and >= 0.
//   - Stage 2: return a setter writing eps.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Notes:
//   - The default 1e-30 only catches exact or near-exact zero pivots.
//     Noisy float data may want something like 1e-12.
func WithEpsilon(eps float64) DetOption {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}
	return func(o *detOptions) { o.eps = eps }
}

func gatherDetOptions(user ...DetOption) detOptions {
	o := detOptions{eps: DefaultEpsilon}
	for _, set := range user {
		set(&o)
	}
	return o
}
