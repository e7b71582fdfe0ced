// SPDX-License-Identifier: MIT

package vector

// DefaultCapacityRef exposes the construction-time capacity floor so tests
// can stub it with gostub.
var DefaultCapacityRef = &defaultCapacity
