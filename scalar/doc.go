// SPDX-License-Identifier: MIT

// Package scalar defines the element model shared by vectors and matrices.
//
// An element type is any signed integer or binary floating-point type. The
// packages built on top of it need only the field operations (+ − × ÷),
// equality, ordering, the literals zero and one, and a square root used by
// vector magnitude. Everything here is a thin generic helper so that the same
// algebra compiles for float32 (the default element type) and float64 without
// source changes beyond the type argument.
//
// Numeric failures are never reported as errors at this layer: division by zero
// and square roots of negative values follow the element type (Inf/NaN for
// floats, a runtime panic for integer division).
package scalar
