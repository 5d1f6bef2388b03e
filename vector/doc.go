// SPDX-License-Identifier: MIT

// Package vector provides fixed-length vectors over a numeric element type.
//
// A Vector[N, T] stores exactly N = dim.Len[N]() elements of T contiguously.
// The length is part of the type, so mixing vectors of different lengths is a
// compile error. The element type is any scalar.Number; Vec[N] fixes it to the
// default float32.
//
// ⚙️ Usage:
//
//	u := vector.Of[dim.D3](1.0, 2, 3)
//	w := vector.Of[dim.D3](4.0, -5, 6)
//	fmt.Println(u.Dot(w)) // 12
//	fmt.Println(vector.Sum(u, w)) // <5, -3, 9>
//
// Semantics:
//   - Add/Sub/Mult/Div/Normalize mutate the receiver and return it for chaining.
//   - Sum/Difference/Scaled/Quotient copy the left operand and return a fresh vector.
//   - Equality is exact; there is no tolerance.
//   - Numeric failures (division by zero, normalising a zero vector) follow the
//     element type and are not reported.
//   - Out-of-range indices panic with an error wrapping ErrOutOfRange; Get
//     returns that error instead.
//
// Ownership: a Vector owns its buffer, except vectors created by View, which
// alias the caller's slice. Copying a Vector struct value shares the buffer;
// use Clone for an independent copy. The zero Vector is usable and allocates
// its N zero elements on first use.
package vector
