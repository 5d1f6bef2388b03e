// SPDX-License-Identifier: MIT

// Package dim carries vector and matrix dimensions in the type system.
//
// Go has no integer type parameters, so a dimension is a zero-size type whose
// Len method reports its extent:
//
//	var v vector.Vector[dim.D3, float64] // three elements
//	var m matrix.Matrix[dim.D4, dim.D1, float64]
//
// Because the dimension is part of the type, operations that require matching
// or square shapes (addition, multiplication, identity, inversion) fail to
// compile when the shapes disagree. D1 through D16 are predeclared; callers
// that need another size declare their own:
//
//	type D24 struct{}
//
//	func (D24) Len() int { return 24 }
//
// The package also defines Axis, the {X, Y, Z} tag used as an alternative index
// into vectors of three or more elements.
package dim
