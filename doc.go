// Package nmath is a small linear-algebra core: statically sized vectors and
// matrices over a numeric element type, and the operations needed to solve
// dense linear systems of a few dozen rows.
//
// 🚀 What is inside?
//
//	• scalar/ — element model (Number constraint, Zero/One, Sqrt, Abs, Format)
//	• dim/    — compile-time dimensions (D1…D16) and the X/Y/Z axis tag
//	• vector/ — Vector[N, T]: component-wise arithmetic, Dot, Magnitude, Normalize
//	• matrix/ — Matrix[R, C, T]: row operations, Mul, Transpose, Identity,
//	            Gauss–Jordan Inverse, Solve
//
// ✨ Why this shape?
//
//   - Dimensions are type parameters, so shape mismatches are compile errors.
//   - Storage is one contiguous row-major buffer per value.
//   - Pure Go, no cgo, no goroutines, no global state.
//
// Quick example:
//
//	a := matrix.Of[dim.D2, dim.D2]([]float64{2, 1}, []float64{1, 3})
//	b := matrix.Of[dim.D2, dim.D1]([]float64{3}, []float64{5})
//	fmt.Println(matrix.Solve(a, b))
//
// See examples/linear_system for a runnable 4×4 solve.
//
//	go get github.com/katalvlaran/nmath
package nmath
