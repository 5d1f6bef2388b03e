// SPDX-License-Identifier: MIT

// Package matrix provides statically sized dense matrices and the operations
// needed to solve small linear systems.
//
// 🚀 What is in here?
//
//	A Matrix[R, C, T] is an R×C array of T stored contiguously in row-major
//	order (offset = i*C + j). Dimensions are dim.Dim type parameters, so:
//	  • Add/Sub require identical shapes,
//	  • Mul[R, K, C] requires the inner dimensions to agree,
//	  • Identity and Inverse accept only Matrix[N, N, T],
//	and every violation is a compile error rather than a runtime check.
//
// ✨ Key features:
//   - element, row (no-copy view) and column (copy) access
//   - row operations: RowSwap, RowAdd, RowSub, RowMult, RowDiv (chainable)
//   - element-wise Add/Sub, scalar MulScalar/DivScalar, Mul, MulVec, Transpose
//   - Gauss–Jordan Inverse with a single descending adjacent-row pre-pass
//   - InverseWith: the same routine with opt-in partial pivoting and
//     singularity detection
//   - AllClose / MaxAbsDiff for tolerance-based comparison
//
// ⚙️ Usage:
//
//	a := matrix.Of[dim.D2, dim.D2]([]float64{2, 1}, []float64{1, 3})
//	b := matrix.Of[dim.D2, dim.D1]([]float64{3}, []float64{5})
//	x := matrix.Mul(matrix.Inverse(a), b)
//	fmt.Println(x) // [<0.8>, <1.4>] up to rounding
//
// Errors:
//
//	Indexing outside the declared shape is a programmer error and panics with
//	an error wrapping ErrOutOfRange; Get reports it as an error instead.
//	Numeric failures inside Inverse (a zero pivot, a singular input) are not
//	detected: they surface as ±Inf/NaN in the result, exactly as the element
//	type produces them. Use InverseWith(WithSingularCheck(eps)) to get
//	ErrSingular instead.
//
// Concurrency:
//
//	Matrices carry no hidden shared state. Distinct instances may be used from
//	different goroutines; a single instance needs external synchronisation
//	for any mutating call.
package matrix
