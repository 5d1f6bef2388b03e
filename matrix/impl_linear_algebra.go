// SPDX-License-Identifier: MIT

// Package matrix - linear algebra kernels.
//
// Purpose:
//   - Mul / MulVec / Transpose over statically shaped matrices.
//   - Gauss–Jordan inversion (Inverse, InverseWith) and the Solve helpers.
//
// Determinism:
//   - Fixed loop orders (i→j→k), left-to-right accumulation in the left
//     operand's element type. No map iteration, no goroutines.
//
// Complexity quicksheet:
//   - Mul: O(R·K·C); MulVec: O(R·C); Transpose: O(R·C); Inverse: O(N³).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/nmath/dim"
	"github.com/katalvlaran/nmath/scalar"
	"github.com/katalvlaran/nmath/vector"
)

// Mul returns a·b where a is R×K and b is K×C. Mismatched inner dimensions do
// not compile. result[r][c] is the dot product of row r of a with column c of
// b, accumulated in T; b's elements are converted to T first.
// Complexity: O(R·K·C).
func Mul[R, K, C dim.Dim, T, U scalar.Number](a *Matrix[R, K, T], b *Matrix[K, C, U]) *Matrix[R, C, T] {
	out := New[R, C, T]()
	r, k, c := a.Rows(), a.Cols(), b.Cols()
	x, y := a.elems(), b.elems()

	var i, j, p int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			var sum T
			for p = 0; p < k; p++ {
				sum += x[i*k+p] * T(y[p*c+j])
			}
			out.data[i*c+j] = sum
		}
	}

	return out
}

// MulVec returns m·v as a length-R vector.
// Complexity: O(R·C).
func MulVec[R, C dim.Dim, T scalar.Number](m *Matrix[R, C, T], v *vector.Vector[C, T]) *vector.Vector[R, T] {
	out := vector.New[R, T]()
	dst := out.Data()
	for i := range dst {
		dst[i] = m.Row(i).Dot(v)
	}

	return out
}

// Transpose returns a fresh C×R matrix with result[c][r] = m[r][c].
// Complexity: O(R·C).
func (m *Matrix[R, C, T]) Transpose() *Matrix[C, R, T] {
	out := New[C, R, T]()
	r, c := m.Rows(), m.Cols()
	in := m.elems()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[j*r+i] = in[i*c+j]
		}
	}

	return out
}

// Inverse returns m⁻¹ by Gauss–Jordan elimination.
//
// Algorithm (n = N, m and id worked in parallel, id starting as I):
//  1. for i = n−1 … 1: if m[i−1][0] < m[i][0], swap rows i and i−1 in both.
//     One descending sweep; this is the only reordering.
//  2. for each pivot i and each row j ≠ i: t = m[j][i]/m[i][i];
//     m[j] −= t·m[i]; id[j] −= t·id[i] (using the current row i).
//  3. for each i: divide id[i] and m[i] by m[i][i].
//  4. return id.
//
// Singular or badly ordered inputs are not detected: a zero pivot yields ±Inf
// or NaN in the result (integer element types panic on the division).
// InverseWith offers partial pivoting and explicit singularity detection.
//
// Complexity: O(N³) time, O(N²) scratch.
func Inverse[N dim.Dim, T scalar.Number](m *Matrix[N, N, T]) *Matrix[N, N, T] {
	// The default options never produce an error.
	inv, _ := gaussJordan(m, gatherOptions())

	return inv
}

// InverseWith is Inverse with configurable reordering and validation.
// Without options it returns exactly what Inverse returns and a nil error.
//
// Errors:
//   - ErrSingular when WithSingularCheck is set and a pivot is too small.
//   - ErrNaNInf when WithFiniteCheck is set and the result is not finite.
func InverseWith[N dim.Dim, T scalar.Number](m *Matrix[N, N, T], opts ...Option) (*Matrix[N, N, T], error) {
	inv, err := gaussJordan(m, gatherOptions(opts...))
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}

// Solve returns X = a⁻¹·b for the system a·X = b, using Inverse.
func Solve[N, K dim.Dim, T scalar.Number](a *Matrix[N, N, T], b *Matrix[N, K, T]) *Matrix[N, K, T] {
	return Mul(Inverse(a), b)
}

// SolveWith is Solve using InverseWith(a, opts...).
func SolveWith[N, K dim.Dim, T scalar.Number](a *Matrix[N, N, T], b *Matrix[N, K, T], opts ...Option) (*Matrix[N, K, T], error) {
	inv, err := InverseWith(a, opts...)
	if err != nil {
		return nil, err
	}

	return Mul(inv, b), nil
}

// gaussJordan runs the elimination on a copy of src.
// Stage 1 (Reorder): apply the configured pre-pass.
// Stage 2 (Eliminate): clear every off-diagonal entry column by column.
// Stage 3 (Normalise): divide each row pair by its pivot.
// Stage 4 (Validate): optional finite check on the result.
func gaussJordan[N dim.Dim, T scalar.Number](src *Matrix[N, N, T], o options) (*Matrix[N, N, T], error) {
	m := src.Clone()
	id := Identity[N, T]()
	n := m.Rows()

	// Stage 1: descending adjacent-row sweep on the first column.
	if o.pivoting == PivotAdjacentSweep {
		for i := n - 1; i > 0; i-- {
			if m.data[(i-1)*n] < m.data[i*n] {
				swapRows(m.row(i), m.row(i-1))
				swapRows(id.row(i), id.row(i-1))
			}
		}
	}

	// Stage 2: elimination.
	var i, j int
	for i = 0; i < n; i++ {
		if o.pivoting == PivotPartial {
			if p := argMaxAbsBelow(m, i); p != i {
				swapRows(m.row(i), m.row(p))
				swapRows(id.row(i), id.row(p))
			}
		}

		pivot := m.data[i*n+i]
		if o.singularCheck && float64(scalar.Abs(pivot)) <= o.singularEps {
			return nil, fmt.Errorf("pivot %d = %v: %w", i, pivot, ErrSingular)
		}

		mi, idi := m.row(i), id.row(i)
		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			t := m.data[j*n+i] / pivot
			subScaledRow(m.row(j), mi, t)
			subScaledRow(id.row(j), idi, t)
		}
	}

	// Stage 3: scale each pivot to one. Integer elements can drift a pivot
	// after its own elimination step, so the check runs again here.
	for i = 0; i < n; i++ {
		pivot := m.data[i*n+i]
		if o.singularCheck && float64(scalar.Abs(pivot)) <= o.singularEps {
			return nil, fmt.Errorf("pivot %d = %v: %w", i, pivot, ErrSingular)
		}
		divRow(id.row(i), pivot)
		divRow(m.row(i), pivot)
	}

	// Stage 4: optional finite check.
	if o.finiteCheck {
		for k, x := range id.data {
			if !scalar.IsFinite(x) {
				return nil, cellErrorf(ctxAt, k/n, k%n, ErrNaNInf)
			}
		}
	}

	return id, nil
}

// argMaxAbsBelow returns the row p ≥ col with the largest |m[p][col]|.
// Ties keep the lowest row index.
func argMaxAbsBelow[N dim.Dim, T scalar.Number](m *Matrix[N, N, T], col int) int {
	n := m.Rows()
	best, bestAbs := col, scalar.Abs(m.data[col*n+col])
	for j := col + 1; j < n; j++ {
		if a := scalar.Abs(m.data[j*n+col]); a > bestAbs {
			best, bestAbs = j, a
		}
	}

	return best
}
