// SPDX-License-Identifier: MIT

// Package matrix - element-wise arithmetic and tolerance comparison.
//
// Shapes always match in this file: they are fixed by the type parameters.
// In-place forms return the receiver; Sum/Difference/Scaled/Quotient copy
// the left operand and apply the in-place form.

package matrix

import (
	"math"

	"github.com/katalvlaran/nmath/dim"
	"github.com/katalvlaran/nmath/scalar"
)

// Add sets m += o.
// Complexity: O(R·C).
func (m *Matrix[R, C, T]) Add(o *Matrix[R, C, T]) *Matrix[R, C, T] {
	a, b := m.elems(), o.elems()
	for i := range a {
		a[i] += b[i]
	}

	return m
}

// Sub sets m -= o.
// Complexity: O(R·C).
func (m *Matrix[R, C, T]) Sub(o *Matrix[R, C, T]) *Matrix[R, C, T] {
	a, b := m.elems(), o.elems()
	for i := range a {
		a[i] -= b[i]
	}

	return m
}

// MulScalar multiplies every element by c.
func (m *Matrix[R, C, T]) MulScalar(c T) *Matrix[R, C, T] {
	scaleRow(m.elems(), c)

	return m
}

// DivScalar divides every element by c. Each element is divided directly, not
// multiplied by 1/c, so exact quotients stay exact.
func (m *Matrix[R, C, T]) DivScalar(c T) *Matrix[R, C, T] {
	divRow(m.elems(), c)

	return m
}

// AddFrom sets m += T(o) for a matrix of another element type.
func AddFrom[R, C dim.Dim, T, U scalar.Number](m *Matrix[R, C, T], o *Matrix[R, C, U]) *Matrix[R, C, T] {
	a, b := m.elems(), o.elems()
	for i := range a {
		a[i] += T(b[i])
	}

	return m
}

// SubFrom sets m -= T(o) for a matrix of another element type.
func SubFrom[R, C dim.Dim, T, U scalar.Number](m *Matrix[R, C, T], o *Matrix[R, C, U]) *Matrix[R, C, T] {
	a, b := m.elems(), o.elems()
	for i := range a {
		a[i] -= T(b[i])
	}

	return m
}

// Sum returns a + b as a new matrix.
func Sum[R, C dim.Dim, T scalar.Number](a, b *Matrix[R, C, T]) *Matrix[R, C, T] {
	return a.Clone().Add(b)
}

// Difference returns a − b as a new matrix.
func Difference[R, C dim.Dim, T scalar.Number](a, b *Matrix[R, C, T]) *Matrix[R, C, T] {
	return a.Clone().Sub(b)
}

// Scaled returns c·m as a new matrix.
func Scaled[R, C dim.Dim, T scalar.Number](m *Matrix[R, C, T], c T) *Matrix[R, C, T] {
	return m.Clone().MulScalar(c)
}

// Quotient returns m/c as a new matrix.
func Quotient[R, C dim.Dim, T scalar.Number](m *Matrix[R, C, T], c T) *Matrix[R, C, T] {
	return m.Clone().DivScalar(c)
}

// AllClose reports whether |a−b| ≤ atol + rtol·|b| holds element-wise.
// NaN never compares close; equal infinities do. Negative tolerances are
// taken by magnitude.
// Complexity: O(R·C).
func AllClose[R, C dim.Dim, T scalar.Number](a, b *Matrix[R, C, T], rtol, atol float64) bool {
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	x, y := a.elems(), b.elems()
	for i := range x {
		av, bv := float64(x[i]), float64(y[i])
		if math.IsNaN(av) || math.IsNaN(bv) {
			return false
		}
		if math.IsInf(av, 0) || math.IsInf(bv, 0) {
			if av != bv {
				return false
			}
			continue
		}
		if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
			return false
		}
	}

	return true
}

// MaxAbsDiff returns max |a[i][j] − b[i][j]| in float64.
// NaN elements propagate to the result.
func MaxAbsDiff[R, C dim.Dim, T scalar.Number](a, b *Matrix[R, C, T]) float64 {
	x, y := a.elems(), b.elems()
	var worst float64
	for i := range x {
		d := math.Abs(float64(x[i]) - float64(y[i]))
		if math.IsNaN(d) {
			return d
		}
		if d > worst {
			worst = d
		}
	}

	return worst
}
