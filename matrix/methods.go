// SPDX-License-Identifier: MIT

// Package matrix - row operations.
// Every operation mutates the receiver in place and returns it for chaining.
// All indices are validated; out-of-range rows panic with ErrOutOfRange.

package matrix

import "github.com/katalvlaran/nmath/scalar"

// RowSwap exchanges rows i and j.
func (m *Matrix[R, C, T]) RowSwap(i, j int) *Matrix[R, C, T] {
	mustRow(ctxRowSwap, i, m.Rows())
	mustRow(ctxRowSwap, j, m.Rows())
	if i != j {
		swapRows(m.row(i), m.row(j))
	}

	return m
}

// RowAdd sets row[into] += row[from].
func (m *Matrix[R, C, T]) RowAdd(into, from int) *Matrix[R, C, T] {
	mustRow(ctxRowAdd, into, m.Rows())
	mustRow(ctxRowAdd, from, m.Rows())
	dst, src := m.row(into), m.row(from)
	for k := range dst {
		dst[k] += src[k]
	}

	return m
}

// RowSub sets row[into] -= row[from].
func (m *Matrix[R, C, T]) RowSub(into, from int) *Matrix[R, C, T] {
	mustRow(ctxRowSub, into, m.Rows())
	mustRow(ctxRowSub, from, m.Rows())
	dst, src := m.row(into), m.row(from)
	for k := range dst {
		dst[k] -= src[k]
	}

	return m
}

// RowMult scales row r by c.
func (m *Matrix[R, C, T]) RowMult(r int, c T) *Matrix[R, C, T] {
	mustRow(ctxRowMult, r, m.Rows())
	scaleRow(m.row(r), c)

	return m
}

// RowDiv divides row r by c. Division by zero follows the element type.
func (m *Matrix[R, C, T]) RowDiv(r int, c T) *Matrix[R, C, T] {
	mustRow(ctxRowDiv, r, m.Rows())
	divRow(m.row(r), c)

	return m
}

// ---------- flat-slice kernels shared with the inversion routine ----------

// swapRows exchanges the contents of two equal-length windows.
func swapRows[T scalar.Number](a, b []T) {
	for k := range a {
		a[k], b[k] = b[k], a[k]
	}
}

func scaleRow[T scalar.Number](a []T, c T) {
	for k := range a {
		a[k] *= c
	}
}

func divRow[T scalar.Number](a []T, c T) {
	for k := range a {
		a[k] /= c
	}
}

// subScaledRow sets dst[k] -= src[k]*t.
func subScaledRow[T scalar.Number](dst, src []T, t T) {
	for k := range dst {
		dst[k] -= src[k] * t
	}
}
