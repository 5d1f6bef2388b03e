// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/katalvlaran/nmath/dim"
	"github.com/katalvlaran/nmath/scalar"
)

// ---------- in-place, same element type ----------

// Add sets v[i] += u[i] and returns v.
func (v *Vector[N, T]) Add(u *Vector[N, T]) *Vector[N, T] {
	a, b := v.elems(), u.elems()
	for i := range a {
		a[i] += b[i]
	}

	return v
}

// Sub sets v[i] -= u[i] and returns v.
func (v *Vector[N, T]) Sub(u *Vector[N, T]) *Vector[N, T] {
	a, b := v.elems(), u.elems()
	for i := range a {
		a[i] -= b[i]
	}

	return v
}

// Mult scales every element by c and returns v.
func (v *Vector[N, T]) Mult(c T) *Vector[N, T] {
	a := v.elems()
	for i := range a {
		a[i] *= c
	}

	return v
}

// Div divides every element by c and returns v.
// Division by zero follows the element type.
func (v *Vector[N, T]) Div(c T) *Vector[N, T] {
	a := v.elems()
	for i := range a {
		a[i] /= c
	}

	return v
}

// Dot returns Σ v[i]·u[i], accumulated left to right in T.
func (v *Vector[N, T]) Dot(u *Vector[N, T]) T {
	a, b := v.elems(), u.elems()
	var sum T
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

// Magnitude returns √(Σ v[i]²).
func (v *Vector[N, T]) Magnitude() T {
	return scalar.Sqrt(v.Dot(v))
}

// Normalize divides v by its magnitude in place and returns v.
// A zero vector follows the element type (NaN for floats).
func (v *Vector[N, T]) Normalize() *Vector[N, T] {
	return v.Div(v.Magnitude())
}

// ---------- in-place, mixed element types ----------

// AddFrom sets v[i] += T(u[i]) and returns v.
func AddFrom[N dim.Dim, T, U scalar.Number](v *Vector[N, T], u *Vector[N, U]) *Vector[N, T] {
	a, b := v.elems(), u.elems()
	for i := range a {
		a[i] += T(b[i])
	}

	return v
}

// SubFrom sets v[i] -= T(u[i]) and returns v.
func SubFrom[N dim.Dim, T, U scalar.Number](v *Vector[N, T], u *Vector[N, U]) *Vector[N, T] {
	a, b := v.elems(), u.elems()
	for i := range a {
		a[i] -= T(b[i])
	}

	return v
}

// DotFrom returns Σ v[i]·T(u[i]) in the left operand's element type.
func DotFrom[N dim.Dim, T, U scalar.Number](v *Vector[N, T], u *Vector[N, U]) T {
	a, b := v.elems(), u.elems()
	var sum T
	for i := range a {
		sum += a[i] * T(b[i])
	}

	return sum
}

// ---------- fresh results ----------

// Sum returns a + b as a new vector.
func Sum[N dim.Dim, T scalar.Number](a, b *Vector[N, T]) *Vector[N, T] {
	return a.Clone().Add(b)
}

// Difference returns a − b as a new vector.
func Difference[N dim.Dim, T scalar.Number](a, b *Vector[N, T]) *Vector[N, T] {
	return a.Clone().Sub(b)
}

// Scaled returns v·c as a new vector.
func Scaled[N dim.Dim, T scalar.Number](v *Vector[N, T], c T) *Vector[N, T] {
	return v.Clone().Mult(c)
}

// Quotient returns v/c as a new vector.
func Quotient[N dim.Dim, T scalar.Number](v *Vector[N, T], c T) *Vector[N, T] {
	return v.Clone().Div(c)
}

// Normalized returns v/|v| as a new vector, leaving v unchanged.
func Normalized[N dim.Dim, T scalar.Number](v *Vector[N, T]) *Vector[N, T] {
	return v.Clone().Normalize()
}
