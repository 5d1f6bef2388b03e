// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/nmath/dim"
	"github.com/katalvlaran/nmath/scalar"
)

// method tags used in error wrappers
const (
	ctxAt   = "At"
	ctxSet  = "Set"
	ctxGet  = "Get"
	ctxView = "View"
)

// formatting literals
const (
	_fmtOpen  = "<"
	_fmtClose = ">"
	_fmtSep   = ", "
)

// Vector is a fixed-length sequence of N elements of T.
type Vector[N dim.Dim, T scalar.Number] struct {
	e []T // len == dim.Len[N]() once allocated
}

// Vec is a Vector of the default element type.
type Vec[N dim.Dim] = Vector[N, scalar.Default]

var _ fmt.Stringer = (*Vector[dim.D3, float64])(nil)

// New returns a vector with every element set to fill[0], or zero when no fill
// is given. Additional fill values are ignored.
func New[N dim.Dim, T scalar.Number](fill ...T) *Vector[N, T] {
	v := &Vector[N, T]{e: make([]T, dim.Len[N]())}
	if len(fill) > 0 && fill[0] != 0 {
		for i := range v.e {
			v.e[i] = fill[0]
		}
	}

	return v
}

// Of returns a vector holding the first min(N, len(values)) values.
// Missing elements are zero; surplus values are discarded.
func Of[N dim.Dim, T scalar.Number](values ...T) *Vector[N, T] {
	v := &Vector[N, T]{e: make([]T, dim.Len[N]())}
	copy(v.e, values)

	return v
}

// Convert returns a copy of u with every element converted to T.
func Convert[T scalar.Number, N dim.Dim, U scalar.Number](u *Vector[N, U]) *Vector[N, T] {
	src := u.elems()
	v := &Vector[N, T]{e: make([]T, len(src))}
	for i, x := range src {
		v.e[i] = T(x)
	}

	return v
}

// View wraps buf without copying. Mutations through the vector are visible in
// buf and vice versa. buf must hold exactly N elements.
func View[N dim.Dim, T scalar.Number](buf []T) (*Vector[N, T], error) {
	if len(buf) != dim.Len[N]() {
		return nil, vectorErrorf(ctxView, len(buf), ErrBadLength)
	}

	return &Vector[N, T]{e: buf}, nil
}

// elems returns the backing slice, allocating it for a zero Vector.
func (v *Vector[N, T]) elems() []T {
	if v.e == nil {
		v.e = make([]T, dim.Len[N]())
	}

	return v.e
}

// Len returns N.
func (v *Vector[N, T]) Len() int { return dim.Len[N]() }

// At returns element i. It panics if i is outside [0, N).
func (v *Vector[N, T]) At(i int) T {
	e := v.elems()
	if i < 0 || i >= len(e) {
		panic(vectorErrorf(ctxAt, i, ErrOutOfRange))
	}

	return e[i]
}

// Get is At that reports an out-of-range index as an error.
func (v *Vector[N, T]) Get(i int) (T, error) {
	e := v.elems()
	if i < 0 || i >= len(e) {
		return 0, vectorErrorf(ctxGet, i, ErrOutOfRange)
	}

	return e[i], nil
}

// Set assigns element i and returns v. It panics if i is outside [0, N).
func (v *Vector[N, T]) Set(i int, x T) *Vector[N, T] {
	e := v.elems()
	if i < 0 || i >= len(e) {
		panic(vectorErrorf(ctxSet, i, ErrOutOfRange))
	}
	e[i] = x

	return v
}

// AtAxis returns the element indexed by a.
func (v *Vector[N, T]) AtAxis(a dim.Axis) T { return v.At(a.Index()) }

// SetAxis assigns the element indexed by a.
func (v *Vector[N, T]) SetAxis(a dim.Axis, x T) *Vector[N, T] { return v.Set(a.Index(), x) }

// Data returns the contiguous backing buffer (length N).
func (v *Vector[N, T]) Data() []T { return v.elems() }

// Ptr returns the address of the first element.
func (v *Vector[N, T]) Ptr() *T { return &v.elems()[0] }

// Clone returns an independent copy of v.
func (v *Vector[N, T]) Clone() *Vector[N, T] {
	e := v.elems()
	c := &Vector[N, T]{e: make([]T, len(e))}
	copy(c.e, e)

	return c
}

// CopyFrom overwrites v with the elements of u and returns v.
func (v *Vector[N, T]) CopyFrom(u *Vector[N, T]) *Vector[N, T] {
	copy(v.elems(), u.elems())

	return v
}

// Equal reports exact element-wise equality.
func (v *Vector[N, T]) Equal(u *Vector[N, T]) bool {
	a, b := v.elems(), u.elems()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// EqualFrom compares v with a vector of another element type, converting u's
// elements to T before comparing.
func EqualFrom[N dim.Dim, T, U scalar.Number](v *Vector[N, T], u *Vector[N, U]) bool {
	a, b := v.elems(), u.elems()
	for i := range a {
		if a[i] != T(b[i]) {
			return false
		}
	}

	return true
}

// String renders v as "<v0, v1, …, vN-1>".
func (v *Vector[N, T]) String() string {
	var sb strings.Builder
	v.writeTo(&sb)

	return sb.String()
}

// writeTo appends the textual form of v to sb.
// Matrix formatting reuses it to avoid one allocation per row.
func (v *Vector[N, T]) writeTo(sb *strings.Builder) {
	sb.WriteString(_fmtOpen)
	for i, x := range v.elems() {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		sb.WriteString(scalar.Format(x))
	}
	sb.WriteString(_fmtClose)
}

// WriteString appends the textual form of v to sb.
func WriteString[N dim.Dim, T scalar.Number](sb *strings.Builder, v *Vector[N, T]) {
	v.writeTo(sb)
}
