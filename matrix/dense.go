// SPDX-License-Identifier: MIT

// Package matrix - dense storage (row-major) & accessors.
//
// Purpose:
//   - Keep all R·C elements in one contiguous row-major buffer so Data() spans
//     the whole matrix and row i is the window [i*C, (i+1)*C).
//   - Expose rows as no-copy vector views and columns as fresh copies.
//   - Treat index violations as programmer errors (panic with a wrapped
//     ErrOutOfRange); Get offers the error-returning alternative.
//
// Complexity quicksheet:
//   - New/Of/Identity/Clone: O(R·C); At/Set/Row: O(1); Column: O(R).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/nmath/dim"
	"github.com/katalvlaran/nmath/scalar"
	"github.com/katalvlaran/nmath/vector"
)

// ---------- formatting literals ----------

const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// Matrix is an R×C row-major matrix of T.
// The zero Matrix is usable and allocates its R·C zero elements on first use.
// Copying a Matrix struct value shares the buffer; use Clone for a deep copy.
type Matrix[R, C dim.Dim, T scalar.Number] struct {
	data []T // contiguous row-major storage, len == R*C once allocated
}

// Mat is a Matrix of the default element type.
type Mat[R, C dim.Dim] = Matrix[R, C, scalar.Default]

var _ fmt.Stringer = (*Matrix[dim.D2, dim.D3, float64])(nil)

// New returns an R×C matrix with every element set to fill[0], or zero when
// no fill is given. Additional fill values are ignored.
// Complexity: O(R·C).
func New[R, C dim.Dim, T scalar.Number](fill ...T) *Matrix[R, C, T] {
	m := &Matrix[R, C, T]{data: make([]T, dim.Len[R]()*dim.Len[C]())}
	if len(fill) > 0 && fill[0] != 0 {
		for i := range m.data {
			m.data[i] = fill[0]
		}
	}

	return m
}

// Of builds a matrix from row initialisers.
// Stage 1: allocate a zero R×C buffer.
// Stage 2: copy the first min(R, len(rows)) rows; each row contributes its
// first min(C, len(row)) values.
// Missing rows and row tails stay zero; surplus rows and values are discarded.
// Complexity: O(R·C).
func Of[R, C dim.Dim, T scalar.Number](rows ...[]T) *Matrix[R, C, T] {
	m := New[R, C, T]()
	r, c := m.Rows(), m.Cols()
	for i := 0; i < r && i < len(rows); i++ {
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m
}

// FromRows builds a matrix by copying row vectors. Rows beyond R are ignored;
// missing rows stay zero. A nil entry leaves its row zero.
func FromRows[R, C dim.Dim, T scalar.Number](rows ...*vector.Vector[C, T]) *Matrix[R, C, T] {
	m := New[R, C, T]()
	r, c := m.Rows(), m.Cols()
	for i := 0; i < r && i < len(rows); i++ {
		if rows[i] != nil {
			copy(m.data[i*c:(i+1)*c], rows[i].Data())
		}
	}

	return m
}

// Identity returns the N×N identity: ones on the diagonal, zeros elsewhere.
// Only square shapes are expressible.
// Complexity: O(N²).
func Identity[N dim.Dim, T scalar.Number]() *Matrix[N, N, T] {
	m := New[N, N, T]()
	n := m.Rows()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = scalar.One[T]()
	}

	return m
}

// Convert returns a copy of src with every element converted to T.
func Convert[T scalar.Number, R, C dim.Dim, U scalar.Number](src *Matrix[R, C, U]) *Matrix[R, C, T] {
	in := src.elems()
	m := &Matrix[R, C, T]{data: make([]T, len(in))}
	for i, x := range in {
		m.data[i] = T(x)
	}

	return m
}

// elems returns the flat buffer, allocating it for a zero Matrix.
func (m *Matrix[R, C, T]) elems() []T {
	if m.data == nil {
		m.data = make([]T, dim.Len[R]()*dim.Len[C]())
	}

	return m.data
}

// row returns the backing window of row i without bounds checks.
func (m *Matrix[R, C, T]) row(i int) []T {
	c := dim.Len[C]()

	return m.elems()[i*c : (i+1)*c : (i+1)*c]
}

// Rows returns R.
func (m *Matrix[R, C, T]) Rows() int { return dim.Len[R]() }

// Cols returns C.
func (m *Matrix[R, C, T]) Cols() int { return dim.Len[C]() }

// IsSquare reports R == C.
func (m *Matrix[R, C, T]) IsSquare() bool { return m.Rows() == m.Cols() }

// At returns element (row, col). Panics outside the shape.
func (m *Matrix[R, C, T]) At(row, col int) T {
	mustCell(ctxAt, row, col, m.Rows(), m.Cols())

	return m.elems()[row*m.Cols()+col]
}

// Get returns element (row, col), or an error wrapping ErrOutOfRange.
func (m *Matrix[R, C, T]) Get(row, col int) (T, error) {
	if !inRange(row, m.Rows()) || !inRange(col, m.Cols()) {
		return 0, cellErrorf(ctxGet, row, col, ErrOutOfRange)
	}

	return m.elems()[row*m.Cols()+col], nil
}

// Set assigns element (row, col) and returns m. Panics outside the shape.
func (m *Matrix[R, C, T]) Set(row, col int, v T) *Matrix[R, C, T] {
	mustCell(ctxSet, row, col, m.Rows(), m.Cols())
	m.elems()[row*m.Cols()+col] = v

	return m
}

// Row returns row i as a vector that aliases m: writes through the vector
// change m. Panics when i is outside [0, R).
func (m *Matrix[R, C, T]) Row(i int) *vector.Vector[C, T] {
	mustRow(ctxRow, i, m.Rows())
	v, err := vector.View[C](m.row(i))
	if err != nil {
		// unreachable: the window always holds C elements
		panic(err)
	}

	return v
}

// RowCopy returns an independent copy of row i.
func (m *Matrix[R, C, T]) RowCopy(i int) *vector.Vector[C, T] {
	mustRow(ctxRow, i, m.Rows())

	return vector.Of[C](m.row(i)...)
}

// Column returns a fresh vector holding column j.
// Complexity: O(R).
func (m *Matrix[R, C, T]) Column(j int) *vector.Vector[R, T] {
	mustRow(ctxColumn, j, m.Cols())
	out := vector.New[R, T]()
	buf, c := out.Data(), m.Cols()
	data := m.elems()
	for i := range buf {
		buf[i] = data[i*c+j]
	}

	return out
}

// SetRow copies v into row i and returns m.
func (m *Matrix[R, C, T]) SetRow(i int, v *vector.Vector[C, T]) *Matrix[R, C, T] {
	mustRow(ctxSetRow, i, m.Rows())
	copy(m.row(i), v.Data())

	return m
}

// SetColumn copies v into column j and returns m.
func (m *Matrix[R, C, T]) SetColumn(j int, v *vector.Vector[R, T]) *Matrix[R, C, T] {
	mustRow(ctxSetColumn, j, m.Cols())
	data, c := m.elems(), m.Cols()
	for i, x := range v.Data() {
		data[i*c+j] = x
	}

	return m
}

// Data returns the contiguous row-major buffer (length R·C).
func (m *Matrix[R, C, T]) Data() []T { return m.elems() }

// Ptr returns the address of element (0, 0); the R·C elements follow it.
func (m *Matrix[R, C, T]) Ptr() *T { return &m.elems()[0] }

// Clone returns a deep copy of m.
func (m *Matrix[R, C, T]) Clone() *Matrix[R, C, T] {
	in := m.elems()
	out := &Matrix[R, C, T]{data: make([]T, len(in))}
	copy(out.data, in)

	return out
}

// CopyFrom overwrites m with the elements of src and returns m.
func (m *Matrix[R, C, T]) CopyFrom(src *Matrix[R, C, T]) *Matrix[R, C, T] {
	copy(m.elems(), src.elems())

	return m
}

// Equal reports exact element-wise (hence row-wise) equality.
func (m *Matrix[R, C, T]) Equal(o *Matrix[R, C, T]) bool {
	a, b := m.elems(), o.elems()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// EqualFrom compares a with a matrix of another element type, converting b's
// elements to T first.
func EqualFrom[R, C dim.Dim, T, U scalar.Number](a *Matrix[R, C, T], b *Matrix[R, C, U]) bool {
	x, y := a.elems(), b.elems()
	for i := range x {
		if x[i] != T(y[i]) {
			return false
		}
	}

	return true
}

// String renders m as "[<row0>, <row1>, …]" using the vector formatter.
// Complexity: O(R·C).
func (m *Matrix[R, C, T]) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	for i := 0; i < m.Rows(); i++ {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		vector.WriteString(&sb, m.Row(i))
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}
