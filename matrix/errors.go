// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ". Call sites wrap these with
// method/index context via fmt.Errorf("...: %w", ErrX); callers match with
// errors.Is.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/nmath/vector"
)

var (
	// ErrOutOfRange indicates a row or column index outside the declared shape.
	// It is the vector sentinel, so errors.Is matches failures from either layer.
	ErrOutOfRange = vector.ErrOutOfRange

	// ErrSingular is returned by InverseWith when a pivot magnitude is at or
	// below the configured tolerance.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNaNInf is returned by InverseWith when the finite-result check is on
	// and the inverse contains NaN or ±Inf.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxGet       = "Get"
	ctxRow       = "Row"
	ctxColumn    = "Column"
	ctxRowSwap   = "RowSwap"
	ctxRowAdd    = "RowAdd"
	ctxRowSub    = "RowSub"
	ctxRowMult   = "RowMult"
	ctxRowDiv    = "RowDiv"
	ctxSetRow    = "SetRow"
	ctxSetColumn = "SetColumn"
	opInverse    = "InverseWith"
)

// cellErrorf wraps err with method context and (row, col) coordinates.
func cellErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// lineErrorf wraps err with method context and a single row/column index.
func lineErrorf(method string, i int, err error) error {
	return fmt.Errorf("Matrix.%s(%d): %w", method, i, err)
}

// matrixErrorf wraps err with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
