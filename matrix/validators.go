// SPDX-License-Identifier: MIT

package matrix

import "math"

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}

// inRange reports 0 ≤ i < n.
func inRange(i, n int) bool {
	return i >= 0 && i < n
}

// mustRow panics unless 0 ≤ i < rows.
func mustRow(method string, i, rows int) {
	if !inRange(i, rows) {
		panic(lineErrorf(method, i, ErrOutOfRange))
	}
}

// mustCell panics unless (row, col) lies inside rows×cols.
func mustCell(method string, row, col, rows, cols int) {
	if !inRange(row, rows) || !inRange(col, cols) {
		panic(cellErrorf(method, row, col, ErrOutOfRange))
	}
}
