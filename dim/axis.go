// SPDX-License-Identifier: MIT

package dim

import "fmt"

// Axis indexes the first three components of a vector.
type Axis uint8

// Axis values double as element indices.
const (
	X Axis = iota
	Y
	Z
)

const axisNames = "XYZ"

// ParseAxis maps 'X', 'Y', 'Z' (either case) to the matching Axis.
// Any other rune yields ErrBadAxis.
//
// Unlike the legacy "'X' − char" relation, which resolved 'W' and 'V' to Y and
// Z and rejected 'Y' and 'Z', each letter maps to its own axis.
func ParseAxis(r rune) (Axis, error) {
	switch r {
	case 'X', 'x':
		return X, nil
	case 'Y', 'y':
		return Y, nil
	case 'Z', 'z':
		return Z, nil
	}

	return 0, fmt.Errorf("ParseAxis(%q): %w", r, ErrBadAxis)
}

// MustAxis is ParseAxis that panics on error.
func MustAxis(r rune) Axis {
	a, err := ParseAxis(r)
	if err != nil {
		panic(err)
	}

	return a
}

// Valid reports whether a is X, Y or Z.
func (a Axis) Valid() bool { return a <= Z }

// Byte returns the axis as an unsigned byte (its index).
func (a Axis) Byte() uint8 { return uint8(a) }

// Index returns the axis as an element index.
func (a Axis) Index() int { return int(a) }

// Rune returns 'X', 'Y' or 'Z', or '?' for an invalid axis.
func (a Axis) Rune() rune {
	if !a.Valid() {
		return '?'
	}

	return rune(axisNames[a])
}

// String implements fmt.Stringer.
func (a Axis) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Axis(%d)", uint8(a))
	}

	return axisNames[a : a+1]
}
