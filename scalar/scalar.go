// SPDX-License-Identifier: MIT

package scalar

import (
	"fmt"
	"math"
)

// Number is the element constraint for vectors and matrices.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Default is the element type used by the Vec/Mat aliases.
type Default = float32

// Zero returns the additive identity of T.
func Zero[T Number]() T { return 0 }

// One returns the multiplicative identity of T.
func One[T Number]() T { return 1 }

// Cast converts v to the element type U.
func Cast[U, T Number](v T) U { return U(v) }

// Sqrt returns √x computed in float64 and converted back to T.
// For integer element types the result is truncated toward zero.
func Sqrt[T Number](x T) T {
	return T(math.Sqrt(float64(x)))
}

// Abs returns |x|.
func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// IsFinite reports whether x is neither NaN nor ±Inf.
// Integer values are always finite.
func IsFinite[T Number](x T) bool {
	f := float64(x)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Format renders x in the element type's default textual form.
func Format[T Number](x T) string {
	return fmt.Sprintf("%v", x)
}
