// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates an element index outside [0, N).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrBadLength indicates a buffer whose length differs from N.
	ErrBadLength = errors.New("vector: buffer length mismatch")
)

// vectorErrorf attaches method context and the offending index to err.
func vectorErrorf(method string, i int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, i, err)
}
