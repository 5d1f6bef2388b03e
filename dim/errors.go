// SPDX-License-Identifier: MIT

package dim

import "errors"

// ErrBadAxis is returned when a character does not name an axis.
var ErrBadAxis = errors.New("dim: unknown axis")
