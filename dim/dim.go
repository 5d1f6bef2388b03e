// SPDX-License-Identifier: MIT

package dim

// Dim is implemented by zero-size dimension types.
// Len must be positive and must not depend on the receiver value.
type Dim interface {
	Len() int
}

// Len returns the extent of the dimension type N.
func Len[N Dim]() int {
	var n N

	return n.Len()
}

// Predeclared dimensions.
type (
	D1  struct{}
	D2  struct{}
	D3  struct{}
	D4  struct{}
	D5  struct{}
	D6  struct{}
	D7  struct{}
	D8  struct{}
	D9  struct{}
	D10 struct{}
	D11 struct{}
	D12 struct{}
	D13 struct{}
	D14 struct{}
	D15 struct{}
	D16 struct{}
)

func (D1) Len() int  { return 1 }
func (D2) Len() int  { return 2 }
func (D3) Len() int  { return 3 }
func (D4) Len() int  { return 4 }
func (D5) Len() int  { return 5 }
func (D6) Len() int  { return 6 }
func (D7) Len() int  { return 7 }
func (D8) Len() int  { return 8 }
func (D9) Len() int  { return 9 }
func (D10) Len() int { return 10 }
func (D11) Len() int { return 11 }
func (D12) Len() int { return 12 }
func (D13) Len() int { return 13 }
func (D14) Len() int { return 14 }
func (D15) Len() int { return 15 }
func (D16) Len() int { return 16 }
