// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small deterministic fixtures (well-conditioned matrices, fixed RNG seeds).
//   - Keep tolerance assertions in one place.

package matrix_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/nmath/dim"
	"github.com/katalvlaran/nmath/matrix"
	"github.com/stretchr/testify/require"
)

// seed fixes every RNG used by table-driven property tests.
const seed = 20240601

// tol64 is the round-trip tolerance for well-conditioned float64 systems.
const tol64 = 1e-9

type (
	m22 = matrix.Matrix[dim.D2, dim.D2, float64]
	m23 = matrix.Matrix[dim.D2, dim.D3, float64]
	m33 = matrix.Matrix[dim.D3, dim.D3, float64]
	m44 = matrix.Matrix[dim.D4, dim.D4, float64]
)

// systemA and systemB are the 4×4 system
//
//	 4w + 1x + 2y − 3z = −16
//	−3w + 3x − 1y + 4z =  20
//	−1w + 2x + 5y + 1z =  −4
//	 5w + 4x + 3y − 1z = −10
func systemA() *m44 {
	return matrix.Of[dim.D4, dim.D4]([][]float64{
		{4, 1, 2, -3},
		{-3, 3, -1, 4},
		{-1, 2, 5, 1},
		{5, 4, 3, -1},
	}...)
}

func systemB() *matrix.Matrix[dim.D4, dim.D1, float64] {
	return matrix.Of[dim.D4, dim.D1]([][]float64{{-16}, {20}, {-4}, {-10}}...)
}

// requireClose fails unless every element of got is within tol of want.
func requireClose[R, C dim.Dim](t *testing.T, want, got *matrix.Matrix[R, C, float64], tol float64) {
	t.Helper()
	require.Truef(t, matrix.AllClose(got, want, 0, tol),
		"max |diff| = %g > %g\nwant %v\ngot  %v", matrix.MaxAbsDiff(got, want), tol, want, got)
}

// randomMatrix fills an R×C matrix with values in [-5, 5).
func randomMatrix[R, C dim.Dim](rng *rand.Rand) *matrix.Matrix[R, C, float64] {
	m := matrix.New[R, C, float64]()
	for i := range m.Data() {
		m.Data()[i] = rng.Float64()*10 - 5
	}

	return m
}

// randomDominant returns a strictly diagonally dominant N×N matrix whose first
// column is already non-increasing from row 1 down and topped by the largest
// entry, so the adjacent-sweep pre-pass leaves the row order untouched.
func randomDominant[N dim.Dim](rng *rand.Rand) *matrix.Matrix[N, N, float64] {
	m := randomMatrix[N, N](rng)
	n := m.Rows()

	col := make([]float64, n-1)
	for i := range col {
		col[i] = -rng.Float64() * 5
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(col)))
	for i := 1; i < n; i++ {
		m.Set(i, 0, col[i-1])
	}

	for i := 0; i < n; i++ {
		var off float64
		for j := 0; j < n; j++ {
			if j != i {
				v := m.At(i, j)
				if v < 0 {
					v = -v
				}
				off += v
			}
		}
		m.Set(i, i, off+1+rng.Float64())
	}

	return m
}
