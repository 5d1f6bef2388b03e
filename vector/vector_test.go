// SPDX-License-Identifier: MIT

package vector_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/nmath/dim"
	"github.com/katalvlaran/nmath/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type v3 = vector.Vector[dim.D3, float64]

func TestNew_ZeroFill(t *testing.T) {
	v := vector.New[dim.D4, float64]()
	assert.Equal(t, 4, v.Len())
	assert.Equal(t, []float64{0, 0, 0, 0}, v.Data())
}

func TestNew_UniformFill(t *testing.T) {
	v := vector.New[dim.D3](2.5)
	assert.Equal(t, []float64{2.5, 2.5, 2.5}, v.Data())
}

func TestOf_TruncatesAndPads(t *testing.T) {
	short := vector.Of[dim.D4](1.0, 2)
	assert.Equal(t, []float64{1, 2, 0, 0}, short.Data(), "missing tail is zero")

	long := vector.Of[dim.D2](1.0, 2, 3, 4)
	assert.Equal(t, []float64{1, 2}, long.Data(), "surplus is discarded")

	assert.Equal(t, []float64{0, 0, 0}, vector.Of[dim.D3, float64]().Data())
}

func TestZeroValue_Usable(t *testing.T) {
	var v v3
	assert.Equal(t, 3, v.Len())
	v.Set(1, 7)
	assert.Equal(t, []float64{0, 7, 0}, v.Data())
}

func TestConvert(t *testing.T) {
	f := vector.Of[dim.D3](float32(1.5), 2, -3)
	d := vector.Convert[float64](f)
	assert.Equal(t, []float64{1.5, 2, -3}, d.Data())

	i := vector.Convert[int](d)
	assert.Equal(t, []int{1, 2, -3}, i.Data(), "float to int truncates")
}

func TestAtSet_Bounds(t *testing.T) {
	v := vector.Of[dim.D3](1.0, 2, 3)
	assert.Equal(t, 2.0, v.At(1))
	v.Set(2, 9)
	assert.Equal(t, 9.0, v.At(2))

	assert.Panics(t, func() { v.At(3) })
	assert.Panics(t, func() { v.At(-1) })
	assert.Panics(t, func() { v.Set(3, 0) })

	_, err := v.Get(3)
	require.ErrorIs(t, err, vector.ErrOutOfRange)
	x, err := v.Get(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, x)
}

func TestAt_PanicValueWrapsSentinel(t *testing.T) {
	v := vector.New[dim.D2, float64]()
	defer func() {
		r := recover()
		err, ok := r.(error)
		require.True(t, ok, "panic value must be an error")
		assert.ErrorIs(t, err, vector.ErrOutOfRange)
	}()
	v.At(5)
}

func TestAxisAccess(t *testing.T) {
	v := vector.Of[dim.D4](1.0, 2, 3, 4)
	assert.Equal(t, 1.0, v.AtAxis(dim.X))
	assert.Equal(t, 2.0, v.AtAxis(dim.Y))
	assert.Equal(t, 3.0, v.AtAxis(dim.Z))
	v.SetAxis(dim.MustAxis('Z'), 30)
	assert.Equal(t, 30.0, v.At(2))

	short := vector.New[dim.D2, float64]()
	assert.Panics(t, func() { short.AtAxis(dim.Z) })
}

func TestDataAndPtr_Contiguous(t *testing.T) {
	v := vector.Of[dim.D3](1.0, 2, 3)
	p := v.Ptr()
	*p = 10
	assert.Equal(t, 10.0, v.At(0))
	v.Data()[2] = 30
	assert.Equal(t, 30.0, v.At(2))
}

func TestView(t *testing.T) {
	buf := []float64{1, 2, 3}
	v, err := vector.View[dim.D3](buf)
	require.NoError(t, err)
	v.Mult(2)
	assert.Equal(t, []float64{2, 4, 6}, buf, "view aliases the buffer")

	_, err = vector.View[dim.D4](buf)
	assert.ErrorIs(t, err, vector.ErrBadLength)
}

func TestClone_Independent(t *testing.T) {
	v := vector.Of[dim.D2](1.0, 2)
	c := v.Clone()
	c.Set(0, 100)
	assert.Equal(t, 1.0, v.At(0))
	assert.True(t, v.CopyFrom(c).Equal(c))
}

func TestAddSub_InPlace(t *testing.T) {
	v := vector.Of[dim.D3](1.0, 2, 3)
	u := vector.Of[dim.D3](4.0, 5, 6)
	got := v.Add(u)
	assert.Same(t, v, got, "returns receiver for chaining")
	assert.Equal(t, []float64{5, 7, 9}, v.Data())
	v.Sub(u).Sub(u)
	assert.Equal(t, []float64{-3, -3, -3}, v.Data())
}

func TestAddSubFrom_MixedTypes(t *testing.T) {
	v := vector.Of[dim.D2](1.0, 2)
	u := vector.Of[dim.D2](3, 4)
	vector.AddFrom(v, u)
	assert.Equal(t, []float64{4, 6}, v.Data())
	vector.SubFrom(v, vector.Of[dim.D2](float32(0.5), 1))
	assert.Equal(t, []float64{3.5, 5}, v.Data())
	assert.Equal(t, 3.5*3+5*4, vector.DotFrom(v, u))
}

func TestMultDiv(t *testing.T) {
	v := vector.Of[dim.D3](1.0, -2, 4)
	v.Mult(2)
	assert.Equal(t, []float64{2, -4, 8}, v.Data())
	v.Div(4)
	assert.Equal(t, []float64{0.5, -1, 2}, v.Data())
}

func TestDiv_ByZeroFollowsFloat(t *testing.T) {
	v := vector.Of[dim.D3](1.0, -1, 0)
	v.Div(0)
	assert.True(t, math.IsInf(v.At(0), 1))
	assert.True(t, math.IsInf(v.At(1), -1))
	assert.True(t, math.IsNaN(v.At(2)))
}

func TestDot(t *testing.T) {
	u := vector.Of[dim.D3](1.0, 2, 3)
	w := vector.Of[dim.D3](4.0, -5, 6)
	assert.Equal(t, 12.0, u.Dot(w))
	assert.Equal(t, u.Dot(w), w.Dot(u), "dot is symmetric")
}

func TestMagnitude(t *testing.T) {
	assert.Equal(t, 5.0, vector.Of[dim.D2](3.0, 4).Magnitude())
	assert.Equal(t, float32(3), vector.Of[dim.D3](float32(1), 2, 2).Magnitude())
}

func TestMagnitude_ScalesWithAbsC(t *testing.T) {
	v := vector.Of[dim.D3](1.0, 2, 2)
	for _, c := range []float64{-2, 0.5, 3, -7.25} {
		got := vector.Scaled(v, c).Magnitude()
		assert.InDelta(t, math.Abs(c)*v.Magnitude(), got, 1e-12, "c=%v", c)
	}
}

func TestNormalize(t *testing.T) {
	v := vector.Of[dim.D2](3.0, 4)
	v.Normalize()
	assert.InDelta(t, 0.6, v.At(0), 1e-12)
	assert.InDelta(t, 0.8, v.At(1), 1e-12)
	assert.InDelta(t, 1.0, v.Magnitude(), 1e-12)
}

func TestNormalize_UnitMagnitude(t *testing.T) {
	for _, vals := range [][]float64{{1, 1, 1}, {-3, 0.5, 12}, {1e-3, 2e-3, 0}} {
		v := vector.Of[dim.D3](vals...)
		assert.InDelta(t, 1.0, vector.Normalized(v).Magnitude(), 1e-12, "%v", vals)
	}
}

func TestNormalize_ZeroVectorIsNaN(t *testing.T) {
	v := vector.New[dim.D2, float64]().Normalize()
	assert.True(t, math.IsNaN(v.At(0)))
	assert.True(t, math.IsNaN(v.At(1)))
}

func TestFreeForms_DoNotMutate(t *testing.T) {
	a := vector.Of[dim.D2](1.0, 2)
	b := vector.Of[dim.D2](10.0, 20)

	assert.Equal(t, []float64{11, 22}, vector.Sum(a, b).Data())
	assert.Equal(t, []float64{-9, -18}, vector.Difference(a, b).Data())
	assert.Equal(t, []float64{3, 6}, vector.Scaled(a, 3).Data())
	assert.Equal(t, []float64{0.5, 1}, vector.Quotient(a, 2).Data())
	assert.Equal(t, []float64{1, 2}, a.Data(), "left operand untouched")
}

func TestEqual_Exact(t *testing.T) {
	a := vector.Of[dim.D3](0.1, 0.2, 0.3)
	assert.True(t, a.Equal(vector.Of[dim.D3](0.1, 0.2, 0.3)))
	assert.False(t, a.Equal(vector.Of[dim.D3](0.1, 0.2, 0.30000000000000004)))

	assert.True(t, vector.EqualFrom(vector.Of[dim.D2](1.0, 2), vector.Of[dim.D2](1, 2)))
	assert.False(t, vector.EqualFrom(vector.Of[dim.D2](1.5, 2), vector.Of[dim.D2](1, 2)))
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"Float64", vector.Of[dim.D3](1.0, -2, 3.5).String(), "<1, -2, 3.5>"},
		{"Float32", vector.Of[dim.D2](float32(0.6), 0.8).String(), "<0.6, 0.8>"},
		{"Int", vector.Of[dim.D4](1, 2, 3, 4).String(), "<1, 2, 3, 4>"},
		{"Single", vector.New[dim.D1](7.0).String(), "<7>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestVec_DefaultFloat32(t *testing.T) {
	var v vector.Vec[dim.D2]
	v.Set(0, 0.5)
	var x float32 = v.At(0)
	assert.Equal(t, float32(0.5), x)
}
