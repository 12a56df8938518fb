// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"cogentcore.org/lab/base/randx"
	"cogentcore.org/netviz/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tolAssertEqualVec(t *testing.T, expected, actual math32.Vector3, tol float32) {
	t.Helper()
	tolassert.EqualTol(t, expected.X, actual.X, tol)
	tolassert.EqualTol(t, expected.Y, actual.Y, tol)
	tolassert.EqualTol(t, expected.Z, actual.Z, tol)
}

const standardTol = float32(1.0e-5)

func TestArrowGeometry(t *testing.T) {
	ar := &Arrow{Start: math32.Vec3(1, 0, 0), End: math32.Vec3(3, 0, 0)}
	assert.Equal(t, float32(2), ar.Length())
	assert.Equal(t, math32.Vec3(1, 0, 0), ar.Dir())
	tolassert.EqualTol(t, 1.8, ar.ShaftLength(), standardTol)

	sh := ar.Shaft()
	tolAssertEqualVec(t, math32.Vec3(1.9, 0, 0), sh.Pos, standardTol)
	tolassert.EqualTol(t, 1.8, sh.Length, standardTol)
	// the modeling axis +Y must end up along the arrow
	tolAssertEqualVec(t, ar.Dir(), math32.Vec3(0, 1, 0).MulQuat(sh.Quat), standardTol)

	cn := ar.Cone()
	tolAssertEqualVec(t, math32.Vec3(2.9, 0, 0), cn.Pos, standardTol)
	assert.Equal(t, ConeHeight, cn.Length)
	assert.Equal(t, sh.Quat, cn.Quat)
}

func TestArrowDownward(t *testing.T) {
	ar := &Arrow{Start: math32.Vec3(0, 2, 0), End: math32.Vec3(0, -2, 0)}
	tolAssertEqualVec(t, math32.Vec3(0, -1, 0), math32.Vec3(0, 1, 0).MulQuat(ar.Rotation()), standardTol)
}

func TestArrowZeroLength(t *testing.T) {
	p := math32.Vec3(1, 2, 3)
	ar := &Arrow{Start: p, End: p}
	assert.Equal(t, math32.Vector3{}, ar.Dir())
	assert.Equal(t, math32.Quat{W: 1}, ar.Rotation())
	assert.Equal(t, float32(0), ar.ShaftLength())
	assert.Equal(t, p, ar.Shaft().Pos)
}

func TestArrowAdvance(t *testing.T) {
	ar := &Arrow{Start: math32.Vec3(0, 0, 0), End: math32.Vec3(10, 0, 0)}
	assert.Equal(t, math32.Vector3{}, ar.PulsePos())

	ar.Advance(0.25)
	tolAssertEqualVec(t, math32.Vec3(2.5, 0, 0), ar.PulsePos(), standardTol)

	ar.Progress = 1
	ar.Advance(0)
	assert.Equal(t, float32(1), ar.Progress, "exactly at the end is kept")
	ar.Advance(0.01)
	assert.Equal(t, float32(0), ar.Progress, "passing the end starts over")
}

func TestFlowAdvance(t *testing.T) {
	fl := New(randx.NewSysRand(1))
	a := fl.Add(math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0))
	b := fl.Add(math32.Vec3(0, 0, 0), math32.Vec3(0, 1, 0))
	a.Progress, b.Progress = 0, 0.5
	fl.Advance(10)
	tolassert.EqualTol(t, 0.1, a.Progress, standardTol)
	tolassert.EqualTol(t, 0.6, b.Progress, standardTol)
	assert.Equal(t, DefaultColor, a.Color)
}

func TestFanOut(t *testing.T) {
	fl := New(randx.NewSysRand(1))
	from := []math32.Vector3{math32.Vec3(0, 0, 0), math32.Vec3(0, 1, 0)}
	to := []math32.Vector3{math32.Vec3(5, 0, 0), math32.Vec3(5, 1, 0), math32.Vec3(5, 2, 0)}
	ars := fl.FanOut(from, to)
	require.Len(t, ars, 6)
	assert.Equal(t, from[1], ars[3].Start)
	assert.Equal(t, to[0], ars[3].End)
	for _, ar := range ars {
		assert.GreaterOrEqual(t, ar.Progress, float32(0))
		assert.Less(t, ar.Progress, float32(1))
	}
}

func TestRadialRing(t *testing.T) {
	fl := New(randx.NewSysRand(1))
	from := math32.Vec3(-6, 3, 0)
	to := math32.Vec3(-2, 0, 0)
	ars := fl.RadialRing(from, to, 8, 0.6)
	require.Len(t, ars, 8)
	dir := to.Sub(from).Normal()
	for _, ar := range ars {
		assert.Equal(t, from, ar.Start)
		off := ar.End.Sub(to)
		tolassert.EqualTol(t, 0.6, off.Length(), standardTol)
		tolassert.EqualTol(t, 0, off.Dot(dir), standardTol)
	}
	// first tip lies along the horizontal right axis
	tolassert.EqualTol(t, 0, ars[0].End.Sub(to).Y, standardTol)

	assert.Nil(t, fl.RadialRing(from, to, 0, 1))
}

func TestRadialRingVertical(t *testing.T) {
	fl := New(randx.NewSysRand(1))
	ars := fl.RadialRing(math32.Vec3(0, 0, 0), math32.Vec3(0, 5, 0), 4, 1)
	require.Len(t, ars, 4)
	for _, ar := range ars {
		off := ar.End.Sub(math32.Vec3(0, 5, 0))
		tolassert.EqualTol(t, 1, off.Length(), standardTol)
		tolassert.EqualTol(t, 0, off.Y, standardTol)
	}
}

func TestDivergingConverging(t *testing.T) {
	fl := New(randx.NewSysRand(2))
	box := math32.B3(1, -4, -1, 3, 4, 1)
	from := math32.Vec3(-2, 0, 0)
	for _, ar := range fl.Diverging(from, box, 25) {
		assert.Equal(t, from, ar.Start)
		assert.True(t, box.ContainsPoint(ar.End), "%v not in box", ar.End)
	}
	to := math32.Vec3(18, 0, 0)
	ars := fl.Converging(box, to, 30)
	assert.Len(t, ars, 30)
	for _, ar := range ars {
		assert.Equal(t, to, ar.End)
		assert.True(t, box.ContainsPoint(ar.Start), "%v not in box", ar.Start)
	}
	assert.Len(t, fl.Arrows, 55)
	assert.Empty(t, fl.Diverging(from, box, 0))
}

func TestBuild(t *testing.T) {
	nw := network.New(randx.NewSysRand(1))
	c := &Counts{}
	c.Defaults()
	fl, err := Build(nw, c, randx.NewSysRand(1))
	require.NoError(t, err)
	// 18 sampled cells x 3 convs, 3 rings of 8, 20 into pool,
	// 3 x 25 diverging and 30 converging
	assert.Len(t, fl.Arrows, 54+24+20+75+30)

	input := nw.Layer("input")
	first := fl.Arrows[0]
	assert.Equal(t, input.WorldCells()[0], first.Start)
	assert.Equal(t, nw.Layer("conv3").Pos, first.End)

	last := fl.Arrows[len(fl.Arrows)-1]
	assert.Equal(t, nw.Layer("output").Pos, last.End)
	assert.True(t, nw.Layer("dropout").BBox().ContainsPoint(last.Start))
}

func TestBuildCounts(t *testing.T) {
	nw := network.New(randx.NewSysRand(1))
	c := &Counts{InputStride: network.InputCells, RingArrows: 2, RingRadius: 1, PoolArrows: 1, DivergeArrows: 0, ConvergeArrows: 3}
	fl, err := Build(nw, c, randx.NewSysRand(1))
	require.NoError(t, err)
	assert.Len(t, fl.Arrows, 3+6+1+3)
	assert.Equal(t, nw.Layer("input").WorldCells()[0], fl.Arrows[0].Start)

	c.InputStride = 0
	_, err = Build(nw, c, randx.NewSysRand(1))
	assert.ErrorContains(t, err, "input stride must be at least 1")
}

func TestBuildMissingLayer(t *testing.T) {
	nw := &network.Network{}
	nw.Add(network.InputLayer(randx.NewSysRand(1)))
	c := &Counts{}
	c.Defaults()
	_, err := Build(nw, c, randx.NewSysRand(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no Output layer")
}
