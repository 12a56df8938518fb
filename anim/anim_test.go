// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"testing"
	"time"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"cogentcore.org/lab/base/randx"
	"cogentcore.org/netviz/flow"
	"cogentcore.org/netviz/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newState(t *testing.T) *State {
	nw := network.New(randx.NewSysRand(1))
	c := &flow.Counts{}
	c.Defaults()
	fl, err := flow.Build(nw, c, randx.NewSysRand(1))
	require.NoError(t, err)
	for _, ar := range fl.Arrows {
		ar.Progress = 0
	}
	return New(nw, fl)
}

func TestRest(t *testing.T) {
	st := newState(t)
	for i := range st.Network.Layers {
		assert.Equal(t, float32(0), st.Angles[i])
		assert.Equal(t, float32(1), st.Scales[i])
	}
	assert.Equal(t, float32(1), st.Scale("missing"))
	assert.Equal(t, float32(0), st.Angle("missing"))
}

func TestStepOneFrame(t *testing.T) {
	st := newState(t)
	st.Step(time.Second / 60)
	tolassert.EqualTol(t, network.BaseSpin*1.4, st.Angle("input"), 1e-6)
	tolassert.EqualTol(t, network.BaseSpin*0.6, st.Angle("conv5"), 1e-6)
	tolassert.EqualTol(t, network.BaseSpin*1.1, st.Angle("dense"), 1e-6)
	assert.Equal(t, float32(0), st.Angle("concat"))
	tolassert.EqualTol(t, flow.DefaultStep, st.Flow.Arrows[0].Progress, 1e-6)
}

func TestFrameRateIndependent(t *testing.T) {
	a := newState(t)
	b := newState(t)
	a.Step(20 * time.Millisecond)
	b.Step(10 * time.Millisecond)
	b.Step(10 * time.Millisecond)
	for i := range a.Angles {
		tolassert.EqualTol(t, a.Angles[i], b.Angles[i], 1e-6)
		tolassert.EqualTol(t, a.Scales[i], b.Scales[i], 1e-6)
	}
	for i := range a.Flow.Arrows {
		tolassert.EqualTol(t, a.Flow.Arrows[i].Progress, b.Flow.Arrows[i].Progress, 1e-6)
	}
}

func TestBreathing(t *testing.T) {
	st := newState(t)
	st.Step(500 * time.Millisecond)
	tolassert.EqualTol(t, 1+0.08*math32.Sin(500*0.003), st.Scale("concat"), 1e-5)
	tolassert.EqualTol(t, 1+0.12*math32.Sin(500*0.002), st.Scale("output"), 1e-5)
	assert.Equal(t, float32(1), st.Scale("pool"))
}

func TestSpeedAndPause(t *testing.T) {
	st := newState(t)
	st.Speed = 2
	st.Step(time.Second / 60)
	tolassert.EqualTol(t, 2*network.BaseSpin*0.9, st.Angle("pool"), 1e-6)
	assert.Equal(t, 2*(time.Second/60), st.Elapsed)

	st.Paused = true
	st.Step(time.Second)
	tolassert.EqualTol(t, 2*network.BaseSpin*0.9, st.Angle("pool"), 1e-6)

	st.Paused = false
	st.Step(-time.Second)
	assert.Equal(t, 2*(time.Second/60), st.Elapsed)

	st.Reset()
	assert.Equal(t, float32(0), st.Angle("pool"))
	assert.Equal(t, time.Duration(0), st.Elapsed)
}

func TestAngleWraps(t *testing.T) {
	st := newState(t)
	st.Step(time.Hour)
	for _, a := range st.Angles {
		assert.GreaterOrEqual(t, a, float32(0))
		assert.Less(t, a, float32(2*math32.Pi))
	}
}
