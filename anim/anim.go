// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim advances the animation of the network illustration:
// layer spins, breathing scales and flow pulses. All rates are given
// per reference frame, and elapsed time is converted to reference
// frames so the motion does not depend on the display refresh rate.
package anim

import (
	"time"

	"cogentcore.org/core/math32"
	"cogentcore.org/netviz/flow"
	"cogentcore.org/netviz/network"
)

// DefaultFrameRate is the number of reference frames per second.
const DefaultFrameRate = float32(60)

// State is the current animation state of a network and its flow.
type State struct {

	// Network being animated.
	Network *network.Network

	// Flow being animated.
	Flow *flow.Flow

	// FrameRate is the number of reference frames per second.
	FrameRate float32

	// Speed multiplies the passage of time.
	Speed float32

	// Paused stops all motion when set.
	Paused bool

	// Elapsed is the animation time, scaled by Speed.
	Elapsed time.Duration

	// Angles are the current Y rotations of the layers, in radians,
	// parallel to Network.Layers.
	Angles []float32

	// Scales are the current uniform scales of the layers,
	// parallel to Network.Layers.
	Scales []float32
}

// New returns a new state for the given network and flow.
func New(nw *network.Network, fl *flow.Flow) *State {
	st := &State{Network: nw, Flow: fl, FrameRate: DefaultFrameRate, Speed: 1}
	st.Reset()
	return st
}

// Reset returns everything to the rest pose. Pulse progress is not reset.
func (st *State) Reset() {
	n := len(st.Network.Layers)
	st.Elapsed = 0
	st.Angles = make([]float32, n)
	st.Scales = make([]float32, n)
	st.updateScales()
}

// Frames returns the number of reference frames in the given duration,
// including the Speed factor.
func (st *State) Frames(delta time.Duration) float32 {
	return float32(delta.Seconds()) * st.FrameRate * st.Speed
}

// Step advances the animation by the given wall-clock duration.
func (st *State) Step(delta time.Duration) {
	if st.Paused || delta <= 0 {
		return
	}
	frames := st.Frames(delta)
	st.Elapsed += time.Duration(float64(delta) * float64(st.Speed))
	for i, ly := range st.Network.Layers {
		if ly.Spin == 0 {
			continue
		}
		st.Angles[i] = math32.Mod(st.Angles[i]+ly.Spin*frames, 2*math32.Pi)
	}
	st.updateScales()
	if st.Flow != nil {
		st.Flow.Advance(frames)
	}
}

func (st *State) updateScales() {
	ms := float32(st.Elapsed.Seconds() * 1000)
	for i, ly := range st.Network.Layers {
		st.Scales[i] = ly.Pulse.Scale(ms)
	}
}

// index returns the layer index for the given name, or -1.
func (st *State) index(name string) int {
	for i, ly := range st.Network.Layers {
		if ly.Name == name {
			return i
		}
	}
	return -1
}

// Angle returns the current Y rotation of the named layer, in radians.
func (st *State) Angle(name string) float32 {
	if i := st.index(name); i >= 0 {
		return st.Angles[i]
	}
	return 0
}

// Scale returns the current uniform scale of the named layer.
func (st *State) Scale(name string) float32 {
	if i := st.index(name); i >= 0 {
		return st.Scales[i]
	}
	return 1
}
