// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package flow provides the flow arrows that connect the layers of
// the pipeline, each carrying a pulse that travels from start to end.
package flow

import (
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/lab/base/randx"
)

// DefaultColor is the arrow color used when none is given.
var DefaultColor = colors.FromRGB(0x9b, 0x59, 0xb6)

// DefaultStep is the default pulse progress per reference frame.
const DefaultStep = float32(0.01)

// Flow is the set of all flow arrows in a scene.
type Flow struct {

	// Arrows in the order in which they were added.
	Arrows []*Arrow

	// Step is the pulse progress per reference frame.
	Step float32

	// Color is used for arrows added by the connection methods.
	Color color.RGBA

	// Rand is the source for initial progress and scattered end points.
	Rand randx.Rand
}

// New returns an empty flow using the given random source.
func New(rnd randx.Rand) *Flow {
	return &Flow{Step: DefaultStep, Color: DefaultColor, Rand: rnd}
}

// Add adds a new arrow from start to end with a random initial
// progress, so that pulses on parallel arrows are out of phase.
func (fl *Flow) Add(start, end math32.Vector3) *Arrow {
	ar := &Arrow{Start: start, End: end, Color: fl.Color, Progress: fl.Rand.Float32()}
	fl.Arrows = append(fl.Arrows, ar)
	return ar
}

// Advance moves every pulse forward by the given number of reference frames.
func (fl *Flow) Advance(frames float32) {
	dp := fl.Step * frames
	for _, ar := range fl.Arrows {
		ar.Advance(dp)
	}
}

// FanOut connects every point in from to every point in to.
func (fl *Flow) FanOut(from, to []math32.Vector3) []*Arrow {
	var ars []*Arrow
	for _, s := range from {
		for _, e := range to {
			ars = append(ars, fl.Add(s, e))
		}
	}
	return ars
}

// RadialRing connects from to n points evenly spaced on a ring of the
// given radius around to, in the plane perpendicular to the line
// between them.
func (fl *Flow) RadialRing(from, to math32.Vector3, n int, radius float32) []*Arrow {
	if n <= 0 {
		return nil
	}
	right, up := ringAxes(to.Sub(from))
	ars := make([]*Arrow, n)
	for i := range n {
		ang := float32(i) / float32(n) * 2 * math32.Pi
		off := right.MulScalar(math32.Cos(ang) * radius).Add(up.MulScalar(math32.Sin(ang) * radius))
		ars[i] = fl.Add(from, to.Add(off))
	}
	return ars
}

// ringAxes returns two unit vectors spanning the plane perpendicular
// to dir, with right horizontal whenever dir is not vertical.
func ringAxes(dir math32.Vector3) (right, up math32.Vector3) {
	fwd := dir
	if l := fwd.Length(); l > 0 {
		fwd = fwd.DivScalar(l)
	}
	right = fwd.Cross(math32.Vec3(0, 1, 0))
	if right.Length() < 1e-6 {
		right = math32.Vec3(1, 0, 0)
	} else {
		right = right.Normal()
	}
	up = right.Cross(fwd)
	if up.Length() < 1e-6 {
		up = math32.Vec3(0, 0, 1)
	} else {
		up = up.Normal()
	}
	return
}

// Diverging connects from to n random points inside box.
func (fl *Flow) Diverging(from math32.Vector3, box math32.Box3, n int) []*Arrow {
	var ars []*Arrow
	for range n {
		ars = append(ars, fl.Add(from, fl.pointIn(box)))
	}
	return ars
}

// Converging connects n random points inside box to to.
func (fl *Flow) Converging(box math32.Box3, to math32.Vector3, n int) []*Arrow {
	var ars []*Arrow
	for range n {
		ars = append(ars, fl.Add(fl.pointIn(box), to))
	}
	return ars
}

func (fl *Flow) pointIn(box math32.Box3) math32.Vector3 {
	return math32.Vec3(
		math32.Lerp(box.Min.X, box.Max.X, fl.Rand.Float32()),
		math32.Lerp(box.Min.Y, box.Max.Y, fl.Rand.Float32()),
		math32.Lerp(box.Min.Z, box.Max.Z, fl.Rand.Float32()))
}
