// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// Arrow geometry, in world units.
const (
	ShaftRadius = float32(0.02)
	ConeRadius  = float32(0.06)
	ConeHeight  = float32(0.2)
	PulseRadius = float32(0.05)
)

// Arrow is a directed edge between two points, along which a
// pulse travels repeatedly from start to end.
type Arrow struct {

	// Start is the world position the arrow points away from.
	Start math32.Vector3

	// End is the world position of the arrow tip.
	End math32.Vector3

	// Color of the shaft and cone.
	Color color.RGBA

	// Progress of the pulse along the arrow, from 0 at Start to 1 at End.
	Progress float32
}

// Transform is the placement of one part of an arrow: the part is
// modeled along +Y, centered at the origin, and then rotated by Quat
// and moved to Pos. Length is the extent along the arrow direction.
type Transform struct {
	Pos    math32.Vector3
	Quat   math32.Quat
	Length float32
}

// Length returns the distance from start to end.
func (ar *Arrow) Length() float32 {
	return ar.End.Sub(ar.Start).Length()
}

// Dir returns the unit direction from start to end,
// or the zero vector for a zero-length arrow.
func (ar *Arrow) Dir() math32.Vector3 {
	d := ar.End.Sub(ar.Start)
	l := d.Length()
	if l == 0 {
		return math32.Vector3{}
	}
	return d.DivScalar(l)
}

// Rotation returns the rotation taking +Y onto the arrow direction.
func (ar *Arrow) Rotation() math32.Quat {
	q := math32.Quat{W: 1}
	d := ar.Dir()
	if d == (math32.Vector3{}) {
		return q
	}
	q.SetFromUnitVectors(math32.Vec3(0, 1, 0), d)
	return q
}

// ShaftLength returns the length of the shaft, which stops short of
// the end to leave room for the cone.
func (ar *Arrow) ShaftLength() float32 {
	return max(ar.Length()-ConeHeight, 0)
}

// Shaft returns the placement of the shaft cylinder.
func (ar *Arrow) Shaft() Transform {
	sl := ar.ShaftLength()
	return Transform{
		Pos:    ar.Start.Add(ar.Dir().MulScalar(sl / 2)),
		Quat:   ar.Rotation(),
		Length: sl,
	}
}

// Cone returns the placement of the tip cone, which is centered half
// a cone height back from the end.
func (ar *Arrow) Cone() Transform {
	return Transform{
		Pos:    ar.Start.Add(ar.Dir().MulScalar(ar.Length() - ConeHeight/2)),
		Quat:   ar.Rotation(),
		Length: ConeHeight,
	}
}

// PulsePos returns the current world position of the pulse.
func (ar *Arrow) PulsePos() math32.Vector3 {
	return ar.Start.Lerp(ar.End, ar.Progress)
}

// Advance moves the pulse forward by dp; once it passes the end
// it starts over at the start.
func (ar *Arrow) Advance(dp float32) {
	ar.Progress += dp
	if ar.Progress > 1 {
		ar.Progress = 0
	}
}
