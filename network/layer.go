// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package network

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// CellSize is the edge length of each input [Cell] cube.
const CellSize = float32(0.2)

// Layer is one stage of the illustrated pipeline, with everything
// needed to place, draw and animate it.
type Layer struct {

	// Name is the unique name of the layer, also used for the scene node.
	Name string

	// Kind is the pipeline stage this layer represents.
	Kind Kinds

	// Shape is the solid shape used to draw the layer.
	Shape Shapes

	// Size is the box extents for [Box], the radius in X for [Sphere],
	// and unused for [Grid].
	Size math32.Vector3

	// Pos is the world position of the layer center (group origin for [Grid]).
	Pos math32.Vector3

	// Color is the base color of the layer.
	Color color.RGBA

	// Spin is the rotation around the Y axis, in radians per reference frame.
	Spin float32

	// Pulse is the breathing scale animation; zero amplitude is none.
	Pulse Pulse

	// Cells are the cubes of a [Grid] layer, in local coordinates.
	Cells []Cell
}

// Pulse is a sinusoidal breathing of the uniform scale of a layer.
type Pulse struct {

	// Amplitude is the relative scale change at the peak.
	Amplitude float32

	// Rate is the angular rate, in radians per millisecond.
	Rate float32
}

// Scale returns the scale at the given elapsed time in milliseconds.
func (p Pulse) Scale(ms float32) float32 {
	if p.Amplitude == 0 {
		return 1
	}
	return 1 + p.Amplitude*math32.Sin(ms*p.Rate)
}

// Cell is one cube of a [Grid] layer.
type Cell struct {

	// Pos is the position relative to the layer origin.
	Pos math32.Vector3

	// Color is the cube color.
	Color color.RGBA
}

// Radius returns the sphere radius for [Sphere] layers.
func (ly *Layer) Radius() float32 {
	return ly.Size.X
}

// WorldCells returns the world positions of the cells of the layer,
// at rest (no rotation applied).
func (ly *Layer) WorldCells() []math32.Vector3 {
	ps := make([]math32.Vector3, len(ly.Cells))
	for i, c := range ly.Cells {
		ps[i] = c.Pos.Add(ly.Pos)
	}
	return ps
}

// BBox returns the world-space bounding box of the layer at rest.
func (ly *Layer) BBox() math32.Box3 {
	switch ly.Shape {
	case Sphere:
		r := ly.Radius()
		ext := math32.Vec3(r, r, r)
		return math32.Box3{Min: ly.Pos.Sub(ext), Max: ly.Pos.Add(ext)}
	case Grid:
		bb := math32.B3Empty()
		half := CellSize / 2
		for _, p := range ly.WorldCells() {
			bb.ExpandByPoint(p.SubScalar(half))
			bb.ExpandByPoint(p.AddScalar(half))
		}
		return bb
	}
	half := ly.Size.MulScalar(0.5)
	return math32.Box3{Min: ly.Pos.Sub(half), Max: ly.Pos.Add(half)}
}

// IsDegenerate returns whether the layer has no visible extent.
func (ly *Layer) IsDegenerate() bool {
	switch ly.Shape {
	case Sphere:
		return ly.Radius() <= 0
	case Grid:
		return len(ly.Cells) == 0
	}
	return ly.Size.X <= 0 || ly.Size.Y <= 0 || ly.Size.Z <= 0
}
