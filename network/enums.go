// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package network

//go:generate core generate

// Kinds are the kinds of stages in the illustrated pipeline,
// in the order in which data flows through them.
type Kinds int32 //enums:enum

const (
	// Input is the flattened input vector, drawn as a grid of small cubes.
	Input Kinds = iota

	// Conv is a convolution kernel block; one per kernel size.
	Conv

	// Concat joins the outputs of the convolution blocks.
	Concat

	// Pool is the pooling layer.
	Pool

	// Recurrent is the recurrent (LSTM) layer.
	Recurrent

	// Dense is the fully connected layer.
	Dense

	// Dropout is the dropout layer.
	Dropout

	// Output is the final output node.
	Output
)

// Shapes are the solid shapes used to draw a layer.
type Shapes int32 //enums:enum

const (
	// Box is an axis-aligned box with extents given by [Layer.Size].
	Box Shapes = iota

	// Sphere is a sphere with radius given by [Layer.Size].X.
	Sphere

	// Grid is a group of [Cell] cubes.
	Grid
)
