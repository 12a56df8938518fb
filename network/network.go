// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package network describes the layers of the illustrated
// neural-network pipeline: what each stage is, where it sits,
// how it looks and how it moves. It has no rendering dependencies.
package network

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/lab/base/randx"
)

// BaseSpin is the reference rotation speed, in radians per frame,
// that the individual layer spins are multiples of.
const BaseSpin = float32(0.004)

// Input grid parameters.
const (
	InputCells   = 90
	InputCols    = 10
	InputSpacing = float32(0.4)
)

// KernelSizes are the convolution kernel sizes, top to bottom.
var KernelSizes = []int{3, 5, 7}

// Network is the ordered list of layers of the pipeline.
type Network struct {

	// Layers in pipeline order.
	Layers []*Layer

	byName map[string]*Layer
}

// New returns the default pipeline: an input vector feeding three
// convolution blocks which are concatenated, then pooling, recurrent,
// dense and dropout layers, and finally the output node.
// The random source determines the input cell colors.
func New(rnd randx.Rand) *Network {
	nw := &Network{}
	nw.Add(InputLayer(rnd))

	gap := float32(3)
	convColors := []color.RGBA{hex(0xff5555), hex(0x55ff55), hex(0x5555ff)}
	for i, ks := range KernelSizes {
		nw.Add(&Layer{
			Name:  fmt.Sprintf("conv%d", ks),
			Kind:  Conv,
			Shape: Box,
			Size:  math32.Vec3(float32(ks)*0.5, 2, 1),
			Pos:   math32.Vec3(-6, gap*float32(1-i), 0),
			Color: convColors[i],
			Spin:  BaseSpin * 0.6,
		})
	}

	nw.Add(&Layer{
		Name:  "concat",
		Kind:  Concat,
		Shape: Sphere,
		Size:  math32.Vec3(1, 1, 1),
		Pos:   math32.Vec3(-2, 0, 0),
		Color: hex(0x00ffff),
		Pulse: Pulse{Amplitude: 0.08, Rate: 0.003},
	})

	column := func(name string, kind Kinds, x float32, clr uint32, spin float32) {
		nw.Add(&Layer{
			Name:  name,
			Kind:  kind,
			Shape: Box,
			Size:  math32.Vec3(1, 8, 1),
			Pos:   math32.Vec3(x, 0, 0),
			Color: hex(clr),
			Spin:  BaseSpin * spin,
		})
	}
	column("pool", Pool, 2, 0xffff00, 0.9)
	column("lstm", Recurrent, 6, 0xffaa00, 0.7)
	column("dense", Dense, 10, 0xff00ff, 1.1)
	column("dropout", Dropout, 14, 0x00ff00, 0.8)

	nw.Add(&Layer{
		Name:  "output",
		Kind:  Output,
		Shape: Sphere,
		Size:  math32.Vec3(0.5, 0.5, 0.5),
		Pos:   math32.Vec3(18, 0, 0),
		Color: hex(0x00ffff),
		Pulse: Pulse{Amplitude: 0.12, Rate: 0.002},
	})
	return nw
}

// InputLayer returns the input vector layer: [InputCells] cubes laid
// out in rows of [InputCols], with a random red channel per cube.
func InputLayer(rnd randx.Rand) *Layer {
	ly := &Layer{
		Name:  "input",
		Kind:  Input,
		Shape: Grid,
		Pos:   math32.Vec3(-12, 0, 0),
		Spin:  BaseSpin * 1.4,
	}
	ly.Cells = make([]Cell, InputCells)
	for i := range ly.Cells {
		row := i / InputCols
		col := i % InputCols
		c := &ly.Cells[i]
		c.Pos.X = float32(col)*InputSpacing - float32(InputCols)*InputSpacing/2
		c.Pos.Y = float32(row)*InputSpacing - 2
		c.Color = color.RGBA{uint8(rnd.Float32() * 255), 77, 255, 255}
	}
	return ly
}

// Add appends the layer, replacing the lookup of any layer with the same name.
func (nw *Network) Add(ly *Layer) {
	if nw.byName == nil {
		nw.byName = make(map[string]*Layer)
	}
	nw.Layers = append(nw.Layers, ly)
	nw.byName[ly.Name] = ly
}

// Layer returns the layer with the given name, or nil.
func (nw *Network) Layer(name string) *Layer {
	return nw.byName[name]
}

// ByKind returns the layers of the given kind, in pipeline order.
func (nw *Network) ByKind(kind Kinds) []*Layer {
	var lys []*Layer
	for _, ly := range nw.Layers {
		if ly.Kind == kind {
			lys = append(lys, ly)
		}
	}
	return lys
}

// First returns the first layer of the given kind, or an error if there is none.
func (nw *Network) First(kind Kinds) (*Layer, error) {
	for _, ly := range nw.Layers {
		if ly.Kind == kind {
			return ly, nil
		}
	}
	return nil, fmt.Errorf("network: no %s layer", kind)
}

// Validate returns an error for duplicate names, degenerate layers,
// or layers whose kinds are out of pipeline order.
func (nw *Network) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(nw.Layers))
	prev := Input
	for i, ly := range nw.Layers {
		if ly.Name == "" {
			errs = append(errs, fmt.Errorf("network: layer %d has no name", i))
		} else if seen[ly.Name] {
			errs = append(errs, fmt.Errorf("network: duplicate layer name %q", ly.Name))
		}
		seen[ly.Name] = true
		if ly.IsDegenerate() {
			errs = append(errs, fmt.Errorf("network: layer %q has no extent", ly.Name))
		}
		if ly.Kind < prev {
			errs = append(errs, fmt.Errorf("network: layer %q (%s) comes after a %s layer", ly.Name, ly.Kind, prev))
		}
		prev = ly.Kind
	}
	return errors.Join(errs...)
}

func hex(c uint32) color.RGBA {
	return colors.FromRGB(uint8(c>>16), uint8(c>>8), uint8(c))
}
