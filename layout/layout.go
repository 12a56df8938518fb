// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layout provides a plain, serializable description of a
// network illustration: where every layer, input cell and flow arrow
// is placed. It can be saved to and opened from TOML or JSON files.
package layout

import (
	"fmt"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/jsonx"
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/netviz/flow"
	"cogentcore.org/netviz/network"
)

// Scene is the placement of everything in the illustration, at rest.
type Scene struct {
	Layers []Layer
	Cells  []Cell
	Arrows []Arrow
}

// Layer is the placement of one layer.
type Layer struct {
	Name  string
	Kind  network.Kinds
	Shape network.Shapes
	Pos   math32.Vector3
	Size  math32.Vector3
	Color string

	// Spin in radians per reference frame.
	Spin float32

	PulseAmplitude float32
	PulseRate      float32
}

// Cell is the world placement of one input cell.
type Cell struct {
	Layer string
	Pos   math32.Vector3
	Color string
}

// Arrow is one flow arrow.
type Arrow struct {
	Start    math32.Vector3
	End      math32.Vector3
	Color    string
	Progress float32
}

// FromModel returns the layout of the given network and flow.
// The flow may be nil.
func FromModel(nw *network.Network, fl *flow.Flow) *Scene {
	ls := &Scene{}
	for _, ly := range nw.Layers {
		ls.Layers = append(ls.Layers, Layer{
			Name:           ly.Name,
			Kind:           ly.Kind,
			Shape:          ly.Shape,
			Pos:            ly.Pos,
			Size:           ly.Size,
			Color:          colors.AsHex(ly.Color),
			Spin:           ly.Spin,
			PulseAmplitude: ly.Pulse.Amplitude,
			PulseRate:      ly.Pulse.Rate,
		})
		for i, p := range ly.WorldCells() {
			ls.Cells = append(ls.Cells, Cell{Layer: ly.Name, Pos: p, Color: colors.AsHex(ly.Cells[i].Color)})
		}
	}
	if fl != nil {
		for _, ar := range fl.Arrows {
			ls.Arrows = append(ls.Arrows, Arrow{Start: ar.Start, End: ar.End, Color: colors.AsHex(ar.Color), Progress: ar.Progress})
		}
	}
	return ls
}

// Network returns a network rebuilt from the layout. Input cells are
// converted back to positions relative to their layer.
func (ls *Scene) Network() (*network.Network, error) {
	nw := &network.Network{}
	for _, l := range ls.Layers {
		clr, err := colors.FromHex(l.Color)
		if err != nil {
			return nil, fmt.Errorf("layout: layer %q: %w", l.Name, err)
		}
		nw.Add(&network.Layer{
			Name:  l.Name,
			Kind:  l.Kind,
			Shape: l.Shape,
			Pos:   l.Pos,
			Size:  l.Size,
			Color: clr,
			Spin:  l.Spin,
			Pulse: network.Pulse{Amplitude: l.PulseAmplitude, Rate: l.PulseRate},
		})
	}
	for _, c := range ls.Cells {
		ly := nw.Layer(c.Layer)
		if ly == nil {
			return nil, fmt.Errorf("layout: cell refers to unknown layer %q", c.Layer)
		}
		clr, err := colors.FromHex(c.Color)
		if err != nil {
			return nil, fmt.Errorf("layout: cell of layer %q: %w", c.Layer, err)
		}
		ly.Cells = append(ly.Cells, network.Cell{Pos: c.Pos.Sub(ly.Pos), Color: clr})
	}
	return nw, nw.Validate()
}

// Save saves the layout to the given file, as TOML or JSON
// depending on the file extension.
func (ls *Scene) Save(filename string) error {
	switch ext(filename) {
	case ".toml":
		return errors.Log(tomlx.Save(ls, filename))
	case ".json":
		return errors.Log(jsonx.Save(ls, filename))
	}
	return fmt.Errorf("layout: unsupported file type %q (use .toml or .json)", filepath.Ext(filename))
}

// Open opens a layout from the given TOML or JSON file.
func Open(filename string) (*Scene, error) {
	ls := &Scene{}
	var err error
	switch ext(filename) {
	case ".toml":
		err = tomlx.Open(ls, filename)
	case ".json":
		err = jsonx.Open(ls, filename)
	default:
		err = fmt.Errorf("layout: unsupported file type %q (use .toml or .json)", filepath.Ext(filename))
	}
	if err != nil {
		return nil, err
	}
	return ls, nil
}

func ext(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}
