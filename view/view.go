// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package view renders a network illustration into an [xyz.Scene],
// and keeps the scene in sync with the animation state.
package view

import (
	"fmt"
	"image/color"
	"log/slog"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"cogentcore.org/netviz/anim"
	"cogentcore.org/netviz/flow"
	"cogentcore.org/netviz/network"
)

// Background is the scene background color.
var Background = colors.FromRGB(0x01, 0x11, 0x11)

// Options are the display settings for a [View].
type Options struct {

	// Opacity of the layer solids, from 0 to 1.
	Opacity float32

	// CameraZ is the distance of the camera from the origin along Z.
	CameraZ float32

	// FOV is the vertical field of view of the camera, in degrees.
	FOV float32
}

// Defaults sets the default options.
func (o *Options) Defaults() {
	o.Opacity = 0.9
	o.CameraZ = 18
	o.FOV = 75
}

// View is the 3D scene for an animated network illustration.
type View struct {

	// Scene is the xyz scene everything is added to.
	Scene *xyz.Scene

	// State is the animation state shown by the view.
	State *anim.State

	// Options are the display settings.
	Options Options

	// Layers are the scene nodes for the layers, parallel to
	// State.Network.Layers: a [xyz.Group] for grids, else a [xyz.Solid].
	Layers []xyz.Node

	// Pulses are the pulse solids, parallel to State.Flow.Arrows.
	Pulses []*xyz.Solid
}

// New adds the lights, camera, layers and flow arrows of the given
// animation state to the scene, and returns the view.
func New(sc *xyz.Scene, st *anim.State, opts Options) *View {
	vw := &View{Scene: sc, State: st, Options: opts}
	vw.configScene()
	vw.configLayers()
	vw.configFlow()
	vw.Update()
	slog.Debug("netviz: built scene", "layers", len(vw.Layers), "arrows", len(vw.Pulses))
	return vw
}

func (vw *View) configScene() {
	sc := vw.Scene
	sc.Background = colors.Uniform(Background)

	xyz.NewAmbient(sc, "ambient", 0.4, xyz.DirectSun)

	key := xyz.NewDirectional(sc, "key", 1.2, xyz.DirectSun)
	key.Pos.Set(10, 20, 10)

	rim := xyz.NewDirectional(sc, "rim", 0.6, xyz.DirectSun)
	rim.Color = colors.FromRGB(0, 0xff, 0xff)
	rim.Pos.Set(-10, 5, -10)

	sc.Camera.FOV = vw.Options.FOV
	sc.Camera.Pose.Pos.Set(0, 0, vw.Options.CameraZ)
	sc.Camera.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))
	sc.SaveCamera("default")
}

// shiny sets the glossy, glowing material used for all layers.
func (vw *View) shiny(sld *xyz.Solid, clr color.RGBA) {
	clr.A = uint8(vw.Options.Opacity*255 + 0.5)
	sld.SetColor(clr).SetEmissive(glow(clr, 0.6)).SetShiny(100).SetReflective(0.5)
}

// glow returns the color scaled by the given intensity, fully opaque.
func glow(clr color.RGBA, intensity float32) color.RGBA {
	sc := func(v uint8) uint8 {
		return uint8(min(float32(v)*intensity, 255))
	}
	return color.RGBA{sc(clr.R), sc(clr.G), sc(clr.B), 255}
}

func (vw *View) configLayers() {
	sc := vw.Scene
	nw := vw.State.Network
	cell := xyz.NewBox(sc, "cell", network.CellSize, network.CellSize, network.CellSize)
	vw.Layers = make([]xyz.Node, len(nw.Layers))
	for i, ly := range nw.Layers {
		switch ly.Shape {
		case network.Grid:
			gp := xyz.NewGroup(sc)
			gp.SetName(ly.Name)
			gp.SetPos(ly.Pos.X, ly.Pos.Y, ly.Pos.Z)
			for j, c := range ly.Cells {
				sld := xyz.NewSolid(gp).SetMesh(cell).SetPos(c.Pos.X, c.Pos.Y, c.Pos.Z)
				sld.SetName(fmt.Sprintf("cell-%02d", j))
				vw.shiny(sld, c.Color)
			}
			vw.Layers[i] = gp
		case network.Sphere:
			ms := xyz.NewSphere(sc, "sphere-"+ly.Name, ly.Radius(), 32)
			vw.Layers[i] = vw.newLayerSolid(ly, ms)
		default:
			ms := xyz.NewBox(sc, "box-"+ly.Name, ly.Size.X, ly.Size.Y, ly.Size.Z)
			vw.Layers[i] = vw.newLayerSolid(ly, ms)
		}
	}
}

func (vw *View) newLayerSolid(ly *network.Layer, ms xyz.Mesh) *xyz.Solid {
	sld := xyz.NewSolid(vw.Scene).SetMesh(ms).SetPos(ly.Pos.X, ly.Pos.Y, ly.Pos.Z)
	sld.SetName(ly.Name)
	vw.shiny(sld, ly.Color)
	return sld
}

func (vw *View) configFlow() {
	sc := vw.Scene
	fl := vw.State.Flow
	if fl == nil {
		return
	}
	// the shaft is a unit-length open tube, scaled per arrow
	shaft := xyz.NewCylinder(sc, "shaft", 1, flow.ShaftRadius, 8, 1, false, false)
	cone := xyz.NewCone(sc, "cone", flow.ConeHeight, flow.ConeRadius, 16, 1, true)
	pulse := xyz.NewSphere(sc, "pulse", flow.PulseRadius, 12)

	root := xyz.NewGroup(sc)
	root.SetName("flow")
	vw.Pulses = make([]*xyz.Solid, len(fl.Arrows))
	for i, ar := range fl.Arrows {
		gp := xyz.NewGroup(root)
		gp.SetName(fmt.Sprintf("arrow-%03d", i))

		st := ar.Shaft()
		ss := xyz.NewSolid(gp).SetMesh(shaft)
		ss.SetName("shaft")
		ss.Pose.Pos = st.Pos
		ss.Pose.Quat = st.Quat
		ss.Pose.Scale.Set(1, st.Length, 1)
		ss.SetColor(ar.Color).SetEmissive(glow(ar.Color, 1.5))

		ct := ar.Cone()
		cs := xyz.NewSolid(gp).SetMesh(cone)
		cs.SetName("cone")
		cs.Pose.Pos = ct.Pos
		cs.Pose.Quat = ct.Quat
		cs.SetColor(ar.Color).SetEmissive(glow(ar.Color, 1.5))

		ps := xyz.NewSolid(gp).SetMesh(pulse)
		ps.SetName("pulse")
		ps.SetColor(colors.White).SetEmissive(colors.White)
		vw.Pulses[i] = ps
	}
}

// Update copies the current animation state into the scene node poses,
// and marks the scene as needing an update.
func (vw *View) Update() {
	st := vw.State
	for i, ly := range st.Network.Layers {
		pose := &vw.Layers[i].AsNodeBase().Pose
		if ly.Spin != 0 {
			pose.SetAxisRotation(0, 1, 0, math32.RadToDeg(st.Angles[i]))
		}
		if ly.Pulse.Amplitude != 0 {
			pose.Scale.SetScalar(st.Scales[i])
		}
	}
	if st.Flow != nil {
		for i, ar := range st.Flow.Arrows {
			vw.Pulses[i].Pose.Pos = ar.PulsePos()
		}
	}
	vw.Scene.SetNeedsUpdate()
}
