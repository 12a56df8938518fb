// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app implements the commands of the netviz tool.
package app

import (
	"log/slog"
	"time"

	"cogentcore.org/lab/base/randx"
	"cogentcore.org/netviz/anim"
	"cogentcore.org/netviz/config"
	"cogentcore.org/netviz/flow"
	"cogentcore.org/netviz/network"
	"cogentcore.org/netviz/view"
)

// NewState builds the network and its flow arrows according to the
// config, and returns the animation state for them.
func NewState(c *config.Config) (*anim.State, error) {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd := randx.NewSysRand(seed)
	nw := network.New(rnd)
	if err := nw.Validate(); err != nil {
		return nil, err
	}
	fl, err := flow.Build(nw, &c.Arrows, rnd)
	if err != nil {
		return nil, err
	}
	if c.FlowStep > 0 {
		fl.Step = c.FlowStep
	}
	st := anim.New(nw, fl)
	st.FrameRate = c.FrameRate
	st.Speed = c.Speed
	slog.Debug("netviz: built model", "seed", seed, "layers", len(nw.Layers), "arrows", len(fl.Arrows))
	return st, nil
}

// ViewOptions returns the view options from the config.
func ViewOptions(c *config.Config) view.Options {
	return view.Options{Opacity: c.Opacity, CameraZ: c.CameraZ, FOV: c.FOV}
}
