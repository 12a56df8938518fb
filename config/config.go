// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// structs for the netviz tool.
package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/netviz/flow"
)

// Config is the main config struct that contains all of the
// configuration options for the netviz tool.
type Config struct {

	// the random seed for input cell colors and arrow scattering;
	// 0 uses the current time
	Seed int64 `default:"1"`

	// the speed multiplier for all animation
	Speed float32 `default:"1" min:"0.01"`

	// the number of reference frames per second that all per-frame
	// spin and flow rates are expressed in
	FrameRate float32 `default:"60" min:"1"`

	// the pulse progress along each arrow per reference frame
	FlowStep float32 `default:"0.01"`

	// the numbers of flow arrows between the layers
	Arrows flow.Counts `display:"add-fields"`

	// the opacity of the layer solids, from 0 to 1
	Opacity float32 `default:"0.9" min:"0" max:"1"`

	// the distance of the camera from the origin along Z
	CameraZ float32 `default:"18"`

	// the vertical field of view of the camera, in degrees
	FOV float32 `default:"75"`

	// the configuration options for the layout command
	Layout Layout `cmd:"layout" display:"add-fields"`

	// the configuration options for the snapshot command
	Snapshot Snapshot `cmd:"snapshot" display:"add-fields"`

	// whether to print debug messages
	Verbose bool `flag:"v,verbose"`
}

// Layout has the configuration options for the layout command.
type Layout struct {

	// the output file, with a .toml or .json extension
	Output string `default:"netviz-layout.toml" flag:"o,output" posarg:"0" required:"-"`
}

// Snapshot has the configuration options for the snapshot command.
type Snapshot struct {

	// the output PNG file
	Output string `default:"netviz.png" flag:"o,output" posarg:"0" required:"-"`

	// the width of the image in pixels
	Width int `default:"1280" min:"16"`

	// the height of the image in pixels
	Height int `default:"720" min:"16"`

	// the number of reference frames to advance the animation
	// before taking the snapshot
	Frames int `default:"60" min:"0"`
}

// OnConfig is called by the cli package after the config is set,
// for the given command.
func (c *Config) OnConfig(cmd string) error {
	if c.Verbose {
		logx.UserLevel = slog.LevelDebug
	}
	return c.Validate(cmd)
}

// Validate returns an error for settings that cannot be used by the
// given command ("" or "gui" for the interactive window).
func (c *Config) Validate(cmd string) error {
	var errs []error
	if c.Speed <= 0 {
		errs = append(errs, fmt.Errorf("speed must be positive, not %g", c.Speed))
	}
	if c.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("frame rate must be positive, not %g", c.FrameRate))
	}
	if c.Opacity < 0 || c.Opacity > 1 {
		errs = append(errs, fmt.Errorf("opacity must be between 0 and 1, not %g", c.Opacity))
	}
	a := &c.Arrows
	counts := []struct {
		name string
		n    int
	}{
		{"ring arrows", a.RingArrows},
		{"pool arrows", a.PoolArrows},
		{"diverge arrows", a.DivergeArrows},
		{"converge arrows", a.ConvergeArrows},
	}
	if a.InputStride < 1 {
		errs = append(errs, fmt.Errorf("input stride must be at least 1, not %d", a.InputStride))
	}
	for _, ct := range counts {
		if ct.n < 0 {
			errs = append(errs, fmt.Errorf("%s must be non-negative, not %d", ct.name, ct.n))
		}
	}
	switch cmd {
	case "layout":
		switch strings.ToLower(filepath.Ext(c.Layout.Output)) {
		case ".toml", ".json":
		default:
			errs = append(errs, fmt.Errorf("layout output %q must end in .toml or .json", c.Layout.Output))
		}
	case "snapshot":
		if c.Snapshot.Output == "" {
			errs = append(errs, errors.New("snapshot output must be specified"))
		}
		if c.Snapshot.Width <= 0 || c.Snapshot.Height <= 0 {
			errs = append(errs, fmt.Errorf("snapshot size must be positive, not %dx%d", c.Snapshot.Width, c.Snapshot.Height))
		}
	}
	return errors.Join(errs...)
}
