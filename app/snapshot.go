// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/gpu"
	"cogentcore.org/core/xyz"
	"cogentcore.org/netviz/config"
	"cogentcore.org/netviz/view"
)

// Snapshot renders the scene offscreen, after advancing the animation
// by the configured number of frames, and saves it as a PNG image.
func Snapshot(c *config.Config) error {
	st, err := NewState(c)
	if err != nil {
		return err
	}
	gp, dev, err := gpu.NoDisplayGPU()
	if err != nil {
		return errors.Log(fmt.Errorf("netviz: no GPU available for snapshot: %w", err))
	}
	defer gp.Release()

	sc := xyz.NewScene()
	sc.MultiSample = 4
	sc.SetSize(image.Point{c.Snapshot.Width, c.Snapshot.Height})
	vw := view.New(sc, st, ViewOptions(c))
	sc.ConfigOffscreen(gp, dev)
	defer sc.Destroy()

	frame := time.Duration(float64(time.Second) / float64(st.FrameRate))
	for range c.Snapshot.Frames {
		st.Step(frame)
	}
	vw.Update()

	img, err := sc.ImageUpdate()
	if err != nil {
		return err
	}
	if img == nil {
		return fmt.Errorf("netviz: GPU returned no image (image readback is not supported by this version of xyz)")
	}
	defer sc.ImageDone()
	if err := imagex.Save(img, c.Snapshot.Output); err != nil {
		return err
	}
	slog.Info("netviz: saved snapshot", "file", c.Snapshot.Output, "size", sc.Geom.Size, "frames", c.Snapshot.Frames)
	return nil
}
