// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/xyz/xyzcore"
	"cogentcore.org/netviz/config"
	"cogentcore.org/netviz/view"
)

// GUI opens the interactive window with the animated illustration.
func GUI(c *config.Config) error {
	b, err := NewBody(c)
	if err != nil {
		return err
	}
	b.RunMainWindow()
	return nil
}

// NewBody returns a body with a toolbar and the animated scene,
// ready to be run in a window.
func NewBody(c *config.Config) (*core.Body, error) {
	st, err := NewState(c)
	if err != nil {
		return nil, err
	}

	b := core.NewBody("netviz")
	se := xyzcore.NewSceneEditor(b)
	se.UpdateWidget()
	sw := se.SceneWidget()
	vw := view.New(se.SceneXYZ(), st, ViewOptions(c))

	b.AddTopBar(func(bar *core.Frame) {
		tb := core.NewToolbar(bar)
		pause := core.NewButton(tb).SetText("Pause").SetIcon(icons.Pause)
		pause.SetTooltip("pause or resume the animation")
		pause.OnClick(func(e events.Event) {
			st.Paused = !st.Paused
			if st.Paused {
				pause.SetText("Resume").SetIcon(icons.PlayArrow)
			} else {
				pause.SetText("Pause").SetIcon(icons.Pause)
			}
			pause.Update()
		})
		core.NewButton(tb).SetText("Reset").SetIcon(icons.Update).
			SetTooltip("return the layers to rest and the camera to its default view").
			OnClick(func(e events.Event) {
				st.Reset()
				vw.Update()
				errors.Log(vw.Scene.SetCamera("default"))
				sw.NeedsRender()
			})
	})

	sw.Animate(func(a *core.Animation) {
		if st.Paused {
			return
		}
		st.Step(frameTime(a.Dt))
		vw.Update()
		sw.NeedsRender()
	})
	return b, nil
}

// frameTime converts an animation tick in milliseconds to a duration.
func frameTime(ms float32) time.Duration {
	return time.Duration(ms * float32(time.Millisecond))
}
