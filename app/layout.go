// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"log/slog"

	"cogentcore.org/netviz/config"
	"cogentcore.org/netviz/layout"
)

// Layout saves the placement of all layers, input cells and flow
// arrows to the layout output file, as TOML or JSON.
func Layout(c *config.Config) error {
	st, err := NewState(c)
	if err != nil {
		return err
	}
	ls := layout.FromModel(st.Network, st.Flow)
	if err := ls.Save(c.Layout.Output); err != nil {
		return err
	}
	slog.Info("netviz: saved layout", "file", c.Layout.Output, "layers", len(ls.Layers), "cells", len(ls.Cells), "arrows", len(ls.Arrows))
	return nil
}
