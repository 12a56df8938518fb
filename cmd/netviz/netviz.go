// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command netviz shows an animated 3D illustration of a
// neural-network pipeline.
package main

import (
	"cogentcore.org/core/cli"
	"cogentcore.org/netviz/app"
	"cogentcore.org/netviz/config"
)

func main() {
	opts := cli.DefaultOptions("netviz", "Netviz shows an animated 3D illustration of a neural-network pipeline.")
	opts.DefaultFiles = []string{"netviz.toml"}
	cli.Run(opts, &config.Config{},
		&cli.Cmd[*config.Config]{
			Func: app.GUI,
			Name: "gui",
			Doc:  "gui opens the interactive window with the animated illustration.",
			Root: true,
		},
		&cli.Cmd[*config.Config]{
			Func: app.Layout,
			Name: "layout",
			Doc:  "layout saves the placement of all layers, input cells and flow arrows to a TOML or JSON file.",
		},
		&cli.Cmd[*config.Config]{
			Func: app.Snapshot,
			Name: "snapshot",
			Doc:  "snapshot renders the scene offscreen and saves it as a PNG image.",
		},
	)
}
