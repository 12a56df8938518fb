// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/lab/base/randx"
	"cogentcore.org/netviz/network"
)

// Counts are the numbers of arrows drawn between the stages.
type Counts struct {

	// every InputStride-th input cell sends an arrow to each conv block
	InputStride int `default:"5" min:"1"`

	// number of arrows from each conv block to the ring around concat
	RingArrows int `default:"8"`

	// radius of the ring of arrow tips around concat
	RingRadius float32 `default:"0.6"`

	// number of arrows scattered from concat into pool
	PoolArrows int `default:"20"`

	// number of arrows scattered from each of pool, lstm and dense into the next layer
	DivergeArrows int `default:"25"`

	// number of arrows gathered from dropout into output
	ConvergeArrows int `default:"30"`
}

// Defaults sets the default counts.
func (c *Counts) Defaults() {
	c.InputStride = 5
	c.RingArrows = 8
	c.RingRadius = 0.6
	c.PoolArrows = 20
	c.DivergeArrows = 25
	c.ConvergeArrows = 30
}

// Build returns the flow arrows connecting the layers of the network:
// sampled input cells fan out to every conv block, each conv block
// feeds a ring around concat, concat scatters into pool, pool, lstm
// and dense scatter into their successor, and dropout gathers into
// the output.
func Build(nw *network.Network, c *Counts, rnd randx.Rand) (*Flow, error) {
	var errs []error
	first := func(k network.Kinds) *network.Layer {
		ly, err := nw.First(k)
		if err != nil {
			errs = append(errs, err)
		}
		return ly
	}
	if c.InputStride < 1 {
		errs = append(errs, fmt.Errorf("flow: input stride must be at least 1, not %d", c.InputStride))
	}
	input := first(network.Input)
	concat := first(network.Concat)
	pool := first(network.Pool)
	rec := first(network.Recurrent)
	dense := first(network.Dense)
	drop := first(network.Dropout)
	out := first(network.Output)
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	convs := nw.ByKind(network.Conv)

	fl := New(rnd)

	convPos := make([]math32.Vector3, len(convs))
	for i, cv := range convs {
		convPos[i] = cv.Pos
	}
	var sampled []math32.Vector3
	for i, p := range input.WorldCells() {
		if i%c.InputStride == 0 {
			sampled = append(sampled, p)
		}
	}
	fl.FanOut(sampled, convPos)

	for _, cv := range convs {
		fl.RadialRing(cv.Pos, concat.Pos, c.RingArrows, c.RingRadius)
	}

	fl.Diverging(concat.Pos, pool.BBox(), c.PoolArrows)
	fl.Diverging(pool.Pos, rec.BBox(), c.DivergeArrows)
	fl.Diverging(rec.Pos, dense.BBox(), c.DivergeArrows)
	fl.Diverging(dense.Pos, drop.BBox(), c.DivergeArrows)

	fl.Converging(drop.BBox(), out.Pos, c.ConvergeArrows)
	return fl, nil
}
