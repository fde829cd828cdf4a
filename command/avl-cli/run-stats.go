// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

type statsResult struct {
	Count           int    `json:"count"`
	Height          int    `json:"height"`
	Balanced        bool   `json:"balanced"`
	Rotations       uint64 `json:"rotations"`
	DoubleRotations uint64 `json:"double_rotations"`
	Swaps           uint64 `json:"swaps"`
}

func runStats(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if err := m.build(c.Args()); nil != err {
		return err
	}

	stats := m.tree.Statistics()
	result := statsResult{
		Count:           m.tree.Count(),
		Height:          m.tree.Height(),
		Balanced:        m.tree.IsBalanced(),
		Rotations:       stats.Rotations,
		DoubleRotations: stats.DoubleRotations,
		Swaps:           stats.Swaps,
	}
	return printJson(m.w, result)
}
