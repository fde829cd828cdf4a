// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runWalk(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if err := m.build(c.Args()); nil != err {
		return err
	}

	if c.Bool("reverse") {
		for p := m.tree.Last(); nil != p; p = p.Prev() {
			fmt.Fprintf(m.w, "%v → %v\n", p.Key(), p.Value())
		}
		return nil
	}

	for it := m.tree.Begin(); !it.IsEnd(); it = it.Next() {
		fmt.Fprintf(m.w, "%v → %v\n", it.Key(), it.Value())
	}
	return nil
}
