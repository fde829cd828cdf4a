// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runRemove(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keys := c.StringSlice("key")
	if 0 == len(keys) {
		return ErrMissingKey
	}

	if err := m.build(c.Args()); nil != err {
		return err
	}

	for _, k := range keys {
		key, err := parseKey(k, m.numeric)
		if nil != err {
			return err
		}
		m.tree.Remove(key)
		if err := m.tree.Validate(); nil != err {
			return err
		}
		if m.verbose {
			fmt.Fprintf(m.e, "removed: %s  count: %d\n", k, m.tree.Count())
		}
	}

	depth := m.tree.Print(m.w, false)
	fmt.Fprintf(m.w, "depth: %d\n", depth)
	return nil
}
