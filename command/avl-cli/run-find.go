// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/fault"
)

type findResult struct {
	Key      interface{} `json:"key"`
	Value    interface{} `json:"value"`
	Depth    uint        `json:"depth"`
	Previous interface{} `json:"previous"`
	Next     interface{} `json:"next"`
}

func runFind(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	k := c.String("key")
	if "" == k {
		return ErrMissingKey
	}
	key, err := parseKey(k, m.numeric)
	if nil != err {
		return err
	}

	if err := m.build(c.Args()); nil != err {
		return err
	}

	it := m.tree.Find(key)
	if it.IsEnd() {
		return fmt.Errorf("%w: %q", fault.ErrKeyNotFound, k)
	}

	result := findResult{
		Key:   it.Key(),
		Value: it.Value(),
		Depth: it.Node().Depth(),
	}
	if prev := it.Prev(); !prev.IsEnd() {
		result.Previous = prev.Key()
	}
	if next := it.Next(); !next.IsEnd() {
		result.Next = next.Key()
	}

	return printJson(m.w, result)
}
