// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/internal/orderedtree"
)

func parseKey(s string, numeric bool) (avl.Item, error) {
	if !numeric {
		return orderedtree.StringItem(s), nil
	}
	n, err := strconv.Atoi(s)
	if nil != err {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}
	return orderedtree.IntItem(n), nil
}

// insert every argument, the value is its position on the command
// line so a repeated key shows the last position
func (m *metadata) build(arguments []string) error {
	if 0 == len(arguments) {
		return ErrNoKeys
	}
	for i, a := range arguments {
		key, err := parseKey(a, m.numeric)
		if nil != err {
			return err
		}
		m.tree.Insert(key, i+1)
	}

	if err := m.tree.Validate(); nil != err {
		return err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "inserted: %d  count: %d\n", len(arguments), m.tree.Count())
	}
	return nil
}
