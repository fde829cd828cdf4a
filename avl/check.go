// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avltree/fault"
)

// CheckUp - check the up pointers for consistency
func (tree *core) CheckUp() bool {
	return nil == checkup(tree.root, nil)
}

// internal: consistency checker
func checkup(p *Node, up *Node) error {
	if nil == p {
		return nil
	}
	if p.up != up {
		return fmt.Errorf("%w: key: %v", fault.ErrParentLinkMismatch, p.key)
	}
	if err := checkup(p.left, p); nil != err {
		return err
	}
	return checkup(p.right, p)
}

// Height - number of nodes on the longest root to leaf path, zero for
// an empty tree
func (tree *core) Height() int {
	return height(tree.root)
}

func height(p *Node) int {
	if nil == p {
		return 0
	}
	l := height(p.left)
	r := height(p.right)
	if l > r {
		return 1 + l
	}
	return 1 + r
}

// IsBalanced - true if, for every node, the heights of the two
// sub-trees differ by at most one
//
// heights are recomputed from scratch, O(n)
func (tree *core) IsBalanced() bool {
	return balancedHeight(tree.root) >= 0
}

// height of a balanced sub-tree, -1 if unbalanced
func balancedHeight(p *Node) int {
	if nil == p {
		return 0
	}
	l := balancedHeight(p.left)
	if l < 0 {
		return -1
	}
	r := balancedHeight(p.right)
	if r < 0 {
		return -1
	}
	if l-r > 1 || r-l > 1 {
		return -1
	}
	if l > r {
		return 1 + l
	}
	return 1 + r
}

// Validate - check ordering and parent links of every node
func (tree *SearchTree) Validate() error {
	_, err := validate(tree.root, nil, nil, nil, false)
	return err
}

// Validate - check ordering, parent links and that every stored
// balance equals height(right) - height(left) and is in {-1, 0, +1}
func (tree *Tree) Validate() error {
	_, err := validate(tree.root, nil, nil, nil, true)
	return err
}

// returns the sub-tree height, keys must lie strictly between low
// and high (nil is unbounded)
func validate(p *Node, up *Node, low Item, high Item, balanced bool) (int, error) {
	if nil == p {
		return 0, nil
	}
	if p.up != up {
		return 0, fmt.Errorf("%w: key: %v", fault.ErrParentLinkMismatch, p.key)
	}
	if nil != low && p.key.Compare(low) <= 0 {
		return 0, fmt.Errorf("%w: key: %v  not above: %v", fault.ErrKeyOrder, p.key, low)
	}
	if nil != high && p.key.Compare(high) >= 0 {
		return 0, fmt.Errorf("%w: key: %v  not below: %v", fault.ErrKeyOrder, p.key, high)
	}

	l, err := validate(p.left, p, low, p.key, balanced)
	if nil != err {
		return 0, err
	}
	r, err := validate(p.right, p, p.key, high, balanced)
	if nil != err {
		return 0, err
	}

	if balanced {
		if p.balance < -1 || p.balance > 1 {
			return 0, fmt.Errorf("%w: key: %v  balance: %d", fault.ErrBalanceOutOfRange, p.key, p.balance)
		}
		if int(p.balance) != r-l {
			return 0, fmt.Errorf("%w: key: %v  balance: %d  heights: [%d,%d]", fault.ErrBalanceMismatch, p.key, p.balance, l, r)
		}
	}

	if l > r {
		return 1 + l, nil
	}
	return 1 + r, nil
}
