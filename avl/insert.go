// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree, or overwrite the value
// of an existing key, then restore the AVL balance
func (tree *Tree) Insert(key Item, value interface{}) {
	n := tree.insert(key, value)
	if nil == n {
		return
	}
	tree.insertFix(n)
}

// walk up from a newly attached node while the sub-tree height grows
func (tree *Tree) insertFix(p1 *Node) {
	for p := p1.up; nil != p; p1, p = p, p.up {
		if p1 == p.left {
			p.balance -= 1
		} else {
			p.balance += 1
		}

		switch p.balance {
		case 0: // shorter side caught up, height unchanged
			return
		case -1, +1: // height grew by one
			continue
		case -2: // left branch too high, rebalance
			if -1 == p1.balance {
				// single LL rotation
				tree.rotateRight(p)
				p.balance = 0
				p1.balance = 0
			} else {
				// double LR rotation
				tree.doubleRotateRight(p)
			}
			return
		case +2: // right branch too high, rebalance
			if +1 == p1.balance {
				// single RR rotation
				tree.rotateLeft(p)
				p.balance = 0
				p1.balance = 0
			} else {
				// double RL rotation
				tree.doubleRotateLeft(p)
			}
			return
		}
	}
}
