// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// upper limit on reclaimed nodes kept by a single tree
const maxFreeNodes = 1024

// allocate a new node, reuses reclaimed nodes if any are available
//
// callers must obtain the node before changing any link so that a
// failed allocation leaves the tree untouched
func (tree *core) newNode(key Item, value interface{}, up *Node) *Node {
	if nil == tree.pool {
		if 0 != tree.freeNodes {
			fault.Panic("pool corrupt")
		}
		return &Node{
			key:     key,
			value:   value,
			up:      up,
			balance: 0,
		}
	}
	p := tree.pool
	tree.pool = p.up
	p.key = key
	p.value = value
	p.balance = 0
	p.left = nil
	p.right = nil
	p.up = up // overwrites freelist pointer
	tree.freeNodes -= 1
	return p
}

// reclaim an unlinked node and keep it in the pool
func (tree *core) freeNode(node *Node) {
	node.left = nil
	node.right = nil
	node.key = nil
	node.value = nil
	node.balance = 0

	if tree.freeNodes >= maxFreeNodes {
		node.up = nil
		return
	}

	node.up = tree.pool // use as free list pointer
	tree.freeNodes += 1
	tree.pool = node
}
