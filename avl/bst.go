// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree, or overwrite the value
// of an existing key.  The tree is not rebalanced
func (tree *SearchTree) Insert(key Item, value interface{}) {
	tree.insert(key, value)
}

// Remove - removes a specific item from the tree, no-op if the key
// is absent.  The tree is not rebalanced
func (tree *SearchTree) Remove(key Item) {
	q := tree.internalFind(key)
	if nil == q {
		return
	}
	if q.hasTwoChildren() {
		tree.nodeSwap(q, predecessor(q))
	}
	tree.splice(q)
	tree.freeNode(q)
}

// descend to an empty child slot and attach a new node there
//
// returns the new node, or nil when an existing value was overwritten
func (tree *core) insert(key Item, value interface{}) *Node {
	if nil == tree.root {
		tree.root = tree.newNode(key, value, nil)
		return tree.root
	}

	p := tree.root
	for {
		c := p.key.Compare(key)
		switch {
		case c > 0: // p.key > key
			if nil == p.left {
				n := tree.newNode(key, value, p)
				p.left = n
				return n
			}
			p = p.left
		case c < 0: // p.key < key
			if nil == p.right {
				n := tree.newNode(key, value, p)
				p.right = n
				return n
			}
			p = p.right
		default:
			p.value = value
			return nil
		}
	}
}
