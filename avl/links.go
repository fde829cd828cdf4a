// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// make replacement occupy the child slot of parent that old occupies
// (or the root slot when parent is nil), replacement may be nil
func (tree *core) replaceChild(parent *Node, old *Node, replacement *Node) {
	if nil == parent {
		tree.root = replacement
	} else if old == parent.left {
		parent.left = replacement
	} else {
		parent.right = replacement
	}
	if nil != replacement {
		replacement.up = parent
	}
}

// detach a node that has at most one child, promoting that child
// into its position
func (tree *core) splice(p *Node) {
	child := p.left
	if nil == child {
		child = p.right
	}
	tree.replaceChild(p.up, p, child)
	p.up = nil
	p.left = nil
	p.right = nil
}

// exchange the positions of two nodes in the link graph
//
// keys and values stay with their nodes; balances belong to the
// position and are exchanged.  Either node may be the parent or a
// child of the other.
func (tree *core) nodeSwap(n1 *Node, n2 *Node) {
	if n1 == n2 || nil == n1 || nil == n2 {
		return
	}

	n1p := n1.up
	n1l := n1.left
	n1r := n1.right
	n1IsLeft := n1.isLeftChild()

	n2p := n2.up
	n2l := n2.left
	n2r := n2.right
	n2IsLeft := n2.isLeftChild()

	n1.up, n2.up = n2p, n1p
	n1.left, n2.left = n2l, n1l
	n1.right, n2.right = n2r, n1r

	// adjacent nodes: the plain exchange above made one of them its
	// own parent or child
	switch {
	case n2 == n1r:
		n2.right = n1
		n1.up = n2
	case n1 == n2r:
		n1.right = n2
		n2.up = n1
	case n2 == n1l:
		n2.left = n1
		n1.up = n2
	case n1 == n2l:
		n1.left = n2
		n2.up = n1
	}

	// reciprocal links from the old neighbours
	if nil != n1p && n1p != n2 {
		if n1IsLeft {
			n1p.left = n2
		} else {
			n1p.right = n2
		}
	}
	if nil != n1l && n1l != n2 {
		n1l.up = n2
	}
	if nil != n1r && n1r != n2 {
		n1r.up = n2
	}

	if nil != n2p && n2p != n1 {
		if n2IsLeft {
			n2p.left = n1
		} else {
			n2p.right = n1
		}
	}
	if nil != n2l && n2l != n1 {
		n2l.up = n1
	}
	if nil != n2r && n2r != n1 {
		n2r.up = n1
	}

	if tree.root == n1 {
		tree.root = n2
	} else if tree.root == n2 {
		tree.root = n1
	}

	n1.balance, n2.balance = n2.balance, n1.balance

	tree.stats.swaps.Increment()
}
