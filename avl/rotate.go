// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// rotateLeft - promote the right child of p into the position of p
//
// only links change, callers set balances afterwards
func (tree *core) rotateLeft(p *Node) {
	p1 := p.right
	if nil == p1 {
		return
	}
	inner := p1.left

	tree.replaceChild(p.up, p, p1)

	p1.left = p
	p.up = p1

	p.right = inner
	if nil != inner {
		inner.up = p
	}

	tree.stats.rotations.Increment()
}

// rotateRight - promote the left child of p into the position of p
func (tree *core) rotateRight(p *Node) {
	p1 := p.left
	if nil == p1 {
		return
	}
	inner := p1.right

	tree.replaceChild(p.up, p, p1)

	p1.right = p
	p.up = p1

	p.left = inner
	if nil != inner {
		inner.up = p
	}

	tree.stats.rotations.Increment()
}

// doubleRotateRight - repair a left-heavy p whose left child leans
// right: rotate the child left then p right
//
// returns the new sub-tree root with all three balances set
func (tree *core) doubleRotateRight(p *Node) *Node {
	p1 := p.left
	p2 := p1.right
	b := p2.balance

	tree.rotateLeft(p1)
	tree.rotateRight(p)

	switch b {
	case -1:
		p.balance = 1
		p1.balance = 0
	case +1:
		p.balance = 0
		p1.balance = -1
	default:
		p.balance = 0
		p1.balance = 0
	}
	p2.balance = 0

	tree.stats.doubleRotations.Increment()
	return p2
}

// doubleRotateLeft - repair a right-heavy p whose right child leans
// left: rotate the child right then p left
func (tree *core) doubleRotateLeft(p *Node) *Node {
	p1 := p.right
	p2 := p1.left
	b := p2.balance

	tree.rotateRight(p1)
	tree.rotateLeft(p)

	switch b {
	case +1:
		p.balance = -1
		p1.balance = 0
	case -1:
		p.balance = 0
		p1.balance = 1
	default:
		p.balance = 0
		p1.balance = 0
	}
	p2.balance = 0

	tree.stats.doubleRotations.Increment()
	return p2
}
