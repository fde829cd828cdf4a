// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - removes a specific item from the tree, no-op if the key
// is absent, then restore the AVL balance
func (tree *Tree) Remove(key Item) {
	q := tree.internalFind(key)
	if nil == q {
		return
	}

	// q moves to the predecessor position, where it has at most one
	// child; the predecessor takes over the position and balance of q
	if q.hasTwoChildren() {
		tree.nodeSwap(q, predecessor(q))
	}

	// which side of the parent loses height, before unlinking
	p := q.up
	diff := int8(-1)
	if q.isLeftChild() {
		diff = +1
	}

	tree.splice(q)
	tree.freeNode(q)

	tree.removeFix(p, diff)
}

// walk up from the parent of a removed node while the sub-tree
// height shrinks
//
// diff is +1 when the left side of p shrank, -1 for the right side
func (tree *Tree) removeFix(p *Node, diff int8) {
	for nil != p {

		// compute the next step before the rotations move p
		up := p.up
		nextDiff := int8(0)
		if nil != up {
			if p == up.left {
				nextDiff = +1
			} else {
				nextDiff = -1
			}
		}

		switch p.balance + diff {
		case -2: // right branch has shrunk, left too high
			p1 := p.left
			switch p1.balance {
			case -1:
				// single LL rotation, height shrinks
				tree.rotateRight(p)
				p.balance = 0
				p1.balance = 0
			case 0:
				// single LL rotation, height unchanged
				tree.rotateRight(p)
				p.balance = -1
				p1.balance = 1
				return
			default:
				// double LR rotation, height shrinks
				tree.doubleRotateRight(p)
			}

		case +2: // left branch has shrunk, right too high
			p1 := p.right
			switch p1.balance {
			case +1:
				// single RR rotation, height shrinks
				tree.rotateLeft(p)
				p.balance = 0
				p1.balance = 0
			case 0:
				// single RR rotation, height unchanged
				tree.rotateLeft(p)
				p.balance = 1
				p1.balance = -1
				return
			default:
				// double RL rotation, height shrinks
				tree.doubleRotateLeft(p)
			}

		case -1, +1: // was level, now leans, height unchanged
			p.balance += diff
			return

		default: // was leaning, now level, height shrinks
			p.balance = 0
		}

		p = up
		diff = nextDiff
	}
}
