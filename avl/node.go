// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Item - a key item must implement the Compare function
//
// Compare returns a negative number, zero or a positive number when
// the item is less than, equal to or greater than the argument.  The
// order must be a strict total order over all keys in one tree.
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Node - a node in the tree
//
// the balance is height(right) - height(left) and is only maintained
// by the AVL tree, it stays zero in an unbalanced SearchTree
type Node struct {
	left    *Node       // left sub-tree
	right   *Node       // right sub-tree
	up      *Node       // points to parent node
	key     Item        // key part for ordering
	value   interface{} // value part for data storage
	balance int8        // -1, 0, +1
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// Value - read the value from a node item
func (p *Node) Value() interface{} {
	return p.value
}

// Parent - return parent node of a node
func (p *Node) Parent() *Node {
	return p.up
}

// Left - return the left child, nil if none
func (p *Node) Left() *Node {
	return p.left
}

// Right - return the right child, nil if none
func (p *Node) Right() *Node {
	return p.right
}

// Balance - height of right sub-tree minus height of left sub-tree
func (p *Node) Balance() int {
	return int(p.balance)
}

// IsLeaf - true if the node has no children
func (p *Node) IsLeaf() bool {
	return nil == p.left && nil == p.right
}

// Depth - get the depth of a node
func (p *Node) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node) GetChildrenByDepth(depth uint) []*Node {
	nodes := []*Node{}

	if depth == 0 {
		nodes = []*Node{p}
	} else {
		left := p.left
		right := p.right
		if left != nil {
			nodes = append(nodes, left.GetChildrenByDepth(depth-1)...)
		}

		if right != nil {
			nodes = append(nodes, right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}

// node relation helpers

func (p *Node) isLeftChild() bool {
	return nil != p.up && p == p.up.left
}

func (p *Node) hasTwoChildren() bool {
	return nil != p.left && nil != p.right
}
