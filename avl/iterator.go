// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest key value
func (tree *core) First() *Node {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (tree *Node) first() *Node {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Last - return the node with the highest key value
func (tree *core) Last() *Node {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (tree *Node) last() *Node {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (tree *Node) Next() *Node {
	return successor(tree)
}

// Prev - given a node, return the node with the next lowest key
// value or nil if no more nodes
func (tree *Node) Prev() *Node {
	return predecessor(tree)
}

// leftmost node of the right sub-tree, otherwise the first ancestor
// reached from its left side
func successor(p *Node) *Node {
	if nil == p {
		return nil
	}
	if nil != p.right {
		return p.right.first()
	}
	up := p.up
	for nil != up && p == up.right {
		p = up
		up = p.up
	}
	return up
}

// mirror of successor
func predecessor(p *Node) *Node {
	if nil == p {
		return nil
	}
	if nil != p.left {
		return p.left.last()
	}
	up := p.up
	for nil != up && p == up.left {
		p = up
		up = p.up
	}
	return up
}

// Iterator - cursor over the nodes of a tree in ascending key order
//
// the zero value is the end of sequence.  An iterator is only valid
// until an insert or remove changes its node or any ancestor of it.
type Iterator struct {
	current *Node
}

// Begin - iterator on the lowest key, equal to End() for an empty tree
func (tree *core) Begin() Iterator {
	return Iterator{current: tree.root.first()}
}

// End - the end of sequence sentinel
func (tree *core) End() Iterator {
	return Iterator{}
}

// Next - advance to the in-order successor
func (it Iterator) Next() Iterator {
	return Iterator{current: successor(it.current)}
}

// Prev - move to the in-order predecessor
func (it Iterator) Prev() Iterator {
	return Iterator{current: predecessor(it.current)}
}

// Equal - true if both iterators refer to the same node
func (it Iterator) Equal(other Iterator) bool {
	return it.current == other.current
}

// IsEnd - true at the end of sequence
func (it Iterator) IsEnd() bool {
	return nil == it.current
}

// Node - the referenced node, nil at the end of sequence
func (it Iterator) Node() *Node {
	return it.current
}

// Key - key of the referenced node
func (it Iterator) Key() Item {
	return it.current.key
}

// Value - value of the referenced node
func (it Iterator) Value() interface{} {
	return it.current.value
}
