// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/counter"
)

// state shared by both kinds of tree
type core struct {
	root      *Node
	pool      *Node // linked list of reclaimed nodes
	freeNodes int   // number of nodes in the pool
	stats     statistics
}

// SearchTree - an unbalanced binary search tree
type SearchTree struct {
	core
}

// Tree - type to hold the root node of an AVL tree
type Tree struct {
	core
}

// restructuring counters
type statistics struct {
	rotations       counter.Counter
	doubleRotations counter.Counter
	swaps           counter.Counter
}

// Statistics - number of restructuring operations since the tree
// was created
type Statistics struct {
	Rotations       uint64 // every single rotation, including both halves of a double
	DoubleRotations uint64 // zig-zag repairs
	Swaps           uint64 // structural swaps done by two-children removal
}

// New - create an initially empty AVL tree
func New() *Tree {
	return &Tree{}
}

// NewSearchTree - create an initially empty unbalanced tree
func NewSearchTree() *SearchTree {
	return &SearchTree{}
}

// IsEmpty - true if tree contains no data
func (tree *core) IsEmpty() bool {
	return nil == tree.root
}

// Root - return the root node of the tree
func (tree *core) Root() *Node {
	return tree.root
}

// Count - number of nodes currently in the tree
//
// the tree keeps no size counter so this walks every node
func (tree *core) Count() int {
	n := 0
	for p := tree.root.first(); nil != p; p = successor(p) {
		n += 1
	}
	return n
}

// Clear - remove every node, the tree becomes empty
func (tree *core) Clear() {
	clearNodes(tree.root)
	tree.root = nil
	tree.pool = nil
	tree.freeNodes = 0
}

// teardown without recursion, an unbalanced tree can be as deep as
// it is large.  All links are cut so that stale iterators terminate
// instead of walking into a discarded graph
func clearNodes(p *Node) {
	stack := make([]*Node, 0, 32)
	if nil != p {
		stack = append(stack, p)
	}
	for len(stack) > 0 {
		p = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if nil != p.left {
			stack = append(stack, p.left)
		}
		if nil != p.right {
			stack = append(stack, p.right)
		}
		p.left = nil
		p.right = nil
		p.up = nil
		p.key = nil
		p.value = nil
		p.balance = 0
	}
}

// Statistics - return a snapshot of the restructuring counters
func (tree *core) Statistics() Statistics {
	return Statistics{
		Rotations:       tree.stats.rotations.Uint64(),
		DoubleRotations: tree.stats.doubleRotations.Uint64(),
		Swaps:           tree.stats.swaps.Uint64(),
	}
}

// ResetStatistics - zero the restructuring counters
func (tree *core) ResetStatistics() {
	tree.stats.rotations.Reset()
	tree.stats.doubleRotations.Reset()
	tree.stats.swaps.Reset()
}
