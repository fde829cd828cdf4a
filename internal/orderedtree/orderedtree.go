// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package orderedtree - key types and the common tree interface
// shared by the command line programs
package orderedtree

import (
	"io"
	"strings"

	"github.com/bitmark-inc/avltree/avl"
)

// Tree - the operations common to both kinds of tree
type Tree interface {
	Insert(avl.Item, interface{})
	Remove(avl.Item)
	Search(avl.Item) *avl.Node
	Find(avl.Item) avl.Iterator
	Begin() avl.Iterator
	Last() *avl.Node
	Count() int
	IsEmpty() bool
	Height() int
	IsBalanced() bool
	Validate() error
	Statistics() avl.Statistics
	Print(w io.Writer, printData bool) int
}

// New - create an empty AVL tree, or an unbalanced one
func New(unbalanced bool) Tree {
	if unbalanced {
		return avl.NewSearchTree()
	}
	return avl.New()
}

// IntItem - integer key
type IntItem int

// Compare - numeric order
func (i IntItem) Compare(x interface{}) int {
	j := x.(IntItem)
	switch {
	case i < j:
		return -1
	case i > j:
		return 1
	default:
		return 0
	}
}

// StringItem - string key
type StringItem string

// Compare - byte-wise order
func (s StringItem) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(StringItem)))
}
