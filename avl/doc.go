// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - ordered key/value trees with parent pointers to
// allow iteration through the nodes
//
// Two kinds of tree share one node representation:
//
//   - SearchTree: a plain binary search tree, no rebalancing
//   - Tree: an AVL tree, rebalanced after every insert/remove
//
// An individual tree is not thread safe, so either access it only in a
// single go routine or use mutex/rwmutex to restrict access.
//
// Data is associated with each key and is overwritten by an insert
// with the same key.  Remove never copies data between nodes; a node
// with two children exchanges its position with its in-order
// predecessor, so every node that stays in the tree keeps its address
// and iterators on other nodes remain usable.
package avl
