// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific item, nil if not present
func (tree *core) Search(key Item) *Node {
	return tree.internalFind(key)
}

// Find - return an iterator positioned on key, or End() if the key
// is not present
func (tree *core) Find(key Item) Iterator {
	return Iterator{current: tree.internalFind(key)}
}

// root to leaf comparison walk
func (tree *core) internalFind(key Item) *Node {
	p := tree.root
	for nil != p {
		c := p.key.Compare(key)
		switch {
		case c > 0: // p.key > key
			p = p.left
		case c < 0: // p.key < key
			p = p.right
		default:
			return p
		}
	}
	return nil
}
