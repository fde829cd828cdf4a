// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	rootBranch  branch = iota
	leftBranch  branch = iota
	rightBranch branch = iota
)

// Print - display an ASCII graphic representation of the tree
// returns the maximum depth of the tree
//
// only the exported node accessors are used
func (tree *core) Print(w io.Writer, printData bool) int {
	return printTree(w, tree.Root(), "", rootBranch, printData)
}

// internal print - returns the maximum depth of the tree
func printTree(w io.Writer, tree *Node, prefix string, br branch, printData bool) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.Right() {
		t := "       "
		if leftBranch == br {
			t = "|      "
		}
		rd = printTree(w, tree.Right(), prefix+t, rightBranch, printData)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := interface{}(nil)
	if nil != tree.Parent() {
		up = tree.Parent().Key()
	}
	if printData {
		fmt.Fprintf(w, "%v → %v ^%v %+2d\n", tree.Key(), tree.Value(), up, tree.Balance())
	} else {
		fmt.Fprintf(w, "%v ^%v\n", tree.Key(), up)
	}
	if nil != tree.Left() {
		t := "       "
		if rightBranch == br {
			t = "|      "
		}
		ld = printTree(w, tree.Left(), prefix+t, leftBranch, printData)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
