// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/internal/orderedtree"
	"github.com/bitmark-inc/logger"
)

const (
	// trees larger than this are not drawn into the log on failure
	maximumDumpCount = 64

	// minimum interval between progress messages
	progressInterval = 5 * time.Second
)

func newTree(kind string) (orderedtree.Tree, error) {
	switch kind {
	case treeAVL:
		return orderedtree.New(false), nil
	case treeUnbalanced:
		return orderedtree.New(true), nil
	default:
		return nil, fmt.Errorf("%w: %q", fault.ErrInvalidTreeType, kind)
	}
}

// summary - totals for a completed run
type summary struct {
	Rounds     int
	Mutations  int
	MaxHeight  int
	Statistics avl.Statistics
}

type stresser struct {
	log           *logger.L
	tree          orderedtree.Tree
	rng           *rand.Rand
	keys          int
	validateEvery int
	mutations     int
	maxHeight     int
	progress      *rate.Limiter
}

// runStress - insert, verify and remove a random permutation of keys
// once per round on a single tree
//
// returns early without error when stop is closed
func runStress(log *logger.L, config *Configuration, seed int64, stop <-chan struct{}) (*summary, error) {
	tree, err := newTree(config.Tree)
	if nil != err {
		return nil, err
	}

	s := &stresser{
		log:           log,
		tree:          tree,
		rng:           rand.New(rand.NewSource(seed)),
		keys:          config.Keys,
		validateEvery: config.ValidateEvery,
		progress:      rate.NewLimiter(rate.Every(progressInterval), 1),
	}

	rounds := 0
loop:
	for rounds < config.Rounds {
		select {
		case <-stop:
			log.Warnf("stopped after: %d rounds", rounds)
			break loop
		default:
		}

		if err := s.round(); nil != err {
			s.dump()
			return nil, fmt.Errorf("round: %d  %w", rounds, err)
		}
		rounds += 1

		log.Infof("round: %d  mutations: %d  height: %d", rounds, s.mutations, s.maxHeight)
	}

	stats := tree.Statistics()
	log.Infof("rotations: %d  double rotations: %d  swaps: %d", stats.Rotations, stats.DoubleRotations, stats.Swaps)

	return &summary{
		Rounds:     rounds,
		Mutations:  s.mutations,
		MaxHeight:  s.maxHeight,
		Statistics: stats,
	}, nil
}

// a single fill, check and drain cycle
func (s *stresser) round() error {
	tree := s.tree

	for _, k := range s.rng.Perm(s.keys) {
		tree.Insert(orderedtree.IntItem(k), k)
		if err := s.mutated(); nil != err {
			return fmt.Errorf("insert: %d  %w", k, err)
		}
	}

	// overwriting must not change the count
	for k := 1; k < s.keys; k += 2 {
		tree.Insert(orderedtree.IntItem(k), -k)
	}
	if s.keys != tree.Count() {
		return fmt.Errorf("%w: %d  expected: %d", fault.ErrWrongItemCount, tree.Count(), s.keys)
	}
	if err := tree.Validate(); nil != err {
		return err
	}

	height := tree.Height()
	if height > s.maxHeight {
		s.maxHeight = height
	}
	s.log.Debugf("filled: %d keys  height: %d  balanced: %v", s.keys, height, tree.IsBalanced())

	if err := s.traverse(); nil != err {
		return err
	}

	for _, k := range s.rng.Perm(s.keys) {
		tree.Remove(orderedtree.IntItem(k))

		// absent keys are ignored
		tree.Remove(orderedtree.IntItem(s.keys + k))

		if err := s.mutated(); nil != err {
			return fmt.Errorf("remove: %d  %w", k, err)
		}
		if nil != tree.Search(orderedtree.IntItem(k)) {
			return fmt.Errorf("%w: %d", fault.ErrWrongValue, k)
		}
	}

	if !tree.IsEmpty() {
		return fault.ErrTreeNotEmpty
	}
	return nil
}

// every key must appear once, in ascending order, carrying the last
// value written
func (s *stresser) traverse() error {
	n := 0
	previous := orderedtree.IntItem(-1)
	for it := s.tree.Begin(); !it.IsEnd(); it = it.Next() {
		k := it.Key().(orderedtree.IntItem)
		if k.Compare(previous) <= 0 {
			return fmt.Errorf("%w: %d after: %d", fault.ErrTraversalOrder, k, previous)
		}
		expected := int(k)
		if 1 == expected%2 {
			expected = -expected
		}
		if v := it.Value().(int); v != expected {
			return fmt.Errorf("%w: key: %d  value: %d  expected: %d", fault.ErrWrongValue, k, v, expected)
		}
		previous = k
		n += 1
	}
	if s.keys != n {
		return fmt.Errorf("%w: %d  expected: %d", fault.ErrWrongItemCount, n, s.keys)
	}
	return nil
}

// count a mutation and validate the whole tree at the configured
// interval
func (s *stresser) mutated() error {
	s.mutations += 1
	if s.progress.Allow() {
		s.log.Debugf("mutations: %d", s.mutations)
	}
	if 0 == s.validateEvery || 0 != s.mutations%s.validateEvery {
		return nil
	}
	return s.tree.Validate()
}

// draw a small failed tree into the log
func (s *stresser) dump() {
	if s.tree.Count() > maximumDumpCount {
		return
	}
	var b strings.Builder
	s.tree.Print(&b, true)
	s.log.Criticalf("tree:\n%s", b.String())
}
