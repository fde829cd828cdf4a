// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/avltree/background"
	"github.com/bitmark-inc/logger"
)

// a stress run on its own tree
type worker struct {
	log    *logger.L
	config *Configuration
	seed   int64
	result *summary
	err    error
}

func (w *worker) Run(args interface{}, shutdown <-chan struct{}) {
	w.log.Infof("start  seed: %d", w.seed)
	w.result, w.err = runStress(w.log, w.config, w.seed, shutdown)
	if nil != w.err {
		w.log.Criticalf("failed  seed: %d  error: %s", w.seed, w.err)
	}
}

// create one worker per configured tree
func newWorkers(config *Configuration, seed int64) []*worker {
	workers := make([]*worker, config.Workers)
	for i := range workers {
		workers[i] = &worker{
			log:    logger.New(fmt.Sprintf("stress-%d", i)),
			config: config,
			seed:   seed + int64(i),
		}
	}
	return workers
}

// start workers in the background, returns the handle used to stop
// them early
func startWorkers(workers []*worker) *background.T {
	processes := make(background.Processes, len(workers))
	for i, w := range workers {
		processes[i] = w
	}
	return background.Start(processes, nil)
}

// combine the worker results, the first failure is returned
func collect(workers []*worker) (*summary, error) {
	total := &summary{}
	for _, w := range workers {
		if nil != w.err {
			return nil, fmt.Errorf("seed: %d  %w", w.seed, w.err)
		}
		total.Rounds += w.result.Rounds
		total.Mutations += w.result.Mutations
		if w.result.MaxHeight > total.MaxHeight {
			total.MaxHeight = w.result.MaxHeight
		}
		total.Statistics.Rotations += w.result.Statistics.Rotations
		total.Statistics.DoubleRotations += w.result.Statistics.DoubleRotations
		total.Statistics.Swaps += w.result.Statistics.Swaps
	}
	return total, nil
}
