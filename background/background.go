// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - run a set of processes on separate goroutines
// with a common shutdown signal
package background

import (
	"sync"
)

// Process - anything that can run until told to shut down
//
// Run must return promptly once shutdown is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle for a started set of processes
type T struct {
	shutdown chan struct{}
	finished chan struct{}
	once     sync.Once
}

// Start - start up a set of background processes
func Start(processes Processes, args interface{}) *T {

	register := &T{
		shutdown: make(chan struct{}),
		finished: make(chan struct{}),
	}

	wg := sync.WaitGroup{}
	wg.Add(len(processes))

	// start each background
	for _, p := range processes {
		go func(p Process) {
			defer wg.Done()
			p.Run(args, register.shutdown)
		}(p)
	}

	go func() {
		wg.Wait()
		close(register.finished)
	}()

	return register
}

// Finished - closed when every process has returned
func (t *T) Finished() <-chan struct{} {
	return t.finished
}

// Stop - signal shutdown and wait for all processes to finish
//
// safe to call more than once, or after the processes returned
func (t *T) Stop() {
	t.once.Do(func() {
		close(t.shutdown)
	})
	<-t.finished
}
