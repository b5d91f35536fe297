// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background

import (
	"sync"
)

// Process - a long running task, Run must return after shutdown is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle for a set of running processes
type T struct {
	shutdown chan struct{}
	wg       sync.WaitGroup
	once     sync.Once
}

// Start - start up a set of background processes
func Start(processes Processes, args interface{}) *T {
	t := &T{
		shutdown: make(chan struct{}),
	}
	for _, p := range processes {
		t.wg.Add(1)
		go func(p Process) {
			defer t.wg.Done()
			p.Run(args, t.shutdown)
		}(p)
	}
	return t
}

// Stop - signal all processes and wait for them to finish
//
// safe to call more than once
func (t *T) Stop() {
	t.once.Do(func() {
		close(t.shutdown)
	})
	t.wg.Wait()
}

// Done - closed when every process has returned
func (t *T) Done() <-chan struct{} {
	done := make(chan struct{})
	go func() {
		t.wg.Wait()
		close(done)
	}()
	return done
}
