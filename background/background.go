// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background

import (
	"sync"
)

// Process - a worker that runs until its work is complete or
// shutdown is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle for a running set of processes
type T struct {
	shutdown chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// Start - start up a set of background processes
//
// every process receives the same args
func Start(processes Processes, args interface{}) *T {

	register := &T{
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
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
		close(register.done)
	}()

	return register
}

// Done - closed when every process has returned
func (t *T) Done() <-chan struct{} {
	return t.done
}

// Stop - signal all processes to shut down and wait for them to finish
//
// safe to call more than once or after all processes have returned
func (t *T) Stop() {
	t.stopOnce.Do(func() {
		close(t.shutdown)
	})
	<-t.done
}
