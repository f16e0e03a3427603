// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/bitmark-inc/avltree/counter"
)

// test incrementing a counter
func TestCounter(t *testing.T) {

	var c1 counter.Counter

	if !c1.IsZero() {
		t.Errorf("counter is not zero at start: %d", c1.Uint64())
	}

	c1.Increment()
	c1.Increment()
	c1.Increment()

	if 3 != c1.Uint64() {
		t.Errorf("counter is not 3 after incrementing: %d", c1.Uint64())
	}

	if n := c1.Add(7); 10 != n {
		t.Errorf("counter is not 10 after adding: %d", n)
	}

	if n := c1.Swap(); 10 != n {
		t.Errorf("swap returned: %d  expected: 10", n)
	}
	if !c1.IsZero() {
		t.Errorf("counter did not return to zero: %d", c1.Uint64())
	}
}

func TestCounterConcurrent(t *testing.T) {

	var c counter.Counter

	const workers = 8
	const increments = 1000

	wg := sync.WaitGroup{}
	wg.Add(workers)
	for i := 0; i < workers; i += 1 {
		go func() {
			defer wg.Done()
			for j := 0; j < increments; j += 1 {
				c.Increment()
			}
		}()
	}
	wg.Wait()

	if workers*increments != c.Uint64() {
		t.Errorf("counter: %d  expected: %d", c.Uint64(), workers*increments)
	}
}
