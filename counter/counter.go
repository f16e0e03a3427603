// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"sync/atomic"
)

// Counter - an event counter shared between goroutines
//
// the zero value is a counter at zero
type Counter struct {
	n atomic.Uint64
}

// Increment - add 1 to a counter, returns new value
func (c *Counter) Increment() uint64 {
	return c.n.Add(1)
}

// Add - add a number of events, returns new value
func (c *Counter) Add(events uint64) uint64 {
	return c.n.Add(events)
}

// Uint64 - returns current value
func (c *Counter) Uint64() uint64 {
	return c.n.Load()
}

// IsZero - check if zero
func (c *Counter) IsZero() bool {
	return 0 == c.n.Load()
}

// Swap - reset to zero returning the previous value
func (c *Counter) Swap() uint64 {
	return c.n.Swap(0)
}
