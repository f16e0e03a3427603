// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// slab sizes
const (
	minimumSlab = 16
	maximumSlab = 4096
)

// per tree node allocator
//
// nodes are carved from slabs and never returned individually, the
// whole set of slabs is dropped by reset
type allocator[K any, V any] struct {
	slab       []node[K, V] // current slab, len = nodes handed out
	slabSize   int          // capacity of the next slab
	totalNodes int          // total nodes created since last reset
}

// allocate a new node
func (a *allocator[K, V]) newNode(key K, value V) *node[K, V] {
	if len(a.slab) == cap(a.slab) {
		a.grow(0)
	}
	a.slab = a.slab[:len(a.slab)+1]
	p := &a.slab[len(a.slab)-1]
	p.key = key
	p.value = value
	p.size = 1
	a.totalNodes += 1
	return p
}

// make sure the next n allocations come from a single slab
func (a *allocator[K, V]) reserve(n int) {
	if cap(a.slab)-len(a.slab) >= n {
		return
	}
	a.grow(n)
}

// start a new slab, the previous one stays alive as long as any of
// its nodes are referenced
func (a *allocator[K, V]) grow(n int) {
	switch {
	case a.slabSize < minimumSlab:
		a.slabSize = minimumSlab
	case a.slabSize < maximumSlab:
		a.slabSize *= 2
	}
	size := a.slabSize
	if n > size {
		size = n
	}
	a.slab = make([]node[K, V], 0, size)
}

// release all slabs
func (a *allocator[K, V]) reset() {
	a.slab = nil
	a.slabSize = 0
	a.totalNodes = 0
}
