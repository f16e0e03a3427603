// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"math"
	"unsafe"

	"github.com/bitmark-inc/avltree/fault"
)

// Less - strict total order on keys
type Less[K any] func(a K, b K) bool

// two keys are equivalent if neither compares less than the other
func equivalent[K any](less Less[K], a K, b K) bool {
	return !less(a, b) && !less(b, a)
}

// Tree - type to hold the root node of a tree
//
// the zero value is not usable, create with New or NewOrdered
type Tree[K any, V any] struct {
	root  *node[K, V]
	end   *node[K, V] // chain sentinel: end.next = minimum, end.prev = maximum
	less  Less[K]
	count int
	alloc allocator[K, V]
}

// New - create an initially empty tree ordered by less
func New[K any, V any](less Less[K]) *Tree[K, V] {
	if nil == less {
		fault.Panicf("avl: nil less function")
	}
	return &Tree[K, V]{
		root:  nil,
		end:   newSentinel[K, V](),
		less:  less,
		count: 0,
	}
}

// NewOrdered - create an initially empty tree using the natural
// ordering of K
func NewOrdered[K cmp.Ordered, V any]() *Tree[K, V] {
	return New[K, V](cmp.Less[K])
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Size - number of nodes currently in the tree
func (tree *Tree[K, V]) Size() int {
	return tree.count
}

// MaxSize - upper limit on the number of nodes a tree could hold
func (tree *Tree[K, V]) MaxSize() int {
	return math.MaxInt / int(unsafe.Sizeof(node[K, V]{}))
}

// KeyCompare - the ordering function of the tree
func (tree *Tree[K, V]) KeyCompare() Less[K] {
	return tree.less
}

// Clear - release all nodes
//
// any iterators into the tree become unusable
func (tree *Tree[K, V]) Clear() {
	tree.root = nil
	tree.count = 0
	tree.alloc.reset()
	tree.end.prev = tree.end
	tree.end.next = tree.end
}

// Min - the lowest key in the tree
func (tree *Tree[K, V]) Min() (K, bool) {
	if nil == tree.root {
		var zero K
		return zero, false
	}
	return tree.end.next.key, true
}

// Max - the highest key in the tree
func (tree *Tree[K, V]) Max() (K, bool) {
	if nil == tree.root {
		var zero K
		return zero, false
	}
	return tree.end.prev.key, true
}
