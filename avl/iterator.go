// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"
)

// Iterator - a position in a tree
//
// forward iterators step in ascending key order, reverse iterators in
// descending order.  Stepping beyond either end gives an invalid
// iterator which compares unequal to every iterator, including End()
// and other invalid iterators.
type Iterator[K any, V any] struct {
	node    *node[K, V]
	reverse bool
}

func (tree *Tree[K, V]) iterator(p *node[K, V], reverse bool) Iterator[K, V] {
	return Iterator[K, V]{
		node:    p,
		reverse: reverse,
	}
}

// Begin - forward iterator at the node with the lowest key
func (tree *Tree[K, V]) Begin() Iterator[K, V] {
	return tree.iterator(tree.end.next, false)
}

// End - forward iterator one past the node with the highest key
func (tree *Tree[K, V]) End() Iterator[K, V] {
	return tree.iterator(tree.end, false)
}

// RBegin - reverse iterator at the node with the highest key
func (tree *Tree[K, V]) RBegin() Iterator[K, V] {
	return tree.iterator(tree.end.prev, true)
}

// REnd - reverse iterator one past the node with the lowest key
func (tree *Tree[K, V]) REnd() Iterator[K, V] {
	return tree.iterator(tree.end, true)
}

// Next - advance one position in the iterator's direction
//
// advancing End() (or REnd()) gives an invalid iterator
func (it *Iterator[K, V]) Next() {
	if nil == it.node || it.node.isSentinel() {
		it.node = nil
		return
	}
	if it.reverse {
		it.node = it.node.prev
	} else {
		it.node = it.node.next
	}
}

// Prev - step back one position
//
// stepping back from End() gives the last node, stepping back from
// Begin() gives an invalid iterator
func (it *Iterator[K, V]) Prev() {
	if nil == it.node {
		return
	}
	back := it.node.prev
	if it.reverse {
		back = it.node.next
	}
	if back.isSentinel() {
		it.node = nil
		return
	}
	it.node = back
}

// Valid - true if the iterator refers to a node with a key
func (it Iterator[K, V]) Valid() bool {
	return nil == it.node.accessible()
}

// IsEnd - true if the iterator is at End() or REnd()
func (it Iterator[K, V]) IsEnd() bool {
	return nil != it.node && it.node.isSentinel()
}

// Equal - true if both iterators refer to the same position
//
// an invalid iterator has no position so is never equal
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	if nil == it.node || nil == other.node {
		return false
	}
	return it.node == other.node
}

// Key - read the key from a node item
func (it Iterator[K, V]) Key() (K, error) {
	if err := it.node.accessible(); nil != err {
		var zero K
		return zero, err
	}
	return it.node.key, nil
}

// Value - read the value from a node item
func (it Iterator[K, V]) Value() (V, error) {
	if err := it.node.accessible(); nil != err {
		var zero V
		return zero, err
	}
	return it.node.value, nil
}

// SetValue - overwrite the value of a node item
func (it Iterator[K, V]) SetValue(value V) error {
	if err := it.node.accessible(); nil != err {
		return err
	}
	it.node.value = value
	return nil
}

// Index - 0 based position of the node in ascending key order
func (it Iterator[K, V]) Index() (int, error) {
	if err := it.node.accessible(); nil != err {
		return -1, err
	}
	return it.node.index(), nil
}

// Depth - get the depth of a node, the root is at depth zero
func (it Iterator[K, V]) Depth() (int, error) {
	if err := it.node.accessible(); nil != err {
		return -1, err
	}
	return it.node.depth(), nil
}

// All - iterate over all pairs from lowest to highest key
//
// the tree must not be modified during the iteration
func (tree *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := tree.end.next; !p.isSentinel(); p = p.next {
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}

// Backward - iterate over all pairs from highest to lowest key
func (tree *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := tree.end.prev; !p.isSentinel(); p = p.prev {
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}

// Keys - iterate over all keys from lowest to highest
func (tree *Tree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for p := tree.end.next; !p.isSentinel(); p = p.next {
			if !yield(p.key) {
				return
			}
		}
	}
}
