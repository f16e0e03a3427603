// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Find - position of the node with a key equivalent to key, or End()
func (tree *Tree[K, V]) Find(key K) Iterator[K, V] {
	if p := tree.search(key); nil != p {
		return tree.iterator(p, false)
	}
	return tree.End()
}

// Get - the value stored with key
func (tree *Tree[K, V]) Get(key K) (V, bool) {
	if p := tree.search(key); nil != p {
		return p.value, true
	}
	var zero V
	return zero, false
}

// Contains - true if an equivalent key is present
func (tree *Tree[K, V]) Contains(key K) bool {
	return nil != tree.search(key)
}

// Count - number of nodes with an equivalent key (0 or 1)
func (tree *Tree[K, V]) Count(key K) int {
	if nil != tree.search(key) {
		return 1
	}
	return 0
}

// LowerBound - position of the first node whose key is not less than key
func (tree *Tree[K, V]) LowerBound(key K) Iterator[K, V] {
	return tree.iterator(tree.lowerBound(key), false)
}

// UpperBound - position of the first node whose key is greater than key
func (tree *Tree[K, V]) UpperBound(key K) Iterator[K, V] {
	return tree.iterator(tree.upperBound(key), false)
}

// EqualRange - the half open range of nodes equivalent to key
//
// if key is absent both positions are the same
func (tree *Tree[K, V]) EqualRange(key K) (Iterator[K, V], Iterator[K, V]) {
	p := tree.lowerBound(key)
	if !p.isSentinel() && equivalent(tree.less, p.key, key) {
		return tree.iterator(p, false), tree.iterator(p.next, false)
	}
	return tree.iterator(p, false), tree.iterator(p, false)
}

// internal: find node or nil
func (tree *Tree[K, V]) search(key K) *node[K, V] {
	p := tree.root
	for nil != p {
		switch {
		case tree.less(key, p.key):
			p = p.left
		case tree.less(p.key, key):
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// internal: first node not less than key, or the sentinel
func (tree *Tree[K, V]) lowerBound(key K) *node[K, V] {
	best := tree.end
	for p := tree.root; nil != p; {
		if tree.less(p.key, key) {
			p = p.right
		} else {
			best = p
			p = p.left
		}
	}
	return best
}

// internal: first node greater than key, or the sentinel
func (tree *Tree[K, V]) upperBound(key K) *node[K, V] {
	best := tree.end
	for p := tree.root; nil != p; {
		if tree.less(key, p.key) {
			best = p
			p = p.left
		} else {
			p = p.right
		}
	}
	return best
}
