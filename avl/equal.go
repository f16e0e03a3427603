// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// EqualFunc - true if both trees have the same size and pairwise
// equivalent keys with values accepted by eq, compared in order
//
// keys are compared using the ordering of tree
func (tree *Tree[K, V]) EqualFunc(other *Tree[K, V], eq func(a V, b V) bool) bool {
	if tree == other {
		return true
	}
	if tree.count != other.count {
		return false
	}
	p := tree.end.next
	q := other.end.next
	for !p.isSentinel() && !q.isSentinel() {
		if !equivalent(tree.less, p.key, q.key) || !eq(p.value, q.value) {
			return false
		}
		p = p.next
		q = q.next
	}
	return p.isSentinel() && q.isSentinel()
}

// Equal - compare two trees with comparable values
func Equal[K any, V comparable](a *Tree[K, V], b *Tree[K, V]) bool {
	return a.EqualFunc(b, func(x V, y V) bool {
		return x == y
	})
}
