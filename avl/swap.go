// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Swap - exchange the contents of two trees in constant time
//
// each tree keeps its own sentinel, so End() of either tree remains
// valid, all other iterators follow their nodes into the other tree
func (tree *Tree[K, V]) Swap(other *Tree[K, V]) {
	if tree == other {
		return
	}

	aFirst, aLast := tree.end.next, tree.end.prev
	bFirst, bLast := other.end.next, other.end.prev

	tree.root, other.root = other.root, tree.root
	tree.count, other.count = other.count, tree.count
	tree.alloc, other.alloc = other.alloc, tree.alloc
	tree.less, other.less = other.less, tree.less

	tree.relink(other.end, bFirst, bLast)
	other.relink(tree.end, aFirst, aLast)
}

// MoveFrom - take all nodes from source leaving it empty
func (tree *Tree[K, V]) MoveFrom(source *Tree[K, V]) {
	if tree == source {
		return
	}
	tree.Clear()
	tree.Swap(source)
}

// attach a chain that was closed by oldEnd to this tree's sentinel
func (tree *Tree[K, V]) relink(oldEnd *node[K, V], first *node[K, V], last *node[K, V]) {
	if first == oldEnd {
		tree.end.next = tree.end
		tree.end.prev = tree.end
		return
	}
	tree.end.next = first
	tree.end.prev = last
	first.prev = tree.end
	last.next = tree.end
}
