// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"
)

// Insert - insert a new node into the tree
//
// returns the position of the new node and true, or if an equivalent
// key is already present, its position and false; in that case the
// tree (including the existing value) is not modified
func (tree *Tree[K, V]) Insert(key K, value V) (Iterator[K, V], bool) {
	p, added := tree.insert(key, value)
	return tree.iterator(p, false), added
}

// InsertOrAssign - insert a new node or overwrite the value of the
// existing node with an equivalent key
//
// the existing node does not move, so its iterators stay valid
func (tree *Tree[K, V]) InsertOrAssign(key K, value V) (Iterator[K, V], bool) {
	p, added := tree.insert(key, value)
	if !added {
		p.value = value
	}
	return tree.iterator(p, false), added
}

// InsertAll - insert every pair of a sequence, returns number of nodes added
func (tree *Tree[K, V]) InsertAll(seq iter.Seq2[K, V]) int {
	n := 0
	for key, value := range seq {
		if _, added := tree.insert(key, value); added {
			n += 1
		}
	}
	return n
}

// internal routine for insert
//
// a single descent finds both the attachment point and the chain
// neighbours: the last node passed on the right is the predecessor
// and the last node passed on the left is the successor
func (tree *Tree[K, V]) insert(key K, value V) (*node[K, V], bool) {
	prev := tree.end
	next := tree.end
	up := (*node[K, V])(nil)
	left := false

	for p := tree.root; nil != p; {
		switch {
		case tree.less(key, p.key): // key < p.key
			next = p
			up = p
			left = true
			p = p.left
		case tree.less(p.key, key): // key > p.key
			prev = p
			up = p
			left = false
			p = p.right
		default:
			return p, false
		}
	}

	n := tree.alloc.newNode(key, value)
	n.up = up
	switch {
	case nil == up:
		tree.root = n
	case left:
		up.left = n
	default:
		up.right = n
	}
	splice(n, prev, next)

	for p := up; nil != p; p = p.up {
		p.size += 1
	}
	tree.count += 1

	tree.rebalance(n)
	return n, true
}
