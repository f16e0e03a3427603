// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Select - position of the node at a 0 based index in key order
func (tree *Tree[K, V]) Select(index int) (Iterator[K, V], error) {
	if index < 0 || index >= tree.count {
		return tree.End(), fault.ErrIndexOutOfRange
	}

	p := tree.root
	for nil != p {
		nl := sizeOf(p.left)
		switch {
		case index < nl:
			p = p.left
		case index > nl:
			// subtract left nodes + 1 (for this node)
			index -= nl + 1
			p = p.right
		default:
			return tree.iterator(p, false), nil
		}
	}

	fault.Panicf("avl: select: sizes inconsistent with count: %d", tree.count)
	return tree.End(), nil
}

// Rank - number of nodes with keys less than key
//
// for a present key this is its index, for a key above all others
// it is Size()
func (tree *Tree[K, V]) Rank(key K) int {
	rank := 0
	for p := tree.root; nil != p; {
		if tree.less(p.key, key) {
			rank += sizeOf(p.left) + 1
			p = p.right
		} else {
			p = p.left
		}
	}
	return rank
}
