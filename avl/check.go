// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"math"

	"github.com/bitmark-inc/avltree/fault"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree[K, V]) CheckUp() bool {
	if nil != tree.root && nil != tree.root.up {
		return false
	}
	return checkUp(tree.root, nil)
}

// internal: consistency checker
func checkUp[K any, V any](p *node[K, V], up *node[K, V]) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		return false
	}
	if !checkUp(p.left, p) {
		return false
	}
	return checkUp(p.right, p)
}

// CheckCounts - check that each node size matches its sub-trees and
// the root size matches the tree count
func (tree *Tree[K, V]) CheckCounts() bool {
	n, ok := checkCounts(tree.root)
	return ok && n == tree.count
}

// internal: returns actual number of nodes
func checkCounts[K any, V any](p *node[K, V]) (int, bool) {
	if nil == p {
		return 0, true
	}
	l, ok := checkCounts(p.left)
	if !ok {
		return 0, false
	}
	r, ok := checkCounts(p.right)
	if !ok {
		return 0, false
	}
	n := 1 + l + r
	return n, n == p.size
}

// CheckBalance - check that every balance factor is the difference of
// its sub-tree heights and lies in -1…+1
func (tree *Tree[K, V]) CheckBalance() bool {
	_, ok := checkBalance(tree.root)
	return ok
}

// internal: returns height of sub-tree
func checkBalance[K any, V any](p *node[K, V]) (int, bool) {
	if nil == p {
		return 0, true
	}
	lh, ok := checkBalance(p.left)
	if !ok {
		return 0, false
	}
	rh, ok := checkBalance(p.right)
	if !ok {
		return 0, false
	}
	b := lh - rh
	if b < -1 || b > 1 || b != int(p.balance) {
		return 0, false
	}
	return 1 + max(lh, rh), true
}

// CheckChain - check that the chain visits the nodes of the tree in
// order, is closed by the sentinel in both directions and has exactly
// Size() nodes
func (tree *Tree[K, V]) CheckChain() bool {
	expected := tree.root.first()
	if nil == expected {
		return tree.end.next == tree.end && tree.end.prev == tree.end
	}
	if tree.end.prev != tree.root.last() {
		return false
	}

	n := 0
	previous := tree.end
	for p := tree.end.next; !p.isSentinel(); p = p.next {
		if p != expected || p.prev != previous {
			return false
		}
		n += 1
		if n > tree.count {
			return false
		}
		previous = p
		expected = successor(p)
	}
	return nil == expected && tree.end.prev == previous && n == tree.count
}

// in-order successor using the tree structure only
func successor[K any, V any](p *node[K, V]) *node[K, V] {
	if nil != p.right {
		return p.right.first()
	}
	for nil != p.up && p.up.right == p {
		p = p.up
	}
	return p.up
}

// CheckOrder - check that keys strictly increase along the chain
func (tree *Tree[K, V]) CheckOrder() bool {
	p := tree.end.next
	if p.isSentinel() {
		return true
	}
	for q := p.next; !q.isSentinel(); p, q = q, q.next {
		if !tree.less(p.key, q.key) {
			return false
		}
	}
	return true
}

// Check - run all consistency checks
func (tree *Tree[K, V]) Check() error {
	switch {
	case !tree.CheckUp():
		return fault.ErrCorruptParent
	case !tree.CheckCounts():
		return fault.ErrCorruptCount
	case !tree.CheckBalance():
		return fault.ErrCorruptBalance
	case !tree.CheckChain():
		return fault.ErrCorruptChain
	case !tree.CheckOrder():
		return fault.ErrCorruptOrder
	}
	return nil
}

// Height - number of nodes on the longest path from the root
func (tree *Tree[K, V]) Height() int {
	h := 0
	for p := tree.root; nil != p; h += 1 {
		// descend along the heavier side
		if p.balance < 0 {
			p = p.right
		} else {
			p = p.left
		}
	}
	return h
}

// HeightBound - the maximum height of an AVL tree with n nodes
//
//	log_φ(√5·(n+1+√5/2)) - 2
//
// with a small allowance for floating point rounding
func HeightBound(n int) int {
	sqrt5 := math.Sqrt(5)
	phi := (1 + sqrt5) / 2
	h := math.Log(sqrt5*(float64(n)+1+sqrt5/2))/math.Log(phi) - 2
	return int(math.Floor(h + 1e-9))
}
