// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// walk from the parent of a newly inserted node towards the root
// adjusting balance and rotating where a node reaches ±2
func (tree *Tree[K, V]) rebalance(n *node[K, V]) {
	c := n
	p := n.up
	for nil != p {
		if p.left == c {
			p.balance += 1 // left branch has grown
		} else {
			p.balance -= 1 // right branch has grown
		}

		switch p.balance {
		case 0:
			return // height unchanged above p
		case +1, -1:
			c = p
			p = p.up
		case +2, -2:
			s := tree.rotate(p)
			if 0 == s.balance {
				return
			}
			c = s
			p = s.up
		default:
			fault.Panicf("avl: rebalance: invalid balance: %d", p.balance)
		}
	}
}

// select and apply the rotation for a node with balance ±2
// returns the new sub-root
func (tree *Tree[K, V]) rotate(p *node[K, V]) *node[K, V] {
	switch p.balance {
	case -2:
		r := p.right
		if nil == r {
			break
		}
		switch r.balance {
		case 0, -1:
			return tree.singleLeft(p)
		case +1:
			return tree.rightLeft(p)
		}
	case +2:
		l := p.left
		if nil == l {
			break
		}
		switch l.balance {
		case 0, +1:
			return tree.singleRight(p)
		case -1:
			return tree.leftRight(p)
		}
	}
	fault.Panicf("avl: rotate: no case for balance: %d", p.balance)
	return nil
}

// single RR rotation: p is right heavy by 2
func (tree *Tree[K, V]) singleLeft(p *node[K, V]) *node[K, V] {
	r := p.right
	switch r.balance {
	case -1:
		p.balance = 0
		r.balance = 0
	case 0:
		p.balance = -1
		r.balance = +1
	default:
		fault.Panicf("avl: single left: child balance: %d", r.balance)
	}
	return tree.rotateLeft(p)
}

// single LL rotation: p is left heavy by 2
func (tree *Tree[K, V]) singleRight(p *node[K, V]) *node[K, V] {
	l := p.left
	switch l.balance {
	case +1:
		p.balance = 0
		l.balance = 0
	case 0:
		p.balance = +1
		l.balance = -1
	default:
		fault.Panicf("avl: single right: child balance: %d", l.balance)
	}
	return tree.rotateRight(p)
}

// double RL rotation: p is right heavy by 2, its right child is left heavy
func (tree *Tree[K, V]) rightLeft(p *node[K, V]) *node[K, V] {
	r := p.right
	m := r.left
	if nil == m {
		fault.Panicf("avl: right left: missing inner grandchild")
	}
	tree.rotateRight(r)
	tree.rotateLeft(p)

	switch m.balance {
	case +1:
		p.balance = 0
		r.balance = -1
	case -1:
		p.balance = +1
		r.balance = 0
	case 0:
		p.balance = 0
		r.balance = 0
	default:
		fault.Panicf("avl: right left: grandchild balance: %d", m.balance)
	}
	m.balance = 0
	return m
}

// double LR rotation: p is left heavy by 2, its left child is right heavy
func (tree *Tree[K, V]) leftRight(p *node[K, V]) *node[K, V] {
	l := p.left
	m := l.right
	if nil == m {
		fault.Panicf("avl: left right: missing inner grandchild")
	}
	tree.rotateLeft(l)
	tree.rotateRight(p)

	switch m.balance {
	case -1:
		p.balance = 0
		l.balance = +1
	case +1:
		p.balance = -1
		l.balance = 0
	case 0:
		p.balance = 0
		l.balance = 0
	default:
		fault.Panicf("avl: left right: grandchild balance: %d", m.balance)
	}
	m.balance = 0
	return m
}

// rotateLeft rotates the subtree rooted at node p,
// turning (p a (r m c)) into (r (p a m) c).
//
// only ownership, parent pointers and sizes change, balance is left
// to the caller and the chain is untouched
func (tree *Tree[K, V]) rotateLeft(p *node[K, V]) *node[K, V] {
	r := p.right
	m := r.left

	tree.replace(p, r)

	r.left = p
	p.up = r
	p.right = m
	if nil != m {
		m.up = p
	}

	p.recount()
	r.recount()
	return r
}

// rotateRight rotates the subtree rooted at node p,
// turning (p (l a m) c) into (l a (p m c)).
func (tree *Tree[K, V]) rotateRight(p *node[K, V]) *node[K, V] {
	l := p.left
	m := l.right

	tree.replace(p, l)

	l.right = p
	p.up = l
	p.left = m
	if nil != m {
		m.up = p
	}

	p.recount()
	l.recount()
	return l
}

// put n into the slot currently occupied by p
func (tree *Tree[K, V]) replace(p *node[K, V], n *node[K, V]) {
	up := p.up
	n.up = up
	switch {
	case nil == up:
		tree.root = n
	case up.left == p:
		up.left = n
	case up.right == p:
		up.right = n
	default:
		fault.Panicf("avl: corrupt tree: node is not a child of its parent")
	}
}
