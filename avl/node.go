// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// to distinguish key bearing nodes from the chain sentinel
type nodeKind uint8

const (
	elementNode nodeKind = iota
	sentinelNode
)

// a node in the tree
//
// left and right are owned by this node, all other pointers are
// back references
type node[K any, V any] struct {
	left    *node[K, V] // left sub-tree
	right   *node[K, V] // right sub-tree
	up      *node[K, V] // points to parent node
	prev    *node[K, V] // iteration chain: next lower key or the sentinel
	next    *node[K, V] // iteration chain: next higher key or the sentinel
	key     K           // key part for ordering
	value   V           // value part for data storage
	size    int         // number of nodes in this sub-tree
	balance int8        // +1 left heavy, 0, -1 right heavy
	kind    nodeKind
}

// create the sentinel for an empty tree
func newSentinel[K any, V any]() *node[K, V] {
	s := &node[K, V]{
		kind: sentinelNode,
	}
	s.prev = s
	s.next = s
	return s
}

func (p *node[K, V]) isSentinel() bool {
	return sentinelNode == p.kind
}

// check that a node can be dereferenced
func (p *node[K, V]) accessible() error {
	if nil == p || p.isSentinel() {
		return fault.ErrOutOfRange
	}
	return nil
}

// size of a possibly empty sub-tree
func sizeOf[K any, V any](p *node[K, V]) int {
	if nil == p {
		return 0
	}
	return p.size
}

// recompute the size of a node from its children
func (p *node[K, V]) recount() {
	p.size = 1 + sizeOf(p.left) + sizeOf(p.right)
}

// internal: lowest node in a sub-tree
func (p *node[K, V]) first() *node[K, V] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *node[K, V]) last() *node[K, V] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// number of edges between a node and the root
func (p *node[K, V]) depth() int {
	count := 0
	for up := p.up; nil != up; up = up.up {
		count += 1
	}
	return count
}

// 0 based position of a node in key order
func (p *node[K, V]) index() int {
	index := sizeOf(p.left)
	for q := p; nil != q.up; q = q.up {
		if q.up.right == q {
			index += sizeOf(q.up.left) + 1
		}
	}
	return index
}

// splice a node into the chain between two adjacent nodes, either of
// which may be the sentinel
func splice[K any, V any](p *node[K, V], prev *node[K, V], next *node[K, V]) {
	p.prev = prev
	p.next = next
	prev.next = p
	next.prev = p
}
