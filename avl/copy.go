// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// progress of the copy at a source node
type visit uint8

const (
	unvisited visit = iota // nothing below this node copied yet
	leftDone               // left sub-tree copied, node itself not yet created
	rightDone              // node created and right sub-tree copied
)

// one frame of the explicit in-order walk of the source tree
type copyFrame[K any, V any] struct {
	source *node[K, V]
	state  visit
}

// Clone - return a deep copy of the tree
func (tree *Tree[K, V]) Clone() *Tree[K, V] {
	c := New[K, V](tree.less)
	c.copyNodes(tree)
	return c
}

// CopyFrom - replace the contents of the tree with a deep copy of source
//
// the ordering function is also copied
func (tree *Tree[K, V]) CopyFrom(source *Tree[K, V]) {
	if tree == source {
		return
	}
	tree.Clear()
	tree.less = source.less
	tree.copyNodes(source)
}

// rebuild an isomorphic copy of source into an empty tree
//
// uses two explicit stacks instead of recursion: frames drives an
// in-order walk of the source and built holds copied nodes that are
// still waiting to be attached to their parent.  Nodes are created in
// ascending order, so the chain is threaded by appending.
func (tree *Tree[K, V]) copyNodes(source *Tree[K, V]) {
	if nil == source.root {
		return
	}

	tree.alloc.reserve(source.count)

	frames := []copyFrame[K, V]{{source: source.root, state: unvisited}}
	built := []*node[K, V](nil)
	last := tree.end

	// create the copy of a source node and append it to the chain
	create := func(s *node[K, V]) *node[K, V] {
		n := tree.alloc.newNode(s.key, s.value)
		n.balance = s.balance
		n.size = s.size
		splice(n, last, tree.end)
		last = n
		return n
	}

	// a copied sub-tree is complete
	finish := func(s *node[K, V], n *node[K, V]) {
		if s == source.root {
			tree.root = n
		} else {
			built = append(built, n)
		}
	}

	pop := func() *node[K, V] {
		n := built[len(built)-1]
		built = built[:len(built)-1]
		return n
	}

	for len(frames) > 0 {
		f := frames[len(frames)-1]
		frames = frames[:len(frames)-1]
		s := f.source

		hasLeft := nil != s.left
		hasRight := nil != s.right

		switch {
		// left not visited: descend left
		case hasLeft && unvisited == f.state:
			frames = append(frames,
				copyFrame[K, V]{source: s, state: leftDone},
				copyFrame[K, V]{source: s.left, state: unvisited},
			)

		// left visited, right not visited: create, attach left, descend right
		case hasLeft && leftDone == f.state && hasRight:
			n := create(s)
			attachLeft(n, pop())
			built = append(built, n)
			frames = append(frames,
				copyFrame[K, V]{source: s, state: rightDone},
				copyFrame[K, V]{source: s.right, state: unvisited},
			)

		// left visited, right absent: create, attach left, complete
		case hasLeft && leftDone == f.state && !hasRight:
			n := create(s)
			attachLeft(n, pop())
			finish(s, n)

		// right visited: attach right, complete
		case rightDone == f.state:
			r := pop()
			n := pop()
			attachRight(n, r)
			finish(s, n)

		// left absent, right not visited: create, descend right
		case !hasLeft && unvisited == f.state && hasRight:
			n := create(s)
			built = append(built, n)
			frames = append(frames,
				copyFrame[K, V]{source: s, state: rightDone},
				copyFrame[K, V]{source: s.right, state: unvisited},
			)

		// leaf
		case !hasLeft && unvisited == f.state && !hasRight:
			finish(s, create(s))

		default:
			fault.Panicf("avl: copy: invalid state: %d  left: %t  right: %t", f.state, hasLeft, hasRight)
		}
	}

	tree.count = source.count
}

func attachLeft[K any, V any](p *node[K, V], child *node[K, V]) {
	p.left = child
	child.up = p
}

func attachRight[K any, V any](p *node[K, V], child *node[K, V]) {
	p.right = child
	child.up = p
}
