// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with parent pointers, subtree
// counts and an iteration chain
//
// Note: an individual tree is not thread safe, so either access it
// only in a single go routine or use a mutex/rwmutex to restrict
// access (see the guarded package).
//
// Every node is threaded on a doubly linked chain in key order which
// is closed at both ends by a per tree sentinel node, so stepping an
// iterator is O(1) and never re-descends the tree.  The sentinel is
// the target of End() and REnd().
//
// Each node also carries the number of nodes in its subtree, which
// allows indexing by position (Select) and computing the position of
// a key (Rank) in O(log n).
//
// Keys are ordered by a caller supplied "less" function; two keys
// are equivalent when neither is less than the other.  Inserting an
// equivalent key never modifies the tree.  There is no delete, the
// whole tree is released by Clear.
package avl
