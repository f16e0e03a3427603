// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package guarded - an ordered map that is safe for concurrent use
//
// a single read/write lock protects the whole tree.  Mutators hold
// the write lock; readers hold the read lock and only return copies
// of keys and values, never live iterators, since the iteration chain
// may be re-spliced by a concurrent insert.
package guarded

import (
	"cmp"
	"sync"
	"unsafe"

	"github.com/bitmark-inc/avltree/avl"
)

// Map - an avl tree behind a read/write lock
type Map[K any, V any] struct {
	lock sync.RWMutex
	tree *avl.Tree[K, V]
}

// New - create an empty map ordered by less
func New[K any, V any](less avl.Less[K]) *Map[K, V] {
	return &Map[K, V]{
		tree: avl.New[K, V](less),
	}
}

// NewOrdered - create an empty map using the natural ordering of K
func NewOrdered[K cmp.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{
		tree: avl.NewOrdered[K, V](),
	}
}

// Insert - add a key and value, false if an equivalent key was present
func (m *Map[K, V]) Insert(key K, value V) bool {
	m.lock.Lock()
	defer m.lock.Unlock()

	_, inserted := m.tree.Insert(key, value)
	return inserted
}

// InsertOrAssign - add a key or overwrite the value of an existing key
func (m *Map[K, V]) InsertOrAssign(key K, value V) bool {
	m.lock.Lock()
	defer m.lock.Unlock()

	_, inserted := m.tree.InsertOrAssign(key, value)
	return inserted
}

// Clear - remove everything
func (m *Map[K, V]) Clear() {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.tree.Clear()
}

// Swap - exchange the contents of two maps
//
// both locks are taken in address order so that concurrent swaps of
// the same pair cannot deadlock
func (m *Map[K, V]) Swap(other *Map[K, V]) {
	if m == other {
		return
	}
	first, second := m, other
	if uintptr(unsafe.Pointer(second)) < uintptr(unsafe.Pointer(first)) {
		first, second = second, first
	}
	first.lock.Lock()
	defer first.lock.Unlock()
	second.lock.Lock()
	defer second.lock.Unlock()

	m.tree.Swap(other.tree)
}

// Get - the value stored with key
func (m *Map[K, V]) Get(key K) (V, bool) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	return m.tree.Get(key)
}

// Contains - true if an equivalent key is present
func (m *Map[K, V]) Contains(key K) bool {
	m.lock.RLock()
	defer m.lock.RUnlock()

	return m.tree.Contains(key)
}

// Size - number of keys
func (m *Map[K, V]) Size() int {
	m.lock.RLock()
	defer m.lock.RUnlock()

	return m.tree.Size()
}

// Height - current height of the tree
func (m *Map[K, V]) Height() int {
	m.lock.RLock()
	defer m.lock.RUnlock()

	return m.tree.Height()
}

// Select - key and value at a 0 based index
func (m *Map[K, V]) Select(index int) (K, V, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	it, err := m.tree.Select(index)
	if nil != err {
		var k K
		var v V
		return k, v, err
	}
	k, _ := it.Key()
	v, _ := it.Value()
	return k, v, nil
}

// Rank - number of keys less than key
func (m *Map[K, V]) Rank(key K) int {
	m.lock.RLock()
	defer m.lock.RUnlock()

	return m.tree.Rank(key)
}

// Range - call f for each pair in key order until it returns false
//
// f must not call any method of the same map that takes the write lock
func (m *Map[K, V]) Range(f func(key K, value V) bool) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	for k, v := range m.tree.All() {
		if !f(k, v) {
			return
		}
	}
}

// Snapshot - an independent copy of the current contents
func (m *Map[K, V]) Snapshot() *avl.Tree[K, V] {
	m.lock.RLock()
	defer m.lock.RUnlock()

	return m.tree.Clone()
}

// Check - run all consistency checks on the tree
func (m *Map[K, V]) Check() error {
	m.lock.RLock()
	defer m.lock.RUnlock()

	return m.tree.Check()
}
