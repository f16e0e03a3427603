// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"io"
	"iter"
)

// Set - an ordered set of keys
//
// all operations are those of a Tree whose values are empty
type Set[K any] struct {
	tree *Tree[K, struct{}]
}

// SetIterator - a position in a set
type SetIterator[K any] = Iterator[K, struct{}]

// NewSet - create an initially empty set ordered by less
func NewSet[K any](less Less[K]) *Set[K] {
	return &Set[K]{
		tree: New[K, struct{}](less),
	}
}

// NewOrderedSet - create an initially empty set using the natural
// ordering of K
func NewOrderedSet[K cmp.Ordered]() *Set[K] {
	return NewSet[K](cmp.Less[K])
}

// Insert - add a key, returns false if an equivalent key was present
func (s *Set[K]) Insert(key K) (SetIterator[K], bool) {
	return s.tree.Insert(key, struct{}{})
}

// InsertAll - add every key of a sequence, returns number added
func (s *Set[K]) InsertAll(seq iter.Seq[K]) int {
	n := 0
	for key := range seq {
		if _, inserted := s.tree.Insert(key, struct{}{}); inserted {
			n += 1
		}
	}
	return n
}

// IsEmpty - true if set contains no keys
func (s *Set[K]) IsEmpty() bool { return s.tree.IsEmpty() }

// Size - number of keys in the set
func (s *Set[K]) Size() int { return s.tree.Size() }

// MaxSize - upper limit on the number of keys a set could hold
func (s *Set[K]) MaxSize() int { return s.tree.MaxSize() }

// KeyCompare - the ordering function of the set
func (s *Set[K]) KeyCompare() Less[K] { return s.tree.KeyCompare() }

// Clear - remove all keys
func (s *Set[K]) Clear() { s.tree.Clear() }

// Min - the lowest key
func (s *Set[K]) Min() (K, bool) { return s.tree.Min() }

// Max - the highest key
func (s *Set[K]) Max() (K, bool) { return s.tree.Max() }

// Find - position of an equivalent key, or End()
func (s *Set[K]) Find(key K) SetIterator[K] { return s.tree.Find(key) }

// Contains - true if an equivalent key is present
func (s *Set[K]) Contains(key K) bool { return s.tree.Contains(key) }

// Count - number of equivalent keys (0 or 1)
func (s *Set[K]) Count(key K) int { return s.tree.Count(key) }

// LowerBound - position of the first key not less than key
func (s *Set[K]) LowerBound(key K) SetIterator[K] { return s.tree.LowerBound(key) }

// UpperBound - position of the first key greater than key
func (s *Set[K]) UpperBound(key K) SetIterator[K] { return s.tree.UpperBound(key) }

// EqualRange - the half open range of keys equivalent to key
func (s *Set[K]) EqualRange(key K) (SetIterator[K], SetIterator[K]) {
	return s.tree.EqualRange(key)
}

// Select - position of the key at a 0 based index
func (s *Set[K]) Select(index int) (SetIterator[K], error) { return s.tree.Select(index) }

// Rank - number of keys less than key
func (s *Set[K]) Rank(key K) int { return s.tree.Rank(key) }

// Begin - forward iterator at the lowest key
func (s *Set[K]) Begin() SetIterator[K] { return s.tree.Begin() }

// End - forward iterator one past the highest key
func (s *Set[K]) End() SetIterator[K] { return s.tree.End() }

// RBegin - reverse iterator at the highest key
func (s *Set[K]) RBegin() SetIterator[K] { return s.tree.RBegin() }

// REnd - reverse iterator one past the lowest key
func (s *Set[K]) REnd() SetIterator[K] { return s.tree.REnd() }

// All - iterate over all keys from lowest to highest
func (s *Set[K]) All() iter.Seq[K] { return s.tree.Keys() }

// Backward - iterate over all keys from highest to lowest
func (s *Set[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.tree.Backward() {
			if !yield(k) {
				return
			}
		}
	}
}

// Clone - return a deep copy of the set
func (s *Set[K]) Clone() *Set[K] {
	return &Set[K]{
		tree: s.tree.Clone(),
	}
}

// CopyFrom - replace the contents of the set with a copy of source
func (s *Set[K]) CopyFrom(source *Set[K]) { s.tree.CopyFrom(source.tree) }

// Swap - exchange the contents of two sets
func (s *Set[K]) Swap(other *Set[K]) { s.tree.Swap(other.tree) }

// MoveFrom - take all keys from source leaving it empty
func (s *Set[K]) MoveFrom(source *Set[K]) { s.tree.MoveFrom(source.tree) }

// Equal - true if both sets hold the same keys
func (s *Set[K]) Equal(other *Set[K]) bool { return Equal(s.tree, other.tree) }

// Height - number of nodes on the longest path from the root
func (s *Set[K]) Height() int { return s.tree.Height() }

// Check - run all consistency checks
func (s *Set[K]) Check() error { return s.tree.Check() }

// Print - display an ASCII graphic representation of the set
func (s *Set[K]) Print(w io.Writer) int { return s.tree.Print(w, false) }
