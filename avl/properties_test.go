// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

func collect[K any, V any](tree *avl.Tree[K, V]) []K {
	keys := []K{}
	for k := range tree.Keys() {
		keys = append(keys, k)
	}
	return keys
}

func TestSmallMap(t *testing.T) {
	tree := avl.NewOrdered[int, string]()
	tree.Insert(8, "eight")
	tree.Insert(2, "two")
	tree.Insert(-1, "minus one")

	assert.Equal(t, []int{-1, 2, 8}, collect(tree), "wrong order")
	assert.Equal(t, 2, tree.Rank(3), "wrong rank")

	it, err := tree.Select(0)
	assert.Nil(t, err, "select error")
	k, err := it.Key()
	assert.Nil(t, err, "key error")
	assert.Equal(t, -1, k, "wrong select")

	lowest, ok := tree.Min()
	assert.True(t, ok, "no minimum")
	assert.Equal(t, -1, lowest, "wrong minimum")
	highest, ok := tree.Max()
	assert.True(t, ok, "no maximum")
	assert.Equal(t, 8, highest, "wrong maximum")

	v, ok := tree.Get(2)
	assert.True(t, ok, "missing key")
	assert.Equal(t, "two", v, "wrong value")
	_, ok = tree.Get(3)
	assert.False(t, ok, "absent key found")
}

func TestAscendingInsertHeight(t *testing.T) {
	tree := avl.NewOrdered[int, int]()
	expected := []int{}
	for i := 1; i <= 10; i += 1 {
		tree.Insert(i, i*i)
		expected = append(expected, i)
		assert.Nil(t, tree.Check(), "inconsistent after insert: %d", i)
	}

	assert.LessOrEqual(t, tree.Height(), 4, "tree too high")
	assert.Equal(t, expected, collect(tree), "wrong order")
}

func TestHeightBound(t *testing.T) {
	assert.Equal(t, 4, avl.HeightBound(10), "wrong bound for 10")
	assert.Equal(t, 2, avl.HeightBound(1), "wrong bound for 1")

	r := rand.New(rand.NewSource(10000))
	tree := avl.NewOrdered[int, struct{}]()
	for tree.Size() < 10000 {
		tree.Insert(r.Int(), struct{}{})
	}
	assert.Nil(t, tree.Check(), "inconsistent tree")
	assert.LessOrEqual(t, tree.Height(), avl.HeightBound(tree.Size()), "tree too high")

	// worst case input for an unbalanced tree
	tree.Clear()
	for i := 0; i < 10000; i += 1 {
		tree.Insert(i, struct{}{})
	}
	assert.Nil(t, tree.Check(), "inconsistent tree")
	assert.LessOrEqual(t, tree.Height(), avl.HeightBound(tree.Size()), "tree too high")
}

func TestSelectRankInverse(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	tree := avl.NewOrdered[int, int]()
	for i := 0; i < 2000; i += 1 {
		tree.Insert(r.Intn(5000), i)
	}

	for i := 0; i < tree.Size(); i += 1 {
		it, err := tree.Select(i)
		assert.Nil(t, err, "select: %d", i)
		k, _ := it.Key()
		assert.Equal(t, i, tree.Rank(k), "rank of select: %d", i)

		lb := tree.LowerBound(k)
		assert.True(t, lb.Equal(it), "lower bound of: %d", k)
	}

	for k := range tree.Keys() {
		it, err := tree.Select(tree.Rank(k))
		assert.Nil(t, err, "select of rank: %d", k)
		sk, _ := it.Key()
		assert.Equal(t, k, sk, "select of rank")
	}

	_, err := tree.Select(-1)
	assert.Equal(t, fault.ErrIndexOutOfRange, err, "negative index")
	it, err := tree.Select(tree.Size())
	assert.Equal(t, fault.ErrIndexOutOfRange, err, "index past end")
	assert.True(t, it.IsEnd(), "failed select not at end")
}

func TestInsertIdempotent(t *testing.T) {
	tree := avl.NewOrdered[string, int]()
	first, inserted := tree.Insert("key", 1)
	assert.True(t, inserted, "first insert")

	before := tree.Clone()
	second, inserted := tree.Insert("key", 2)
	assert.False(t, inserted, "second insert")
	assert.True(t, first.Equal(second), "different position")
	assert.True(t, avl.Equal(before, tree), "tree modified")
	assert.Equal(t, 1, tree.Size(), "wrong size")
}

func TestBounds(t *testing.T) {
	tree := avl.NewOrdered[int, string]()
	for _, k := range []int{10, 20, 30, 40} {
		tree.Insert(k, "")
	}

	key := func(it avl.Iterator[int, string]) int {
		k, err := it.Key()
		assert.Nil(t, err, "bound key")
		return k
	}

	assert.Equal(t, 20, key(tree.LowerBound(20)), "lower bound present")
	assert.Equal(t, 30, key(tree.UpperBound(20)), "upper bound present")
	assert.Equal(t, 30, key(tree.LowerBound(25)), "lower bound absent")
	assert.Equal(t, 30, key(tree.UpperBound(25)), "upper bound absent")
	assert.Equal(t, 10, key(tree.LowerBound(5)), "lower bound below")
	assert.True(t, tree.LowerBound(45).IsEnd(), "lower bound above")
	assert.True(t, tree.UpperBound(40).IsEnd(), "upper bound of max")

	first, last := tree.EqualRange(30)
	assert.Equal(t, 30, key(first), "equal range start")
	assert.Equal(t, 40, key(last), "equal range end")

	first, last = tree.EqualRange(35)
	assert.True(t, first.Equal(last), "empty equal range")
	assert.Equal(t, 40, key(first), "empty equal range position")

	assert.True(t, tree.Find(35).Equal(tree.End()), "find absent")
	assert.Equal(t, 0, tree.Count(35), "count absent")
	assert.False(t, tree.Contains(35), "contains absent")
}

func TestIteratorBoundaries(t *testing.T) {
	tree := avl.NewOrdered[int, int]()

	// empty tree
	assert.True(t, tree.Begin().Equal(tree.End()), "empty begin")
	assert.True(t, tree.RBegin().Equal(tree.REnd()), "empty rbegin")
	_, err := tree.End().Key()
	assert.Equal(t, fault.ErrOutOfRange, err, "end key")
	_, ok := tree.Min()
	assert.False(t, ok, "empty minimum")

	for i := 1; i <= 3; i += 1 {
		tree.Insert(i, 10*i)
	}

	end := tree.End()
	_, err = end.Key()
	assert.Equal(t, fault.ErrOutOfRange, err, "end key")
	_, err = end.Value()
	assert.Equal(t, fault.ErrOutOfRange, err, "end value")
	assert.Equal(t, fault.ErrOutOfRange, end.SetValue(1), "end set value")
	_, err = end.Index()
	assert.Equal(t, fault.ErrOutOfRange, err, "end index")

	// stepping back from end gives the maximum
	it := tree.End()
	it.Prev()
	k, _ := it.Key()
	assert.Equal(t, 3, k, "end prev")

	// stepping beyond end gives an invalid iterator
	it = tree.End()
	it.Next()
	assert.False(t, it.Valid(), "end next valid")
	assert.False(t, it.Equal(tree.End()), "invalid equals end")
	_, err = it.Key()
	assert.Equal(t, fault.ErrOutOfRange, err, "invalid key")
	it.Next()
	it.Prev()
	assert.False(t, it.Valid(), "invalid iterator recovered")

	// invalid iterators have no position to share
	other := tree.Begin()
	other.Prev()
	assert.False(t, it.Equal(other), "two invalid iterators equal")
	assert.False(t, it.Equal(it), "invalid iterator equals itself")
	assert.False(t, tree.End().Equal(it), "end equals invalid")

	// stepping back from begin gives an invalid iterator
	it = tree.Begin()
	it.Prev()
	assert.False(t, it.Valid(), "begin prev valid")
	assert.False(t, it.IsEnd(), "begin prev is end")

	// reverse iteration mirrors forward
	it = tree.RBegin()
	it.Next()
	k, _ = it.Key()
	assert.Equal(t, 2, k, "reverse next")
	it = tree.REnd()
	it.Prev()
	k, _ = it.Key()
	assert.Equal(t, 1, k, "reverse end prev")
	it = tree.RBegin()
	it.Prev()
	assert.False(t, it.Valid(), "reverse begin prev valid")

	// values are writable through iterators
	it = tree.Find(2)
	assert.Nil(t, it.SetValue(99), "set value")
	v, _ := tree.Get(2)
	assert.Equal(t, 99, v, "value not stored")
}

func TestCopy(t *testing.T) {
	r := rand.New(rand.NewSource(1000))
	source := avl.NewOrdered[int, int]()
	for i := 0; i < 1000; i += 1 {
		k := r.Intn(100000)
		source.Insert(k, -k)
	}

	destination := avl.NewOrdered[int, int]()
	destination.Insert(-5, 5)
	destination.CopyFrom(source)

	assert.Nil(t, destination.Check(), "inconsistent copy")
	assert.True(t, avl.Equal(source, destination), "copy differs")
	assert.Equal(t, source.Height(), destination.Height(), "copy height")
	assert.Equal(t, collect(source), collect(destination), "copy order")
	assert.False(t, destination.Contains(-5), "old contents kept")

	// isolated in both directions
	destination.Insert(-1, 1)
	assert.False(t, source.Contains(-1), "source changed by copy insert")
	source.Insert(-2, 2)
	assert.False(t, destination.Contains(-2), "copy changed by source insert")
	assert.False(t, avl.Equal(source, destination), "trees still equal")

	// copy of self is a no-op
	size := source.Size()
	source.CopyFrom(source)
	assert.Equal(t, size, source.Size(), "self copy changed size")
	assert.Nil(t, source.Check(), "inconsistent after self copy")

	// copy of an empty tree
	empty := avl.NewOrdered[int, int]()
	destination.CopyFrom(empty)
	assert.True(t, destination.IsEmpty(), "copy of empty")
	assert.Nil(t, destination.Check(), "inconsistent empty copy")

	// deep sources with one sided sub-trees
	for _, n := range []int{1, 2, 3, 5, 8, 13, 100} {
		ascending := avl.NewOrdered[int, int]()
		descending := avl.NewOrdered[int, int]()
		for i := 0; i < n; i += 1 {
			ascending.Insert(i, i)
			descending.Insert(n-i, i)
		}
		a := ascending.Clone()
		d := descending.Clone()
		assert.Nil(t, a.Check(), "ascending copy: %d", n)
		assert.Nil(t, d.Check(), "descending copy: %d", n)
		assert.True(t, avl.Equal(ascending, a), "ascending copy: %d", n)
		assert.True(t, avl.Equal(descending, d), "descending copy: %d", n)
	}
}

func TestSwap(t *testing.T) {
	a := avl.NewOrdered[int, string]()
	b := avl.NewOrdered[int, string]()
	for i := 0; i < 5; i += 1 {
		a.Insert(i, "a")
	}
	for i := 10; i < 13; i += 1 {
		b.Insert(i, "b")
	}

	aEnd := a.End()
	middle := a.Find(2)

	a.Swap(b)
	assert.Equal(t, []int{10, 11, 12}, collect(a), "a after swap")
	assert.Equal(t, []int{0, 1, 2, 3, 4}, collect(b), "b after swap")
	assert.Nil(t, a.Check(), "a inconsistent")
	assert.Nil(t, b.Check(), "b inconsistent")

	// each tree keeps its own end, other iterators follow their nodes
	assert.True(t, aEnd.Equal(a.End()), "end moved")
	assert.True(t, middle.Equal(b.Find(2)), "node iterator lost")

	// swap with an empty tree, both directions
	e := avl.NewOrdered[int, string]()
	e.Swap(a)
	assert.True(t, a.IsEmpty(), "a not empty")
	assert.True(t, a.Begin().Equal(a.End()), "empty a chain")
	assert.Equal(t, []int{10, 11, 12}, collect(e), "e after swap")
	assert.Nil(t, a.Check(), "a inconsistent")
	assert.Nil(t, e.Check(), "e inconsistent")

	a.Swap(e)
	assert.True(t, e.IsEmpty(), "e not empty")
	assert.Equal(t, []int{10, 11, 12}, collect(a), "a after swap back")

	// both empty
	f := avl.NewOrdered[int, string]()
	e.Swap(f)
	assert.Nil(t, e.Check(), "e inconsistent")
	assert.Nil(t, f.Check(), "f inconsistent")

	// swap with self
	a.Swap(a)
	assert.Equal(t, []int{10, 11, 12}, collect(a), "self swap")
}

func TestSwapExchangesComparator(t *testing.T) {
	up := avl.NewOrdered[int, int]()
	down := avl.New[int, int](func(a int, b int) bool { return a > b })
	up.Insert(1, 1)
	up.Insert(2, 2)
	down.Insert(1, 1)
	down.Insert(2, 2)

	up.Swap(down)
	up.Insert(3, 3)
	down.Insert(3, 3)
	assert.Equal(t, []int{3, 2, 1}, collect(up), "up order")
	assert.Equal(t, []int{1, 2, 3}, collect(down), "down order")
}

func TestMove(t *testing.T) {
	source := avl.NewOrdered[int, int]()
	for i := 0; i < 100; i += 1 {
		source.Insert(i, i)
	}
	expected := collect(source)

	destination := avl.NewOrdered[int, int]()
	destination.Insert(1000, 1000)
	destination.MoveFrom(source)

	assert.Equal(t, expected, collect(destination), "moved contents")
	assert.True(t, source.IsEmpty(), "source not empty")
	assert.Equal(t, 0, source.Size(), "source size")
	assert.Nil(t, source.Check(), "source inconsistent")
	assert.Nil(t, destination.Check(), "destination inconsistent")

	// moved from tree is reusable
	source.Insert(7, 7)
	assert.Equal(t, []int{7}, collect(source), "reuse after move")

	destination.MoveFrom(destination)
	assert.Equal(t, 100, destination.Size(), "self move")
}

func TestEqual(t *testing.T) {
	a := avl.NewOrdered[int, string]()
	b := avl.NewOrdered[int, string]()
	assert.True(t, avl.Equal(a, b), "empty trees")

	for _, k := range []int{5, 1, 3} {
		a.Insert(k, "x")
	}
	for _, k := range []int{3, 5, 1} {
		b.Insert(k, "x")
	}
	assert.True(t, avl.Equal(a, b), "same contents, different order of insert")

	b.InsertOrAssign(3, "y")
	assert.False(t, avl.Equal(a, b), "different value")
	assert.True(t, a.EqualFunc(b, func(x string, y string) bool { return true }), "values ignored")

	b.Insert(7, "x")
	assert.False(t, avl.Equal(a, b), "different size")
}

func TestInsertAll(t *testing.T) {
	source := avl.NewOrdered[int, int]()
	for i := 0; i < 10; i += 1 {
		source.Insert(i, i)
	}
	tree := avl.NewOrdered[int, int]()
	tree.Insert(3, 3)
	n := tree.InsertAll(source.All())
	assert.Equal(t, 9, n, "inserted count")
	assert.True(t, avl.Equal(source, tree), "contents")

	// early stop of the range function
	seen := []int{}
	for k := range tree.Keys() {
		if k > 2 {
			break
		}
		seen = append(seen, k)
	}
	assert.Equal(t, []int{0, 1, 2}, seen, "early stop")
}

func TestClear(t *testing.T) {
	tree := avl.NewOrdered[int, int]()
	for i := 0; i < 50; i += 1 {
		tree.Insert(i, i)
	}
	tree.Clear()
	assert.True(t, tree.IsEmpty(), "not empty")
	assert.Equal(t, 0, tree.Size(), "size")
	assert.True(t, tree.Begin().IsEnd(), "chain")
	assert.Nil(t, tree.Check(), "inconsistent")
	assert.True(t, tree.MaxSize() > 0, "max size")
}

func TestSet(t *testing.T) {
	s := avl.NewOrderedSet[string]()
	for _, k := range []string{"pear", "apple", "fig", "apple"} {
		s.Insert(k)
	}
	assert.Equal(t, 3, s.Size(), "size")
	assert.Equal(t, []string{"apple", "fig", "pear"}, slices.Collect(s.All()), "order")
	assert.Equal(t, []string{"pear", "fig", "apple"}, slices.Collect(s.Backward()), "reverse order")
	assert.Equal(t, 1, s.Rank("banana"), "rank")

	it, err := s.Select(2)
	assert.Nil(t, err, "select")
	k, _ := it.Key()
	assert.Equal(t, "pear", k, "select")

	c := s.Clone()
	assert.True(t, s.Equal(c), "clone")
	c.Insert("kiwi")
	assert.False(t, s.Equal(c), "clone isolation")

	n := s.InsertAll(slices.Values([]string{"kiwi", "fig", "lime"}))
	assert.Equal(t, 2, n, "insert all")
	assert.True(t, s.Contains("lime"), "contains")
	assert.Nil(t, s.Check(), "inconsistent")

	other := avl.NewOrderedSet[string]()
	other.MoveFrom(s)
	assert.True(t, s.IsEmpty(), "moved from")
	assert.Equal(t, 5, other.Size(), "moved to")
}
