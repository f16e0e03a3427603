// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
)

// run every check on a tree, returns the names of the checks passed
//
// the first failure stops the verification
func verifyTree(tree *avl.Tree[int64, int64], log *logger.L) ([]string, error) {
	passed := []string{}

	if err := tree.Check(); nil != err {
		return passed, err
	}
	passed = append(passed, "structure")

	if h, bound := tree.Height(), avl.HeightBound(tree.Size()); h > bound {
		return passed, fmt.Errorf("height: %d exceeds bound: %d", h, bound)
	}
	passed = append(passed, "height")

	// order statistics must be mutually inverse
	i := 0
	for key := range tree.Keys() {
		if r := tree.Rank(key); r != i {
			return passed, fmt.Errorf("rank of: %d is: %d  expected: %d", key, r, i)
		}
		it, err := tree.Select(i)
		if nil != err {
			return passed, err
		}
		if k, _ := it.Key(); k != key {
			return passed, fmt.Errorf("select: %d gave: %d  expected: %d", i, k, key)
		}
		i += 1
	}
	passed = append(passed, "select-rank")

	// a copy must be equal, consistent and independent
	c := tree.Clone()
	if err := c.Check(); nil != err {
		return passed, fmt.Errorf("copy: %w", err)
	}
	if !avl.Equal(tree, c) {
		return passed, fmt.Errorf("copy differs from source")
	}
	if highest, ok := c.Max(); ok {
		c.Insert(highest+1, 0)
		if tree.Contains(highest + 1) {
			return passed, fmt.Errorf("insert into copy changed source")
		}
	}
	passed = append(passed, "copy")

	// swapping twice restores both trees
	before := tree.Size()
	other := avl.NewOrdered[int64, int64]()
	other.Swap(tree)
	if !tree.IsEmpty() || other.Size() != before {
		return passed, fmt.Errorf("swap: sizes: %d and %d", tree.Size(), other.Size())
	}
	tree.Swap(other)
	if err := tree.Check(); nil != err {
		return passed, fmt.Errorf("swap: %w", err)
	}
	if err := other.Check(); nil != err {
		return passed, fmt.Errorf("swap: empty side: %w", err)
	}
	passed = append(passed, "swap")

	log.Infof("passed: %v", passed)
	return passed, nil
}
