// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"math/rand"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
)

// Report - results of a run, printed as JSON
type Report struct {
	Command    string      `json:"command"`
	Size       int         `json:"size"`
	Height     int         `json:"height"`
	Bound      int         `json:"bound"`
	Inserts    uint64      `json:"inserts"`
	Duplicates uint64      `json:"duplicates"`
	Records    int         `json:"records,omitempty"`
	Soak       *SoakReport `json:"soak,omitempty"`
	Elapsed    string      `json:"elapsed"`
	Checks     []string    `json:"checks"`
}

// random source for a workload
func newSource(seed int64) *rand.Rand {
	if 0 == seed {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// build a tree of exactly Count distinct keys
//
// the value stored with each key is its insertion sequence number
func buildTree(conf *Configuration, log *logger.L) (*avl.Tree[int64, int64], uint64, uint64) {
	tree := avl.NewOrdered[int64, int64]()

	inserts := uint64(0)
	duplicates := uint64(0)

	if conf.Ascending {
		for i := 0; i < conf.Count; i += 1 {
			tree.Insert(int64(i), int64(i))
			inserts += 1
		}
		log.Infof("ascending: %d keys", tree.Size())
		return tree, inserts, duplicates
	}

	r := newSource(conf.Seed)
	for sequence := int64(0); tree.Size() < conf.Count; sequence += 1 {
		if _, inserted := tree.Insert(r.Int63n(conf.Range), sequence); inserted {
			inserts += 1
		} else {
			duplicates += 1
		}
	}
	log.Infof("random: %d keys  duplicates: %d", tree.Size(), duplicates)
	return tree, inserts, duplicates
}
