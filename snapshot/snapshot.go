// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package snapshot

import (
	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// records per commit
const batchSize = 1000

// Save - write every pair of a tree to an empty store
//
// returns the number of records written
func Save[K any, V any](store Store, tree *avl.Tree[K, V], codec Codec[K, V]) (int, error) {

	err := store.Iterate(func(key []byte, value []byte) error {
		return fault.ErrSnapshotNotEmpty
	})
	if nil != err {
		return 0, err
	}

	n := 0
	for key, value := range tree.All() {
		store.Put(codec.EncodeKey(key), codec.EncodeValue(value))
		n += 1
		if 0 == n%batchSize {
			if err := store.Commit(); nil != err {
				return n - batchSize, err
			}
		}
	}
	if err := store.Commit(); nil != err {
		return n - n%batchSize, err
	}
	return n, nil
}

// Load - insert every record of a store into a tree
//
// two records that decode to equivalent keys give ErrDuplicateKey;
// returns the number of records inserted
func Load[K any, V any](store Store, tree *avl.Tree[K, V], codec Codec[K, V]) (int, error) {
	n := 0
	err := store.Iterate(func(k []byte, v []byte) error {
		key, err := codec.DecodeKey(k)
		if nil != err {
			return err
		}
		value, err := codec.DecodeValue(v)
		if nil != err {
			return err
		}
		if _, inserted := tree.Insert(key, value); !inserted {
			return fault.ErrDuplicateKey
		}
		n += 1
		return nil
	})
	return n, err
}
