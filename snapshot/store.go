// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package snapshot

//go:generate mockgen -destination=mocks/store.go -package=mocks github.com/bitmark-inc/avltree/snapshot Store

import (
	"os"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/avltree/fault"
)

// Store - destination and source of snapshot records
type Store interface {
	Put(key []byte, value []byte)
	Commit() error
	Iterate(f func(key []byte, value []byte) error) error
	Close() error
}

// LevelStore - a Store backed by a LevelDB database
//
// puts are collected in a batch and written by Commit
type LevelStore struct {
	sync.Mutex
	db       *leveldb.DB
	batch    *leveldb.Batch
	readOnly bool
	log      *logger.L
}

// OpenLevelDB - open or create a snapshot database
//
// a read only store must already exist
func OpenLevelDB(path string, readOnly bool, log *logger.L) (*LevelStore, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	if readOnly {
		if _, err := os.Stat(path); nil != err {
			return nil, fault.ErrNotFoundSnapshot
		}
	}

	db, err := leveldb.OpenFile(path, opt)
	if nil != err {
		return nil, err
	}

	if nil != log {
		log.Infof("opened: %q  read only: %t", path, readOnly)
	}

	return &LevelStore{
		db:       db,
		batch:    new(leveldb.Batch),
		readOnly: readOnly,
		log:      log,
	}, nil
}

// Put - queue a record for the next Commit
func (s *LevelStore) Put(key []byte, value []byte) {
	s.Lock()
	defer s.Unlock()

	s.batch.Put(key, value)
}

// Commit - write all queued records
func (s *LevelStore) Commit() error {
	s.Lock()
	defer s.Unlock()

	if nil == s.db {
		return fault.ErrSnapshotClosed
	}
	if s.readOnly {
		return fault.ErrSnapshotReadOnly
	}

	n := s.batch.Len()
	err := s.db.Write(s.batch, nil)
	s.batch.Reset()
	if nil != err {
		return err
	}

	if nil != s.log {
		s.log.Debugf("committed: %d records", n)
	}
	return nil
}

// Iterate - call f for each committed record in key order
//
// the slices passed to f are only valid during the call; the first
// error from f stops the iteration and is returned
//
// the store is locked for the whole walk so a concurrent Close waits
// for it to finish; f must not call any method of the same store
func (s *LevelStore) Iterate(f func(key []byte, value []byte) error) error {
	s.Lock()
	defer s.Unlock()

	if nil == s.db {
		return fault.ErrSnapshotClosed
	}

	iter := s.db.NewIterator(nil, nil)
	defer iter.Release()

	for iter.Next() {
		if err := f(iter.Key(), iter.Value()); nil != err {
			return err
		}
	}
	return iter.Error()
}

// Close - release the database, uncommitted records are discarded
func (s *LevelStore) Close() error {
	s.Lock()
	defer s.Unlock()

	if nil == s.db {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	s.batch.Reset()

	if nil != s.log {
		s.log.Info("closed")
		s.log.Flush()
	}
	return err
}
