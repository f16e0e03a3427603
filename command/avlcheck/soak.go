// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"math/rand"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/background"
	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/guarded"
)

// SoakReport - results from the concurrent workers
type SoakReport struct {
	Workers    int    `json:"workers"`
	Size       int    `json:"size"`
	Height     int    `json:"height"`
	Inserts    uint64 `json:"inserts"`
	Duplicates uint64 `json:"duplicates"`
	Lookups    uint64 `json:"lookups"`
	Stopped    bool   `json:"stopped"`
}

// shared state of all soak workers
type soak struct {
	m          *guarded.Map[int64, int64]
	count      int
	keyRange   int64
	inserts    counter.Counter
	duplicates counter.Counter
	lookups    counter.Counter
	log        *logger.L
}

// one soak worker with its own random source
type soakWorker struct {
	id     int
	source *rand.Rand
}

// Run - insert count random keys, checking order statistics of each
// new key, until done or shut down
func (w *soakWorker) Run(args interface{}, shutdown <-chan struct{}) {
	s := args.(*soak)

	s.log.Debugf("worker: %d  starting", w.id)
	defer s.log.Debugf("worker: %d  finished", w.id)

loop:
	for i := 0; i < s.count; i += 1 {
		select {
		case <-shutdown:
			break loop
		default:
		}

		key := w.source.Int63n(s.keyRange)
		if s.m.Insert(key, int64(w.id)) {
			s.inserts.Increment()
		} else {
			s.duplicates.Increment()
		}

		// the key is present from now on, whatever other workers do
		if !s.m.Contains(key) {
			s.log.Criticalf("worker: %d  key: %d  missing after insert", w.id, key)
		}
		s.lookups.Increment()
	}
}

// run the soak workers until they complete or stop is closed
func runSoak(conf *Configuration, stop <-chan struct{}, log *logger.L) (*SoakReport, error) {

	s := &soak{
		m:        guarded.NewOrdered[int64, int64](),
		count:    conf.Count,
		keyRange: conf.Range,
		log:      log,
	}

	seed := conf.Seed
	if 0 == seed {
		seed = newSource(0).Int63()
	}

	processes := make(background.Processes, conf.Workers)
	for i := range processes {
		processes[i] = &soakWorker{
			id:     i,
			source: rand.New(rand.NewSource(seed + int64(i))),
		}
	}

	log.Infof("soak: %d workers  %d keys each", conf.Workers, conf.Count)

	p := background.Start(processes, s)
	stopped := false
	select {
	case <-p.Done():
	case <-stop:
		log.Warn("soak: interrupted")
		stopped = true
	}
	p.Stop()

	report := &SoakReport{
		Workers:    conf.Workers,
		Size:       s.m.Size(),
		Height:     s.m.Height(),
		Inserts:    s.inserts.Uint64(),
		Duplicates: s.duplicates.Uint64(),
		Lookups:    s.lookups.Uint64(),
		Stopped:    stopped,
	}

	if err := s.m.Check(); nil != err {
		return report, err
	}
	log.Infof("soak: %+v", report)
	return report, nil
}
