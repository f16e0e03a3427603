// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/snapshot"
)

// environment shared by all commands
type environment struct {
	conf    *Configuration
	out     io.Writer
	stop    <-chan struct{}
	verbose bool
	log     *logger.L
}

// dispatch a command, the first argument is the command name and the
// rest are its arguments
func processCommand(env *environment, arguments []string) (*Report, error) {

	command := "run"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	// only save and load take an argument: a path overriding the
	// configured snapshot
	maximumArguments := 0
	switch command {
	case "run", "print":
	case "save", "load":
		maximumArguments = 1
	default:
		return nil, fault.ErrUnknownCommand
	}
	if len(arguments) > maximumArguments {
		return nil, fault.ErrTooManyArguments
	}

	path := env.conf.Snapshot
	if len(arguments) > 0 {
		path = ensureAbsolute(env.conf.DataDirectory, arguments[0])
	}

	env.log.Infof("command: %s  arguments: %v", command, arguments)

	start := time.Now()
	var report *Report
	var err error

	switch command {
	case "run":
		report, err = runCommand(env)
	case "save":
		report, err = saveCommand(env, path)
	case "load":
		report, err = loadCommand(env, path)
	case "print":
		report, err = printCommand(env)
	default:
		return nil, fault.ErrUnknownCommand
	}

	if nil != report {
		report.Command = command
		report.Elapsed = time.Since(start).String()
	}
	return report, err
}

// build the workload tree and verify it
func buildAndVerify(env *environment) (*avl.Tree[int64, int64], *Report, error) {
	tree, inserts, duplicates := buildTree(env.conf, env.log)
	report := &Report{
		Size:       tree.Size(),
		Height:     tree.Height(),
		Bound:      avl.HeightBound(tree.Size()),
		Inserts:    inserts,
		Duplicates: duplicates,
	}
	checks, err := verifyTree(tree, env.log)
	report.Checks = checks
	return tree, report, err
}

func runCommand(env *environment) (*Report, error) {
	_, report, err := buildAndVerify(env)
	if nil != err {
		return report, err
	}

	soak, err := runSoak(env.conf, env.stop, logger.New("soak"))
	report.Soak = soak
	return report, err
}

func saveCommand(env *environment, path string) (*Report, error) {
	tree, report, err := buildAndVerify(env)
	if nil != err {
		return report, err
	}

	store, err := snapshot.OpenLevelDB(path, false, logger.New("snapshot"))
	if nil != err {
		return report, err
	}
	defer store.Close()

	report.Records, err = snapshot.Save[int64, int64](store, tree, snapshot.Int64Codec{})
	env.log.Infof("saved: %d records to: %q", report.Records, path)
	return report, err
}

func loadCommand(env *environment, path string) (*Report, error) {
	store, err := snapshot.OpenLevelDB(path, true, logger.New("snapshot"))
	if nil != err {
		return nil, err
	}
	defer store.Close()

	tree := avl.NewOrdered[int64, int64]()
	n, err := snapshot.Load[int64, int64](store, tree, snapshot.Int64Codec{})
	report := &Report{
		Size:    tree.Size(),
		Height:  tree.Height(),
		Bound:   avl.HeightBound(tree.Size()),
		Inserts: uint64(n),
		Records: n,
	}
	if nil != err {
		return report, err
	}
	env.log.Infof("loaded: %d records from: %q", n, path)

	report.Checks, err = verifyTree(tree, env.log)
	return report, err
}

func printCommand(env *environment) (*Report, error) {
	tree, report, err := buildAndVerify(env)
	if nil != err {
		return report, err
	}
	tree.Print(env.out, env.verbose)
	return report, nil
}
