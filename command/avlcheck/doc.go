// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Verification and soak program for the AVL tree
//
// This program builds trees from the workload in its configuration
// file, runs every consistency check, exercises copy and swap, then
// inserts concurrently from a set of workers into a guarded map.  The
// results are printed as JSON.  A built tree can also be saved to and
// loaded from a LevelDB snapshot.
package main
