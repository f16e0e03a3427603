// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package snapshot - save and restore the sorted contents of a tree
//
// keys and values are encoded to bytes by a Codec and written to a
// Store in key order.  The LevelDB store keeps its keys in byte
// order, so a codec whose byte order matches the tree order gives a
// store that loads back in ascending order.
package snapshot
