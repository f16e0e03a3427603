// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// Broken internal invariants are not errors, they are reported by
// Panicf which logs to the PANIC channel (if Initialise was called)
// before panicking.
package fault
