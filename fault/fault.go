// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type CorruptError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RangeError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrConfigFileRequired    = InvalidError("configuration file is required")
	ErrConfigNotTable        = InvalidError("configuration file did not return a table")
	ErrCorruptBalance        = CorruptError("node balance does not match subtree heights")
	ErrCorruptChain          = CorruptError("iteration chain does not match tree order")
	ErrCorruptCount          = CorruptError("node size does not match subtree counts")
	ErrCorruptOrder          = CorruptError("keys are not strictly increasing")
	ErrCorruptParent         = CorruptError("parent pointer does not match child")
	ErrDecodeKey             = ProcessError("key decode failed")
	ErrDecodeValue           = ProcessError("value decode failed")
	ErrDuplicateKey          = ExistsError("duplicate key")
	ErrIndexOutOfRange       = RangeError("index out of range")
	ErrInvalidCount          = InvalidError("invalid count")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidRange          = InvalidError("invalid key range")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrInvalidWorkers        = InvalidError("invalid worker count")
	ErrNotFoundConfigFile    = NotFoundError("config file is not found")
	ErrNotFoundSnapshot      = NotFoundError("snapshot database is not found")
	ErrOutOfRange            = RangeError("out of range")
	ErrSnapshotClosed        = ProcessError("snapshot store is closed")
	ErrSnapshotNotEmpty      = ExistsError("snapshot store is not empty")
	ErrSnapshotReadOnly      = InvalidError("snapshot store is read only")
	ErrTooManyArguments      = InvalidError("too many arguments")
	ErrUnknownCommand        = InvalidError("unknown command")
	ErrWorkloadKeysExhausted = InvalidError("key range too small for requested count")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e CorruptError) Error() string  { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RangeError) Error() string    { return string(e) }

// determine the class of an error
func IsErrCorrupt(e error) bool  { _, ok := e.(CorruptError); return ok }
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRange(e error) bool    { _, ok := e.(RangeError); return ok }
