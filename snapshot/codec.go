// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package snapshot

import (
	"encoding/binary"

	"github.com/bitmark-inc/avltree/fault"
)

// Codec - conversion of keys and values to and from bytes
type Codec[K any, V any] interface {
	EncodeKey(key K) []byte
	DecodeKey(buffer []byte) (K, error)
	EncodeValue(value V) []byte
	DecodeValue(buffer []byte) (V, error)
}

// StringCodec - string keys and values stored as their bytes
type StringCodec struct{}

// EncodeKey - string to bytes
func (StringCodec) EncodeKey(key string) []byte {
	return []byte(key)
}

// DecodeKey - bytes to string
func (StringCodec) DecodeKey(buffer []byte) (string, error) {
	return string(buffer), nil
}

// EncodeValue - string to bytes
func (StringCodec) EncodeValue(value string) []byte {
	return []byte(value)
}

// DecodeValue - bytes to string
func (StringCodec) DecodeValue(buffer []byte) (string, error) {
	return string(buffer), nil
}

// Int64Codec - int64 keys and values as 8 big endian bytes
//
// the sign bit is inverted so that byte order is numeric order
type Int64Codec struct{}

const signBit = uint64(1) << 63

func encodeInt64(n int64) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, uint64(n)^signBit)
	return buffer
}

func decodeInt64(buffer []byte) (int64, bool) {
	if 8 != len(buffer) {
		return 0, false
	}
	return int64(binary.BigEndian.Uint64(buffer) ^ signBit), true
}

// EncodeKey - int64 to bytes
func (Int64Codec) EncodeKey(key int64) []byte {
	return encodeInt64(key)
}

// DecodeKey - bytes to int64
func (Int64Codec) DecodeKey(buffer []byte) (int64, error) {
	n, ok := decodeInt64(buffer)
	if !ok {
		return 0, fault.ErrDecodeKey
	}
	return n, nil
}

// EncodeValue - int64 to bytes
func (Int64Codec) EncodeValue(value int64) []byte {
	return encodeInt64(value)
}

// DecodeValue - bytes to int64
func (Int64Codec) DecodeValue(buffer []byte) (int64, error) {
	n, ok := decodeInt64(buffer)
	if !ok {
		return 0, fault.ErrDecodeValue
	}
	return n, nil
}
