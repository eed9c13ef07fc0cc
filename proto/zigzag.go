// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto

// ZigZagEncode32 maps a signed 32-bit integer to an unsigned one so that
// small-magnitude negative numbers get small encodings, per the sint32
// wire format. Grounded on protobuf3's EncodeZigzag32 bit trick
// (github.com/mistsys/protobuf3, encode.go).
func ZigZagEncode32(v int32) uint32 {
	return (uint32(v) << 1) ^ uint32(v>>31)
}

// ZigZagDecode32 is the inverse of ZigZagEncode32.
func ZigZagDecode32(v uint32) int32 {
	return int32(v>>1) ^ -int32(v&1)
}

// ZigZagEncode64 maps a signed 64-bit integer, represented as (lo, hi)
// halves, to its zigzag-encoded unsigned halves per spec.md §4.1:
// sign = hi >> 31 (arithmetic), lo' = (lo<<1) ^ sign, hi' = ((hi<<1) |
// (lo>>31)) ^ sign.
func ZigZagEncode64(lo, hi uint32) (zlo, zhi uint32) {
	sign := uint32(int32(hi) >> 31)
	zlo = (lo << 1) ^ sign
	zhi = ((hi << 1) | (lo >> 31)) ^ sign
	return zlo, zhi
}

// ZigZagDecode64 is the inverse of ZigZagEncode64.
func ZigZagDecode64(zlo, zhi uint32) (lo, hi uint32) {
	sign := -(zlo & 1)
	lo = ((zlo >> 1) | (zhi << 31)) ^ sign
	hi = (zhi >> 1) ^ sign
	return lo, hi
}
