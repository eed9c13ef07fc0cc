// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto

/*
 * VarintCodec: the pure functions that put integers on (and take them off)
 * the wire in proto3's variable-length encoding. Grounded on protobuf3's
 * Buffer.EncodeVarint/DecodeVarint (github.com/mistsys/protobuf3), adapted
 * from a stateful Buffer method to a stateless append/consume pair so the
 * same code serves BinaryWriter's chunked buffer and any other sink.
 */

// AppendVarint32 appends v to b using the standard base-128 varint
// encoding: 7 data bits per byte, least-significant group first, a set high
// bit marking "more bytes follow". A uint32 never needs more than 5 bytes.
func AppendVarint32(b []byte, v uint32) []byte {
	for v >= 1<<7 {
		b = append(b, byte(v&0x7f|0x80))
		v >>= 7
	}
	return append(b, byte(v))
}

// AppendVarint64 appends the 64-bit value represented by (lo, hi) to b.
// The canonical encoding terminates on the first byte whose continuation
// bit is clear; a sign-extended (lo, hi) pair — as produced when a negative
// int32 is sign-extended to 64 bits per proto3's int32-on-the-wire rule —
// always takes the full 10 bytes, matching spec scenario S4.
func AppendVarint64(b []byte, lo, hi uint32) []byte {
	v := uint64(hi)<<32 | uint64(lo)
	for v >= 1<<7 {
		b = append(b, byte(v&0x7f|0x80))
		v >>= 7
	}
	return append(b, byte(v))
}

// SizeVarint32 returns the number of bytes AppendVarint32 would emit for v.
func SizeVarint32(v uint32) int {
	n := 1
	for v >= 1<<7 {
		v >>= 7
		n++
	}
	return n
}

// SizeVarint64 returns the number of bytes AppendVarint64 would emit for
// (lo, hi).
func SizeVarint64(lo, hi uint32) int {
	v := uint64(hi)<<32 | uint64(lo)
	n := 1
	for v >= 1<<7 {
		v >>= 7
		n++
	}
	return n
}

// ConsumeVarint reads a varint from the front of b, returning its value as
// (lo, hi) halves and the number of bytes consumed. It fails with
// MalformedVarint if the stream ends mid-varint, or if the 10th byte still
// carries a continuation bit (a varint longer than 64 bits can represent).
func ConsumeVarint(b []byte) (lo, hi uint32, n int, err error) {
	var v uint64
	for shift := uint(0); ; shift += 7 {
		if n >= len(b) {
			return 0, 0, 0, &MalformedVarint{Reason: "truncated before terminator byte"}
		}
		if shift >= 64 {
			return 0, 0, 0, &MalformedVarint{Reason: "continuation bit set on 10th byte"}
		}
		c := b[n]
		n++
		v |= uint64(c&0x7f) << shift
		if c&0x80 == 0 {
			return uint32(v), uint32(v >> 32), n, nil
		}
	}
}
