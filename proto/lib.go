// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package proto implements a reflection-driven binary codec for the
// Protocol Buffers proto3 wire format. Messages are read and written from a
// runtime description of their structure — a MessageInfo built from
// FieldInfo entries — rather than from code generated per message.
//
// The package is deliberately narrow: it is the wire-level engine meant to
// sit underneath an RPC runtime and transport stack, not a replacement for
// one. Message-object construction conventions, JSON encoding, service
// reflection, and transport all live above this package.
package proto

// WireType identifies how a field's value is laid out on the wire. Proto3
// recognizes four tag-level wire types; group encoding (WireStartGroup /
// WireEndGroup in the legacy proto2 wire format) is not supported.
type WireType uint8

const (
	WireVarint         WireType = 0
	WireBit64          WireType = 1
	WireLengthDelimited WireType = 2
	WireBit32          WireType = 5
)

func (w WireType) String() string {
	switch w {
	case WireVarint:
		return "varint"
	case WireBit64:
		return "bit64"
	case WireLengthDelimited:
		return "length-delimited"
	case WireBit32:
		return "bit32"
	default:
		return "invalid"
	}
}

// EncodeTag packs a field number and wire type into the uint64 that is
// varint-encoded at the start of every field on the wire:
// (fieldNo << 3) | wireType.
func EncodeTag(fieldNo uint32, wt WireType) uint64 {
	return uint64(fieldNo)<<3 | uint64(wt&7)
}

// DecodeTag splits a tag value read off the wire into its field number and
// wire type.
func DecodeTag(tag uint64) (fieldNo uint32, wt WireType) {
	return uint32(tag >> 3), WireType(tag & 7)
}
