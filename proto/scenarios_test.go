// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	proto "github.com/chrisseto/protobuf-ts/proto"
)

// hex decodes a space-separated hex byte string, as used throughout
// spec.md's scenario table (S1-S6).
func hex(s string) []byte {
	out := make([]byte, 0, len(s)/3+1)
	var hi = -1
	for _, c := range s {
		if c == ' ' {
			continue
		}
		var v int
		switch {
		case c >= '0' && c <= '9':
			v = int(c - '0')
		case c >= 'a' && c <= 'f':
			v = int(c-'a') + 10
		default:
			continue
		}
		if hi < 0 {
			hi = v
		} else {
			out = append(out, byte(hi<<4|v))
			hi = -1
		}
	}
	return out
}

// S1: {field 1 (int32) = 150} -> 08 96 01.
func TestScenarioS1(t *testing.T) {
	w := proto.NewBinaryWriter()
	w.Tag(1, proto.WireVarint).Int32(150)
	assert.Equal(t, hex("08 96 01"), w.Finish())

	r := proto.NewBinaryReader(hex("08 96 01"))
	fieldNo, wt, err := r.Tag()
	require.NoError(t, err)
	assert.Equal(t, uint32(1), fieldNo)
	assert.Equal(t, proto.WireVarint, wt)
	v, err := r.Int32()
	require.NoError(t, err)
	assert.Equal(t, int32(150), v)
}

// S2: {field 2 (string) = "testing"} -> 12 07 74 65 73 74 69 6e 67.
func TestScenarioS2(t *testing.T) {
	w := proto.NewBinaryWriter()
	w.Tag(2, proto.WireLengthDelimited).String("testing")
	assert.Equal(t, hex("12 07 74 65 73 74 69 6e 67"), w.Finish())

	r := proto.NewBinaryReader(hex("12 07 74 65 73 74 69 6e 67"))
	_, _, err := r.Tag()
	require.NoError(t, err)
	s, err := r.String()
	require.NoError(t, err)
	assert.Equal(t, "testing", s)
}

// S3: {field 4 (repeated int32, packed) = [1, 2, 3]} -> 22 03 01 02 03.
// Decoding the unpacked form 20 01 20 02 20 03 must produce the same
// result — proto3 repeated scalar fields accept either wire shape.
func TestScenarioS3Packed(t *testing.T) {
	info := &proto.MessageInfo{
		TypeName: "S3",
		Fields: []proto.FieldInfo{
			{No: 4, LocalName: "Values", Kind: proto.KindScalar, T: proto.ScalarInt32, Repeat: proto.RepeatPacked},
		},
	}

	w := proto.NewBinaryWriter()
	w.Tag(4, proto.WireLengthDelimited)
	w.Fork()
	w.Int32(1)
	w.Int32(2)
	w.Int32(3)
	w.Join()
	assert.Equal(t, hex("22 03 01 02 03"), w.Finish())

	type target struct{ Values []int32 }
	var got target
	r := proto.NewBinaryReader(hex("22 03 01 02 03"))
	rr := proto.NewReflectionBinaryReader(proto.ReaderOptions{})
	require.NoError(t, rr.Read(r, info, &got))
	assert.Equal(t, []int32{1, 2, 3}, got.Values)
}

func TestScenarioS3Unpacked(t *testing.T) {
	info := &proto.MessageInfo{
		TypeName: "S3",
		Fields: []proto.FieldInfo{
			{No: 4, LocalName: "Values", Kind: proto.KindScalar, T: proto.ScalarInt32, Repeat: proto.RepeatPacked},
		},
	}
	type target struct{ Values []int32 }
	var got target
	r := proto.NewBinaryReader(hex("20 01 20 02 20 03"))
	rr := proto.NewReflectionBinaryReader(proto.ReaderOptions{})
	require.NoError(t, rr.Read(r, info, &got))
	assert.Equal(t, []int32{1, 2, 3}, got.Values)
}

// S4: int32 = -1 as field 1 -> 08 ff ff ff ff ff ff ff ff ff 01
// (10-byte sign-extended varint).
func TestScenarioS4(t *testing.T) {
	w := proto.NewBinaryWriter()
	w.Tag(1, proto.WireVarint).Int32(-1)
	assert.Equal(t, hex("08 ff ff ff ff ff ff ff ff ff 01"), w.Finish())

	r := proto.NewBinaryReader(hex("08 ff ff ff ff ff ff ff ff ff 01"))
	_, _, err := r.Tag()
	require.NoError(t, err)
	v, err := r.Int32()
	require.NoError(t, err)
	assert.Equal(t, int32(-1), v)
}

// S5: sint32 = -1 as field 1 -> 08 01 (zigzag).
func TestScenarioS5(t *testing.T) {
	w := proto.NewBinaryWriter()
	w.Tag(1, proto.WireVarint).Sint32(-1)
	assert.Equal(t, hex("08 01"), w.Finish())

	r := proto.NewBinaryReader(hex("08 01"))
	_, _, err := r.Tag()
	require.NoError(t, err)
	v, err := r.Sint32()
	require.NoError(t, err)
	assert.Equal(t, int32(-1), v)
}

// S6: map<string,int32> {"a":1} as field 7 -> 3a 05 0a 01 61 10 01.
func TestScenarioS6(t *testing.T) {
	info := &proto.MessageInfo{
		TypeName: "S6",
		Fields: []proto.FieldInfo{
			{
				No: 7, LocalName: "Values", Kind: proto.KindMap,
				MapKey:   proto.ScalarString,
				MapValue: &proto.FieldInfo{Kind: proto.KindScalar, T: proto.ScalarInt32, LocalName: "Value"},
			},
		},
	}
	type target struct{ Values map[string]int32 }
	var got target
	r := proto.NewBinaryReader(hex("3a 05 0a 01 61 10 01"))
	rr := proto.NewReflectionBinaryReader(proto.ReaderOptions{})
	require.NoError(t, rr.Read(r, info, &got))
	assert.Equal(t, map[string]int32{"a": 1}, got.Values)
}
