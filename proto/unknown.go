// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto

// UnknownFieldStore holds the raw tagged bytes of fields a ReflectionBinaryReader
// encountered but found no FieldInfo for, in insertion order, so that a
// subsequent write of the same message reproduces them verbatim (spec.md
// §3 "UnknownFieldStore", testable property §8.7).
//
// A map cannot provide the ordering guarantee re-serialization needs, so
// this is a slice of entries rather than a map keyed by field number —
// the same reason the teacher's v2 decode.go appends raw bytes directly
// into a byte-slice-valued UnknownFields.Set/Get rather than a structured
// map.
type UnknownFieldStore struct {
	entries []unknownEntry
}

type unknownEntry struct {
	fieldNo  uint32
	wireType WireType
	raw      []byte // tag + value, exactly as it appeared on the wire
}

// Append records one unrecognized field's raw tagged bytes.
func (s *UnknownFieldStore) Append(fieldNo uint32, wt WireType, raw []byte) {
	cp := make([]byte, len(raw))
	copy(cp, raw)
	s.entries = append(s.entries, unknownEntry{fieldNo: fieldNo, wireType: wt, raw: cp})
}

// Len reports the number of recorded unknown-field occurrences.
func (s *UnknownFieldStore) Len() int { return len(s.entries) }

// WriteTo appends every recorded entry's raw tagged bytes, in the order
// they were recorded, to b and returns the extended slice.
func (s *UnknownFieldStore) WriteTo(b []byte) []byte {
	for _, e := range s.entries {
		b = append(b, e.raw...)
	}
	return b
}
