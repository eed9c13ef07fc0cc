// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto

// ScalarType enumerates the proto3 scalar wire kinds, per spec.md §3.
// Grounded on the teacher's proto/properties.go wire-type constants,
// widened from the legacy proto2 wire-format vocabulary to the full
// proto3 scalar set this spec's FieldInfo needs to describe.
type ScalarType int

const (
	ScalarDouble ScalarType = iota
	ScalarFloat
	ScalarInt64
	ScalarUint64
	ScalarInt32
	ScalarFixed64
	ScalarFixed32
	ScalarBool
	ScalarString
	ScalarBytes
	ScalarUint32
	ScalarSfixed32
	ScalarSfixed64
	ScalarSint32
	ScalarSint64
)

// WireType reports the wire type a value of this scalar kind is encoded
// with when not packed.
func (t ScalarType) WireType() WireType {
	switch t {
	case ScalarDouble, ScalarFixed64, ScalarSfixed64:
		return WireBit64
	case ScalarFloat, ScalarFixed32, ScalarSfixed32:
		return WireBit32
	case ScalarString, ScalarBytes:
		return WireLengthDelimited
	default:
		return WireVarint
	}
}

// Is64Bit reports whether this scalar type is one of the five 64-bit
// integer kinds whose surface representation is governed by LongType.
func (t ScalarType) Is64Bit() bool {
	switch t {
	case ScalarInt64, ScalarUint64, ScalarFixed64, ScalarSfixed64, ScalarSint64:
		return true
	default:
		return false
	}
}

// IsSigned64Bit reports whether the two's-complement interpretation
// applies to this 64-bit scalar type (as opposed to unsigned fixed64 /
// uint64).
func (t ScalarType) IsSigned64Bit() bool {
	switch t {
	case ScalarInt64, ScalarSfixed64, ScalarSint64:
		return true
	default:
		return false
	}
}

// LongType controls how a 64-bit integer scalar is surfaced to callers of
// ReflectionBinaryReader, per spec.md §3/§4.1.
type LongType int

const (
	// LongTypeString surfaces 64-bit integers as decimal strings.
	LongTypeString LongType = iota
	// LongTypeNumber surfaces 64-bit integers as a host float64; the
	// caller asserts the value fits the 53-bit mantissa range.
	LongTypeNumber
	// LongTypeBigInt surfaces 64-bit integers as Go's native int64/uint64.
	LongTypeBigInt
)

// Kind identifies the broad shape of a field: a scalar/enum value, a
// nested message, or a map.
type Kind int

const (
	KindScalar Kind = iota
	KindEnum
	KindMessage
	KindMap
)

// Repeat identifies a field's cardinality and, for repeated scalar/enum/
// message fields, whether it is wire-packed.
type Repeat int

const (
	RepeatNone Repeat = iota
	RepeatPacked
	RepeatUnpacked
)

// FieldInfo describes one field of a message: its wire number, its kind,
// and everything the reader/writer need to dispatch on it. Grounded on the
// teacher's proto/properties.go Properties struct, generalized from a
// struct-tag-parsed record to one supplied wholesale by the caller at
// runtime (this spec's entire premise — message descriptions are data,
// not generated code).
type FieldInfo struct {
	// No is the field number; positive, unique within a MessageInfo.
	No uint32
	// Name is the wire/doc name (as it appears in .proto source).
	Name string
	// LocalName is the in-memory struct field name this field is read
	// from / written to via reflection.
	LocalName string

	Kind   Kind
	Repeat Repeat
	// Oneof, if non-empty, names the mutually-exclusive tagged-union
	// group this field belongs to.
	Oneof string

	// T and L apply when Kind is KindScalar or KindEnum (enums are
	// treated as ScalarInt32 on the wire).
	T ScalarType
	L LongType

	// MessageType is the lazy accessor for a KindMessage field's nested
	// schema, breaking cycles between mutually-referential messages.
	// Implementations must memoize the resolved *MessageInfo so that
	// concurrent first calls are safe and idempotent.
	MessageType func() *MessageInfo

	// MapKey and MapValue apply when Kind is KindMap. MapKey is
	// restricted, per proto3, to an integer, bool, or string ScalarType.
	// MapValue describes the map's value exactly as any other field
	// (KindScalar, KindEnum, or KindMessage).
	MapKey   ScalarType
	MapValue *FieldInfo
}

// wireType reports the wire type this field is dispatched on when decoding
// a singular (non-packed) occurrence: ScalarInt32 for enums, the scalar's
// natural wire type for scalars, WireLengthDelimited for messages and maps.
func (f *FieldInfo) wireType() WireType {
	switch f.Kind {
	case KindMessage, KindMap:
		return WireLengthDelimited
	case KindEnum:
		return ScalarInt32.WireType()
	default:
		return f.T.WireType()
	}
}
