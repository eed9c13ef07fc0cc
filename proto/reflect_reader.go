// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto

import (
	"reflect"
)

// ReflectionBinaryReader decodes proto3 wire bytes into a target struct
// using a MessageInfo schema supplied at call time, rather than generated
// per-message code, per spec.md §4.4.
//
// Grounded on the teacher's v2 proto/decode.go unmarshalMessage: a tag-read
// loop, field-descriptor lookup, a merge-unless-oneof rule for singular
// message fields, and unknown fields appended verbatim for lossless
// round-tripping. The field lookup and value assignment are reflect-based
// here (reflect.Value.FieldByName against a *T target) because, unlike the
// teacher's generated structs, the schema driving this decode is itself a
// runtime value (a MessageInfo built from caller-supplied FieldInfo
// entries) — there is no compile-time struct tag to cache an unsafe.Pointer
// offset against.
type ReflectionBinaryReader struct {
	Options ReaderOptions
}

// NewReflectionBinaryReader returns a reader using opts.
func NewReflectionBinaryReader(opts ReaderOptions) *ReflectionBinaryReader {
	return &ReflectionBinaryReader{Options: opts}
}

// Read decodes a stream of tagged fields from r into target, which must be
// a non-nil pointer to a struct matching info. Read consumes r until
// r.Len() == 0; callers decoding a length-delimited sub-message pass a
// cursor already scoped to that sub-message's bytes (see
// IBinaryReader.Delimited).
func (rr *ReflectionBinaryReader) Read(r IBinaryReader, info *MessageInfo, target interface{}) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return &RangeError{Method: "Read", Value: target}
	}
	sv := rv.Elem()

	for r.Len() > 0 {
		fieldNo, wt, err := r.Tag()
		if err != nil {
			return err
		}

		f, ok := info.FieldByNumber(fieldNo)
		if !ok {
			if err := rr.handleUnknown(r, info, target, fieldNo, wt); err != nil {
				return err
			}
			continue
		}

		if err := rr.readField(r, info, f, wt, sv); err != nil {
			return err
		}
	}
	return nil
}

func (rr *ReflectionBinaryReader) handleUnknown(r IBinaryReader, info *MessageInfo, target interface{}, fieldNo uint32, wt WireType) error {
	raw, err := r.Skip(wt)
	if err != nil {
		return err
	}
	tagged := AppendVarint32(nil, uint32(EncodeTag(fieldNo, wt)))
	tagged = append(tagged, raw...)

	switch rr.Options.UnknownField {
	case UnknownFieldThrow:
		return &UnknownFieldError{TypeName: info.TypeName, FieldNo: fieldNo, WireType: wt}
	case UnknownFieldSkip:
		return nil
	case UnknownFieldCustom:
		if rr.Options.OnUnknownField != nil {
			rr.Options.OnUnknownField(info.TypeName, target, fieldNo, wt, tagged)
		}
		return nil
	default: // UnknownFieldRecord
		if store := unknownFieldStore(reflect.ValueOf(target).Elem()); store != nil {
			store.Append(fieldNo, wt, tagged)
		}
		return nil
	}
}

// unknownFieldStore locates an embedded or named UnknownFieldStore field on
// the target struct, if any. A target with no such field silently drops
// the UnknownFieldRecord policy down to "discard" rather than failing the
// whole decode over an ambient concern.
func unknownFieldStore(sv reflect.Value) *UnknownFieldStore {
	st := sv.Type()
	for i := 0; i < st.NumField(); i++ {
		if st.Field(i).Type == reflect.TypeOf(UnknownFieldStore{}) {
			return sv.Field(i).Addr().Interface().(*UnknownFieldStore)
		}
	}
	return nil
}

func (rr *ReflectionBinaryReader) readField(r IBinaryReader, info *MessageInfo, f *FieldInfo, wt WireType, sv reflect.Value) error {
	if f.Oneof != "" {
		rr.clearOneofSiblings(sv, info, f)
	}

	switch f.Kind {
	case KindMap:
		return rr.readMapEntry(r, f, sv)
	case KindMessage:
		return rr.readMessageField(r, f, sv)
	default: // KindScalar, KindEnum
		return rr.readScalarField(r, f, wt, sv)
	}
}

// clearOneofSiblings zeroes every other member of f's oneof group on sv,
// enforcing mutual exclusion when a later occurrence on the wire selects a
// different member (spec.md §3 "oneof", testable property §8.6). Siblings
// are every other FieldInfo in info sharing f.Oneof's name; each one's
// LocalName struct field is reset to its zero value.
func (rr *ReflectionBinaryReader) clearOneofSiblings(sv reflect.Value, info *MessageInfo, f *FieldInfo) {
	for i := range info.Fields {
		sib := &info.Fields[i]
		if sib.Oneof != f.Oneof || sib.LocalName == f.LocalName {
			continue
		}
		fv := sv.FieldByName(sib.LocalName)
		if fv.IsValid() && fv.CanSet() {
			fv.Set(reflect.Zero(fv.Type()))
		}
	}
}

func (rr *ReflectionBinaryReader) readScalarField(r IBinaryReader, f *FieldInfo, wt WireType, sv reflect.Value) error {
	fv := sv.FieldByName(f.LocalName)
	if !fv.IsValid() {
		return &RangeError{Method: "Read", Value: f.LocalName}
	}

	if f.Repeat != RepeatNone && fv.Kind() == reflect.Slice {
		if wt == WireLengthDelimited && f.wireType() != WireLengthDelimited {
			return rr.readPacked(r, f, fv)
		}
		val, err := decodeScalar(r, f)
		if err != nil {
			return err
		}
		fv.Set(reflect.Append(fv, reflect.ValueOf(val).Convert(fv.Type().Elem())))
		return nil
	}

	val, err := decodeScalar(r, f)
	if err != nil {
		return err
	}
	fv.Set(reflect.ValueOf(val).Convert(fv.Type()))
	return nil
}

// readPacked decodes a length-delimited run of back-to-back scalar values
// (spec.md §4.2 "packed"), appending each to the slice field fv.
func (rr *ReflectionBinaryReader) readPacked(r IBinaryReader, f *FieldInfo, fv reflect.Value) error {
	sub, err := r.Delimited()
	if err != nil {
		return err
	}
	elemType := fv.Type().Elem()
	for sub.Len() > 0 {
		val, err := decodeScalar(sub, f)
		if err != nil {
			return err
		}
		fv.Set(reflect.Append(fv, reflect.ValueOf(val).Convert(elemType)))
	}
	return nil
}

func (rr *ReflectionBinaryReader) readMessageField(r IBinaryReader, f *FieldInfo, sv reflect.Value) error {
	fv := sv.FieldByName(f.LocalName)
	if !fv.IsValid() {
		return &RangeError{Method: "Read", Value: f.LocalName}
	}
	sub, err := r.Delimited()
	if err != nil {
		return err
	}

	info := f.MessageType()

	if f.Repeat != RepeatNone {
		elemType := fv.Type().Elem()
		isPtr := elemType.Kind() == reflect.Ptr
		elem := reflect.New(derefType(elemType))
		if err := rr.Read(sub, info, elem.Interface()); err != nil {
			return err
		}
		if isPtr {
			fv.Set(reflect.Append(fv, elem))
		} else {
			fv.Set(reflect.Append(fv, elem.Elem()))
		}
		return nil
	}

	// Singular message fields merge rather than replace, per proto3 merge
	// semantics: a message already present keeps its previously-set scalar
	// fields unless the new occurrence overwrites them (spec.md §3,
	// testable property §8.8).
	if fv.Kind() == reflect.Ptr {
		if fv.IsNil() {
			fv.Set(reflect.New(fv.Type().Elem()))
		}
		return rr.Read(sub, info, fv.Interface())
	}
	return rr.Read(sub, info, fv.Addr().Interface())
}

func derefType(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Ptr {
		return t.Elem()
	}
	return t
}

// readMapEntry decodes one map-entry sub-message: field 1 is the key,
// field 2 is the value, any other field number is malformed (spec.md §3
// "map", testable property §8.10). A field absent from the entry takes the
// zero value for its type, matching the teacher's unmarshalMap default
// substitution.
func (rr *ReflectionBinaryReader) readMapEntry(r IBinaryReader, f *FieldInfo, sv reflect.Value) error {
	fv := sv.FieldByName(f.LocalName)
	if !fv.IsValid() {
		return &RangeError{Method: "Read", Value: f.LocalName}
	}
	if fv.IsNil() {
		fv.Set(reflect.MakeMap(fv.Type()))
	}

	sub, err := r.Delimited()
	if err != nil {
		return err
	}

	keyField := &FieldInfo{Kind: KindScalar, T: f.MapKey, LocalName: "Key"}
	valueElemType := fv.Type().Elem()
	var keyVal, valVal reflect.Value
	haveKey, haveVal := false, false

	for sub.Len() > 0 {
		entryNo, _, err := sub.Tag()
		if err != nil {
			return err
		}
		switch entryNo {
		case 1:
			k, err := decodeScalar(sub, keyField)
			if err != nil {
				return err
			}
			keyVal = reflect.ValueOf(k)
			haveKey = true
		case 2:
			v, err := rr.decodeMapValue(sub, f.MapValue, valueElemType)
			if err != nil {
				return err
			}
			valVal = v
			haveVal = true
		default:
			return &MalformedMapEntry{FieldNo: entryNo}
		}
	}

	if !haveKey {
		keyVal = reflect.Zero(fv.Type().Key())
	}
	if !haveVal {
		valVal = zeroMapValue(f.MapValue, valueElemType)
	}
	fv.SetMapIndex(keyVal, valVal)
	return nil
}

// zeroMapValue builds the value half of a map entry whose field 2 was
// absent from the wire. Proto3 defines "missing value" as the zero value
// of the value type — for a message-kind value that is a freshly created
// empty message, not a nil pointer, matching spec.md §4.4's "zero value of
// V (… message create())" and the non-nil allocation decodeMapValue
// performs when the value is actually present.
func zeroMapValue(mv *FieldInfo, valueType reflect.Type) reflect.Value {
	if mv.Kind != KindMessage {
		return reflect.Zero(valueType)
	}
	empty := reflect.New(derefType(valueType))
	if valueType.Kind() == reflect.Ptr {
		return empty
	}
	return empty.Elem()
}

// decodeMapValue decodes one map entry's value half. valueType is the Go
// type the map's value side already declares (fv.Type().Elem()), which for
// a KindMessage map value is the struct (or pointer-to-struct) Read
// decodes into — reused here rather than threaded separately through
// FieldInfo, since reflect already knows it from the target map field.
func (rr *ReflectionBinaryReader) decodeMapValue(r IBinaryReader, mv *FieldInfo, valueType reflect.Type) (reflect.Value, error) {
	if mv.Kind == KindMessage {
		sub, err := r.Delimited()
		if err != nil {
			return reflect.Value{}, err
		}
		info := mv.MessageType()
		target := reflect.New(derefType(valueType))
		if err := rr.Read(sub, info, target.Interface()); err != nil {
			return reflect.Value{}, err
		}
		if valueType.Kind() == reflect.Ptr {
			return target, nil
		}
		return target.Elem(), nil
	}
	val, err := decodeScalar(r, mv)
	if err != nil {
		return reflect.Value{}, err
	}
	return reflect.ValueOf(val).Convert(valueType), nil
}

// decodeScalar reads one scalar or enum value per f.T (and, for 64-bit
// integer kinds, f.L), returning a Go value whose type the caller's
// reflect.Value.Set / reflect.Append must accept. Enums are carried as
// int32, matching proto3's "enum is an int32 on the wire" rule.
func decodeScalar(r IBinaryReader, f *FieldInfo) (interface{}, error) {
	if f.Kind == KindEnum {
		return r.Int32()
	}
	switch f.T {
	case ScalarDouble:
		return r.Double()
	case ScalarFloat:
		return r.Float()
	case ScalarInt32:
		return r.Int32()
	case ScalarSint32:
		return r.Sint32()
	case ScalarUint32:
		return r.Uint32()
	case ScalarFixed32:
		return r.Fixed32()
	case ScalarSfixed32:
		return r.Sfixed32()
	case ScalarBool:
		return r.Bool()
	case ScalarString:
		return r.String()
	case ScalarBytes:
		return r.Bytes()
	case ScalarInt64, ScalarUint64, ScalarSint64, ScalarFixed64, ScalarSfixed64:
		return decodeLong(r, f)
	default:
		return nil, &RangeError{Method: "decodeScalar", Value: f.T}
	}
}

// decodeLong reads one of the five 64-bit integer wire representations and
// surfaces it as the Go type f.L selects (spec.md §4.1/§4.4): a decimal
// string, a host float64, or Go's native int64/uint64.
func decodeLong(r IBinaryReader, f *FieldInfo) (interface{}, error) {
	var l Long64
	var err error
	switch f.T {
	case ScalarInt64:
		l, err = r.Int64()
	case ScalarUint64:
		l, err = r.Uint64()
	case ScalarSint64:
		l, err = r.Sint64()
	case ScalarFixed64:
		l, err = r.Fixed64()
	case ScalarSfixed64:
		l, err = r.Sfixed64()
	}
	if err != nil {
		return nil, err
	}

	switch f.L {
	case LongTypeString:
		return l.String(), nil
	case LongTypeNumber:
		return l.Float64(), nil
	default: // LongTypeBigInt
		if f.T.IsSigned64Bit() {
			return l.Int64(), nil
		}
		return l.Uint64(), nil
	}
}
