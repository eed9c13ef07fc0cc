// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto

import "math"

// IBinaryReader is the cursor contract ReflectionBinaryReader drives to
// consume proto3 wire bytes, per spec.md §6. Grounded on the teacher's v2
// proto/decode.go unmarshalMessage loop, which reads a tag, dispatches on
// wire type, and advances an implicit cursor through a []byte — here made
// an explicit, swappable interface so a caller can pass a different byte
// source to ReflectionBinaryReader.Read.
type IBinaryReader interface {
	// Pos reports the current byte offset.
	Pos() int
	// Len reports the number of bytes remaining.
	Len() int

	// Tag reads one varint-encoded tag and splits it into a field number
	// and wire type.
	Tag() (fieldNo uint32, wt WireType, err error)

	// Skip consumes and discards one value of the given wire type,
	// returning its raw bytes (tag excluded).
	Skip(wt WireType) (raw []byte, err error)

	Uint32() (uint32, error)
	Int32() (int32, error)
	Sint32() (int32, error)
	Bool() (bool, error)
	Bytes() ([]byte, error)
	String() (string, error)
	Float() (float32, error)
	Double() (float64, error)
	Fixed32() (uint32, error)
	Sfixed32() (int32, error)
	Fixed64() (Long64, error)
	Sfixed64() (Long64, error)
	Int64() (Long64, error)
	Sint64() (Long64, error)
	Uint64() (Long64, error)

	// Delimited reads a length prefix and returns a fresh cursor scoped
	// to exactly that many following bytes, advancing past them.
	Delimited() (IBinaryReader, error)
}

// BinaryReader is the default IBinaryReader: a read-only cursor over a
// byte slice it does not own.
type BinaryReader struct {
	buf []byte
	pos int
}

// NewBinaryReader returns a cursor positioned at the start of b.
func NewBinaryReader(b []byte) *BinaryReader {
	return &BinaryReader{buf: b}
}

func (r *BinaryReader) Pos() int { return r.pos }
func (r *BinaryReader) Len() int { return len(r.buf) - r.pos }

func (r *BinaryReader) need(n int) error {
	if r.Len() < n {
		return &TruncatedInput{Want: n, Have: r.Len()}
	}
	return nil
}

func (r *BinaryReader) Tag() (uint32, WireType, error) {
	lo, hi, n, err := ConsumeVarint(r.buf[r.pos:])
	if err != nil {
		return 0, 0, err
	}
	r.pos += n
	fieldNo, wt := DecodeTag(uint64(hi)<<32 | uint64(lo))
	return fieldNo, wt, nil
}

func (r *BinaryReader) Skip(wt WireType) ([]byte, error) {
	start := r.pos
	switch wt {
	case WireVarint:
		if _, _, n, err := ConsumeVarint(r.buf[r.pos:]); err != nil {
			return nil, err
		} else {
			r.pos += n
		}
	case WireBit64:
		if err := r.need(8); err != nil {
			return nil, err
		}
		r.pos += 8
	case WireBit32:
		if err := r.need(4); err != nil {
			return nil, err
		}
		r.pos += 4
	case WireLengthDelimited:
		lo, hi, n, err := ConsumeVarint(r.buf[r.pos:])
		if err != nil {
			return nil, err
		}
		r.pos += n
		length := int(Long64FromHalves(lo, hi, false).Uint64())
		if err := r.need(length); err != nil {
			return nil, err
		}
		r.pos += length
	default:
		return nil, &MalformedVarint{Reason: "unsupported wire type in Skip"}
	}
	return r.buf[start:r.pos], nil
}

func (r *BinaryReader) varint() (lo, hi uint32, err error) {
	lo, hi, n, err := ConsumeVarint(r.buf[r.pos:])
	if err != nil {
		return 0, 0, err
	}
	r.pos += n
	return lo, hi, nil
}

func (r *BinaryReader) Uint32() (uint32, error) {
	lo, _, err := r.varint()
	return lo, err
}

func (r *BinaryReader) Int32() (int32, error) {
	lo, _, err := r.varint()
	return int32(lo), err
}

func (r *BinaryReader) Sint32() (int32, error) {
	lo, _, err := r.varint()
	if err != nil {
		return 0, err
	}
	return ZigZagDecode32(lo), nil
}

func (r *BinaryReader) Bool() (bool, error) {
	lo, _, err := r.varint()
	return lo != 0, err
}

func (r *BinaryReader) Bytes() ([]byte, error) {
	lo, hi, err := r.varint()
	if err != nil {
		return nil, err
	}
	length := int(Long64FromHalves(lo, hi, false).Uint64())
	if err := r.need(length); err != nil {
		return nil, err
	}
	b := r.buf[r.pos : r.pos+length]
	r.pos += length
	return b, nil
}

func (r *BinaryReader) String() (string, error) {
	b, err := r.Bytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (r *BinaryReader) Float() (float32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	bits := uint32(r.buf[r.pos]) | uint32(r.buf[r.pos+1])<<8 | uint32(r.buf[r.pos+2])<<16 | uint32(r.buf[r.pos+3])<<24
	r.pos += 4
	return math.Float32frombits(bits), nil
}

func (r *BinaryReader) Double() (float64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	b := r.buf[r.pos:]
	bits := uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
	r.pos += 8
	return math.Float64frombits(bits), nil
}

func (r *BinaryReader) Fixed32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := uint32(r.buf[r.pos]) | uint32(r.buf[r.pos+1])<<8 | uint32(r.buf[r.pos+2])<<16 | uint32(r.buf[r.pos+3])<<24
	r.pos += 4
	return v, nil
}

func (r *BinaryReader) Sfixed32() (int32, error) {
	v, err := r.Fixed32()
	return int32(v), err
}

func (r *BinaryReader) fixed64() (lo, hi uint32, err error) {
	if err := r.need(8); err != nil {
		return 0, 0, err
	}
	b := r.buf[r.pos:]
	lo = uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	hi = uint32(b[4]) | uint32(b[5])<<8 | uint32(b[6])<<16 | uint32(b[7])<<24
	r.pos += 8
	return lo, hi, nil
}

func (r *BinaryReader) Fixed64() (Long64, error) {
	lo, hi, err := r.fixed64()
	if err != nil {
		return Long64{}, err
	}
	return Long64FromHalves(lo, hi, false), nil
}

func (r *BinaryReader) Sfixed64() (Long64, error) {
	lo, hi, err := r.fixed64()
	if err != nil {
		return Long64{}, err
	}
	return Long64FromHalves(lo, hi, true), nil
}

func (r *BinaryReader) Int64() (Long64, error) {
	lo, hi, err := r.varint()
	if err != nil {
		return Long64{}, err
	}
	return Long64FromHalves(lo, hi, true), nil
}

func (r *BinaryReader) Sint64() (Long64, error) {
	lo, hi, err := r.varint()
	if err != nil {
		return Long64{}, err
	}
	lo, hi = ZigZagDecode64(lo, hi)
	return Long64FromHalves(lo, hi, true), nil
}

func (r *BinaryReader) Uint64() (Long64, error) {
	lo, hi, err := r.varint()
	if err != nil {
		return Long64{}, err
	}
	return Long64FromHalves(lo, hi, false), nil
}

func (r *BinaryReader) Delimited() (IBinaryReader, error) {
	b, err := r.Bytes()
	if err != nil {
		return nil, err
	}
	return NewBinaryReader(b), nil
}
