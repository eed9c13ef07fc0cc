// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto

import "testing"

func TestLong64StringRoundTrip(t *testing.T) {
	l := Long64FromInt64(-9223372036854775808)
	s := l.String()
	if s != "-9223372036854775808" {
		t.Fatalf("String() = %q", s)
	}
	got, err := ParseLong64(s, true)
	if err != nil {
		t.Fatal(err)
	}
	if got.Int64() != l.Int64() {
		t.Fatalf("ParseLong64 round trip: got %d, want %d", got.Int64(), l.Int64())
	}
}

func TestLong64UnsignedString(t *testing.T) {
	l := Long64FromUint64(18446744073709551615)
	if l.String() != "18446744073709551615" {
		t.Fatalf("String() = %q", l.String())
	}
}

func TestParseLong64RejectsNegativeUnsigned(t *testing.T) {
	if _, err := ParseLong64("-1", false); err == nil {
		t.Fatal("expected InvalidLongValue for a negative unsigned literal")
	}
}

func TestLong64FromFloat64(t *testing.T) {
	l, err := Long64FromFloat64(42, true)
	if err != nil {
		t.Fatal(err)
	}
	if l.Int64() != 42 {
		t.Fatalf("Int64() = %d, want 42", l.Int64())
	}

	if _, err := Long64FromFloat64(1.5, true); err == nil {
		t.Fatal("expected InvalidLongValue for a non-integral float")
	}
	if _, err := Long64FromFloat64(-1, false); err == nil {
		t.Fatal("expected InvalidLongValue for a negative float as unsigned")
	}
}

func TestLong64Halves(t *testing.T) {
	l := Long64FromHalves(0x12345678, 0x9abcdef0, false)
	lo, hi := l.Halves()
	if lo != 0x12345678 || hi != 0x9abcdef0 {
		t.Fatalf("Halves() = (%#x, %#x)", lo, hi)
	}
	if l.Uint64() != 0x9abcdef012345678 {
		t.Fatalf("Uint64() = %#x", l.Uint64())
	}
}
