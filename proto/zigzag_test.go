// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto

import "testing"

func TestZigZag32RoundTrip(t *testing.T) {
	cases := []int32{0, -1, 1, -2, 2, 2147483647, -2147483648}
	for _, v := range cases {
		z := ZigZagEncode32(v)
		got := ZigZagDecode32(z)
		if got != v {
			t.Fatalf("round trip %d: got %d (zigzag %d)", v, got, z)
		}
	}
}

func TestZigZag32Values(t *testing.T) {
	// The canonical zigzag table: 0,-1,1,-2,2 -> 0,1,2,3,4.
	table := map[int32]uint32{0: 0, -1: 1, 1: 2, -2: 3, 2: 4}
	for v, want := range table {
		if got := ZigZagEncode32(v); got != want {
			t.Fatalf("ZigZagEncode32(%d) = %d, want %d", v, got, want)
		}
	}
}

func TestZigZag64RoundTrip(t *testing.T) {
	cases := []Long64{
		Long64FromInt64(0),
		Long64FromInt64(-1),
		Long64FromInt64(1),
		Long64FromInt64(-2),
		Long64FromInt64(2),
		Long64FromInt64(9223372036854775807),
		Long64FromInt64(-9223372036854775808),
	}
	for _, v := range cases {
		lo, hi := v.Halves()
		zlo, zhi := ZigZagEncode64(lo, hi)
		glo, ghi := ZigZagDecode64(zlo, zhi)
		if glo != lo || ghi != hi {
			t.Fatalf("round trip %v: got (lo=%d hi=%d), want (lo=%d hi=%d)", v, glo, ghi, lo, hi)
		}
	}
}

func TestZigZag64Minus1(t *testing.T) {
	// sint64 = -1 must zigzag-encode to 1, matching sint32's S5 scenario
	// scaled to 64 bits.
	lo, hi := Long64FromInt64(-1).Halves()
	zlo, zhi := ZigZagEncode64(lo, hi)
	if zlo != 1 || zhi != 0 {
		t.Fatalf("ZigZagEncode64(-1) = (lo=%d hi=%d), want (1, 0)", zlo, zhi)
	}
}
