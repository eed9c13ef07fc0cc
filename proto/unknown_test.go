// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto

import (
	"bytes"
	"testing"
)

func TestUnknownFieldStorePreservesOrder(t *testing.T) {
	var s UnknownFieldStore
	s.Append(5, WireVarint, []byte{0x28, 0x07})
	s.Append(9, WireLengthDelimited, []byte{0x4a, 0x01, 0x78})

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}

	got := s.WriteTo(nil)
	want := []byte{0x28, 0x07, 0x4a, 0x01, 0x78}
	if !bytes.Equal(got, want) {
		t.Fatalf("WriteTo = % x, want % x", got, want)
	}
}

func TestUnknownFieldStoreCopiesInput(t *testing.T) {
	var s UnknownFieldStore
	raw := []byte{0x08, 0x01}
	s.Append(1, WireVarint, raw)
	raw[0] = 0xff

	got := s.WriteTo(nil)
	if got[0] != 0x08 {
		t.Fatalf("mutation of caller's slice leaked into the store: got % x", got)
	}
}
