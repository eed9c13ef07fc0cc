// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto

import "sync"

// MessageInfo describes a message type: its name and its fields. Field
// descriptors are read-only and shared by reference once built, matching
// spec.md §3's ownership rule.
//
// Grounded on the teacher's proto/properties.go StructProperties, which
// likewise lazily builds and caches a lookup structure (propertiesCache)
// over an immutable field list on first use.
type MessageInfo struct {
	TypeName string
	Fields   []FieldInfo

	indexOnce sync.Once
	index     map[uint32]*FieldInfo
}

// byNumber returns the field index, building it lazily on first use per
// spec.md §3 ("Readers must build an index field_number -> FieldInfo
// lazily on first use").
func (m *MessageInfo) byNumber() map[uint32]*FieldInfo {
	m.indexOnce.Do(func() {
		idx := make(map[uint32]*FieldInfo, len(m.Fields))
		for i := range m.Fields {
			idx[m.Fields[i].No] = &m.Fields[i]
		}
		m.index = idx
	})
	return m.index
}

// FieldByNumber looks up a field descriptor by wire field number, or
// returns (nil, false) if none matches.
func (m *MessageInfo) FieldByNumber(no uint32) (*FieldInfo, bool) {
	f, ok := m.byNumber()[no]
	return f, ok
}

// lazyMessageInfo memoizes a MessageInfo thunk exactly once, so a cyclic
// schema's FieldInfo.MessageType can be called concurrently from multiple
// first-time decodes without re-resolving (spec.md §5, §9).
type lazyMessageInfo struct {
	once sync.Once
	fn   func() *MessageInfo
	info *MessageInfo
}

// LazyMessageType wraps fn so repeated calls to the returned func are cheap
// and idempotent after the first resolution — the pattern FieldInfo.
// MessageType is expected to follow for recursive/mutually-cyclic message
// schemas.
func LazyMessageType(fn func() *MessageInfo) func() *MessageInfo {
	l := &lazyMessageInfo{fn: fn}
	return func() *MessageInfo {
		l.once.Do(func() { l.info = l.fn() })
		return l.info
	}
}
