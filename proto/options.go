// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto

// UnknownFieldPolicy selects what ReflectionBinaryReader.Read does when it
// encounters a field number with no matching FieldInfo, per spec.md §4.4
// step 3 / §6.
type UnknownFieldPolicy int

const (
	// UnknownFieldRecord skips the value and appends its raw tagged bytes
	// to the target's UnknownFieldStore. This is the default, matching
	// spec.md §6's readUnknownField default of true.
	UnknownFieldRecord UnknownFieldPolicy = iota
	// UnknownFieldSkip skips the value and discards it.
	UnknownFieldSkip
	// UnknownFieldThrow fails the decode with UnknownFieldError.
	UnknownFieldThrow
	// UnknownFieldCustom skips the value and invokes ReaderOptions.
	// OnUnknownField with the raw tagged bytes.
	UnknownFieldCustom
)

// UnknownFieldHandlerFunc is invoked for each unrecognized field when
// ReaderOptions.UnknownField is UnknownFieldCustom.
type UnknownFieldHandlerFunc func(typeName string, target interface{}, fieldNo uint32, wireType WireType, raw []byte)

// ReaderFactory constructs a fresh IBinaryReader cursor over b, letting a
// caller plug in a custom byte backing (spec.md §6 readerFactory).
type ReaderFactory func(b []byte) IBinaryReader

// WriterFactory constructs a fresh IBinaryWriter, letting a caller plug in
// a custom backing (spec.md §6 writerFactory).
type WriterFactory func() IBinaryWriter

// ReaderOptions configures ReflectionBinaryReader.Read.
type ReaderOptions struct {
	// UnknownField selects the policy for fields with no matching
	// FieldInfo. Zero value is UnknownFieldRecord, the spec's default.
	UnknownField UnknownFieldPolicy
	// OnUnknownField is consulted only when UnknownField is
	// UnknownFieldCustom.
	OnUnknownField UnknownFieldHandlerFunc
	// ReaderFactory holds a constructor for IBinaryReader cursors.
	// ReflectionBinaryReader does not call it: nested messages are read
	// through the parent cursor's Delimited, which returns a fresh cursor
	// scoped to the sub-message's bytes.
	ReaderFactory ReaderFactory
}

// WriterOptions holds encoding settings for a message encoder. No code in
// this package reads them; BinaryWriter takes no options.
type WriterOptions struct {
	// WriteUnknownFields selects whether recorded UnknownFieldStore entries
	// are appended verbatim after known fields (DefaultWriterOptions sets
	// it to true). UnknownFieldStore.WriteTo is the call that emits them.
	WriteUnknownFields bool
	// WriterFactory holds a constructor for IBinaryWriter instances.
	// BinaryWriter.Fork/Join build nested regions inside the same writer
	// and do not call it.
	WriterFactory WriterFactory
}

// DefaultWriterOptions returns the spec's documented defaults
// (WriteUnknownFields: true).
func DefaultWriterOptions() WriterOptions {
	return WriterOptions{WriteUnknownFields: true}
}
