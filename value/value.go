// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package value defines the scalar values carried by the leaves of a JSON
// tree, and a classifier that chooses the narrowest representation for a
// numeric literal.
package value

import (
	"encoding/base64"
	"math"
	"strconv"
)

// Kind identifies the representation of a Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // no value
	Uint16              // 16-bit unsigned integer
	Int16               // 16-bit signed integer
	Uint32              // 32-bit unsigned integer
	Int32               // 32-bit signed integer
	Uint64              // 64-bit unsigned integer
	Int64               // 64-bit signed integer
	Float               // IEEE 754 binary64
	String              // string of bytes
	Blob                // opaque binary data
)

var kindStr = [...]string{
	Invalid: "invalid",
	Uint16:  "uint16",
	Int16:   "int16",
	Uint32:  "uint32",
	Int32:   "int32",
	Uint64:  "uint64",
	Int64:   "int64",
	Float:   "float",
	String:  "string",
	Blob:    "blob",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[k]
}

// IsUnsigned reports whether k is one of the unsigned integer kinds.
func (k Kind) IsUnsigned() bool { return k == Uint16 || k == Uint32 || k == Uint64 }

// IsSigned reports whether k is one of the signed integer kinds.
func (k Kind) IsSigned() bool { return k == Int16 || k == Int32 || k == Int64 }

// IsInteger reports whether k is a signed or unsigned integer kind.
func (k Kind) IsInteger() bool { return k.IsUnsigned() || k.IsSigned() }

// A Value is a tagged scalar value. The zero Value has kind Invalid.
//
// Integer and floating-point payloads are stored inline. String and Blob
// payloads are owned by the Value; a Blob constructed from a slice takes
// ownership of that slice.
type Value struct {
	kind Kind
	bits uint64 // integer and float payloads
	str  string
	blob []byte
}

// FromUint16 returns a Value of kind Uint16.
func FromUint16(v uint16) Value { return Value{kind: Uint16, bits: uint64(v)} }

// FromInt16 returns a Value of kind Int16.
func FromInt16(v int16) Value { return Value{kind: Int16, bits: uint64(int64(v))} }

// FromUint32 returns a Value of kind Uint32.
func FromUint32(v uint32) Value { return Value{kind: Uint32, bits: uint64(v)} }

// FromInt32 returns a Value of kind Int32.
func FromInt32(v int32) Value { return Value{kind: Int32, bits: uint64(int64(v))} }

// FromUint64 returns a Value of kind Uint64.
func FromUint64(v uint64) Value { return Value{kind: Uint64, bits: v} }

// FromInt64 returns a Value of kind Int64.
func FromInt64(v int64) Value { return Value{kind: Int64, bits: uint64(v)} }

// FromFloat returns a Value of kind Float.
func FromFloat(f float64) Value { return Value{kind: Float, bits: math.Float64bits(f)} }

// FromString returns a Value of kind String.
func FromString(s string) Value { return Value{kind: String, str: s} }

// FromBlob returns a Value of kind Blob. The Value takes ownership of data;
// the caller must not modify it afterward.
func FromBlob(data []byte) Value { return Value{kind: Blob, blob: data} }

// Kind reports the kind of v.
func (v Value) Kind() Kind { return v.kind }

// Len reports the length in bytes of the payload of v.
func (v Value) Len() int {
	switch v.kind {
	case Uint16, Int16:
		return 2
	case Uint32, Int32:
		return 4
	case Uint64, Int64, Float:
		return 8
	case String:
		return len(v.str)
	case Blob:
		return len(v.blob)
	}
	return 0
}

// Uint64 returns the payload of an unsigned integer value, or a signed
// integer value that is not negative. It reports false for other values.
func (v Value) Uint64() (uint64, bool) {
	if v.kind.IsUnsigned() {
		return v.bits, true
	} else if v.kind.IsSigned() && int64(v.bits) >= 0 {
		return v.bits, true
	}
	return 0, false
}

// Int64 returns the payload of a signed integer value, or an unsigned
// integer value that fits in an int64. It reports false for other values.
func (v Value) Int64() (int64, bool) {
	if v.kind.IsSigned() {
		return int64(v.bits), true
	} else if v.kind.IsUnsigned() && v.bits <= math.MaxInt64 {
		return int64(v.bits), true
	}
	return 0, false
}

// Float64 returns the payload of a Float value.
func (v Value) Float64() (float64, bool) {
	if v.kind != Float {
		return 0, false
	}
	return math.Float64frombits(v.bits), true
}

// Str returns the payload of a String value.
func (v Value) Str() (string, bool) { return v.str, v.kind == String }

// Bytes returns the payload of a Blob value. The caller must not modify the
// contents of the returned slice.
func (v Value) Bytes() ([]byte, bool) { return v.blob, v.kind == Blob }

// AppendJSON appends the text representation of v to buf and returns the
// updated slice.
//
// Integers are written in decimal. Floats use the shortest representation
// that round-trips, and always include a decimal point or exponent so that
// the text parses back as a float. Strings are enclosed in double quotes
// without further escaping. Blobs are written as quoted base64. An Invalid
// value is written as null.
func (v Value) AppendJSON(buf []byte) []byte {
	switch v.kind {
	case Uint16, Uint32, Uint64:
		return strconv.AppendUint(buf, v.bits, 10)
	case Int16, Int32, Int64:
		return strconv.AppendInt(buf, int64(v.bits), 10)
	case Float:
		return appendFloat(buf, math.Float64frombits(v.bits))
	case String:
		buf = append(buf, '"')
		buf = append(buf, v.str...)
		return append(buf, '"')
	case Blob:
		buf = append(buf, '"')
		buf = base64.StdEncoding.AppendEncode(buf, v.blob)
		return append(buf, '"')
	}
	return append(buf, "null"...)
}

// String renders v as it would be written by AppendJSON.
func (v Value) String() string { return string(v.AppendJSON(nil)) }

func appendFloat(buf []byte, f float64) []byte {
	start := len(buf)
	buf = strconv.AppendFloat(buf, f, 'g', -1, 64)
	for _, b := range buf[start:] {
		switch b {
		case '.', 'e', 'E', 'n', 'N': // NaN and ±Inf are left alone
			return buf
		}
	}
	return append(buf, ".0"...)
}
