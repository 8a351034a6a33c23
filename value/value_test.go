// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package value_test

import (
	"errors"
	"math"
	"testing"

	"github.com/creachadair/tjson/value"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input string
		kind  value.Kind
		text  string
	}{
		// Unsigned boundaries.
		{"0", value.Uint16, "0"},
		{"65534", value.Uint16, "65534"},
		{"65535", value.Uint32, "65535"},
		{"65536", value.Uint32, "65536"},
		{"4294967294", value.Uint32, "4294967294"},
		{"4294967295", value.Uint64, "4294967295"},
		{"18446744073709551615", value.Uint64, "18446744073709551615"},

		// Signed boundaries.
		{"-0", value.Int16, "0"},
		{"-1", value.Int16, "-1"},
		{"-32767", value.Int16, "-32767"},
		{"-32768", value.Int32, "-32768"},
		{"-2147483647", value.Int32, "-2147483647"},
		{"-2147483648", value.Int64, "-2147483648"},
		{"-9223372036854775808", value.Int64, "-9223372036854775808"},

		// Floats are never narrowed.
		{"0.5", value.Float, "0.5"},
		{"-6.32", value.Float, "-6.32"},
		{"1e3", value.Float, "1000.0"},
		{"2.5E-3", value.Float, "0.0025"},
		{"120.398", value.Float, "120.398"},
	}
	for _, tc := range tests {
		v, err := value.ParseNumber(tc.input)
		if err != nil {
			t.Errorf("ParseNumber(%q): unexpected error: %v", tc.input, err)
			continue
		}
		if got := v.Kind(); got != tc.kind {
			t.Errorf("ParseNumber(%q): kind is %v, want %v", tc.input, got, tc.kind)
		}
		if got := v.String(); got != tc.text {
			t.Errorf("ParseNumber(%q): text is %q, want %q", tc.input, got, tc.text)
		}
		if b, err := value.ParseNumberBytes([]byte(tc.input)); err != nil {
			t.Errorf("ParseNumberBytes(%q): unexpected error: %v", tc.input, err)
		} else if b.Kind() != v.Kind() || b.String() != v.String() {
			t.Errorf("ParseNumberBytes(%q): got %v, want %v", tc.input, b, v)
		}
	}
}

func TestParseNumberErrors(t *testing.T) {
	if _, err := value.ParseNumber(""); !errors.Is(err, value.ErrEmpty) {
		t.Errorf("ParseNumber(empty): got %v, want %v", err, value.ErrEmpty)
	}
	for _, input := range []string{"x", "-", "1.2.3", "18446744073709551616", "-9223372036854775809", "--1"} {
		if v, err := value.ParseNumber(input); err == nil {
			t.Errorf("ParseNumber(%q): got %v, want error", input, v)
		} else {
			t.Logf("ParseNumber(%q): got expected error: %v", input, err)
		}
	}
}

func TestAppendJSON(t *testing.T) {
	tests := []struct {
		input value.Value
		want  string
	}{
		{value.Value{}, "null"},
		{value.FromUint16(17), "17"},
		{value.FromInt16(-17), "-17"},
		{value.FromUint32(math.MaxUint32), "4294967295"},
		{value.FromInt32(math.MinInt32), "-2147483648"},
		{value.FromUint64(math.MaxUint64), "18446744073709551615"},
		{value.FromInt64(math.MinInt64), "-9223372036854775808"},
		{value.FromFloat(0), "0.0"},
		{value.FromFloat(100), "100.0"},
		{value.FromFloat(3.1415), "3.1415"},
		{value.FromFloat(-0.00239), "-0.00239"},
		{value.FromFloat(1e21), "1e+21"},
		{value.FromFloat(math.Inf(1)), "+Inf"},
		{value.FromString(""), `""`},
		{value.FromString("a \t b"), "\"a \t b\""},
		{value.FromString(`say "hi"`), `"say "hi""`}, // verbatim, no escaping
		{value.FromBlob([]byte("hello")), `"aGVsbG8="`},
	}
	for _, tc := range tests {
		if got := string(tc.input.AppendJSON(nil)); got != tc.want {
			t.Errorf("AppendJSON(%v): got %#q, want %#q", tc.input.Kind(), got, tc.want)
		}
	}
}

func TestLen(t *testing.T) {
	tests := []struct {
		input value.Value
		want  int
	}{
		{value.Value{}, 0},
		{value.FromUint16(1), 2},
		{value.FromInt16(1), 2},
		{value.FromUint32(1), 4},
		{value.FromInt32(1), 4},
		{value.FromUint64(1), 8},
		{value.FromInt64(1), 8},
		{value.FromFloat(1), 8},
		{value.FromString("abcde"), 5},
		{value.FromBlob([]byte{1, 2, 3}), 3},
	}
	for _, tc := range tests {
		if got := tc.input.Len(); got != tc.want {
			t.Errorf("Len(%v): got %d, want %d", tc.input.Kind(), got, tc.want)
		}
	}
}

func TestAccessors(t *testing.T) {
	if v, ok := value.FromInt16(-5).Int64(); !ok || v != -5 {
		t.Errorf("Int16 Int64: got %v, %v; want -5, true", v, ok)
	}
	if _, ok := value.FromInt16(-5).Uint64(); ok {
		t.Error("Int16(-5) Uint64: got ok, want !ok")
	}
	if v, ok := value.FromUint16(9).Int64(); !ok || v != 9 {
		t.Errorf("Uint16 Int64: got %v, %v; want 9, true", v, ok)
	}
	if _, ok := value.FromUint64(math.MaxUint64).Int64(); ok {
		t.Error("Uint64(max) Int64: got ok, want !ok")
	}
	if f, ok := value.FromFloat(2.5).Float64(); !ok || f != 2.5 {
		t.Errorf("Float64: got %v, %v; want 2.5, true", f, ok)
	}
	if _, ok := value.FromString("x").Float64(); ok {
		t.Error("String Float64: got ok, want !ok")
	}
	if s, ok := value.FromString("x").Str(); !ok || s != "x" {
		t.Errorf("Str: got %q, %v; want x, true", s, ok)
	}
	if _, ok := value.FromUint16(1).Str(); ok {
		t.Error("Uint16 Str: got ok, want !ok")
	}
	if b, ok := value.FromBlob([]byte("z")).Bytes(); !ok || string(b) != "z" {
		t.Errorf("Bytes: got %q, %v; want z, true", b, ok)
	}
}

func TestKindString(t *testing.T) {
	if got := value.Uint32.String(); got != "uint32" {
		t.Errorf("Uint32.String(): got %q", got)
	}
	if got := value.Kind(200).String(); got != "invalid" {
		t.Errorf("Kind(200).String(): got %q", got)
	}
	if !value.Int64.IsInteger() || value.Float.IsInteger() {
		t.Error("IsInteger is wrong")
	}
}
