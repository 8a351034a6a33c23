// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tree_test

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/creachadair/tjson/tree"
	"github.com/creachadair/tjson/value"
)

func TestSerialize(t *testing.T) {
	tests := []struct {
		name  string
		input tree.Node
		comma bool
		want  string
	}{
		{"EmptyArray", tree.NewArray(""), false, "[]"},
		{"EmptyObject", tree.NewObject(""), false, "{}"},
		{"NamedArray", tree.NewArray("list"), false, `"list" : []`},
		{"LeadingComma", tree.NewNumber("n", 5), true, `,"n" : 5`},
		{"True", tree.NewBool("", true), false, "true"},
		{"False", tree.NewBool("", false), false, "false"},
		{"Float", tree.NewFloat("", 3.1415), false, "3.1415"},
		{"WholeFloat", tree.NewFloat("", 2), false, "2.0"},
		{"Int16", tree.NewValue("", value.FromInt16(-5)), false, "-5"},
		{"Int64", tree.NewValue("", value.FromInt64(math.MinInt64)), false, "-9223372036854775808"},
		{"Uint64", tree.NewValue("", value.FromUint64(math.MaxUint64)), false, "18446744073709551615"},
		{"String", tree.NewString("s", "a b"), false, `"s" : "a b"`},
		{"Verbatim", tree.NewString("", "say \"hi\"\n"), false, "\"say \"hi\"\n\""},
		{"Blob", tree.NewBlob("", []byte("hi")), false, `"aGk="`},
		{"NoValue", tree.NewVar("v"), false, `"v" : null`},
		{"Nested", tree.ToNode(map[string]any{
			"a": []any{1, true, "x"},
			"b": map[string]any{"c": 2.5},
		}), false, `{"a" : [1,true,"x"],"b" : {"c" : 2.5}}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf strings.Builder
			if err := tree.Serialize(tc.input, &buf, tc.comma); err != nil {
				t.Fatalf("Serialize: unexpected error: %v", err)
			}
			if got := buf.String(); got != tc.want {
				t.Errorf("Serialize: got %#q, want %#q", got, tc.want)
			}
		})
	}
}

func TestSerializeErrors(t *testing.T) {
	if err := tree.Serialize(nil, new(strings.Builder), false); !errors.Is(err, tree.ErrInvalidInput) {
		t.Errorf("Serialize(nil): got %v, want %v", err, tree.ErrInvalidInput)
	}
	errWrite := errors.New("disk full")
	err := tree.Serialize(tree.NewBool("", true), failWriter{errWrite}, false)
	if !errors.Is(err, tree.ErrIO) || !errors.Is(err, errWrite) {
		t.Errorf("Serialize(failing writer): got %v, want %v and %v", err, tree.ErrIO, errWrite)
	}
}

type failWriter struct{ err error }

func (f failWriter) Write([]byte) (int, error) { return 0, f.err }

func TestEncoderEscape(t *testing.T) {
	root := tree.NewObject("")
	if err := tree.ObjectAppend(root, tree.NewString("k\"ey", "line\nbreak\t\"q\" \\")); err != nil {
		t.Fatalf("ObjectAppend: %v", err)
	}
	enc := tree.NewEncoder(tree.EscapeStrings(true))
	var buf strings.Builder
	if err := enc.Encode(&buf, root, false); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	const want = `{"k\"ey" : "line\nbreak\t\"q\" \\"}`
	if got := buf.String(); got != want {
		t.Errorf("Encode: got %#q, want %#q", got, want)
	}

	// Escaped output parses back to the same strings.
	back, err := tree.ParseBuffer([]byte(buf.String()))
	if err != nil {
		t.Fatalf("ParseBuffer: %v", err)
	}
	if got, err := tree.GetString(back, "k\"ey"); err != nil || got != "line\nbreak\t\"q\" \\" {
		t.Errorf("GetString: got %q, %v", got, err)
	}
}

func TestEncoderColors(t *testing.T) {
	tag := func(label string) tree.ColorFunc {
		return func(format string, args ...any) string {
			return "<" + label + ":" + fmt.Sprintf(format, args...) + ">"
		}
	}
	enc := tree.NewEncoder(tree.WithColors(&tree.Colors{
		Name:   tag("n"),
		String: tag("s"),
		Number: tag("d"),
		Bool:   tag("b"),
		// Punct is unset, and left undecorated
	}))
	root := mustParse(t, `{"a": [1, "x", false]}`)
	got := string(enc.AppendNode(nil, root))
	const want = `{<n:"a"> : [<d:1>,<s:"x">,<b:false>]}`
	if got != want {
		t.Errorf("AppendNode: got %#q, want %#q", got, want)
	}

	// The default color set fills every field.
	c := tree.NewColors()
	if c.Name == nil || c.String == nil || c.Number == nil || c.Bool == nil || c.Null == nil || c.Punct == nil {
		t.Errorf("NewColors: missing fields: %+v", c)
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []string{
		`{"a":1,"b":[true,false,"x"]}`,
		`[1,-2,65535,-32768,4294967295,-2147483648,18446744073709551615]`,
		`[0.5,-6.32,1e3,2.5E-3]`,
		`{"nest":{"deeper":{"deepest":["ok"]}},"":"empty key","dup":1,"dup":2}`,
		`["tab\there","nul\0","it\'s"]`,
		`  [ { "x" : [ [ 1 ] ] } ]  `,
	}
	for _, input := range tests {
		first := mustParse(t, input).JSON()
		second := mustParse(t, first).JSON()
		if first != second {
			t.Errorf("Round trip of %#q:\n first: %#q\nsecond: %#q", input, first, second)
		}
	}
}

func TestRoundTripBuilt(t *testing.T) {
	arr := tree.NewArray("a")
	for _, n := range []tree.Node{tree.NewBool("", true), tree.NewString("", "s"), tree.NewArray("")} {
		if err := tree.ArrayAppend(arr, n); err != nil {
			t.Fatalf("ArrayAppend: %v", err)
		}
	}
	inner := tree.NewObject("o")
	if err := tree.ObjectAppend(inner, arr); err != nil {
		t.Fatalf("ObjectAppend: %v", err)
	}
	root := tree.NewObject("")
	for _, n := range []tree.Node{
		tree.NewNumber("n", 7),
		tree.NewValue("i", value.FromInt64(math.MinInt64)),
		tree.NewFloat("f", 1),
		tree.NewBlob("b", []byte("hi")),
		inner,
	} {
		if err := tree.ObjectAppend(root, n); err != nil {
			t.Fatalf("ObjectAppend: %v", err)
		}
	}
	defer tree.Free(root)

	const want = `{"n" : 7,"i" : -9223372036854775808,"f" : 1.0,"b" : "aGk=","o" : {"a" : [true,"s",[]]}}`
	first := root.JSON()
	if first != want {
		t.Errorf("Built tree:\n got %#q\nwant %#q", first, want)
	}
	reparsed, err := tree.Parser{AllowEmpty: true}.ParseBuffer([]byte(first))
	if err != nil {
		t.Fatalf("Parse %#q: %v", first, err)
	}
	defer tree.Free(reparsed)
	if second := reparsed.JSON(); second != first {
		t.Errorf("Round trip:\n first: %#q\nsecond: %#q", first, second)
	}
}

func TestRoundTripEscaped(t *testing.T) {
	// Strings holding quotes and backslashes need escaping to round-trip.
	tests := []string{
		`["quote \"q\"","back\\slash","\\\"","mixed\r\n\t\0"]`,
		`{"key \"quoted\"":{"\\":"v"}}`,
	}
	enc := tree.NewEncoder(tree.EscapeStrings(true))
	for _, input := range tests {
		first := string(enc.AppendNode(nil, mustParse(t, input)))
		second := string(enc.AppendNode(nil, mustParse(t, first)))
		if first != second {
			t.Errorf("Round trip of %#q:\n first: %#q\nsecond: %#q", input, first, second)
		}
	}
}
