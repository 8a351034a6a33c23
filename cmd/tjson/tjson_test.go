// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/creachadair/tjson/tree"
	"github.com/creachadair/tjson/value"
	"github.com/google/go-cmp/cmp"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func TestBuildSample(t *testing.T) {
	root := buildSample()
	defer tree.Free(root)

	var buf bytes.Buffer
	if err := printSample(new(MainConfig), &buf); err != nil {
		t.Fatalf("printSample: %v", err)
	}
	const want = `{"date" : "2020/10/13","time" : "21:12","constants" : [` +
		`{"name" : "pi","value" : 3.1415},{"name" : "phi","value" : 1.61803},` +
		`{"name" : "e","value" : 2.71828},{"name" : "ln2","value" : 0.69314}],` +
		`"meta" : {"enabled" : false,"priority" : "high"}}` + "\n"
	if got := buf.String(); got != want {
		t.Errorf("printSample:\n got %#q\nwant %#q", got, want)
	}
	if got := root.JSON() + "\n"; got != want {
		t.Errorf("JSON:\n got %#q\nwant %#q", got, want)
	}
}

func TestSampleDocument(t *testing.T) {
	root, err := tree.ParseBuffer([]byte(sampleDocument))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	defer tree.Free(root)

	if id, err := tree.GetString(root, "sensorId"); err != nil || id != "0x000070B3D5750F0B" {
		t.Errorf("sensorId: got %q, %v", id, err)
	}
	if n, err := tree.ArrayLen(root, "channels"); err != nil || n != 3 {
		t.Errorf("channels: got %d, %v; want 3", n, err)
	}
	if n, err := tree.ArrayLen(root, "cts"); err != nil || n != 4 {
		t.Errorf("cts: got %d, %v; want 4", n, err)
	}
	e, err := tree.Find(root, "eImp_Ws")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if k := e.(*tree.Var).Value().Kind(); k != value.Uint64 {
		t.Errorf("eImp_Ws kind: got %v, want %v", k, value.Uint64)
	}

	var buf bytes.Buffer
	if err := emitBuffer(new(MainConfig), &buf, []byte(sampleDocument)); err != nil {
		t.Fatalf("emitBuffer: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		`"q_VAR" : -82`, `"v_V" : 120.398`, `"v_V" : 0.0`, `"eImp_Ws" : 159687481246`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Output is missing %#q", want)
		}
	}
	if !strings.HasSuffix(out, "}]}\n") {
		t.Errorf("Output has the wrong ending: %q", out[max(0, len(out)-10):])
	}
}

func TestFlatten(t *testing.T) {
	root, err := tree.Parser{AllowEmpty: true}.ParseBuffer([]byte(`{
  "a": 1,
  "b": [true, "x\ty"],
  "odd key": {"c": -2.5},
  "e": [],
  "f": {}
}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := flatten(nil, "$", root)
	want := []string{
		`$.a = 1`,
		`$.b[0] = true`,
		`$.b[1] = "x\ty"`,
		`$['odd key'].c = -2.5`,
		`$.e = []`,
		`$.f = {}`,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("flatten (-want, +got):\n%s", diff)
	}
}

func TestDiffLines(t *testing.T) {
	a := []string{"$.x = 1", "$.y[0] = true", "$.z = 3"}
	b := []string{"$.x = 2", "$.y[0] = true", "$.z = 3", "$.w = 4"}

	var got []string
	for _, d := range diffLines(a, b, false) {
		got = append(got, d.String())
	}
	want := []string{"- $.x = 1", "+ $.x = 2", "+ $.w = 4"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("diffLines (-want, +got):\n%s", diff)
	}

	all := diffLines(a, b, true)
	if len(all) != 5 {
		t.Errorf("diffLines(all): got %d lines, want 5: %v", len(all), all)
	}
	if d := diffLines(a, a, false); len(d) != 0 {
		t.Errorf("diffLines(a, a): got %v, want empty", d)
	}
	for _, d := range diffLines(a, a, true) {
		if d.Type != diffpatch.DiffEqual {
			t.Errorf("diffLines(a, a, true): unexpected %v", d)
		}
	}
}

func TestApplyPatch(t *testing.T) {
	root, err := tree.ParseBuffer([]byte(`{"b": 1, "a": [1, 2], "s": "x"}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	out, err := applyPatch(root, []byte(`[
  {"op": "add", "path": "/c", "value": "new"},
  {"op": "remove", "path": "/a/0"}, // comments are allowed
  {"op": "replace", "path": "/s", "value": 2.5},
]`))
	if err != nil {
		t.Fatalf("applyPatch: %v", err)
	}
	const want = `{"a" : [2],"b" : 1,"c" : "new","s" : 2.5}`
	if got := out.JSON(); got != want {
		t.Errorf("applyPatch: got %#q, want %#q", got, want)
	}

	// The input is not modified.
	if got := root.JSON(); got != `{"b" : 1,"a" : [1,2],"s" : "x"}` {
		t.Errorf("Input was modified: %#q", got)
	}

	for _, bad := range []string{
		`[{"op": "remove", "path": "/nonesuch"}]`,
		`[{"op": "add", "path": "/n", "value": null}]`,
		`{"op": "bogus"}`,
	} {
		if _, err := applyPatch(root, []byte(bad)); err == nil {
			t.Errorf("applyPatch(%q): got nil, want error", bad)
		}
	}
}

func TestFromJSON(t *testing.T) {
	n, err := fromJSON([]byte(`{"big": 18446744073709551615, "neg": -40000, "f": 1e3, "s": "a"}`))
	if err != nil {
		t.Fatalf("fromJSON: %v", err)
	}
	if got, want := n.JSON(), `{"big" : 18446744073709551615,"f" : 1000.0,"neg" : -40000,"s" : "a"}`; got != want {
		t.Errorf("fromJSON: got %#q, want %#q", got, want)
	}
	if _, err := fromJSON([]byte(`"top"`)); !errors.Is(err, tree.ErrInvalidInput) {
		t.Errorf("fromJSON(string): got %v, want %v", err, tree.ErrInvalidInput)
	}
	if _, err := fromJSON([]byte(`[null]`)); !errors.Is(err, tree.ErrUnsupported) {
		t.Errorf("fromJSON(null): got %v, want %v", err, tree.ErrUnsupported)
	}
}

func TestMarshalYAML(t *testing.T) {
	root, err := tree.ParseBuffer([]byte(`{"zeta": 1, "alpha": [true, "x"], "mid": {"k": -3}}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	data, err := marshalYAML(root)
	if err != nil {
		t.Fatalf("marshalYAML: %v", err)
	}
	out := string(data)
	t.Logf("YAML:\n%s", out)

	// Members keep their order.
	iz, ia, im := strings.Index(out, "zeta:"), strings.Index(out, "alpha:"), strings.Index(out, "mid:")
	if iz < 0 || ia < 0 || im < 0 || !(iz < ia && ia < im) {
		t.Errorf("Keys out of order: zeta=%d alpha=%d mid=%d", iz, ia, im)
	}
	for _, want := range []string{"zeta: 1", "- true", "- x", "k: -3"} {
		if !strings.Contains(out, want) {
			t.Errorf("Output is missing %q", want)
		}
	}
}
