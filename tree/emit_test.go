// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tree_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/creachadair/tjson/tree"
)

func writeInput(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.json")
	if err := os.WriteFile(path, []byte(text), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestParseAndEmit(t *testing.T) {
	input := writeInput(t, `{"a": 1, "b": [true, false, "x"]}`)

	t.Run("Basic", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		if err := tree.ParseAndEmit(input, tree.EmitOptions{
			Stdout: &stdout,
			Stderr: &stderr,
		}); err != nil {
			t.Fatalf("ParseAndEmit: %v", err)
		}
		if got, want := stdout.String(), "{\"a\" : 1,\"b\" : [true,false,\"x\"]}\n"; got != want {
			t.Errorf("Output: got %#q, want %#q", got, want)
		}
		if stderr.Len() != 0 {
			t.Errorf("Unexpected diagnostics: %q", stderr.String())
		}
	})

	t.Run("Output", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "out.json")
		var stdout bytes.Buffer
		if err := tree.ParseAndEmit(input, tree.EmitOptions{
			Output: out,
			Stdout: &stdout,
		}); err != nil {
			t.Fatalf("ParseAndEmit: %v", err)
		}
		if _, err := os.Stat(out); err != nil {
			t.Errorf("Output file was not created: %v", err)
		}
		if stdout.Len() == 0 {
			t.Error("No output on stdout")
		}
	})

	t.Run("BadOutput", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "nonesuch", "out.json")
		var stdout, stderr bytes.Buffer
		err := tree.ParseAndEmit(input, tree.EmitOptions{
			Output: bad,
			Stdout: &stdout,
			Stderr: &stderr,
		})
		if !errors.Is(err, tree.ErrIO) {
			t.Errorf("ParseAndEmit: got %v, want %v", err, tree.ErrIO)
		}
		if stdout.Len() != 0 {
			t.Errorf("Unexpected output: %q", stdout.String())
		}
		if !strings.HasPrefix(stderr.String(), input+": ") {
			t.Errorf("Diagnostic: got %q, want prefix %q", stderr.String(), input)
		}
	})

	t.Run("Debug", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		if err := tree.ParseAndEmit(input, tree.EmitOptions{
			Debug:  true,
			Stdout: &stdout,
			Stderr: &stderr,
		}); err != nil {
			t.Fatalf("ParseAndEmit: %v", err)
		}
		trace := stderr.String()
		if !strings.Contains(trace, "msg=shift") || !strings.Contains(trace, "production=document") {
			t.Errorf("Trace is missing steps:\n%s", trace)
		}
		if strings.Contains(trace, "time=") {
			t.Errorf("Trace includes timestamps:\n%s", trace)
		}
	})

	t.Run("Escaped", func(t *testing.T) {
		path := writeInput(t, `["say \"hi\""]`)
		var stdout bytes.Buffer
		if err := tree.ParseAndEmit(path, tree.EmitOptions{
			Encoder: tree.NewEncoder(tree.EscapeStrings(true)),
			Stdout:  &stdout,
		}); err != nil {
			t.Fatalf("ParseAndEmit: %v", err)
		}
		if got, want := stdout.String(), "[\"say \\\"hi\\\"\"]\n"; got != want {
			t.Errorf("Output: got %#q, want %#q", got, want)
		}
	})

	t.Run("SyntaxError", func(t *testing.T) {
		path := writeInput(t, `{"a": }`)
		var stdout, stderr bytes.Buffer
		err := tree.ParseAndEmit(path, tree.EmitOptions{Stdout: &stdout, Stderr: &stderr})
		if err == nil {
			t.Fatal("ParseAndEmit: got nil, want error")
		}
		if stdout.Len() != 0 {
			t.Errorf("Unexpected output: %q", stdout.String())
		}
		if stderr.Len() == 0 {
			t.Error("No diagnostic was written")
		}
	})
}
