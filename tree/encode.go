// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tree

import (
	"fmt"
	"io"

	"github.com/creachadair/tjson"
	"github.com/creachadair/tjson/value"
)

// Serialize writes the text representation of node to w. If leadingComma is
// true, a comma is written before the node. The output is a single line of
// text with no trailing newline:
//
//   - A named node is preceded by its name in double quotes and " : ".
//   - Arrays and objects are enclosed in brackets and braces, with their
//     children separated by commas and no other whitespace.
//   - A Var is written according to its value kind (see value.AppendJSON).
//   - A Bool is written as true or false.
//
// Names and string values are written verbatim, without escaping.
// Serialize reports ErrInvalidInput if node is nil or released, and ErrIO if
// writing to w fails.
func Serialize(node Node, w io.Writer, leadingComma bool) error {
	return new(Encoder).Encode(w, node, leadingComma)
}

// An Encoder renders trees as text. The zero value is ready for use, and
// produces the same output as Serialize.
type Encoder struct {
	escape bool
	colors *Colors
}

// An EncodeOption configures an Encoder.
type EncodeOption func(*Encoder)

// EscapeStrings configures whether names and string values are escaped
// with tjson.Quote (true), or written verbatim (false, the default).
func EscapeStrings(ok bool) EncodeOption { return func(e *Encoder) { e.escape = ok } }

// WithColors configures the encoder to decorate its output with c. A nil c
// disables decoration.
func WithColors(c *Colors) EncodeOption { return func(e *Encoder) { e.colors = c } }

// NewEncoder constructs an Encoder with the given options.
func NewEncoder(opts ...EncodeOption) *Encoder {
	e := new(Encoder)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Encode writes the text representation of node to w, preceded by a comma
// if leadingComma is true.
func (e *Encoder) Encode(w io.Writer, node Node, leadingComma bool) error {
	if err := checkLive("serialize", node); err != nil {
		return err
	}
	var buf []byte
	if leadingComma {
		buf = e.punct(buf, ",")
	}
	buf = e.appendNode(buf, node)
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("serialize: %w: %w", ErrIO, err)
	}
	return nil
}

// AppendNode appends the text representation of node to buf and returns the
// updated slice. A nil or released node appends nothing.
func (e *Encoder) AppendNode(buf []byte, node Node) []byte {
	if checkLive("serialize", node) != nil {
		return buf
	}
	return e.appendNode(buf, node)
}

func (e *Encoder) appendNode(buf []byte, n Node) []byte {
	if name, ok := n.Name(); ok {
		buf = e.paint(buf, e.palette().Name, e.quote(name))
		buf = e.punct(buf, " : ")
	}
	switch t := n.(type) {
	case *Array:
		buf = e.punct(buf, "[")
		for i, elt := range t.elems {
			if i > 0 {
				buf = e.punct(buf, ",")
			}
			buf = e.appendNode(buf, elt)
		}
		return e.punct(buf, "]")

	case *Object:
		buf = e.punct(buf, "{")
		for i, m := range t.members {
			if i > 0 {
				buf = e.punct(buf, ",")
			}
			buf = e.appendNode(buf, m)
		}
		return e.punct(buf, "}")

	case *Var:
		return e.appendValue(buf, t.val)

	case *Bool:
		text := "false"
		if t.True() {
			text = "true"
		}
		return e.paint(buf, e.palette().Bool, text)
	}
	panic(fmt.Sprintf("unknown node type %T", n))
}

func (e *Encoder) appendValue(buf []byte, v value.Value) []byte {
	switch v.Kind() {
	case value.String:
		s, _ := v.Str()
		return e.paint(buf, e.palette().String, e.quote(s))
	case value.Blob:
		return e.paint(buf, e.palette().String, v.String())
	case value.Invalid:
		return e.paint(buf, e.palette().Null, v.String())
	default:
		return e.paint(buf, e.palette().Number, v.String())
	}
}

func (e *Encoder) quote(s string) string {
	if e.escape {
		return tjson.Quote(s)
	}
	return `"` + s + `"`
}

func (e *Encoder) punct(buf []byte, s string) []byte {
	return e.paint(buf, e.palette().Punct, s)
}

func (e *Encoder) palette() Colors {
	if e.colors == nil {
		return Colors{}
	}
	return *e.colors
}

func (e *Encoder) paint(buf []byte, f ColorFunc, text string) []byte {
	if f == nil {
		return append(buf, text...)
	}
	return append(buf, f("%s", text)...)
}

func jsonString(n Node) string {
	if isNil(n) {
		return ""
	}
	return string(new(Encoder).AppendNode(nil, n))
}
