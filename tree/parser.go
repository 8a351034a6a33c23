// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tree

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/creachadair/tjson"
	"github.com/creachadair/tjson/value"
	"github.com/tailscale/hujson"
)

// A Parser builds trees from source text. The zero value is ready for use
// and accepts the strict grammar described in package tjson.
//
// Each call to a Parser method uses its own parsing state, so a single
// Parser may be used concurrently.
type Parser struct {
	// AllowEmpty, if true, accepts empty objects "{}" and arrays "[]".
	AllowEmpty bool

	// Lenient, if true, accepts HuJSON input (JSON with comments and
	// trailing commas). The input is standardized before parsing, which
	// requires string escapes to be valid JSON escapes.
	Lenient bool

	// If Trace != nil, the parser logs each step of the grammar to it at
	// debug level.
	Trace *slog.Logger
}

// Parse parses a single document from r and returns its root. If the input
// holds no document, Parse reports ErrNotFound. A violation of the grammar
// is reported as a *tjson.SyntaxError.
func (p Parser) Parse(r io.Reader) (Node, error) {
	if p.Lenient {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read: %w: %w", ErrIO, err)
		}
		return p.ParseBuffer(data)
	}
	return p.parse(r)
}

// ParseBuffer parses a single document from text and returns its root.
func (p Parser) ParseBuffer(text []byte) (Node, error) {
	if p.Lenient {
		std, err := hujson.Standardize(text)
		if err != nil {
			return nil, fmt.Errorf("standardize: %w", err)
		}
		text = std
	}
	return p.parse(bytes.NewReader(text))
}

// ParseFile parses a single document from the named file and returns its
// root. It reports ErrIO if the file cannot be opened or read.
func (p Parser) ParseFile(path string) (Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()
	root, err := p.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}

func (p Parser) parse(r io.Reader) (Node, error) {
	h := &parseHandler{trace: p.Trace}
	st := tjson.NewStream(r)
	st.AllowEmpty(p.AllowEmpty)
	if err := st.Parse(h); err != nil {
		return nil, err
	}
	if h.root == nil {
		return nil, fmt.Errorf("parse: %w: no document", ErrNotFound)
	}
	return h.root, nil
}

// Parse parses a single document from r using a zero Parser.
func Parse(r io.Reader) (Node, error) { return Parser{}.Parse(r) }

// ParseBuffer parses a single document from text using a zero Parser.
func ParseBuffer(text []byte) (Node, error) { return Parser{}.ParseBuffer(text) }

// ParseFile parses a single document from the named file using a zero
// Parser.
func ParseFile(path string) (Node, error) { return Parser{}.ParseFile(path) }

// A parseHandler implements the tjson.Handler interface to construct a tree.
// The stack holds the open containers, innermost last.
type parseHandler struct {
	stk   []Node
	root  Node
	trace *slog.Logger

	key    string // name for the next node, if hasKey
	hasKey bool
}

// posError reports an error from constructing a node, with the location of
// the token that caused it.
type posError struct {
	loc tjson.LineCol
	err error
}

func (p posError) Error() string { return fmt.Sprintf("at %s: %v", p.loc, p.err) }

func (p posError) Unwrap() error { return p.err }

func (h *parseHandler) logf(loc tjson.Anchor, step, production string) {
	if h.trace != nil {
		h.trace.Debug(step, "production", production, "token", loc.Token().String(),
			"loc", loc.Location().String(), "depth", len(h.stk))
	}
}

// named applies the pending member name, if any, to n.
func (h *parseHandler) named(n Node) Node {
	if h.hasKey {
		b := n.base() // newly constructed, so never attached
		b.name, b.named = h.key, true
		h.key, h.hasKey = "", false
	}
	return n
}

// attach adds n to the innermost open container. If there is none, n
// becomes the root.
func (h *parseHandler) attach(loc tjson.Anchor, n Node) error {
	if len(h.stk) == 0 {
		h.root = n
		return nil
	}
	var err error
	switch top := h.stk[len(h.stk)-1].(type) {
	case *Array:
		err = ArrayAppend(top, n)
	case *Object:
		err = ObjectAppend(top, n)
	}
	if err != nil {
		return posError{loc: loc.Location().First, err: err}
	}
	return nil
}

func (h *parseHandler) open(loc tjson.Anchor, n Node) error {
	if err := h.attach(loc, h.named(n)); err != nil {
		return err
	}
	h.stk = append(h.stk, n)
	return nil
}

func (h *parseHandler) close(loc tjson.Anchor, production string) error {
	h.stk = h.stk[:len(h.stk)-1]
	h.logf(loc, "reduce", production)
	return nil
}

func (h *parseHandler) BeginObject(loc tjson.Anchor) error {
	h.logf(loc, "shift", "object")
	return h.open(loc, new(Object))
}

func (h *parseHandler) EndObject(loc tjson.Anchor) error { return h.close(loc, "object") }

func (h *parseHandler) BeginArray(loc tjson.Anchor) error {
	h.logf(loc, "shift", "array")
	return h.open(loc, new(Array))
}

func (h *parseHandler) EndArray(loc tjson.Anchor) error { return h.close(loc, "array") }

func (h *parseHandler) BeginMember(loc tjson.Anchor) error {
	key, err := tjson.Unescape(loc.Text())
	if err != nil {
		return posError{loc: loc.Location().First, err: errInvalidf("key: %w", err)}
	}
	h.key, h.hasKey = string(key), true
	h.logf(loc, "shift", "attribute")
	return nil
}

func (h *parseHandler) EndMember(loc tjson.Anchor) error {
	h.logf(loc, "reduce", "attribute")
	return nil
}

func (h *parseHandler) Value(loc tjson.Anchor) error {
	h.logf(loc, "shift", "value")
	var n Node
	switch tok := loc.Token(); tok {
	case tjson.Integer, tjson.Number:
		v, err := value.ParseNumberBytes(loc.Text())
		if err != nil {
			return posError{loc: loc.Location().First, err: errInvalidf("number %q: %w", loc.Text(), err)}
		}
		n = NewValue("", v)
	case tjson.String:
		s, err := tjson.Unescape(loc.Text())
		if err != nil {
			return posError{loc: loc.Location().First, err: errInvalidf("string: %w", err)}
		}
		n = NewString("", string(s))
	case tjson.True, tjson.False:
		n = NewBool("", tok == tjson.True)
	default:
		return fmt.Errorf("unknown value %v", tok)
	}
	return h.attach(loc, h.named(n))
}

func (h *parseHandler) EndOfInput(loc tjson.Anchor) {
	if h.root != nil {
		h.logf(loc, "reduce", "document")
	}
}
