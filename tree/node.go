// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package tree defines an in-memory document tree for JSON values, the
// operations that construct, search, serialize and release it, and a parser
// that builds trees from source text.
//
// A tree is made of four kinds of node: an *Array holds an ordered sequence
// of unnamed children, an *Object holds an ordered sequence of named
// children, a *Var holds a scalar value.Value, and a *Bool holds a truth
// value. Names are not required to be unique within an object; lookups
// return the first match in insertion order.
//
// A node belongs to at most one container. A newly-constructed node is owned
// by its creator until it is appended to a container with ArrayAppend or
// ObjectAppend; thereafter it belongs to that container and cannot be
// appended anywhere else. Free releases a root node and all its descendants.
package tree

import (
	"iter"
	"slices"

	"github.com/creachadair/tjson/value"
)

// Kind identifies the concrete type of a Node.
type Kind byte

// Constants defining the valid Kind values.
const (
	KindArray  Kind = 1 + iota // *Array
	KindObject                 // *Object
	KindVar                    // *Var
	KindBool                   // *Bool
)

func (k Kind) String() string {
	switch k {
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindVar:
		return "var"
	case KindBool:
		return "bool"
	}
	return "invalid"
}

// A Node is an element of a document tree. The concrete type of a Node is
// one of *Array, *Object, *Var, or *Bool.
type Node interface {
	// Kind reports the kind of the node.
	Kind() Kind

	// Name reports the name of the node, and whether it has one.
	Name() (string, bool)

	// JSON renders the node as serialized by Serialize.
	JSON() string

	base() *header
}

// header is the state shared by all node types.
type header struct {
	name     string
	named    bool
	attached bool // owned by a container
	released bool // released by Free
}

// Name reports the name of the node and whether it has one.
func (h *header) Name() (string, bool) { return h.name, h.named }

// SetName sets the name of the node, replacing any previous name. An empty
// name is a valid name, distinct from having no name. The name of a node
// that is attached to a container cannot be changed.
func (h *header) SetName(name string) error {
	if h.attached || h.released {
		return errInvalidf("cannot rename an attached or released node")
	}
	h.name, h.named = name, true
	return nil
}

// ClearName removes the name of the node, if it has one. The name of a node
// that is attached to a container cannot be changed.
func (h *header) ClearName() error {
	if h.attached || h.released {
		return errInvalidf("cannot rename an attached or released node")
	}
	h.name, h.named = "", false
	return nil
}

// Attached reports whether the node belongs to a container.
func (h *header) Attached() bool { return h.attached }

// Released reports whether the node has been released by Free.
func (h *header) Released() bool { return h.released }

func (h *header) setName(name string) {
	if name != "" {
		h.name, h.named = name, true
	}
}

// An Array is an ordered sequence of unnamed nodes.
type Array struct {
	header
	elems []Node
}

// NewArray constructs a new empty array with the given name. If name == "",
// the array has no name.
func NewArray(name string) *Array {
	a := new(Array)
	a.setName(name)
	return a
}

// Kind satisfies the Node interface.
func (*Array) Kind() Kind { return KindArray }

// JSON satisfies the Node interface.
func (a *Array) JSON() string { return jsonString(a) }

// Len reports the number of elements in a.
func (a *Array) Len() int { return len(a.elems) }

// At returns the element of a at offset i. It panics if i is out of range.
func (a *Array) At(i int) Node { return a.elems[i] }

// All is a range function over the elements of a, with their offsets.
func (a *Array) All() iter.Seq2[int, Node] { return slices.All(a.elems) }

func (a *Array) base() *header {
	if a == nil {
		return nil
	}
	return &a.header
}

// An Object is an ordered sequence of named nodes.
type Object struct {
	header
	members []Node
}

// NewObject constructs a new empty object with the given name. If name == "",
// the object has no name.
func NewObject(name string) *Object {
	o := new(Object)
	o.setName(name)
	return o
}

// Kind satisfies the Node interface.
func (*Object) Kind() Kind { return KindObject }

// JSON satisfies the Node interface.
func (o *Object) JSON() string { return jsonString(o) }

// Len reports the number of members in o.
func (o *Object) Len() int { return len(o.members) }

// At returns the member of o at offset i. It panics if i is out of range.
func (o *Object) At(i int) Node { return o.members[i] }

// All is a range function over the members of o, with their offsets.
func (o *Object) All() iter.Seq2[int, Node] { return slices.All(o.members) }

// Find returns the first member of o with the given name, or nil.
func (o *Object) Find(name string) Node {
	for _, m := range o.members {
		if m.base().name == name {
			return m
		}
	}
	return nil
}

func (o *Object) base() *header {
	if o == nil {
		return nil
	}
	return &o.header
}

// A Var is a leaf node carrying a scalar value.
type Var struct {
	header
	val value.Value
}

// NewVar constructs a new Var with the given name and no value. If name ==
// "", the Var has no name.
func NewVar(name string) *Var { return NewValue(name, value.Value{}) }

// NewValue constructs a new Var with the given name and value. If name ==
// "", the Var has no name.
func NewValue(name string, v value.Value) *Var {
	out := &Var{val: v}
	out.setName(name)
	return out
}

// NewNumber constructs a new Var holding an unsigned 32-bit integer.
func NewNumber(name string, v uint32) *Var { return NewValue(name, value.FromUint32(v)) }

// NewFloat constructs a new Var holding a floating-point number.
func NewFloat(name string, v float64) *Var { return NewValue(name, value.FromFloat(v)) }

// NewString constructs a new Var holding a string.
func NewString(name, s string) *Var { return NewValue(name, value.FromString(s)) }

// NewBlob constructs a new Var holding opaque binary data. The Var takes
// ownership of data.
func NewBlob(name string, data []byte) *Var { return NewValue(name, value.FromBlob(data)) }

// ParseNumber constructs a new Var holding the numeric value denoted by
// text, using the narrowest representation that holds it (see
// value.ParseNumber). It reports ErrInvalidInput if text is empty or is not
// a valid number.
func ParseNumber(name, text string) (*Var, error) {
	v, err := value.ParseNumber(text)
	if err != nil {
		return nil, errInvalidf("parse number %q: %w", text, err)
	}
	return NewValue(name, v), nil
}

// Kind satisfies the Node interface.
func (*Var) Kind() Kind { return KindVar }

// JSON satisfies the Node interface.
func (v *Var) JSON() string { return jsonString(v) }

// Value returns the value carried by v.
func (v *Var) Value() value.Value { return v.val }

// Set replaces the value carried by v.
func (v *Var) Set(val value.Value) { v.val = val }

func (v *Var) base() *header {
	if v == nil {
		return nil
	}
	return &v.header
}

// A Bool is a leaf node carrying a truth value. Its value is represented as
// a value.Uint16 holding 0 or 1.
type Bool struct {
	header
	val value.Value
}

// NewBool constructs a new Bool with the given name and truth value.
func NewBool(name string, ok bool) *Bool {
	b := new(Bool)
	b.setName(name)
	b.Set(ok)
	return b
}

// Kind satisfies the Node interface.
func (*Bool) Kind() Kind { return KindBool }

// JSON satisfies the Node interface.
func (b *Bool) JSON() string { return jsonString(b) }

// Value returns the value carried by b.
func (b *Bool) Value() value.Value { return b.val }

// True reports whether b is true.
func (b *Bool) True() bool { u, _ := b.val.Uint64(); return u != 0 }

// Set sets the truth value of b.
func (b *Bool) Set(ok bool) {
	if ok {
		b.val = value.FromUint16(1)
	} else {
		b.val = value.FromUint16(0)
	}
}

func (b *Bool) base() *header {
	if b == nil {
		return nil
	}
	return &b.header
}

// isNil reports whether n is nil or a typed nil pointer.
func isNil(n Node) bool { return n == nil || n.base() == nil }

// children returns the direct children of n, or nil if n is not a container.
func children(n Node) []Node {
	switch t := n.(type) {
	case *Array:
		return t.elems
	case *Object:
		return t.members
	}
	return nil
}
