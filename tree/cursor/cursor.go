// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements traversal over a document tree.
package cursor

import (
	"fmt"

	"github.com/creachadair/tjson/tree"
)

// Path traverses a sequential path into the structure of n where path
// elements are as documented for the Cursor.Down method. This is a
// convenience wrapper for creating a cursor, applying path, and retrieving
// its node.
func Path[T tree.Node](n tree.Node, path ...any) (T, error) {
	c := New(n).Down(path...)
	var result T
	if err := c.Err(); err != nil {
		return result, err
	}
	v, ok := c.Node().(T)
	if !ok {
		return result, fmt.Errorf("%w: wrong node type %T", tree.ErrUnsupported, c.Node())
	}
	return v, nil
}

// A Cursor is a pointer that navigates into the structure of a tree.
// A Cursor does not own the nodes it visits; the tree must not be freed
// while the cursor is in use.
type Cursor struct {
	org tree.Node
	stk []tree.Node
	err error
}

// New constructs a new Cursor to traverse the structure of origin.
func New(origin tree.Node) *Cursor { return &Cursor{org: origin} }

// Origin returns the origin node of c.
func (c *Cursor) Origin() tree.Node { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Node reports the current node under the cursor.
func (c *Cursor) Node() tree.Node {
	if c.AtOrigin() {
		return c.org
	}
	return c.stk[len(c.stk)-1]
}

// Path reports the complete sequence of nodes from the origin to the current
// location in c.
func (c *Cursor) Path() []tree.Node {
	return append([]tree.Node{c.org}, c.stk...)
}

// Err reports the error from the most recent traversal operation, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves the cursor one position upward in the structure, if possible.
// It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset resets the cursor to its origin and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// Down traverses a sequential path into the structure of c starting from the
// current node, where path elements are either strings (denoting member
// names), integers (denoting offsets into arrays or objects), functions (see
// below), or nil. If the path is valid, the node reached is current. If the
// path cannot be completely consumed, traversal stops and an error is
// recorded. Use Err to recover the error.
//
// If a path element is a string, the current node must be an object, and the
// string resolves to the first member with that name.
//
// If a path element is an integer, the current node must be an array or
// object, and the integer resolves to an offset among its children.
// Negative offsets count backward from the end (-1 is last, -2 second last).
// An error wrapping tree.ErrNotFound is reported if the offset is out of
// bounds.
//
// If a path element is a function, the function is executed and its result
// becomes the next node in the sequence. The function must have a signature
//
//	func(tree.Node) (tree.Node, error)
//
// If the function reports an error, traversal stops and the error is
// recorded. A nil path element is ignored.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil
	cur := c.Node()
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			o, ok := cur.(*tree.Object)
			if !ok {
				return c.setErrorf("%w: cannot traverse %s with %q", tree.ErrUnsupported, kindOf(cur), t)
			}
			m := o.Find(t)
			if m == nil {
				return c.setErrorf("%w: key %q", tree.ErrNotFound, t)
			}
			cur = c.push(m)

		case int:
			var n int
			var at func(int) tree.Node
			switch e := cur.(type) {
			case *tree.Array:
				n, at = e.Len(), e.At
			case *tree.Object:
				n, at = e.Len(), e.At
			default:
				return c.setErrorf("%w: cannot traverse %s with %d", tree.ErrUnsupported, kindOf(cur), t)
			}
			i, ok := fixArrayBound(n, t)
			if !ok {
				return c.setErrorf("%w: index %d out of bounds (n=%d)", tree.ErrNotFound, t, n)
			}
			cur = c.push(at(i))

		case func(tree.Node) (tree.Node, error):
			next, err := t(cur)
			if err != nil {
				c.err = err
				return c
			}
			cur = c.push(next)

		case nil:
			// Do nothing.

		default:
			return c.setErrorf("%w: invalid path element %T", tree.ErrInvalidInput, elt)
		}
	}
	return c
}

func (c *Cursor) push(n tree.Node) tree.Node { c.stk = append(c.stk, n); return n }

func (c *Cursor) setErrorf(msg string, args ...any) *Cursor {
	c.err = fmt.Errorf(msg, args...)
	return c
}

func kindOf(n tree.Node) string {
	if n == nil {
		return "nil"
	}
	return n.Kind().String()
}

func fixArrayBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
