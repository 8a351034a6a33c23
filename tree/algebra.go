// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tree

import (
	"fmt"

	"github.com/creachadair/tjson/value"
)

// checkLive reports ErrInvalidInput if n is nil or has been released.
func checkLive(op string, n Node) error {
	if isNil(n) {
		return fmt.Errorf("%s: %w: nil node", op, ErrInvalidInput)
	} else if n.base().released {
		return fmt.Errorf("%s: %w: released node", op, ErrInvalidInput)
	}
	return nil
}

// checkInsert reports whether node may be inserted into the container c.
func checkInsert(op string, c, node Node) error {
	if err := checkLive(op, node); err != nil {
		return err
	}
	h := node.base()
	if h.attached {
		return fmt.Errorf("%s: %w: node is already attached", op, ErrInvalidInput)
	}
	if node == c || contains(node, c) {
		return fmt.Errorf("%s: %w: node contains its container", op, ErrInvalidInput)
	}
	return nil
}

// contains reports whether target is a proper descendant of n.
func contains(n, target Node) bool {
	for _, kid := range children(n) {
		if kid == target || contains(kid, target) {
			return true
		}
	}
	return false
}

// ArrayAppend appends node to the end of array, and transfers ownership of
// node to array. The node must not have a name.
//
// It reports ErrInvalidInput if either argument is nil or released, if node
// is named or already attached to a container, or if node contains array.
// It reports ErrUnsupported if array is not an *Array. On failure, neither
// argument is modified.
func ArrayAppend(array, node Node) error {
	const op = "append to array"
	if err := checkLive(op, array); err != nil {
		return err
	}
	a, ok := array.(*Array)
	if !ok {
		return errUnsupported(op, array)
	}
	if err := checkInsert(op, a, node); err != nil {
		return err
	}
	if name, ok := node.Name(); ok {
		return fmt.Errorf("%s: %w: element has name %q", op, ErrInvalidInput, name)
	}
	node.base().attached = true
	a.elems = append(a.elems, node)
	return nil
}

// ObjectAppend appends node to the end of object, and transfers ownership of
// node to object. The node must have a name, which need not be unique among
// the members of object.
//
// It reports ErrInvalidInput if either argument is nil or released, if node
// is unnamed or already attached to a container, or if node contains
// object. It reports ErrUnsupported if object is not an *Object. On
// failure, neither argument is modified.
func ObjectAppend(object, node Node) error {
	const op = "append to object"
	if err := checkLive(op, object); err != nil {
		return err
	}
	o, ok := object.(*Object)
	if !ok {
		return errUnsupported(op, object)
	}
	if err := checkInsert(op, o, node); err != nil {
		return err
	}
	if _, ok := node.Name(); !ok {
		return fmt.Errorf("%s: %w: member has no name", op, ErrInvalidInput)
	}
	node.base().attached = true
	o.members = append(o.members, node)
	return nil
}

// Index returns the element of array at offset i.
//
// It reports ErrInvalidInput if array is nil or released, ErrUnsupported if
// array is not an *Array, and ErrNotFound if i < 0 or i >= the length of
// the array.
func Index(array Node, i int) (Node, error) {
	const op = "index"
	if err := checkLive(op, array); err != nil {
		return nil, err
	}
	a, ok := array.(*Array)
	if !ok {
		return nil, errUnsupported(op, array)
	}
	if i < 0 || i >= len(a.elems) {
		return nil, fmt.Errorf("%s: %w: offset %d (n=%d)", op, ErrNotFound, i, len(a.elems))
	}
	return a.elems[i], nil
}

// Lookup returns the first member of object whose name is exactly key.
//
// It reports ErrInvalidInput if object is nil or released, ErrUnsupported if
// object is not an *Object, and ErrNotFound if no member has that name.
func Lookup(object Node, key string) (Node, error) {
	const op = "lookup"
	if err := checkLive(op, object); err != nil {
		return nil, err
	}
	o, ok := object.(*Object)
	if !ok {
		return nil, errUnsupported(op, object)
	}
	if m := o.Find(key); m != nil {
		return m, nil
	}
	return nil, fmt.Errorf("%s: %w: key %q", op, ErrNotFound, key)
}

// Find searches the subtree rooted at node for a node whose name is exactly
// key, and returns the first one found in pre-order: node itself is checked
// first, then each of its children and their subtrees in insertion order.
//
// The search never leaves the subtree: when node is itself a member of a
// container, the siblings that follow it are not searched. To search a
// whole document, pass its root.
//
// It reports ErrInvalidInput if node is nil or released, and ErrNotFound if
// no node in the subtree has that name.
func Find(node Node, key string) (Node, error) {
	const op = "find"
	if err := checkLive(op, node); err != nil {
		return nil, err
	}
	if n := findFirst(node, key); n != nil {
		return n, nil
	}
	return nil, fmt.Errorf("%s: %w: key %q", op, ErrNotFound, key)
}

func findFirst(n Node, key string) Node {
	if h := n.base(); h.named && h.name == key {
		return n
	}
	for _, kid := range children(n) {
		if m := findFirst(kid, key); m != nil {
			return m
		}
	}
	return nil
}

// Iterate calls fn for each element of array in order. Every element is
// visited regardless of the errors fn reports; Iterate returns the last
// non-nil error reported by fn, or nil.
//
// It reports ErrInvalidInput if array is nil or released or fn is nil, and
// ErrUnsupported if array is not an *Array.
func Iterate(array Node, fn func(Node) error) error {
	const op = "iterate"
	if err := checkLive(op, array); err != nil {
		return err
	} else if fn == nil {
		return fmt.Errorf("%s: %w: nil function", op, ErrInvalidInput)
	}
	a, ok := array.(*Array)
	if !ok {
		return errUnsupported(op, array)
	}
	var last error
	for _, elt := range a.elems {
		if err := fn(elt); err != nil {
			last = err
		}
	}
	return last
}

// Walk visits node and its descendants in pre-order, calling fn for each.
// If fn returns false for a container, its children are skipped. Walk does
// nothing if node is nil.
func Walk(node Node, fn func(Node) bool) {
	if isNil(node) {
		return
	}
	if fn(node) {
		for _, kid := range children(node) {
			Walk(kid, fn)
		}
	}
}

// Free releases node and all its descendants, and returns the number of
// nodes released. Names and string or blob payloads are cleared, and each
// node is marked as released; a released node cannot be appended,
// serialized, or released again.
//
// Free does nothing and returns 0 if node is nil, already released, or
// attached to a container. Attached nodes are released with their root.
func Free(node Node) int {
	if isNil(node) {
		return 0
	}
	if h := node.base(); h.released || h.attached {
		return 0
	}
	return release(node)
}

func release(n Node) int {
	count := 1
	for _, kid := range children(n) {
		count += release(kid)
	}
	switch t := n.(type) {
	case *Array:
		t.elems = nil
	case *Object:
		t.members = nil
	case *Var:
		t.val = value.Value{}
	case *Bool:
		t.val = value.Value{}
	}
	*n.base() = header{released: true}
	return count
}
