// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tree

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is reported when an argument is nil, released, or
	// otherwise unsuitable for the requested operation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupported is reported when an operation is applied to a node of
	// the wrong kind.
	ErrUnsupported = errors.New("unsupported node kind")

	// ErrNotFound is reported when a lookup fails, or when parsed input
	// holds no document.
	ErrNotFound = errors.New("not found")

	// ErrIO is reported when a file cannot be opened, read, or written.
	ErrIO = errors.New("i/o error")
)

func errInvalidf(msg string, args ...any) error {
	return fmt.Errorf("%w: "+msg, append([]any{ErrInvalidInput}, args...)...)
}

func errUnsupported(op string, n Node) error {
	return fmt.Errorf("%s: %w: %v", op, ErrUnsupported, n.Kind())
}
