// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package tjson implements a scanner and grammar-driven stream parser for a
// strict subset of JSON, used to build the trees in package tree.
//
// # Scanning
//
// The Scanner type implements a lexical scanner.  Construct a scanner from an
// io.Reader and call its Next method to iterate over the stream. Next
// advances to the next input token and reports whether one is available:
//
//	s := tjson.NewScanner(input)
//	for s.Next() {
//	   log.Printf("Next token: %v", s.Token())
//	}
//
// When Next returns false, Err reports nil if the input was fully consumed.
// Any other error indicates an I/O or lexical error in the input.
//
//	if err := s.Err(); err != nil {
//	   log.Fatalf("Scanning failed: %v", err)
//	}
//
// String tokens are reported undecoded. A backslash in a string escapes the
// character after it; Unescape decodes the escapes \\ \0 \r \n \t \' and \",
// and drops the backslash before any other character.
//
// # Streaming
//
// The Stream type implements an event-driven stream parser. The parser works
// by calling methods on a Handler value to report the structure of the
// input. In case of error, parsing is terminated and an error of concrete
// type *tjson.SyntaxError is returned.
//
// The accepted grammar is:
//
//	document  := object | array
//	object    := "{" attribute ("," attribute)* "}"
//	attribute := string ":" value
//	array     := "[" value ("," value)* "]"
//	value     := integer | number | true | false | string | object | array
//
// A document must be followed by the end of the input. Empty objects and
// arrays are rejected unless the Stream is configured with AllowEmpty. The
// null constant is always rejected.
//
// Construct a Stream from an io.Reader, and call its Parse method. Parse
// returns nil if the input was fully processed without error. If a Handler
// method reports an error, parsing stops and that error is returned.
//
//	s := tjson.NewStream(input)
//	if err := s.Parse(handler); err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// # Handlers
//
// The Handler interface accepts parser events from a Stream. The methods of
// a handler correspond to the syntax of the grammar:
//
//	Production | Methods                   | Description
//	---------- | ------------------------- | ---------------------------------
//	object     | BeginObject, EndObject    | { ... }
//	array      | BeginArray, EndArray      | [ ... ]
//	attribute  | BeginMember, EndMember    | "key": value
//	value      | Value                     | true, false, number, string
//	--         | EndOfInput                | end of input
//
// Each method is passed an Anchor value that can be used to retrieve location
// and type information. The Anchor passed to a handler method is only valid
// for the duration of that method call; the handler must copy any data it
// needs to retain beyond the lifetime of the call.
//
// The parser ensures that corresponding Begin and End methods are correctly
// paired, or that a SyntaxError is reported.
package tjson
