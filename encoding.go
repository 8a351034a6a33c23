// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package tjson

import (
	"errors"
	"strings"

	"github.com/creachadair/tjson/internal/escape"

	"go4.org/mem"
)

// Quote escapes src and adds double quotation marks, so that Unescape
// recovers src exactly. Only backslash, double quote, NUL, carriage return,
// newline and tab are escaped.
func Quote(src string) string {
	buf := make([]byte, 0, len(src)+2)
	buf = append(buf, '"')
	buf = append(buf, escape.Quote(mem.S(src))...)
	return string(append(buf, '"'))
}

// Unescape decodes a quoted string token. Double quotation marks are
// removed, and escape sequences are replaced with the bytes they denote.
//
// The recognized escapes are \\ \0 \r \n \t \' and \". A backslash before
// any other character is dropped and the character is kept. Unicode escapes
// are not decoded.
func Unescape(src []byte) ([]byte, error) {
	if len(src) < 2 || src[0] != '"' || src[len(src)-1] != '"' {
		return nil, errors.New("missing quotations")
	}
	return escape.Unescape(mem.B(src[1 : len(src)-1]))
}

// UnescapeString is as Unescape, but operates on a string.
func UnescapeString(src string) (string, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return "", errors.New("missing quotations")
	}
	dec, err := escape.Unescape(mem.S(src[1 : len(src)-1]))
	return string(dec), err
}
