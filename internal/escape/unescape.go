// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unescaping of string literals.
//
// The escape table is deliberately small: \\ \0 \r \n \t \' and \" are
// recognized, and any other escaped character stands for itself. Unicode
// escapes (\uXXXX) are not decoded.
package escape

import (
	"errors"

	"go4.org/mem"
)

// ErrIncomplete is reported by Unescape when the input ends with a lone
// backslash.
var ErrIncomplete = errors.New("incomplete escape sequence")

// Unescape decodes the contents of a string literal. The input must have the
// enclosing double quotation marks already removed.
//
// Each escape sequence is replaced by the byte it denotes. A backslash
// followed by a character outside the escape table yields that character
// unchanged, without the backslash.
func Unescape(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		dec = mem.Append(dec, src)
		return dec, nil
	}

	for src.Len() != 0 {
		dec = mem.Append(dec, src.SliceTo(i))

		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, ErrIncomplete
		}
		if b, ok := unescapeByte(src.At(0)); ok {
			dec = append(dec, b)
			src = src.SliceFrom(1)
		} else {
			// Pass the whole escaped rune through, even if it is multi-byte.
			_, n := mem.DecodeRune(src)
			if n == 0 {
				n++
			}
			dec = mem.Append(dec, src.SliceTo(n))
			src = src.SliceFrom(n)
		}

		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	return dec, nil
}

func unescapeByte(b byte) (byte, bool) {
	switch b {
	case '\\', '\'', '"':
		return b, true
	case '0':
		return 0, true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	}
	return 0, false
}
