// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package value

import (
	"errors"
	"math"

	"go4.org/mem"
)

// ErrEmpty is reported by ParseNumber for an empty literal.
var ErrEmpty = errors.New("empty numeric literal")

// ParseNumber classifies the decimal literal in text and returns a Value of
// the narrowest kind that represents it.
//
// A literal containing a decimal point or an exponent is parsed as a Float.
// Otherwise the literal is an integer, and its kind is chosen using strict
// comparisons against the limits of each width:
//
//	negative:     Int16 if -32768 < n < 32767, else Int32 if
//	              -2147483648 < n < 2147483647, else Int64
//	non-negative: Uint16 if n < 65535, else Uint32 if n < 4294967295,
//	              else Uint64
//
// Note that the limits themselves fall into the next wider kind, so that
// "65535" is a Uint32 and "-32768" is an Int32.
func ParseNumber(text string) (Value, error) { return parseNumber(mem.S(text)) }

// ParseNumberBytes is as ParseNumber, but takes its input as a byte slice.
// It does not retain or modify text.
func ParseNumberBytes(text []byte) (Value, error) { return parseNumber(mem.B(text)) }

func parseNumber(m mem.RO) (Value, error) {
	if m.Len() == 0 {
		return Value{}, ErrEmpty
	}
	if isFloat(m) {
		f, err := mem.ParseFloat(m, 64)
		if err != nil {
			return Value{}, err
		}
		return FromFloat(f), nil
	}

	if m.At(0) == '-' {
		n, err := mem.ParseInt(m, 10, 64)
		if err != nil {
			return Value{}, err
		}
		switch {
		case n > math.MinInt16 && n < math.MaxInt16:
			return FromInt16(int16(n)), nil
		case n > math.MinInt32 && n < math.MaxInt32:
			return FromInt32(int32(n)), nil
		}
		return FromInt64(n), nil
	}

	u, err := mem.ParseUint(m, 10, 64)
	if err != nil {
		return Value{}, err
	}
	switch {
	case u < math.MaxUint16:
		return FromUint16(uint16(u)), nil
	case u < math.MaxUint32:
		return FromUint32(uint32(u)), nil
	}
	return FromUint64(u), nil
}

// isFloat reports whether m has the syntax of a non-integer literal.
func isFloat(m mem.RO) bool {
	for i := 0; i < m.Len(); i++ {
		switch m.At(i) {
		case '.', 'e', 'E':
			return true
		}
	}
	return false
}
