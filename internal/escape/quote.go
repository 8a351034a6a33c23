// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape

import (
	"go4.org/mem"
)

var quoteEsc = [...]byte{
	0:    '0',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	'"':  '"',
	'\\': '\\',
}

// Quote escapes the contents of src for inclusion in a string literal, so
// that Unescape recovers the original bytes. Bytes outside the escape table
// are copied unchanged, including other control characters and non-ASCII
// text.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())
	for {
		i := indexQuotable(src)
		if i < 0 {
			return mem.Append(buf, src)
		}
		buf = mem.Append(buf, src.SliceTo(i))
		buf = append(buf, '\\', quoteEsc[src.At(i)])
		src = src.SliceFrom(i + 1)
	}
}

func indexQuotable(src mem.RO) int {
	for i := 0; i < src.Len(); i++ {
		if b := src.At(i); int(b) < len(quoteEsc) && (b == 0 || quoteEsc[b] != 0) {
			return i
		}
	}
	return -1
}
