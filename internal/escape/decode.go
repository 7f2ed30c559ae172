// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

// Surrogate halves, used by the \uXXXX escape to encode code points above
// the basic multilingual plane.
const (
	surr1 = 0xd800 // first high surrogate
	surr2 = 0xdc00 // first low surrogate
	surr3 = 0xe000 // one past the last low surrogate

	surrBase = 0x10000 // value of the pair (surr1, surr2)
)

// Decode decodes a byte slice containing the JSON encoding of a string.  The
// input must have the enclosing double quotation marks already removed.
//
// Escape sequences are replaced with their unescaped equivalents. Unicode
// escapes comprising a valid surrogate pair decode to a single code point;
// an unpaired surrogate half or an incomplete Unicode escape decodes to
// U+FFFD. A backslash that does not begin a recognized escape sequence is
// kept as literal text. Decode does not fail: every input decodes to some
// sequence of bytes.
func Decode(src mem.RO) []byte {
	dec := make([]byte, 0, src.Len())
	for src.Len() != 0 {
		i := mem.IndexByte(src, '\\')
		if i < 0 {
			// No escapes remain; blit the rest of the input and go home.
			return mem.Append(dec, src)
		}
		dec = mem.Append(dec, src.SliceTo(i))
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return append(dec, '\\') // lone backslash at end of text
		}

		switch b := src.At(0); b {
		case '"', '\\', '/':
			dec = append(dec, b)
			src = src.SliceFrom(1)
		case 'b':
			dec = append(dec, '\b')
			src = src.SliceFrom(1)
		case 'f':
			dec = append(dec, '\f')
			src = src.SliceFrom(1)
		case 'n':
			dec = append(dec, '\n')
			src = src.SliceFrom(1)
		case 'r':
			dec = append(dec, '\r')
			src = src.SliceFrom(1)
		case 't':
			dec = append(dec, '\t')
			src = src.SliceFrom(1)
		case 'u':
			var r rune
			r, src = decodeUnicode(src.SliceFrom(1))
			dec = utf8.AppendRune(dec, r)
		default:
			// Not an escape; the backslash is ordinary text, and the byte
			// after it will be handled on the next pass.
			dec = append(dec, '\\')
		}
	}
	return dec
}

// decodeUnicode decodes the body of a Unicode escape sequence, positioned
// after the leading "\u". It consumes a second "\uXXXX" escape when the first
// is a high surrogate, whether or not the pairing succeeds, and returns the
// decoded rune along with the unconsumed remainder of src. Failed decodes
// report utf8.RuneError (U+FFFD).
func decodeUnicode(src mem.RO) (rune, mem.RO) {
	u1, n := codeUnit(src)
	src = src.SliceFrom(n)
	if n < 4 {
		return utf8.RuneError, src // incomplete escape
	}
	switch {
	case u1 >= surr1 && u1 < surr2:
		// High surrogate: a valid low surrogate escape must follow.
		// The second escape is consumed by the pairing attempt even if it
		// does not contain a low surrogate.
		if src.Len() >= 2 && src.At(0) == '\\' && src.At(1) == 'u' {
			u2, n := codeUnit(src.SliceFrom(2))
			src = src.SliceFrom(2 + n)
			if n == 4 && u2 >= surr2 && u2 < surr3 {
				return surrBase + ((u1-surr1)<<10 | (u2 - surr2)), src
			}
		}
		return utf8.RuneError, src
	case u1 >= surr2 && u1 < surr3:
		return utf8.RuneError, src // unpaired low surrogate
	default:
		return u1, src
	}
}

// codeUnit decodes up to 4 hexadecimal digits from the front of src, and
// reports the number of digits consumed. Decoding stops early at the first
// byte that is not a hex digit.
func codeUnit(src mem.RO) (rune, int) {
	var v rune
	for i := 0; i < 4; i++ {
		if i >= src.Len() {
			return v, i
		}
		d, ok := hexValue(src.At(i))
		if !ok {
			return v, i
		}
		v = v<<4 | rune(d)
	}
	return v, 4
}

func hexValue(b byte) (byte, bool) {
	switch {
	case '0' <= b && b <= '9':
		return b - '0', true
	case 'a' <= b && b <= 'f':
		return b - 'a' + 10, true
	case 'A' <= b && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
