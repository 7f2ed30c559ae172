// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jlex

import (
	"strings"

	"github.com/creachadair/jlex/internal/escape"
	"go4.org/mem"
)

// A Lexer reads lexical tokens from an in-memory buffer.  Each call to Next
// consumes and returns the next token of the input. The lexer never fails:
// input that does not form a valid token is returned as an Error token whose
// span covers the offending bytes, and once the buffer is exhausted every
// subsequent call returns an End token.
//
// The buffer must be valid UTF-8; the lexer does not check this property.
type Lexer struct {
	src []byte
	pos int
}

// NewLexer constructs a new lexer that consumes input from src.
// The lexer does not modify or copy src, but retains a reference to it, and
// the caller must not mutate its contents while the lexer is in use.
func NewLexer(src []byte) *Lexer { return &Lexer{src: src} }

// Next consumes and returns the next token of the input.
func (l *Lexer) Next() Token {
	// Discard whitespace before the token.
	for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
		l.pos++
	}

	start := l.pos
	if start == len(l.src) {
		return l.token(End, start)
	}

	b := l.src[start]

	// Handle punctuation.
	if k, ok := selfDelim(b); ok {
		l.pos++
		return l.token(k, start)
	}

	// Handle string values.
	if b == '"' {
		return l.scanString(start)
	}

	// Handle numbers.
	if isNumStart(b) {
		return l.scanNumber(start)
	}

	// Handle constants: true, false, null.
	rest := mem.B(l.src[start:])
	switch b {
	case 't':
		if mem.HasPrefix(rest, mem.S("true")) {
			l.pos += len("true")
			return l.token(True, start)
		}
	case 'f':
		if mem.HasPrefix(rest, mem.S("false")) {
			l.pos += len("false")
			return l.token(False, start)
		}
	case 'n':
		if mem.HasPrefix(rest, mem.S("null")) {
			l.pos += len("null")
			return l.token(Null, start)
		}
	}

	// Nothing the byte could begin; report it alone so that repeated calls
	// always make progress toward the end of the buffer.
	l.pos++
	return l.token(Error, start)
}

func (l *Lexer) token(k Kind, start int) Token {
	return Token{Kind: k, Span: Span{Pos: start, End: l.pos}}
}

// scanString consumes a string token whose open quote is at start.
// The scan locates the closing quote without decoding, skipping over
// escaped quotation marks; the body is then decoded separately.
func (l *Lexer) scanString(start int) Token {
	i := start + 1
	for i < len(l.src) {
		switch b := l.src[i]; {
		case b == '"':
			body := mem.B(l.src[start+1 : i])
			l.pos = i + 1
			tok := l.token(String, start)
			tok.Text = string(escape.Decode(body))
			return tok
		case b == '\\' && i+1 < len(l.src) && isEscapeByte(l.src[i+1]):
			i += 2
		default:
			// Includes a backslash that does not begin an escape sequence;
			// such a backslash is literal text and cannot hide a quote.
			i++
		}
	}

	// Unterminated string; the token covers the rest of the buffer.
	l.pos = len(l.src)
	return l.token(Error, start)
}

// maxExponent bounds the magnitude of the decimal exponent of a number
// token, including the contribution of fractional digits. A number whose
// exponent exceeds the bound lexes as an Error token, which keeps the
// reconstruction loop proportional to the token size.
const maxExponent = 4096

// scanNumber consumes a number token beginning at start.
//
// The value is rebuilt manually from its decimal digits: the significand
// accumulates into a uint64, the fractional part and exponent suffix adjust
// a decimal exponent, and the final magnitude is produced by repeated
// multiplication or division by 10. This trades a little precision for
// independence from strconv; see the package documentation.
func (l *Lexer) scanNumber(start int) Token {
	i := start
	neg := l.src[i] == '-'
	if neg {
		i++
	}

	// Integer part: a single zero, or a nonzero digit followed by any
	// further digits. A leading zero does not take more digits, so an input
	// like "01" is two number tokens.
	var sig uint64
	switch {
	case i < len(l.src) && l.src[i] == '0':
		i++
	case i < len(l.src) && isDigit(l.src[i]):
		for i < len(l.src) && isDigit(l.src[i]) {
			sig = sig*10 + uint64(l.src[i]-'0')
			i++
		}
	default:
		// Missing integer digits (for example "-" alone).
		l.pos = i
		return l.token(Error, start)
	}

	// Fractional part: each digit extends the significand and owes the
	// exponent one place.
	exp := 0
	if i < len(l.src) && l.src[i] == '.' {
		i++
		first := i
		for i < len(l.src) && isDigit(l.src[i]) {
			sig = sig*10 + uint64(l.src[i]-'0')
			exp--
			i++
		}
		if i == first {
			l.pos = i
			return l.token(Error, start) // no digits after decimal point
		}
	}

	// Exponent suffix.
	if i < len(l.src) && (l.src[i] == 'e' || l.src[i] == 'E') {
		i++
		expNeg := false
		if i < len(l.src) && (l.src[i] == '+' || l.src[i] == '-') {
			expNeg = l.src[i] == '-'
			i++
		}
		first := i
		n := 0
		for i < len(l.src) && isDigit(l.src[i]) {
			if n <= maxExponent {
				n = n*10 + int(l.src[i]-'0')
			}
			i++
		}
		if i == first {
			l.pos = i
			return l.token(Error, start) // missing exponent digits
		}
		if expNeg {
			exp -= n
		} else {
			exp += n
		}
	}

	l.pos = i
	if exp > maxExponent || exp < -maxExponent {
		return l.token(Error, start)
	}

	mag := float64(sig)
	for k := exp; k > 0; k-- {
		mag *= 10.0
	}
	for k := exp; k < 0; k++ {
		mag /= 10.0
	}
	if neg {
		mag = -mag
	}
	tok := l.token(Number, start)
	tok.Num = mag
	return tok
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func isDigit(b byte) bool    { return '0' <= b && b <= '9' }
func isNumStart(b byte) bool { return b == '-' || isDigit(b) }

// isEscapeByte reports whether b may follow a backslash in a string.
func isEscapeByte(b byte) bool {
	return strings.IndexByte(`"\/bfnrtu`, b) >= 0
}

var self = [...]Kind{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(b byte) (Kind, bool) {
	i := strings.IndexByte("{}[],:", b)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
