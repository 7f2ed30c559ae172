// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jlex

import (
	"errors"
	"strings"

	"github.com/creachadair/jlex/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string { return `"` + string(escape.Quote(mem.S(src))) + `"` }

// Unquote decodes a JSON string value.  Double quotation marks are removed,
// and escape sequences are replaced with their unescaped equivalents.
//
// Malformed and unpaired Unicode escapes are replaced by the Unicode
// replacement rune, and a backslash that does not begin an escape sequence
// is kept as literal text; these are the same rules the lexer applies when
// decoding a String token.
func Unquote(src string) (string, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return "", errors.New("missing quotations")
	}
	return string(escape.Decode(mem.S(src[1 : len(src)-1]))), nil
}
