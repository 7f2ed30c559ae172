// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jlex implements a lexer for JSON from an in-memory buffer.
//
// # Scanning
//
// The Lexer type tokenizes a byte buffer containing JSON text.  Construct a
// lexer from the buffer and call its Next method to iterate over the input.
// Each call returns the next token; at the end of the input, Next returns a
// token of kind End, and continues to do so on subsequent calls:
//
//	lex := jlex.NewLexer(input)
//	for {
//	   tok := lex.Next()
//	   if tok.Kind == jlex.End {
//	      break
//	   }
//	   log.Printf("Next token: %v", tok.Kind)
//	}
//
// The lexer does not fail. Bytes that cannot form a valid token are returned
// as a token of kind Error spanning exactly the offending input, and the
// lexer then resumes at the following byte. It is up to the consumer (for
// example the parser in the ast subpackage) to decide what to do with an
// Error token.
//
// Every token carries the byte offsets of its text in the buffer.  String
// and Number tokens also carry their decoded values: strings are unescaped
// during scanning, including reassembly of UTF-16 surrogate pairs written as
// "\u" escapes, and numbers are reconstructed from their decimal digits.
// Malformed string escapes do not produce Error tokens; they decode to the
// Unicode replacement rune U+FFFD instead.
//
// The lexer requires its input to be valid UTF-8 and does not itself
// validate the encoding.
//
// # Numbers
//
// Number values are rebuilt by accumulating the significand into a 64-bit
// integer and scaling by repeated multiplication or division by 10, rather
// than by strconv.ParseFloat. The result may differ from a correctly-rounded
// conversion in the last bit or two for values that are not exactly
// representable. Callers that need correctly-rounded values can re-parse the
// token's source text, located by its span.
//
// # Parsing
//
// The ast subpackage consumes the token stream and assembles JSON values
// into a tree.
package jlex
