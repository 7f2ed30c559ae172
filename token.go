// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jlex

// Kind is the type of a lexical token in the JSON grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // zero value, not produced by the lexer
	LBrace              // left brace "{"
	RBrace              // right brace "}"
	LSquare             // left square bracket "["
	RSquare             // right square bracket "]"
	Colon               // colon ":"
	Comma               // comma ","
	String              // quoted string
	Number              // number
	True                // constant: true
	False               // constant: false
	Null                // constant: null

	Error // one or more bytes that do not form a valid token
	End   // end of input
)

var kindStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Colon:   `":"`,
	Comma:   `","`,
	String:  "string",
	Number:  "number",
	True:    "true",
	False:   "false",
	Null:    "null",

	Error: "error",
	End:   "end of input",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// A Token is a single lexical element of a JSON input.  Its Span locates the
// token in the source buffer. String and Number tokens additionally carry a
// decoded payload; for all other kinds the payload fields are zero.
//
// Tokens are plain values. They do not alias lexer state and remain valid
// after further calls to Next.
type Token struct {
	Kind Kind
	Span Span

	Text string  // for String, the decoded text of the token
	Num  float64 // for Number, the numeric value of the token
}
