// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"

	"github.com/creachadair/jlex"
)

// Parse parses src, which must comprise exactly one JSON value, possibly
// surrounded by whitespace, and returns the corresponding value tree.
//
// In case of error, Parse returns an error of concrete type [*SyntaxError]
// identifying the first token that did not fit the grammar, and no value.
// Parsing does not recover or resynchronize after an error, and no partial
// value is retained.
func Parse(src []byte) (_ Value, err error) {
	defer recoverSyntaxError(&err)

	p := parser{lex: jlex.NewLexer(src)}
	v := p.parseValue(p.lex.Next())

	// The grammar admits exactly one top-level value; whatever follows it
	// must be the end of the input.
	if tok := p.lex.Next(); tok.Kind != jlex.End {
		panic(badToken(tok))
	}
	return v, nil
}

// ParseString is shorthand for Parse on the contents of src.
func ParseString(src string) (Value, error) { return Parse([]byte(src)) }

// A SyntaxError reports a token in a position where it does not fit the
// JSON grammar. It records the kind and byte span of the offending token;
// the parser itself does not render line and column information, but the
// caller can recover it from the span (see [jlex.Locate]).
type SyntaxError struct {
	Kind jlex.Kind // the kind of the offending token
	Span jlex.Span // the location of the offending token
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("unexpected %v at offset %d", e.Kind, e.Span.Pos)
}

func badToken(tok jlex.Token) *SyntaxError {
	return &SyntaxError{Kind: tok.Kind, Span: tok.Span}
}

func recoverSyntaxError(errp *error) {
	if v := recover(); v != nil {
		if serr, ok := v.(*SyntaxError); ok {
			*errp = serr
		} else {
			panic(v)
		}
	}
}

// A parser consumes the token stream of a single buffer. The grammar is
// processed by recursive descent with one token of lookahead:
//
//	value    = STRING | NUMBER | TRUE | FALSE | NULL | object | array
//	object   = '{' '}' | '{' pairs '}'
//	pairs    = pair | pairs ',' pair
//	pair     = STRING ':' value
//	array    = '[' ']' | '[' elements ']'
//	elements = value | elements ',' value
//
// Parse errors are reported by panicking with a *SyntaxError, which the
// exported entry points convert back into an ordinary error result.
type parser struct {
	lex *jlex.Lexer
}

// parseValue parses a value whose first token is tok.
func (p *parser) parseValue(tok jlex.Token) Value {
	switch tok.Kind {
	case jlex.String:
		return String(tok.Text)
	case jlex.Number:
		return Number(tok.Num)
	case jlex.True:
		return Bool(true)
	case jlex.False:
		return Bool(false)
	case jlex.Null:
		return Null{}
	case jlex.LBrace:
		return p.parseObject()
	case jlex.LSquare:
		return p.parseArray()
	default:
		// Includes Error tokens and a premature End.
		panic(badToken(tok))
	}
}

// parseObject parses the members of an object and its closing brace.
// Precondition: the opening brace has been consumed.
func (p *parser) parseObject() Object {
	obj := make(Object)
	tok := p.lex.Next()
	if tok.Kind == jlex.RBrace {
		return obj // empty object
	}
	for {
		if tok.Kind != jlex.String {
			panic(badToken(tok))
		}
		key := tok.Text
		p.require(jlex.Colon)
		obj[key] = p.parseValue(p.lex.Next())

		// Check whether we have more members (",") or are done ("}").
		tok = p.lex.Next()
		if tok.Kind == jlex.RBrace {
			return obj
		} else if tok.Kind != jlex.Comma {
			panic(badToken(tok))
		}
		tok = p.lex.Next() // advance to the next key
	}
}

// parseArray parses the elements of an array and its closing bracket.
// Precondition: the opening bracket has been consumed.
func (p *parser) parseArray() Array {
	arr := Array{}
	tok := p.lex.Next()
	if tok.Kind == jlex.RSquare {
		return arr // empty array
	}
	for {
		arr = append(arr, p.parseValue(tok))

		tok = p.lex.Next()
		if tok.Kind == jlex.RSquare {
			return arr
		} else if tok.Kind != jlex.Comma {
			panic(badToken(tok))
		}
		tok = p.lex.Next() // advance to the next element
	}
}

// require consumes and returns the next token, which must have kind k.
func (p *parser) require(k jlex.Kind) jlex.Token {
	tok := p.lex.Next()
	if tok.Kind != k {
		panic(badToken(tok))
	}
	return tok
}
