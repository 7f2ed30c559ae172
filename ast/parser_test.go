// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/creachadair/jlex"
	"github.com/creachadair/jlex/ast"
	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, input string) ast.Value {
	t.Helper()
	v, err := ast.ParseString(input)
	if err != nil {
		t.Fatalf("Parse %#q: unexpected error: %v", input, err)
	}
	return v
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  ast.Value
	}{
		// Leaf values
		{`"hello"`, ast.String("hello")},
		{`-5.8`, ast.Number(-5.8)},
		{`true`, ast.Bool(true)},
		{`false`, ast.Bool(false)},
		{`null`, ast.Null{}},

		// Empty containers
		{`{}`, ast.Object{}},
		{`[]`, ast.Array{}},
		{` { } `, ast.Object{}},
		{"\n[\n]\n", ast.Array{}},

		// Flat containers
		{`[1, 2, 3]`, ast.Array{ast.Number(1), ast.Number(2), ast.Number(3)}},
		{`["a", true, null]`, ast.Array{ast.String("a"), ast.Bool(true), ast.Null{}}},
		{`{"a": 1}`, ast.Object{"a": ast.Number(1)}},

		// Nesting
		{`{ "foo": 3, "bar": ["baz", -5.8], "qux": 13e5 }`, ast.Object{
			"foo": ast.Number(3),
			"bar": ast.Array{ast.String("baz"), ast.Number(-5.8)},
			"qux": ast.Number(13e5),
		}},
		{`[[],[{}],[[["deep"]]]]`, ast.Array{
			ast.Array{},
			ast.Array{ast.Object{}},
			ast.Array{ast.Array{ast.Array{ast.String("deep")}}},
		}},
		{`{"outer": {"inner": {"leaf": null}}}`, ast.Object{
			"outer": ast.Object{"inner": ast.Object{"leaf": ast.Null{}}},
		}},

		// String decoding applies to both keys and values.
		{`{"\u0041": "\ud83d\ude00"}`, ast.Object{"A": ast.String("😀")}},

		// Duplicate keys: the last write wins.
		{`{"a":1,"a":2}`, ast.Object{"a": ast.Number(2)}},
		{`{"a":1,"b":0,"a":{"c":[]}}`, ast.Object{
			"a": ast.Object{"c": ast.Array{}},
			"b": ast.Number(0),
		}},
	}

	for _, test := range tests {
		got := mustParse(t, test.input)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nValue: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestParse_errors(t *testing.T) {
	tests := []struct {
		input string
		kind  jlex.Kind // the kind of the offending token
		pos   int       // the start offset of the offending token
	}{
		// An empty buffer has no value in it.
		{"", jlex.End, 0},
		{"   \n\t", jlex.End, 5},

		// Incomplete containers
		{`{`, jlex.End, 1},
		{`{"a":1`, jlex.End, 6},
		{`{"a":1,`, jlex.End, 7},
		{`[`, jlex.End, 1},
		{`[1, 2`, jlex.End, 5},

		// Misplaced punctuation
		{`}`, jlex.RBrace, 0},
		{`]`, jlex.RSquare, 0},
		{`,`, jlex.Comma, 0},
		{`[1,]`, jlex.RSquare, 3},
		{`[1 2]`, jlex.Number, 3},
		{`{"a" 1}`, jlex.Number, 5},
		{`{"a":1 "b":2}`, jlex.String, 7},
		{`{"a":}`, jlex.RBrace, 5},
		{`{1: 2}`, jlex.Number, 1},

		// Trailing input after a complete value
		{`true false`, jlex.False, 5},
		{`{} {}`, jlex.LBrace, 3},
		{`null,`, jlex.Comma, 4},
		{`1 2`, jlex.Number, 2},

		// Lexical errors surface as unexpected Error tokens.
		{`@`, jlex.Error, 0},
		{`[1, @]`, jlex.Error, 4},
		{`"unterminated`, jlex.Error, 0},
		{`{"a": 1.}`, jlex.Error, 6},
	}

	for _, test := range tests {
		v, err := ast.ParseString(test.input)
		if err == nil {
			t.Errorf("Input %#q: got %+v, want error", test.input, v)
			continue
		}
		var serr *ast.SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("Input %#q: error is %T, want *ast.SyntaxError", test.input, err)
			continue
		}
		if serr.Kind != test.kind || serr.Span.Pos != test.pos {
			t.Errorf("Input %#q: got (%v, %d), want (%v, %d)",
				test.input, serr.Kind, serr.Span.Pos, test.kind, test.pos)
		}
	}
}

func TestParse_file(t *testing.T) {
	input, err := os.ReadFile("../testdata/input.json")
	if err != nil {
		t.Fatalf("Reading test input: %v", err)
	}

	v, err := ast.Parse(input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	root, ok := v.(ast.Object)
	if !ok {
		t.Fatalf("Root is %T, not object", v)
	}

	eps, ok := root["episodes"].(ast.Array)
	if !ok {
		t.Fatalf(`Key "episodes" is %T, not array`, root["episodes"])
	} else if len(eps) != 3 {
		t.Fatalf("Found %d episodes, want 3", len(eps))
	}
	obj, ok := eps[2].(ast.Object)
	if !ok {
		t.Fatalf("Array entry is %T, not object", eps[2])
	}
	if s, ok := obj["summary"].(ast.String); !ok {
		t.Errorf(`Key "summary" is %T, not string`, obj["summary"])
	} else if !strings.Contains(string(s), "😀") {
		// The fixture spells the emoji as a \u surrogate pair.
		t.Errorf("Summary did not decode the surrogate pair: %q", s)
	}
	if n, ok := obj["episode"].(ast.Number); !ok || n != 624 {
		t.Errorf(`Key "episode": got %v, want 624`, obj["episode"])
	}
	if bv, ok := obj["hasDetail"].(ast.Bool); !ok || !bool(bv) {
		t.Errorf(`Key "hasDetail": got %v, want true`, obj["hasDetail"])
	}
	if _, ok := root["updated"].(ast.String); !ok {
		t.Errorf(`Key "updated" is %T, not string`, root["updated"])
	}
}

func TestParse_roundTrip(t *testing.T) {
	// Rendering a parsed value back to JSON and reparsing it must produce a
	// structurally equal tree.
	tests := []string{
		`null`,
		`true`,
		`-3`,
		`"a \"quoted\" string"`,
		`{}`,
		`[]`,
		`[1, 2.5, -0.25, 1300000]`,
		`{"a": [true, false, null], "b": {"c": "d"}, "e": []}`,
		`{ "foo": 3, "bar": ["baz", -5.875], "qux": 13e5 }`,
	}
	for _, test := range tests {
		orig := mustParse(t, test)
		again := mustParse(t, orig.JSON())
		if diff := cmp.Diff(orig, again); diff != "" {
			t.Errorf("Input: %#q\nReparsed: (-orig, +again)\n%s", test, diff)
		}
	}
}
